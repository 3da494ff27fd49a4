package wulai

// User is the profile returned by GetUser.
type User struct {
	AvatarURL string `json:"avatar_url"`
	Nickname  string `json:"nickname"`
}

type UserAttributeValue struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserAttribute is the definition of a user attribute.
type UserAttribute struct {
	Name                    string `json:"name"`
	Lifespan                int    `json:"lifespan"`
	ValueType               string `json:"value_type"`
	UseInUserAttributeGroup bool   `json:"use_in_user_attribute_group"`
	Type                    string `json:"type"`
	ID                      string `json:"id"`
}

// UserAttributePair is an attribute together with one of its values.
type UserAttributePair struct {
	UserAttribute      UserAttribute      `json:"user_attribute"`
	UserAttributeValue UserAttributeValue `json:"user_attribute_value"`
}

// UserAttributeValues is an attribute together with all of its values.
type UserAttributeValues struct {
	UserAttribute      UserAttribute        `json:"user_attribute"`
	UserAttributeValue []UserAttributeValue `json:"user_attribute_value"`
}

type UserUserAttribute struct {
	UserAttributeUserAttributeValues []UserAttributePair `json:"user_attribute_user_attribute_values"`
}

type UserAttributes struct {
	PageCount                        int                   `json:"page_count"`
	UserAttributeUserAttributeValues []UserAttributeValues `json:"user_attribute_user_attribute_values"`
}

// UserAttributeFilter narrows the UserAttributes listing.
type UserAttributeFilter struct {
	UseInUserAttributeGroup *bool `json:"use_in_user_attribute_group,omitzero"`
}

// UserAttributeAssignment sets one attribute value on a user.
type UserAttributeAssignment struct {
	UserAttribute      UserAttributeRef      `json:"user_attribute"`
	UserAttributeValue UserAttributeValueRef `json:"user_attribute_value"`
}

type UserAttributeRef struct {
	ID string `json:"id"`
}

type UserAttributeValueRef struct {
	Name string `json:"name"`
}
