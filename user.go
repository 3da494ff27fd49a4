package wulai

import "context"

type createUserParams struct {
	UserID    string `json:"user_id" validate:"required,max=128"`
	AvatarURL string `json:"avatar_url" validate:"max=512"`
	Nickname  string `json:"nickname" validate:"max=128"`
}

type userIDParams struct {
	UserID string `json:"user_id" validate:"required,max=128"`
}

type userAttributesParams struct {
	Page     int                  `json:"page" validate:"min=1"`
	PageSize int                  `json:"page_size" validate:"min=1,max=200"`
	Filter   *UserAttributeFilter `json:"filter,omitzero"`
}

type createUserUserAttributeParams struct {
	UserID                          string                    `json:"user_id" validate:"required,max=128"`
	UserAttributeUserAttributeValue []UserAttributeAssignment `json:"user_attribute_user_attribute_value" validate:"required,min=1"`
}

// CreateUser creates a user, or updates it when userID already exists.
func (c *Client) CreateUser(ctx context.Context, userID, avatarURL, nickname string) (Payload, error) {
	return c.call(ctx, "/user/create", createUserParams{
		UserID:    userID,
		AvatarURL: avatarURL,
		Nickname:  nickname,
	}, nil)
}

func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	var out User
	if _, err := c.call(ctx, "/user/get", userIDParams{UserID: userID}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, userID, avatarURL, nickname string) (Payload, error) {
	return c.call(ctx, "/user/update", createUserParams{
		UserID:    userID,
		AvatarURL: avatarURL,
		Nickname:  nickname,
	}, nil)
}

// UserAttributes lists the attribute definitions of the bot. filter may be nil.
func (c *Client) UserAttributes(ctx context.Context, page, pageSize int, filter *UserAttributeFilter) (*UserAttributes, error) {
	var out UserAttributes
	params := userAttributesParams{Page: page, PageSize: pageSize, Filter: filter}
	if _, err := c.call(ctx, "/user-attribute/list", params, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UserUserAttribute returns the attribute values set on a user.
func (c *Client) UserUserAttribute(ctx context.Context, userID string) (*UserUserAttribute, error) {
	var out UserUserAttribute
	if _, err := c.call(ctx, "/user/user-attribute/get", userIDParams{UserID: userID}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) CreateUserUserAttribute(ctx context.Context, userID string, values []UserAttributeAssignment) (Payload, error) {
	return c.call(ctx, "/user/user-attribute/create", createUserUserAttributeParams{
		UserID:                          userID,
		UserAttributeUserAttributeValue: values,
	}, nil)
}
