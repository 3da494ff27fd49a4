package wulai

// NLP entity kinds, in the order they are probed when decoding.
const (
	EntityEnumeration = "enumeration_entity"
	EntityRegex       = "regex_entity"
	EntitySystem      = "system_entity"
)

type EnumerationEntity struct {
	Text          string   `json:"text"`
	Synonyms      []string `json:"synonyms"`
	StandardValue string   `json:"standard_value"`
	Name          string   `json:"name"`
}

type RegexEntity struct {
	Text string `json:"text"`
	Name string `json:"name"`
}

type SystemEntity struct {
	Text          string `json:"text"`
	StandardValue string `json:"standard_value"`
	Name          string `json:"name"`
}

// NLPEntity is a one-of over the extracted entity kinds with an Unknown
// fallback.
type NLPEntity struct {
	Enumeration *EnumerationEntity
	Regex       *RegexEntity
	System      *SystemEntity

	Unknown map[string]any
}

func (e *NLPEntity) cases() []variantCase {
	return []variantCase{
		{EntityEnumeration, &e.Enumeration},
		{EntityRegex, &e.Regex},
		{EntitySystem, &e.System},
	}
}

// Kind returns the key of the set case, or "" for an unknown entity.
func (e NLPEntity) Kind() string {
	return variantKind(e.cases())
}

func (e NLPEntity) MarshalJSON() ([]byte, error) {
	return encodeVariant(e.cases(), e.Unknown)
}

func (e *NLPEntity) UnmarshalJSON(data []byte) error {
	*e = NLPEntity{}

	unknown, err := decodeVariant(data, e.cases())
	if err != nil {
		return err
	}
	e.Unknown = unknown

	return nil
}

type EntityElement struct {
	Type     string    `json:"type"`
	IdxStart int       `json:"idx_start"`
	Entity   NLPEntity `json:"entity"`
}

type EntityExtract struct {
	Entities []EntityElement `json:"entities"`
}

type Token struct {
	Text     string `json:"text"`
	Pos      string `json:"pos"`
	IdxStart int    `json:"idx_start"`
}

type Tokenize struct {
	Tokens []Token `json:"tokens"`
}
