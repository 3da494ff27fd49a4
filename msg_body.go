package wulai

// Message body kinds, in the order they are probed when decoding.
const (
	MsgBodyText      = "text"
	MsgBodyImage     = "image"
	MsgBodyCustom    = "custom"
	MsgBodyVideo     = "video"
	MsgBodyFile      = "file"
	MsgBodyVoice     = "voice"
	MsgBodyShareLink = "share_link"
	MsgBodyRichText  = "rich_text"
	MsgBodyEvent     = "event"
)

type Text struct {
	Content string `json:"content"`
}

type Image struct {
	ResourceURL string `json:"resource_url"`
}

type Custom struct {
	Content string `json:"content"`
}

type Video struct {
	ResourceURL string `json:"resource_url"`
	Thumb       string `json:"thumb"`
	Description string `json:"description"`
	Title       string `json:"title"`
}

type File struct {
	FileName    string `json:"file_name"`
	ResourceURL string `json:"resource_url"`
}

type Voice struct {
	ResourceURL string `json:"resource_url"`
	Type        string `json:"type"`
	Recognition string `json:"recognition"`
}

type ShareLink struct {
	Description    string `json:"description"`
	DestinationURL string `json:"destination_url"`
	CoverURL       string `json:"cover_url"`
	Title          string `json:"title"`
}

type RichText struct {
	ResourceURL string `json:"resource_url"`
}

type Event struct {
	Fields    map[string]any `json:"fields"`
	EventType string         `json:"event_type"`
}

// MsgBody is a message body. Exactly one of the typed fields is set after
// decoding; when the body carries none of the known keys, all of its keys
// are kept in Unknown instead.
type MsgBody struct {
	Text      *Text
	Image     *Image
	Custom    *Custom
	Video     *Video
	File      *File
	Voice     *Voice
	ShareLink *ShareLink
	RichText  *RichText
	Event     *Event

	Unknown map[string]any
}

// TextBody returns a text message body.
func TextBody(content string) MsgBody {
	return MsgBody{Text: &Text{Content: content}}
}

func (b *MsgBody) cases() []variantCase {
	return []variantCase{
		{MsgBodyText, &b.Text},
		{MsgBodyImage, &b.Image},
		{MsgBodyCustom, &b.Custom},
		{MsgBodyVideo, &b.Video},
		{MsgBodyFile, &b.File},
		{MsgBodyVoice, &b.Voice},
		{MsgBodyShareLink, &b.ShareLink},
		{MsgBodyRichText, &b.RichText},
		{MsgBodyEvent, &b.Event},
	}
}

// Kind returns the key of the set case, or "" for an unknown body.
func (b MsgBody) Kind() string {
	return variantKind(b.cases())
}

func (b MsgBody) MarshalJSON() ([]byte, error) {
	return encodeVariant(b.cases(), b.Unknown)
}

func (b *MsgBody) UnmarshalJSON(data []byte) error {
	*b = MsgBody{}

	unknown, err := decodeVariant(data, b.cases())
	if err != nil {
		return err
	}
	b.Unknown = unknown

	return nil
}
