package wulai

// Bot source kinds, in the order they are probed when decoding.
const (
	BotSourceQA       = "qa"
	BotSourceChitChat = "chitchat"
	BotSourceTask     = "task"
	BotSourceKeyword  = "keyword"
)

type QA struct {
	KnowledgeID      int    `json:"knowledge_id"`
	StandardQuestion string `json:"standard_question"`
	Question         string `json:"question"`
}

type ChitChat struct {
	Corpus string `json:"corpus"`
}

// TaskEntity is an entity filled while running a task flow.
type TaskEntity struct {
	IdxEnd   int    `json:"idx_end"`
	Name     string `json:"name"`
	IdxStart int    `json:"idx_start"`
	Value    string `json:"value"`
	SegValue string `json:"seg_value"`
	Type     string `json:"type"`
	Desc     string `json:"desc"`
}

type Task struct {
	BlockType string       `json:"block_type"`
	BlockID   int          `json:"block_id"`
	TaskID    int          `json:"task_id"`
	BlockName string       `json:"block_name"`
	Entities  []TaskEntity `json:"entities"`
	TaskName  string       `json:"task_name"`
	RobotID   int          `json:"robot_id"`
}

type Keyword struct {
	KeywordID int    `json:"keyword_id"`
	Keyword   string `json:"keyword"`
}

// BotSource records which bot produced a suggested response. It is a one-of
// over QA, ChitChat, Task and Keyword with an Unknown fallback.
type BotSource struct {
	QA       *QA
	ChitChat *ChitChat
	Task     *Task
	Keyword  *Keyword

	Unknown map[string]any
}

func (s *BotSource) cases() []variantCase {
	return []variantCase{
		{BotSourceQA, &s.QA},
		{BotSourceChitChat, &s.ChitChat},
		{BotSourceTask, &s.Task},
		{BotSourceKeyword, &s.Keyword},
	}
}

// Kind returns the key of the set case, or "" for an unknown source.
func (s BotSource) Kind() string {
	return variantKind(s.cases())
}

func (s BotSource) MarshalJSON() ([]byte, error) {
	return encodeVariant(s.cases(), s.Unknown)
}

func (s *BotSource) UnmarshalJSON(data []byte) error {
	*s = BotSource{}

	unknown, err := decodeVariant(data, s.cases())
	if err != nil {
		return err
	}
	s.Unknown = unknown

	return nil
}

type SimilarResponse struct {
	URL    string    `json:"url"`
	Source string    `json:"source"`
	Detail BotSource `json:"detail"`
}

// Response is a single reply message.
type Response struct {
	MsgBody         MsgBody           `json:"msg_body"`
	SimilarResponse []SimilarResponse `json:"similar_response"`
	EnableEvaluate  bool              `json:"enable_evaluate"`
	DelayTS         int               `json:"delay_ts"`
}

type SuggestedResponse struct {
	IsSend     bool       `json:"is_send"`
	Bot        BotSource  `json:"bot"`
	Source     string     `json:"source"`
	Score      float64    `json:"score"`
	Response   []Response `json:"response"`
	QuickReply []string   `json:"quick_reply"`
}

type BotResponse struct {
	IsDispatch        bool                `json:"is_dispatch"`
	SuggestedResponse []SuggestedResponse `json:"suggested_response"`
	MsgID             string              `json:"msg_id"`
	Extra             string              `json:"extra"`
}

type KeywordSuggestedResponse struct {
	IsSend     bool       `json:"is_send"`
	Score      float64    `json:"score"`
	Response   []Response `json:"response"`
	Keyword    Keyword    `json:"keyword"`
	QuickReply []string   `json:"quick_reply"`
}

type KeywordBotResponse struct {
	IsDispatch               bool                       `json:"is_dispatch"`
	MsgID                    string                     `json:"msg_id"`
	KeywordSuggestedResponse []KeywordSuggestedResponse `json:"keyword_suggested_response"`
	Extra                    string                     `json:"extra"`
}

type QASuggestedResponse struct {
	QA         QA         `json:"qa"`
	IsSend     bool       `json:"is_send"`
	Score      float64    `json:"score"`
	Response   []Response `json:"response"`
	QuickReply []string   `json:"quick_reply"`
}

type QABotResponse struct {
	IsDispatch          bool                  `json:"is_dispatch"`
	MsgID               string                `json:"msg_id"`
	QASuggestedResponse []QASuggestedResponse `json:"qa_suggested_response"`
	Extra               string                `json:"extra"`
}

type TaskSuggestedResponse struct {
	Score      float64    `json:"score"`
	IsSend     bool       `json:"is_send"`
	Task       Task       `json:"task"`
	Response   []Response `json:"response"`
	QuickReply []string   `json:"quick_reply"`
}

type TaskBotResponse struct {
	IsDispatch            bool                    `json:"is_dispatch"`
	MsgID                 string                  `json:"msg_id"`
	TaskSuggestedResponse []TaskSuggestedResponse `json:"task_suggested_response"`
	Extra                 string                  `json:"extra"`
}

type SenderInfo struct {
	AvatarURL string `json:"avatar_url"`
	Nickname  string `json:"nickname"`
	RealName  string `json:"real_name"`
}

type UserInfo struct {
	AvatarURL string `json:"avatar_url"`
	Nickname  string `json:"nickname"`
}

// Msg is one entry of a user's message history.
type Msg struct {
	Direction  string     `json:"direction"`
	SenderInfo SenderInfo `json:"sender_info"`
	MsgType    string     `json:"msg_type"`
	Extra      string     `json:"extra"`
	MsgID      string     `json:"msg_id"`
	MsgTS      string     `json:"msg_ts"`
	UserInfo   UserInfo   `json:"user_info"`
	MsgBody    MsgBody    `json:"msg_body"`
}

type HistoryMessage struct {
	Msg     []Msg `json:"msg"`
	HasMore bool  `json:"has_more"`
}

// MessageID is returned by the receive, sync and send message calls.
type MessageID struct {
	MsgID string `json:"msg_id"`
}

type UserSuggestion struct {
	Suggestion string `json:"suggestion"`
}

type UserSuggestions struct {
	UserSuggestions []UserSuggestion `json:"user_suggestions"`
}
