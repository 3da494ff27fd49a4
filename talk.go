package wulai

import (
	"context"
	"fmt"
)

// History directions for GetMessageHistory.
const (
	DirectionBackward = "BACKWARD"
	DirectionForward  = "FORWARD"
)

type botResponseParams struct {
	UserID  string  `json:"user_id" validate:"required,max=128"`
	MsgBody MsgBody `json:"msg_body"`
	Extra   string  `json:"extra" validate:"max=1024"`
}

type historyParams struct {
	UserID    string `json:"user_id" validate:"required,max=128"`
	MsgID     string `json:"msg_id,omitzero"`
	Direction string `json:"direction" validate:"oneof=BACKWARD FORWARD"`
	Num       int    `json:"num" validate:"min=1,max=50"`
}

type receiveMessageParams struct {
	UserID     string  `json:"user_id" validate:"required,max=128"`
	MsgBody    MsgBody `json:"msg_body"`
	ThirdMsgID string  `json:"third_msg_id,omitzero"`
	Extra      string  `json:"extra" validate:"max=1024"`
}

type syncMessageParams struct {
	UserID  string  `json:"user_id" validate:"required,max=128"`
	MsgBody MsgBody `json:"msg_body"`
	MsgTS   string  `json:"msg_ts" validate:"required"`
	Extra   string  `json:"extra" validate:"max=1024"`
}

type userSuggestionParams struct {
	UserID string `json:"user_id" validate:"required,max=128"`
	Query  string `json:"query" validate:"required,max=1024"`
}

func checkMsgBody(body MsgBody) error {
	if body.Kind() == "" && len(body.Unknown) == 0 {
		return newError(CodeInvalidParams, "msg_body must not be empty")
	}

	return nil
}

// GetBotResponse asks every bot of the platform for suggested replies to
// msgBody, ordered by confidence.
func (c *Client) GetBotResponse(ctx context.Context, userID string, msgBody MsgBody, extra string) (*BotResponse, error) {
	var out BotResponse
	if err := c.botResponse(ctx, "/msg/bot-response", userID, msgBody, extra, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) GetKeywordBotResponse(ctx context.Context, userID string, msgBody MsgBody, extra string) (*KeywordBotResponse, error) {
	var out KeywordBotResponse
	if err := c.botResponse(ctx, "/msg/bot-response/keyword", userID, msgBody, extra, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) GetQABotResponse(ctx context.Context, userID string, msgBody MsgBody, extra string) (*QABotResponse, error) {
	var out QABotResponse
	if err := c.botResponse(ctx, "/msg/bot-response/qa", userID, msgBody, extra, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) GetTaskBotResponse(ctx context.Context, userID string, msgBody MsgBody, extra string) (*TaskBotResponse, error) {
	var out TaskBotResponse
	if err := c.botResponse(ctx, "/msg/bot-response/task", userID, msgBody, extra, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) botResponse(ctx context.Context, path, userID string, msgBody MsgBody, extra string, out any) error {
	if err := checkMsgBody(msgBody); err != nil {
		return err
	}

	_, err := c.call(ctx, path, botResponseParams{UserID: userID, MsgBody: msgBody, Extra: extra}, out)
	return err
}

// GetMessageHistory pages through a user's messages starting at msgID, or at
// the latest message when msgID is empty.
func (c *Client) GetMessageHistory(ctx context.Context, userID, msgID, direction string, num int) (*HistoryMessage, error) {
	if direction == "" {
		direction = DirectionBackward
	}

	var out HistoryMessage
	params := historyParams{UserID: userID, MsgID: msgID, Direction: direction, Num: num}
	if _, err := c.call(ctx, "/msg/history", params, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ReceiveMessage hands a message sent by the user to the platform without
// asking for a reply.
func (c *Client) ReceiveMessage(ctx context.Context, userID string, msgBody MsgBody, thirdMsgID, extra string) (*MessageID, error) {
	if err := checkMsgBody(msgBody); err != nil {
		return nil, err
	}

	var out MessageID
	params := receiveMessageParams{UserID: userID, MsgBody: msgBody, ThirdMsgID: thirdMsgID, Extra: extra}
	if _, err := c.call(ctx, "/msg/receive", params, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// SyncMessage records a reply that was delivered to the user outside the
// platform. msgTS is the delivery time in milliseconds.
func (c *Client) SyncMessage(ctx context.Context, userID string, msgBody MsgBody, msgTS int64, extra string) (*MessageID, error) {
	if err := checkMsgBody(msgBody); err != nil {
		return nil, err
	}

	var out MessageID
	params := syncMessageParams{UserID: userID, MsgBody: msgBody, MsgTS: fmt.Sprint(msgTS), Extra: extra}
	if _, err := c.call(ctx, "/msg/sync", params, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) GetUserSuggestion(ctx context.Context, userID, query string) (*UserSuggestions, error) {
	var out UserSuggestions
	if _, err := c.call(ctx, "/msg/user-suggestion/get", userSuggestionParams{UserID: userID, Query: query}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
