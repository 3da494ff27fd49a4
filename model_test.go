package wulai

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func assertRoundTrip[T any](t *testing.T, payload Payload) *T {
	t.Helper()

	v, err := Decode[T](payload)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got, err := Export(v)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if diff := cmp.Diff(payload, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	return v
}

func botResponsePayload() Payload {
	return Payload{
		"is_dispatch": false,
		"msg_id":      "1234",
		"extra":       "",
		"suggested_response": []any{
			map[string]any{
				"is_send": true,
				"source":  "QA_BOT",
				"score":   0.92,
				"bot": map[string]any{
					"qa": map[string]any{
						"knowledge_id":      int64(1),
						"standard_question": "hi",
						"question":          "hello",
					},
				},
				"response": []any{
					map[string]any{
						"msg_body": map[string]any{
							"text": map[string]any{"content": "hello there"},
						},
						"similar_response": []any{
							map[string]any{
								"url":    "",
								"source": "CHITCHAT_BOT",
								"detail": map[string]any{
									"chitchat": map[string]any{"corpus": "SYSTEM"},
								},
							},
						},
						"enable_evaluate": false,
						"delay_ts":        int64(0),
					},
				},
				"quick_reply": []any{"yes", "no"},
			},
		},
	}
}

// A nested bot response decodes into typed variants and exports back to the
// same payload.
func TestDecode_BotResponse(t *testing.T) {
	t.Parallel()

	resp := assertRoundTrip[BotResponse](t, botResponsePayload())

	if len(resp.SuggestedResponse) != 1 {
		t.Fatalf("len(SuggestedResponse) = %d, want 1", len(resp.SuggestedResponse))
	}

	suggested := resp.SuggestedResponse[0]

	if got := suggested.Bot.Kind(); got != BotSourceQA {
		t.Errorf("Bot.Kind() = %q, want %q", got, BotSourceQA)
	}

	if suggested.Bot.QA == nil || suggested.Bot.QA.KnowledgeID != 1 {
		t.Errorf("Bot.QA = %+v, want knowledge id 1", suggested.Bot.QA)
	}

	if suggested.Score != 0.92 {
		t.Errorf("Score = %v, want 0.92", suggested.Score)
	}

	body := suggested.Response[0].MsgBody
	if body.Text == nil || body.Text.Content != "hello there" {
		t.Errorf("MsgBody.Text = %+v, want content %q", body.Text, "hello there")
	}

	detail := suggested.Response[0].SimilarResponse[0].Detail
	if detail.ChitChat == nil || detail.ChitChat.Corpus != "SYSTEM" {
		t.Errorf("Detail.ChitChat = %+v, want corpus SYSTEM", detail.ChitChat)
	}
}

func TestDecode_DoesNotMutatePayload(t *testing.T) {
	t.Parallel()

	payload := botResponsePayload()

	if _, err := Decode[BotResponse](payload); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if diff := cmp.Diff(botResponsePayload(), payload); diff != "" {
		t.Errorf("payload mutated (-want +got):\n%s", diff)
	}
}

func TestDecode_UnknownVariantCase(t *testing.T) {
	t.Parallel()

	payload := Payload{
		"is_send":     false,
		"source":      "NEW_BOT",
		"score":       0.5,
		"bot":         map[string]any{"future_bot": map[string]any{"x": int64(1)}},
		"response":    []any{},
		"quick_reply": []any{},
	}

	resp := assertRoundTrip[SuggestedResponse](t, payload)

	if got := resp.Bot.Kind(); got != "" {
		t.Errorf("Bot.Kind() = %q, want empty", got)
	}

	want := map[string]any{"future_bot": map[string]any{"x": int64(1)}}
	if diff := cmp.Diff(want, resp.Bot.Unknown); diff != "" {
		t.Errorf("Bot.Unknown mismatch (-want +got):\n%s", diff)
	}
}

func TestMsgBody_Variants(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		body     map[string]any
		wantKind string
		want     MsgBody
	}{
		"text": {
			body:     map[string]any{"text": map[string]any{"content": "hi"}},
			wantKind: MsgBodyText,
			want:     MsgBody{Text: &Text{Content: "hi"}},
		},
		"share link": {
			body: map[string]any{"share_link": map[string]any{
				"description": "d", "destination_url": "u", "cover_url": "c", "title": "t",
			}},
			wantKind: MsgBodyShareLink,
			want:     MsgBody{ShareLink: &ShareLink{Description: "d", DestinationURL: "u", CoverURL: "c", Title: "t"}},
		},
		"first declared case wins": {
			body: map[string]any{
				"image": map[string]any{"resource_url": "img"},
				"text":  map[string]any{"content": "hi"},
			},
			wantKind: MsgBodyText,
			want:     MsgBody{Text: &Text{Content: "hi"}},
		},
		"null case value": {
			body:     map[string]any{"voice": nil},
			wantKind: MsgBodyVoice,
			want:     MsgBody{Voice: &Voice{}},
		},
		"unknown": {
			body:     map[string]any{"sticker": map[string]any{"id": "s1"}},
			wantKind: "",
			want:     MsgBody{Unknown: map[string]any{"sticker": map[string]any{"id": "s1"}}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			msg, err := Decode[Response](Payload{"msg_body": tt.body})
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			if got := msg.MsgBody.Kind(); got != tt.wantKind {
				t.Errorf("Kind() = %q, want %q", got, tt.wantKind)
			}

			if diff := cmp.Diff(tt.want, msg.MsgBody); diff != "" {
				t.Errorf("MsgBody mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMsgBody_Export(t *testing.T) {
	t.Parallel()

	got, err := Export(TextBody("hello"))
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	want := Payload{"text": map[string]any{"content": "hello"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Export() mismatch (-want +got):\n%s", diff)
	}

	got, err = Export(MsgBody{})
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if len(got) != 0 {
		t.Errorf("Export(MsgBody{}) = %v, want empty object", got)
	}
}

func TestDecode_HistoryMessage(t *testing.T) {
	t.Parallel()

	payload := Payload{
		"has_more": true,
		"msg": []any{
			map[string]any{
				"direction":   "TO_USER",
				"msg_type":    "TEXT",
				"extra":       "",
				"msg_id":      "m1",
				"msg_ts":      "1560000000000",
				"sender_info": map[string]any{"avatar_url": "", "nickname": "bot", "real_name": ""},
				"user_info":   map[string]any{"avatar_url": "a", "nickname": "ann"},
				"msg_body": map[string]any{
					"event": map[string]any{"fields": map[string]any{"k": "v"}, "event_type": "ENTER"},
				},
			},
		},
	}

	history := assertRoundTrip[HistoryMessage](t, payload)

	if !history.HasMore {
		t.Error("HasMore = false, want true")
	}

	if got := history.Msg[0].MsgBody.Kind(); got != MsgBodyEvent {
		t.Errorf("Kind() = %q, want %q", got, MsgBodyEvent)
	}
}

func TestDecode_EntityExtract(t *testing.T) {
	t.Parallel()

	payload := Payload{
		"entities": []any{
			map[string]any{
				"type":      "REGEX",
				"idx_start": int64(0),
				"entity":    map[string]any{"regex_entity": map[string]any{"text": "13800000000", "name": "phone"}},
			},
			map[string]any{
				"type":      "ENUMERATION",
				"idx_start": int64(12),
				"entity": map[string]any{"enumeration_entity": map[string]any{
					"text": "bj", "synonyms": []any{"beijing"}, "standard_value": "Beijing", "name": "city",
				}},
			},
			map[string]any{
				"type":      "OTHER",
				"idx_start": int64(20),
				"entity":    map[string]any{"custom_entity": map[string]any{"text": "x"}},
			},
		},
	}

	extract := assertRoundTrip[EntityExtract](t, payload)

	kinds := []string{}
	for _, e := range extract.Entities {
		kinds = append(kinds, e.Entity.Kind())
	}

	if diff := cmp.Diff([]string{EntityRegex, EntityEnumeration, ""}, kinds); diff != "" {
		t.Errorf("entity kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_MissingFieldsAreZero(t *testing.T) {
	t.Parallel()

	resp, err := Decode[BotResponse](Payload{"msg_id": "m1"})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := &BotResponse{MsgID: "m1"}
	if diff := cmp.Diff(want, resp); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_TypeMismatch(t *testing.T) {
	t.Parallel()

	tests := map[string]Payload{
		"scalar for string": {"msg_id": 5.0},
		"scalar for record": {"sender_info": "bob"},
		"list for variant":  {"msg_body": []any{"text"}},
		"scalar in variant": {"msg_body": map[string]any{"text": "hi"}},
		"object for string": {"direction": map[string]any{}},
	}

	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var out Msg
			err := DecodeInto(payload, &out)
			if !errors.Is(err, ErrResponseDecode) {
				t.Errorf("DecodeInto() error = %v, want SDK_RESPONSE_DECODE_ERROR", err)
			}
		})
	}
}

func TestExport_Nil(t *testing.T) {
	t.Parallel()

	got, err := Export(nil)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if got == nil || len(got) != 0 {
		t.Errorf("Export(nil) = %v, want empty payload", got)
	}
}

func textResponse(content string) map[string]any {
	return map[string]any{
		"msg_body":         map[string]any{"text": map[string]any{"content": content}},
		"similar_response": []any{},
		"enable_evaluate":  true,
		"delay_ts":         int64(200),
	}
}

func TestDecode_TaskBotResponse(t *testing.T) {
	t.Parallel()

	payload := Payload{
		"is_dispatch": false,
		"msg_id":      "t1",
		"extra":       "",
		"task_suggested_response": []any{
			map[string]any{
				"score":   0.75,
				"is_send": true,
				"task": map[string]any{
					"block_type": "BLOCK_TYPE_FILL_SLOT",
					"block_id":   int64(7),
					"task_id":    int64(3),
					"block_name": "ask city",
					"task_name":  "weather",
					"robot_id":   int64(9007199254740993),
					"entities": []any{
						map[string]any{
							"idx_end":   int64(2),
							"name":      "city",
							"idx_start": int64(0),
							"value":     "Beijing",
							"seg_value": "bj",
							"type":      "ENUMERATION",
							"desc":      "",
						},
					},
				},
				"response":    []any{textResponse("which city?")},
				"quick_reply": []any{"Beijing", "Shanghai"},
			},
		},
	}

	resp := assertRoundTrip[TaskBotResponse](t, payload)

	task := resp.TaskSuggestedResponse[0].Task
	if task.RobotID != 9007199254740993 {
		t.Errorf("RobotID = %d, want 9007199254740993", task.RobotID)
	}

	if len(task.Entities) != 1 || task.Entities[0].Value != "Beijing" {
		t.Errorf("Entities = %+v, want one Beijing entity", task.Entities)
	}
}

func TestDecode_KeywordBotResponse(t *testing.T) {
	t.Parallel()

	payload := Payload{
		"is_dispatch": true,
		"msg_id":      "k1",
		"extra":       "x",
		"keyword_suggested_response": []any{
			map[string]any{
				"is_send":     false,
				"score":       0.5,
				"response":    []any{textResponse("ten dollars")},
				"keyword":     map[string]any{"keyword_id": int64(42), "keyword": "price"},
				"quick_reply": []any{},
			},
		},
	}

	resp := assertRoundTrip[KeywordBotResponse](t, payload)

	if got := resp.KeywordSuggestedResponse[0].Keyword; got != (Keyword{KeywordID: 42, Keyword: "price"}) {
		t.Errorf("Keyword = %+v, want price/42", got)
	}
}

func TestDecode_QABotResponse(t *testing.T) {
	t.Parallel()

	payload := Payload{
		"is_dispatch": false,
		"msg_id":      "q1",
		"extra":       "",
		"qa_suggested_response": []any{
			map[string]any{
				"qa": map[string]any{
					"knowledge_id":      int64(1234),
					"standard_question": "opening hours",
					"question":          "when do you open",
				},
				"is_send":     true,
				"score":       0.98,
				"response":    []any{textResponse("9 to 5")},
				"quick_reply": []any{"thanks"},
			},
		},
	}

	resp := assertRoundTrip[QABotResponse](t, payload)

	if got := resp.QASuggestedResponse[0].QA.KnowledgeID; got != 1234 {
		t.Errorf("KnowledgeID = %d, want 1234", got)
	}
}

func TestDecode_UserAttributes(t *testing.T) {
	t.Parallel()

	payload := Payload{
		"page_count": int64(2),
		"user_attribute_user_attribute_values": []any{
			map[string]any{
				"user_attribute": map[string]any{
					"name":                        "gender",
					"lifespan":                    int64(0),
					"value_type":                  "FIXED",
					"use_in_user_attribute_group": true,
					"type":                        "USER",
					"id":                          "101",
				},
				"user_attribute_value": []any{
					map[string]any{"id": "1", "name": "male"},
					map[string]any{"id": "2", "name": "female"},
				},
			},
		},
	}

	attrs := assertRoundTrip[UserAttributes](t, payload)

	if got := len(attrs.UserAttributeUserAttributeValues[0].UserAttributeValue); got != 2 {
		t.Errorf("len(UserAttributeValue) = %d, want 2", got)
	}
}

func TestDecode_Tokenize(t *testing.T) {
	t.Parallel()

	payload := Payload{
		"tokens": []any{
			map[string]any{"text": "hello", "pos": "n", "idx_start": int64(0)},
			map[string]any{"text": "world", "pos": "n", "idx_start": int64(6)},
		},
	}

	tokens := assertRoundTrip[Tokenize](t, payload)

	if got := tokens.Tokens[1]; got != (Token{Text: "world", Pos: "n", IdxStart: 6}) {
		t.Errorf("Tokens[1] = %+v, want world at 6", got)
	}
}

func TestDecode_UnknownVariantKeepsIntegers(t *testing.T) {
	t.Parallel()

	resp, err := Decode[SuggestedResponse](Payload{
		"bot": map[string]any{"future_bot": map[string]any{"id": int64(9007199254740993)}},
	})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := map[string]any{"future_bot": map[string]any{"id": int64(9007199254740993)}}
	if diff := cmp.Diff(want, resp.Bot.Unknown); diff != "" {
		t.Errorf("Bot.Unknown mismatch (-want +got):\n%s", diff)
	}
}
