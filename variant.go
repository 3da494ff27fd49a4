package wulai

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// variantCase binds a wire key of a one-of object to the pointer field that
// holds that case. field is a pointer to that pointer field, e.g. **Text.
type variantCase struct {
	tag   string
	field any
}

// decodeVariant decodes data into the first case, in declaration order,
// whose tag is present. When no tag matches, the whole object is returned
// as the unknown fallback and no case is set.
func decodeVariant(data []byte, cases []variantCase) (map[string]any, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, nil
	}

	var raw map[string]jsontext.Value
	if err := json.Unmarshal(data, &raw, decodeOptions); err != nil {
		return nil, err
	}

	for _, c := range cases {
		value, ok := raw[c.tag]
		if !ok {
			continue
		}

		if err := json.Unmarshal(value, c.field, decodeOptions); err != nil {
			return nil, fmt.Errorf("failed to decode %q: %w", c.tag, err)
		}

		// A null case value still selects the case.
		slot := reflect.ValueOf(c.field).Elem()
		if slot.IsNil() {
			slot.Set(reflect.New(slot.Type().Elem()))
		}

		return nil, nil
	}

	var unknown map[string]any
	if err := json.Unmarshal(data, &unknown, decodeOptions); err != nil {
		return nil, err
	}

	return unknown, nil
}

func encodeVariant(cases []variantCase, unknown map[string]any) ([]byte, error) {
	for _, c := range cases {
		slot := reflect.ValueOf(c.field).Elem()
		if !slot.IsNil() {
			return json.Marshal(map[string]any{c.tag: slot.Interface()})
		}
	}

	if unknown == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(unknown)
}

func variantKind(cases []variantCase) string {
	for _, c := range cases {
		if !reflect.ValueOf(c.field).Elem().IsNil() {
			return c.tag
		}
	}

	return ""
}
