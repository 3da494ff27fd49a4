package wulai

import (
	"fmt"
	"strconv"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// decodeOptions apply to every decode of server data. Integers held in
// untyped values stay exact, and a repeated member name keeps its last value.
var decodeOptions = json.JoinOptions(
	json.WithUnmarshalers(json.UnmarshalFromFunc(unmarshalExactNumber)),
	jsontext.AllowDuplicateNames(true),
	jsontext.AllowInvalidUTF8(true),
)

// unmarshalExactNumber decodes a JSON integer stored in an any as int64, or
// as uint64 past the int64 range. Other numbers become float64 and every
// other kind falls through to the default decoding.
func unmarshalExactNumber(dec *jsontext.Decoder, v *any) error {
	if dec.PeekKind() != '0' {
		return json.SkipFunc
	}

	tok, err := dec.ReadToken()
	if err != nil {
		return err
	}

	lit := tok.String()

	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		*v = i
		return nil
	}

	if u, err := strconv.ParseUint(lit, 10, 64); err == nil {
		*v = u
		return nil
	}

	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return err
	}

	*v = f

	return nil
}

// Decode converts a payload into a new value of type T. Fields are matched
// by their json tag; nested records, lists and one-of variants are decoded
// recursively. Missing fields keep their zero value. The payload is not
// modified.
func Decode[T any](p Payload) (*T, error) {
	var out T
	if err := DecodeInto(p, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DecodeInto is the non-generic form of [Decode]; out must be a pointer.
func DecodeInto(p Payload, out any) error {
	if p == nil {
		p = Payload{}
	}

	data, err := json.Marshal(map[string]any(p))
	if err != nil {
		return wrapError(CodeResponseDecode, err, "failed to encode payload")
	}

	if err := json.Unmarshal(data, out, decodeOptions); err != nil {
		return wrapError(CodeResponseDecode, err, "failed to decode payload into %T", out)
	}

	return nil
}

// Export is the inverse of [Decode]: it converts a model value (or a map)
// back into a payload holding plain JSON values. Integers come back as int64
// (uint64 past its range) like they do in decoded responses.
func Export(v any) (Payload, error) {
	if v == nil {
		return Payload{}, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %T: %w", v, err)
	}

	var p Payload
	if err := json.Unmarshal(data, &p, decodeOptions); err != nil {
		return nil, fmt.Errorf("%T does not encode to a JSON object: %w", v, err)
	}

	if p == nil {
		p = Payload{}
	}

	return p, nil
}
