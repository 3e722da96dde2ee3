package document

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/tidwall/jsonc"

	"github.com/sqwxl/jx/errors"
)

// Parse reads a single JSON document from r and returns its value tree.
// Comments and trailing commas (JSONC) are accepted and stripped before
// decoding. Object member order is preserved.
func Parse(r io.Reader) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.ParseFailed(err)
	}
	return ParseBytes(data)
}

// ParseBytes parses a single JSON document from data.
func ParseBytes(data []byte) (*Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.InputEmpty()
	}

	// The standard decoder drops object member order, so the tree is built
	// from the token stream instead of an intermediate map.
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, errors.ParseFailed(err)
	}

	// Reject trailing garbage after the first document.
	if dec.More() {
		return nil, errors.New(errors.ErrCodeParseFailed, "unexpected data after top-level value")
	}

	return v, nil
}

func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, &json.SyntaxError{}
	case string:
		return &Value{Kind: KindString, Str: t}, nil
	case json.Number:
		return &Value{Kind: KindNumber, Number: t.String()}, nil
	case bool:
		return &Value{Kind: KindBool, Bool: t}, nil
	case nil:
		return &Value{Kind: KindNull}, nil
	}
	return nil, &json.SyntaxError{}
}

func decodeObject(dec *json.Decoder) (*Value, error) {
	v := &Value{Kind: KindObject}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, &json.SyntaxError{}
		}
		member, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		v.Keys = append(v.Keys, key)
		v.Members = append(v.Members, member)
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeArray(dec *json.Decoder) (*Value, error) {
	v := &Value{Kind: KindArray}
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		v.Items = append(v.Items, item)
	}
	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return v, nil
}
