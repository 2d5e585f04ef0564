package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotMapping is returned when the top-level value of the document is not an object.
var ErrNotMapping = errors.New("top-level value is not an object")

// Codec converts documents to and from JSON.
type Codec struct{}

// NewCodec creates a new JSON codec instance.
func NewCodec() *Codec {
	return &Codec{}
}

// Decode parses JSON data into a document.
func (c *Codec) Decode(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var raw any

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if raw == nil {
		return map[string]any{}, nil
	}

	doc, isObject := raw.(map[string]any)
	if !isObject {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, raw)
	}

	return doc, nil
}

// Encode renders doc as indented JSON terminated by a newline.
func (c *Codec) Encode(doc map[string]any) ([]byte, error) {
	if doc == nil {
		doc = map[string]any{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return append(data, '\n'), nil
}
