package yaml

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/0xalexb/aio-config/document"

	"github.com/goccy/go-yaml"
)

// ErrNotMapping is returned when the top-level value of the document is not a mapping.
var ErrNotMapping = errors.New("top-level value is not a mapping")

// Codec converts documents to and from YAML.
type Codec struct{}

// NewCodec creates a new YAML codec instance.
func NewCodec() *Codec {
	return &Codec{}
}

// Decode parses YAML data into a document.
func (c *Codec) Decode(data []byte) (map[string]any, error) {
	var raw any

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if raw == nil {
		return map[string]any{}, nil
	}

	doc, isMapping := document.Normalize(raw).(map[string]any)
	if !isMapping {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, raw)
	}

	return doc, nil
}

// Encode renders doc as block YAML with sorted keys.
func (c *Codec) Encode(doc map[string]any) ([]byte, error) {
	data, err := yaml.Marshal(sorted(doc))
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

// sorted converts mappings into yaml.MapSlice ordered by key.
func sorted(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		if len(typed) == 0 {
			return map[string]any{}
		}

		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		slice := make(yaml.MapSlice, 0, len(keys))
		for _, key := range keys {
			slice = append(slice, yaml.MapItem{Key: key, Value: sorted(typed[key])})
		}

		return slice
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = sorted(item)
		}

		return out
	case string:
		if needsQuoting(typed) {
			return quoted(typed)
		}

		return typed
	default:
		return value
	}
}

// quoted is a string the encoder must write as a double-quoted scalar.
type quoted string

// MarshalYAML implements yaml.BytesMarshaler.
func (q quoted) MarshalYAML() ([]byte, error) {
	return []byte(strconv.Quote(string(q))), nil
}

// needsQuoting reports whether a plain or literal scalar would lose part of s:
// surrounding whitespace is trimmed and control characters other than
// newline are folded.
func needsQuoting(s string) bool {
	if s != strings.TrimSpace(s) {
		return true
	}

	return strings.ContainsFunc(s, func(r rune) bool {
		return r != '\n' && unicode.IsControl(r)
	})
}
