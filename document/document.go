package document

import (
	"strconv"
	"strings"
)

// Split converts a dotted key path into its non-empty segments.
// It returns nil for an empty or whitespace-only key path.
func Split(key string) []string {
	if strings.TrimSpace(key) == "" {
		return nil
	}

	parts := strings.Split(key, ".")
	segments := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}

	return segments
}

// IsRoot reports whether key addresses the document root.
func IsRoot(key string) bool {
	return len(Split(key)) == 0
}

// Get returns the value at key within doc.
// The second result is false when any segment along the path is absent.
func Get(doc map[string]any, key string) (any, bool) {
	var current any = doc

	for _, segment := range Split(key) {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, false
			}

			current = value
		case []any:
			index, ok := sliceIndex(node, segment)
			if !ok {
				return nil, false
			}

			current = node[index]
		default:
			return nil, false
		}
	}

	return current, true
}

// Set stores value at key within doc, creating intermediate mappings as needed.
// Intermediate values that are neither mappings nor in-range arrays are replaced.
// Setting the root is not possible through Set; callers replace the document instead.
func Set(doc map[string]any, key string, value any) {
	segments := Split(key)
	if len(segments) == 0 {
		return
	}

	setIn(doc, segments, value)
}

func setIn(node map[string]any, segments []string, value any) {
	head := segments[0]

	if len(segments) == 1 {
		node[head] = value

		return
	}

	switch child := node[head].(type) {
	case map[string]any:
		setIn(child, segments[1:], value)
	case []any:
		if setInSlice(child, segments[1:], value) {
			return
		}

		replacement := map[string]any{}
		node[head] = replacement
		setIn(replacement, segments[1:], value)
	default:
		replacement := map[string]any{}
		node[head] = replacement
		setIn(replacement, segments[1:], value)
	}
}

func setInSlice(node []any, segments []string, value any) bool {
	index, ok := sliceIndex(node, segments[0])
	if !ok {
		return false
	}

	if len(segments) == 1 {
		node[index] = value

		return true
	}

	child, isMap := node[index].(map[string]any)
	if !isMap {
		child = map[string]any{}
		node[index] = child
	}

	setIn(child, segments[1:], value)

	return true
}

// Delete removes the value at key from doc.
// It reports whether a value was removed; a missing path is a no-op.
func Delete(doc map[string]any, key string) bool {
	segments := Split(key)
	if len(segments) == 0 {
		return false
	}

	parent, ok := Get(doc, strings.Join(segments[:len(segments)-1], "."))
	if !ok {
		return false
	}

	last := segments[len(segments)-1]

	switch node := parent.(type) {
	case map[string]any:
		if _, exists := node[last]; !exists {
			return false
		}

		delete(node, last)

		return true
	case []any:
		index, ok := sliceIndex(node, last)
		if !ok {
			return false
		}

		node[index] = nil

		return true
	default:
		return false
	}
}

func sliceIndex(node []any, segment string) (int, bool) {
	index, err := strconv.Atoi(segment)
	if err != nil || index < 0 || index >= len(node) {
		return 0, false
	}

	return index, true
}
