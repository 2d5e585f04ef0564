// Package envvar maps environment variables named AIO_<PATH> onto
// configuration key paths.
//
// After the prefix, a single underscore separates nested keys and a double
// underscore stands for a literal underscore inside a key. Keys are lower
// cased and values are kept as strings:
//
//	AIO_PGB_AUTH__TOKEN=12  ->  pgb.auth_token = "12"
//
// Runs of three or more underscores are consumed left to right, two at a
// time, so AIO_A___B decodes to a_.b and AIO_A____B decodes to a__b.
// A '.' in the name, possible for variables set from a .env file, also
// separates keys: AIO_A.B decodes to a.b.
package envvar

import (
	"sort"
	"strings"
)

// Prefix marks environment variables that carry configuration values.
const Prefix = "AIO_"

// DecodeName returns the key path segments encoded in name.
// The second result is false if name does not carry a configuration key.
func DecodeName(name string) ([]string, bool) {
	rest, found := strings.CutPrefix(name, Prefix)
	if !found || rest == "" {
		return nil, false
	}

	var (
		segments []string
		current  strings.Builder
	)

	for i := 0; i < len(rest); i++ {
		if rest[i] != '_' {
			current.WriteByte(rest[i])

			continue
		}

		if i+1 < len(rest) && rest[i+1] == '_' {
			current.WriteByte('_')
			i++

			continue
		}

		segments = appendSegment(segments, current.String())
		current.Reset()
	}

	segments = appendSegment(segments, current.String())

	if len(segments) == 0 {
		return nil, false
	}

	return segments, true
}

// appendSegment also splits on '.', so every decoded key is reachable
// through a dotted key path.
func appendSegment(segments []string, segment string) []string {
	for _, part := range strings.Split(segment, ".") {
		if part != "" {
			segments = append(segments, strings.ToLower(part))
		}
	}

	return segments
}

// Key returns the dotted key path encoded in name.
func Key(name string) (string, bool) {
	segments, ok := DecodeName(name)
	if !ok {
		return "", false
	}

	return strings.Join(segments, "."), true
}

// Map builds a document from every configuration variable in env.
// Variables are applied in name order, so a nested key replaces a scalar
// decoded from a shorter name.
func Map(env map[string]string) map[string]any {
	names := make([]string, 0, len(env))

	for name := range env {
		if strings.HasPrefix(name, Prefix) {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	doc := map[string]any{}

	for _, name := range names {
		segments, ok := DecodeName(name)
		if !ok {
			continue
		}

		setPath(doc, segments, env[name])
	}

	return doc
}

func setPath(doc map[string]any, segments []string, value string) {
	node := doc

	for _, segment := range segments[:len(segments)-1] {
		child, ok := node[segment].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[segment] = child
		}

		node = child
	}

	node[segments[len(segments)-1]] = value
}
