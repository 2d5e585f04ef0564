// Package yaml provides the relaxed layer format for the config package.
//
// This package uses github.com/goccy/go-yaml. Decoding accepts block YAML,
// '#' comments and JSON-style flow mappings, so hand-edited files and plain
// JSON files both load. Encoding emits block YAML with mapping keys sorted
// at every level, which keeps rewritten files stable and diffable.
//
// Usage:
//
//	codec := yaml.NewCodec()
//	doc, err := codec.Decode([]byte("server:\n  port: 8080 # default\n"))
//	data, err := codec.Encode(doc)
//
// Empty or comment-only input decodes to an empty document. A top-level
// value that is not a mapping is rejected with ErrNotMapping.
package yaml
