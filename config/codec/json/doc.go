// Package json provides the plain layer format for the config package.
//
// Documents are written as two-space indented JSON. encoding/json orders
// mapping keys, so repeated writes of the same document are byte-identical.
// Empty or whitespace-only input decodes to an empty document.
package json
