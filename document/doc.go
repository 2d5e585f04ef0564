// Package document implements addressing and merging of hierarchical
// key/value documents.
//
// A document is a map[string]any whose values are nested map[string]any,
// []any or scalars. Values are addressed by a key path, a dot-delimited
// string such as "server.tls.cert". Empty segments are dropped, so an
// empty or whitespace-only key path addresses the document root.
//
// Merge is pure: it never mutates its inputs and the result shares no
// maps or slices with them.
package document
