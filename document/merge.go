package document

import (
	"fmt"
	"reflect"
)

// Merge deep-merges docs in increasing priority and returns a new document.
//
// For every key of a higher-priority document, a mapping merges recursively
// into a mapping of the lower layers; any other value replaces what the
// lower layers hold. Keys absent from a document are inherited unchanged.
// Nil documents are treated as empty.
func Merge(docs ...map[string]any) map[string]any {
	result := map[string]any{}

	for _, doc := range docs {
		mergeInto(result, doc)
	}

	return result
}

func mergeInto(dst, src map[string]any) {
	for key, value := range src {
		srcMap, srcIsMap := value.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)

		if srcIsMap && dstIsMap {
			mergeInto(dstMap, srcMap)

			continue
		}

		dst[key] = Clone(value)
	}
}

// Clone returns a deep copy of value. Mappings and arrays are copied
// recursively; scalars are returned as is.
func Clone(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return CloneMap(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = Clone(item)
		}

		return out
	default:
		return normalizeReflect(value)
	}
}

// CloneMap returns a deep copy of doc. A nil doc yields an empty document.
func CloneMap(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for key, value := range doc {
		out[key] = Clone(value)
	}

	return out
}

// Normalize converts any value into document form and returns a copy
// sharing no maps or slices with value. Mappings of any type become
// map[string]any keyed by the printed key, slices and arrays other than
// []byte become []any, and pointers are followed. Other values are kept.
func Normalize(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = Normalize(item)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[fmt.Sprint(key)] = Normalize(item)
		}

		return out
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = Normalize(item)
		}

		return out
	case []map[string]any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = Normalize(item)
		}

		return out
	default:
		return normalizeReflect(value)
	}
}

func normalizeReflect(value any) any {
	if value == nil {
		return nil
	}

	if raw, isBytes := value.([]byte); isBytes {
		return append([]byte(nil), raw...)
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}

		out := make(map[string]any, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = Normalize(iter.Value().Interface())
		}

		return out
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}

		out := make([]any, rv.Len())
		for i := range rv.Len() {
			out[i] = Normalize(rv.Index(i).Interface())
		}

		return out
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}

		return Normalize(rv.Elem().Interface())
	default:
		return value
	}
}
