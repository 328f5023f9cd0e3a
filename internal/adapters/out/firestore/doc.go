// internal/adapters/out/firestore/doc.go
package firestore

import "fmt"

// Shared helpers for doc <-> domain mapping.
//
// Firestore hands values back as any (strings, float64/int64 numbers,
// []interface{} arrays), so each entity adapter reconstructs its typed form
// through these, failing with ErrShapeMismatch on any missing or mistyped
// required field.

func shapeErr(collection, key, reason string) error {
	return fmt.Errorf("%w: %s.%s %s", ErrShapeMismatch, collection, key, reason)
}

// requireString fetches a mandatory non-empty string field.
func requireString(doc map[string]any, collection, key string) (string, error) {
	v, ok := doc[key]
	if !ok || v == nil {
		return "", shapeErr(collection, key, "is missing")
	}
	s, ok := v.(string)
	if !ok {
		return "", shapeErr(collection, key, "is not a string")
	}
	return s, nil
}

// optString fetches an optional string field; missing and null both map to nil.
func optString(doc map[string]any, collection, key string) (*string, error) {
	v, ok := doc[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, shapeErr(collection, key, "is not a string")
	}
	return &s, nil
}

// requireNumber fetches a mandatory numeric field. Firestore returns float64
// for doubles and int64 for integers; both are accepted.
func requireNumber(doc map[string]any, collection, key string) (float64, error) {
	v, ok := doc[key]
	if !ok || v == nil {
		return 0, shapeErr(collection, key, "is missing")
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	default:
		return 0, shapeErr(collection, key, "is not a number")
	}
}

// boolOr fetches an optional boolean field with a default.
func boolOr(doc map[string]any, collection, key string, def bool) (bool, error) {
	v, ok := doc[key]
	if !ok || v == nil {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return def, shapeErr(collection, key, "is not a boolean")
	}
	return b, nil
}

// stringSlice fetches an ordered string array; missing/null maps to empty.
func stringSlice(doc map[string]any, collection, key string) ([]string, error) {
	v, ok := doc[key]
	if !ok || v == nil {
		return []string{}, nil
	}
	switch arr := v.(type) {
	case []string:
		out := make([]string, len(arr))
		copy(out, arr)
		return out, nil
	case []any:
		out := make([]string, 0, len(arr))
		for _, e := range arr {
			s, ok := e.(string)
			if !ok {
				return nil, shapeErr(collection, key, "contains a non-string element")
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, shapeErr(collection, key, "is not an array")
	}
}
