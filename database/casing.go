package database

import (
	"encoding/json"
	"strings"
	"unicode"
)

// The store keeps snake_case columns while the API speaks camelCase JSON.
// MarshalSnake and UnmarshalCamel form the single translation pair used at
// the adapter boundary; nothing else renames fields.

// MarshalSnake encodes v to JSON with every object key converted to snake_case.
func MarshalSnake(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	return json.Marshal(convertKeys(decoded, SnakeCase))
}

// UnmarshalCamel decodes JSON data into out with every object key converted
// to camelCase first, so camelCase-tagged structs bind directly.
func UnmarshalCamel(data []byte, out any) error {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	converted, err := json.Marshal(convertKeys(decoded, CamelCase))
	if err != nil {
		return err
	}
	return json.Unmarshal(converted, out)
}

// convertKeys walks maps and slices, renaming object keys with fn.
func convertKeys(v any, fn func(string) string) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[fn(k)] = convertKeys(inner, fn)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = convertKeys(inner, fn)
		}
		return out
	default:
		return v
	}
}

// SnakeCase converts camelCase to snake_case ("createdAt" -> "created_at").
func SnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CamelCase converts snake_case to camelCase ("created_at" -> "createdAt").
func CamelCase(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
