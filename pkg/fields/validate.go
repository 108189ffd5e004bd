package fields

import (
	"devmatter/pkg/utils"
)

// Validate checks a raw submission payload against a field schema and returns
// the normalized payload that gets persisted. Rules, in order:
//
//  1. every payload key must match a field id
//  2. empty-string values are dropped (treated as "not provided")
//  3. every required field must be present with the matching runtime type,
//     compared by primitive type name with no coercion
func Validate(payload map[string]interface{}, schema []Field) (map[string]interface{}, error) {
	byID := make(map[string]Field, len(schema))
	for _, f := range schema {
		byID[f.ID] = f
	}

	normalized := make(map[string]interface{}, len(payload))
	for key, value := range payload {
		if _, ok := byID[key]; !ok {
			return nil, utils.ErrInvalidField
		}
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		normalized[key] = value
	}

	for _, f := range schema {
		if !f.Required {
			continue
		}
		value, ok := normalized[f.ID]
		if !ok || TypeNameOf(value) != string(f.Type) {
			return nil, utils.ErrInvalidType
		}
	}

	return normalized, nil
}

// TypeNameOf reports the primitive type name of a decoded payload value, the
// way a dynamic runtime would. JSON numbers decode as float64; values parsed
// from form bodies are always strings.
func TypeNameOf(v interface{}) string {
	switch v.(type) {
	case string:
		return "string"
	case float64, int, int64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return "object"
	}
}
