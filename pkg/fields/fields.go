// Package fields holds the form field schema and the per-submission payload
// validator. A field's type is a closed variant: only string and number
// fields exist, and unknown type tags are rejected when a schema is written,
// never at submission time.
package fields

import (
	"encoding/json"

	"devmatter/pkg/utils"
)

type FieldType string

const (
	TypeString FieldType = "string"
	TypeNumber FieldType = "number"
)

type Field struct {
	ID       string    `json:"id"`
	Type     FieldType `json:"type"`
	Label    string    `json:"label"`
	Required bool      `json:"required"`
}

// FieldInput is a field definition as written by a client. Required is left
// untyped because older clients send it as the strings "true"/"false" instead
// of a boolean; Normalize collapses that into a real bool before anything
// downstream sees it.
type FieldInput struct {
	ID       string      `json:"id" binding:"required"`
	Type     string      `json:"type" binding:"required"`
	Label    string      `json:"label" binding:"required"`
	Required interface{} `json:"required"`
}

// Normalize validates a client-supplied field list and produces the canonical
// form stored in a schema version. Duplicate ids and unknown type tags are
// rejected here, at write time.
func Normalize(inputs []FieldInput) ([]Field, error) {
	seen := make(map[string]bool, len(inputs))
	normalized := make([]Field, 0, len(inputs))

	for _, in := range inputs {
		if in.ID == "" || in.Label == "" {
			return nil, utils.ErrUnknownFieldType
		}
		if seen[in.ID] {
			return nil, utils.ErrDuplicateFieldIDs
		}
		seen[in.ID] = true

		ft := FieldType(in.Type)
		if ft != TypeString && ft != TypeNumber {
			return nil, utils.ErrUnknownFieldType
		}

		normalized = append(normalized, Field{
			ID:       in.ID,
			Type:     ft,
			Label:    in.Label,
			Required: normalizeRequired(in.Required),
		})
	}

	return normalized, nil
}

func normalizeRequired(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != "false"
	default:
		return true
	}
}

// Parse decodes a stored schema blob. A blob that does not decode into a
// well-formed field list means the stored schema is corrupted: that is an
// operator-facing failure, not a client error.
func Parse(raw []byte) ([]Field, error) {
	var decoded []struct {
		ID       *string `json:"id"`
		Type     *string `json:"type"`
		Label    *string `json:"label"`
		Required *bool   `json:"required"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, utils.ErrInvalidSchema
	}

	parsed := make([]Field, 0, len(decoded))
	for _, f := range decoded {
		if f.ID == nil || f.Type == nil || f.Label == nil || f.Required == nil {
			return nil, utils.ErrInvalidSchema
		}
		parsed = append(parsed, Field{
			ID:       *f.ID,
			Type:     FieldType(*f.Type),
			Label:    *f.Label,
			Required: *f.Required,
		})
	}
	return parsed, nil
}

// Marshal encodes a field list for jsonb storage.
func Marshal(fields []Field) ([]byte, error) {
	return json.Marshal(fields)
}
