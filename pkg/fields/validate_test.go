package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"devmatter/pkg/utils"
)

var testSchema = []Field{
	{ID: "name", Type: TypeString, Label: "Name", Required: true},
	{ID: "age", Type: TypeNumber, Label: "Age", Required: false},
	{ID: "note", Type: TypeString, Label: "Note", Required: false},
}

func TestValidateAcceptsWellFormedPayload(t *testing.T) {
	normalized, err := Validate(map[string]interface{}{
		"name": "Ada",
		"age":  float64(37),
	}, testSchema)
	require.NoError(t, err)

	assert.Equal(t, "Ada", normalized["name"])
	assert.Equal(t, float64(37), normalized["age"])
}

func TestValidateRejectsUnknownKey(t *testing.T) {
	_, err := Validate(map[string]interface{}{
		"name":    "Ada",
		"unknown": "x",
	}, testSchema)
	assert.ErrorIs(t, err, utils.ErrInvalidField)
}

func TestValidateDropsEmptyStrings(t *testing.T) {
	normalized, err := Validate(map[string]interface{}{
		"name": "Ada",
		"note": "",
	}, testSchema)
	require.NoError(t, err)

	_, present := normalized["note"]
	assert.False(t, present)
}

func TestValidateEmptyStringFailsRequiredField(t *testing.T) {
	_, err := Validate(map[string]interface{}{
		"name": "",
	}, testSchema)
	assert.ErrorIs(t, err, utils.ErrInvalidType)
}

func TestValidateRejectsMissingRequiredField(t *testing.T) {
	_, err := Validate(map[string]interface{}{
		"age": float64(1),
	}, testSchema)
	assert.ErrorIs(t, err, utils.ErrInvalidType)
}

func TestValidateRejectsTypeMismatchWithoutCoercion(t *testing.T) {
	schema := []Field{{ID: "age", Type: TypeNumber, Label: "Age", Required: true}}

	// Form-encoded bodies deliver every value as a string; "42" is not 42.
	_, err := Validate(map[string]interface{}{"age": "42"}, schema)
	assert.ErrorIs(t, err, utils.ErrInvalidType)
}

func TestValidateOptionalFieldMayBeAbsent(t *testing.T) {
	normalized, err := Validate(map[string]interface{}{
		"name": "Ada",
	}, testSchema)
	require.NoError(t, err)
	assert.Len(t, normalized, 1)
}

func TestTypeNameOf(t *testing.T) {
	assert.Equal(t, "string", TypeNameOf("x"))
	assert.Equal(t, "number", TypeNameOf(float64(1)))
	assert.Equal(t, "number", TypeNameOf(int(1)))
	assert.Equal(t, "boolean", TypeNameOf(true))
	assert.Equal(t, "null", TypeNameOf(nil))
	assert.Equal(t, "object", TypeNameOf(map[string]interface{}{}))
}
