package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitutePlaceholdersEncodesSpaces(t *testing.T) {
	got := SubstitutePlaceholders("https://example.com/thanks?who=@name", map[string]interface{}{
		"name": "Ada Lovelace",
	})
	assert.Equal(t, "https://example.com/thanks?who=Ada%20Lovelace", got)
}

func TestSubstitutePlaceholdersLongestIDFirst(t *testing.T) {
	got := SubstitutePlaceholders("https://example.com/?a=@name&b=@name-2", map[string]interface{}{
		"name":   "first",
		"name-2": "second",
	})
	assert.Equal(t, "https://example.com/?a=first&b=second", got)
}

func TestSubstitutePlaceholdersNumbersAndBools(t *testing.T) {
	got := SubstitutePlaceholders("https://example.com/?n=@count&b=@flag", map[string]interface{}{
		"count": float64(42),
		"flag":  true,
	})
	assert.Equal(t, "https://example.com/?n=42&b=true", got)
}

func TestSubstitutePlaceholdersLeavesUnknownTokens(t *testing.T) {
	got := SubstitutePlaceholders("https://example.com/?x=@missing", map[string]interface{}{
		"name": "Ada",
	})
	assert.Equal(t, "https://example.com/?x=@missing", got)
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "a%20b", EncodeURIComponent("a b"))
	assert.Equal(t, "a%26b%3Dc", EncodeURIComponent("a&b=c"))
}
