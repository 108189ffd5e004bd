package utils

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// SubstitutePlaceholders replaces every @fieldId token in a redirect URL
// template with the URL-encoded value of that field from the submitted
// payload. Field ids are substituted longest-first so that an id which is a
// prefix of another (e.g. "name" and "name-2") cannot capture the longer
// token's placeholder.
func SubstitutePlaceholders(template string, payload map[string]interface{}) string {
	ids := make([]string, 0, len(payload))
	for id := range payload {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if len(ids[i]) != len(ids[j]) {
			return len(ids[i]) > len(ids[j])
		}
		return ids[i] < ids[j]
	})

	result := template
	for _, id := range ids {
		placeholder := "@" + id
		if strings.Contains(result, placeholder) {
			result = strings.ReplaceAll(result, placeholder, EncodeURIComponent(stringifyValue(payload[id])))
		}
	}
	return result
}

// EncodeURIComponent percent-encodes a query value, using %20 for spaces.
func EncodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func stringifyValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
