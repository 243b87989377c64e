package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ToString converts the loosely typed identifiers found in storefront feeds to string.
// Numbers are formatted without exponent so large ids such as 70010000000025 survive.
// Nil yields an empty string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FirstString returns the first non-empty element of a string-or-list value.
// Solr-backed feeds return multi-valued fields as arrays, others as scalars.
func FirstString(val any) string {
	switch v := val.(type) {
	case []any:
		for _, item := range v {
			if s := strings.TrimSpace(ToString(item)); s != "" {
				return s
			}
		}
		return ""
	case []string:
		for _, item := range v {
			if s := strings.TrimSpace(item); s != "" {
				return s
			}
		}
		return ""
	default:
		return strings.TrimSpace(ToString(v))
	}
}
