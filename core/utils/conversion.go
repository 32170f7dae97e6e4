package utils

import (
	"fmt"
	"strings"
)

// ToString converts a scanned column value to a trimmed string.
// NULL becomes the empty string; drivers returning []byte for text and
// integers for numeric ids are both handled.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case []byte:
		return strings.TrimSpace(string(v))
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}
