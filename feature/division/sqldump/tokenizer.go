package sqldump

import "strings"

// SplitFields splits the inside of a VALUES (...) tuple on commas that are
// not inside a quoted value. Single and double quotes are recognised; a
// doubled quote or a backslash escapes the next character inside quotes.
// Every field is trimmed and loses its surrounding quotes.
//
// This is deliberately minimal: it knows about quotes, not about nested
// tuples, functions or multi-row inserts.
func SplitFields(tuple string) []string {
	var (
		fields []string
		field  strings.Builder
		quote  rune
	)

	flush := func() {
		fields = append(fields, strings.TrimSpace(field.String()))
		field.Reset()
	}

	runes := []rune(tuple)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if quote != 0 {
			switch {
			case r == '\\' && i+1 < len(runes):
				i++
				field.WriteRune(runes[i])
			case r == quote && i+1 < len(runes) && runes[i+1] == quote:
				i++
				field.WriteRune(quote)
			case r == quote:
				quote = 0
			default:
				field.WriteRune(r)
			}
			continue
		}

		switch r {
		case '\'', '"':
			quote = r
		case ',':
			flush()
		default:
			field.WriteRune(r)
		}
	}
	flush()

	return fields
}
