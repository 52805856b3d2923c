// Package strcase converts identifier casing for API field names.
package strcase

import (
	"strings"
	"unicode"
)

// ToLowerSnake converts CamelCase or mixedCase identifiers to snake_case.
// Acronym runs stay together: "HTTPServer" becomes "http_server" and
// "userID" becomes "user_id".
func ToLowerSnake(s string) string {
	runes := []rune(s)

	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]

			startsWord := unicode.IsLower(prev) || unicode.IsDigit(prev)
			endsAcronym := unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if startsWord || endsAcronym {
				b.WriteRune('_')
			}
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
