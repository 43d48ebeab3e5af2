package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier into its matching key:
// CamelCase is split into tokens, separators (_, -, space) are dropped and
// everything is lowercased. "last_name", "LastName" and "lastName" all
// produce "lastname".
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, token := range tokenizeCamelCase(s) {
		b.WriteString(strings.ToLower(token))
	}

	return b.String()
}

// SameIdent reports whether a and b name the same property.
func SameIdent(a, b string) bool {
	return a != "" && NormalizeIdent(a) == NormalizeIdent(b)
}

// TokenizeIdent splits an identifier into lowercase tokens.
//   - "OrderID" -> ["order", "id"]
//   - "zip_code" -> ["zip", "code"]
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits on separators and on case transitions.
//   - "XMLParser" -> ["XML", "Parser"]
//   - "getHTTPResponse" -> ["get", "HTTP", "Response"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsToken reports a lower->upper transition ("orderID" before 'I') or
// the end of an acronym ("XMLParser" before 'P').
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
