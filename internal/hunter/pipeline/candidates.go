package pipeline

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics folds accented characters to their base form so generated
// local-parts stay plain ASCII ("José" -> "jose").
func removeDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return out
}

// GenerateEmails turns validated name tokens into corporate email
// permutations for the host. The first token is the first name and the last
// token the last name; middle names are ignored. first.last@host always comes
// first; first@host is appended only in high-recall mode. Generation is
// deterministic: the same name always yields the same ordered set.
func GenerateEmails(displayName, host string, shortPermutations bool) []string {
	tokens := strings.Fields(displayName)
	if len(tokens) < 2 || host == "" {
		return nil
	}

	first := removeDiacritics(strings.ToLower(tokens[0]))
	last := removeDiacritics(strings.ToLower(tokens[len(tokens)-1]))

	emails := []string{first + "." + last + "@" + host}
	if shortPermutations {
		emails = append(emails, first+"@"+host)
	}

	return emails
}

// SplitName splits a display name into first and last name parts; everything
// after the first token joins the last name, mirroring how leads are stored.
func SplitName(displayName string) (string, string) {
	tokens := strings.Fields(displayName)
	if len(tokens) == 0 {
		return "", ""
	}
	if len(tokens) == 1 {
		return tokens[0], ""
	}

	return tokens[0], strings.Join(tokens[1:], " ")
}

// capitalize upper-cases the first rune, for departmental display names
// ("contato" -> "Contato").
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])

	return string(r)
}

// NameFromLocalPart derives a display name from the local part of an email
// found on the site ("joao.silva" -> "Joao Silva").
func NameFromLocalPart(email string) string {
	local := email
	if i := strings.IndexByte(email, '@'); i >= 0 {
		local = email[:i]
	}

	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	for i := range parts {
		parts[i] = capitalize(strings.ToLower(parts[i]))
	}

	return strings.Join(parts, " ")
}
