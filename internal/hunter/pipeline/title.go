package pipeline

import (
	"strings"
	"unicode"
)

// GenericRole labels candidates whose title carried no role information.
const GenericRole = "Funcionário"

// departmentRole labels generic departmental mailbox guesses.
const departmentRole = "Departamento"

// separatorRules is the ordered, data-driven rule table for splitting a
// result title into name and role. The first separator present wins; order is
// priority. Tests enumerate this table instead of re-deriving the split logic.
var separatorRules = []string{
	" - ",
	" – ",
	" | ",
	",",
}

// roleConnectors are localized connector phrases that attach a company name
// to a role ("Gerente na Acme"). Everything from the first connector on is
// trimmed off the role.
var roleConnectors = []string{
	" na ",
	" da ",
	" at ",
}

// ParsedTitle is the outcome of splitting a cleaned result title.
type ParsedTitle struct {
	// Name is the person's display name.
	Name string
	// Role is the parsed role title, or GenericRole when the title carried none.
	Role string
}

// CleanResultTitle strips trailing site-brand suffixes and ellipses from a
// raw result title.
func CleanResultTitle(title string) string {
	for _, suffix := range brandSuffixes {
		if i := strings.Index(title, suffix); i >= 0 {
			title = title[:i]
		}
	}

	return strings.TrimSpace(strings.ReplaceAll(title, "...", ""))
}

// ParseTitle splits a cleaned title into name and role using the separator
// rule table. When no separator matches, the whole title is treated as the
// name and the role falls back to a generic label. The parse is rejected when
// the name has fewer than two tokens or contains a digit.
func ParseTitle(title string) (ParsedTitle, bool) {
	name := title
	role := GenericRole

	for _, sep := range separatorRules {
		if !strings.Contains(title, sep) {
			continue
		}

		parts := strings.SplitN(title, sep, 2)
		name = strings.TrimSpace(parts[0])
		role = trimRoleConnectors(strings.TrimSpace(parts[1]))
		break
	}

	if !validName(name) {
		return ParsedTitle{}, false
	}

	return ParsedTitle{Name: name, Role: role}, true
}

// trimRoleConnectors cuts the role at the first localized connector phrase.
// A second separator may still trail the role ("Marketing Manager - Acme");
// the rule table is reapplied to keep only the role segment.
func trimRoleConnectors(role string) string {
	for _, sep := range separatorRules {
		if i := strings.Index(role, sep); i >= 0 {
			role = role[:i]
		}
	}
	for _, conn := range roleConnectors {
		if i := strings.Index(role, conn); i >= 0 {
			role = role[:i]
		}
	}

	role = strings.TrimSpace(role)
	if role == "" {
		return GenericRole
	}

	return role
}

// validName requires at least two whitespace-separated tokens and rejects any
// digit character.
func validName(name string) bool {
	if len(strings.Fields(name)) < 2 {
		return false
	}
	for _, r := range name {
		if unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

// GuessCompanyName derives a display name from a page title by splitting on
// common separators and discarding boilerplate segments. It returns "" when
// nothing usable remains; callers only adopt guesses longer than two runes.
func GuessCompanyName(pageTitle string) string {
	segments := strings.FieldsFunc(pageTitle, func(r rune) bool {
		return r == '|' || r == '-' || r == ':' || r == '–'
	})

	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		if isBoilerplate(segment) {
			continue
		}

		return segment
	}

	return ""
}

func isBoilerplate(segment string) bool {
	lower := strings.ToLower(segment)
	for _, token := range titleBoilerplate {
		if lower == token {
			return true
		}
	}

	return false
}
