package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"eventmanager/internal/domain"
)

// NameRule describes the length bounds and character set of a name-like field.
type NameRule struct {
	Min int
	Max int
	// Disallowed matches the first character that may not appear in the value.
	// Nil accepts any character.
	Disallowed *regexp.Regexp
	// Allowed describes the permitted characters in violation messages.
	Allowed string
}

var (
	// WordName accepts letters, digits and underscore. Used for person, organizer and event type names.
	WordName = NameRule{
		Min:        2,
		Max:        255,
		Disallowed: regexp.MustCompile(`\W`),
		Allowed:    "alphanumeric characters",
	}
	// PersonName only bounds the length. Used for first and last names.
	PersonName = NameRule{
		Min: 2,
		Max: 255,
	}
	// Username is a WordName that may be a single character long.
	Username = NameRule{
		Min:        1,
		Max:        255,
		Disallowed: WordName.Disallowed,
		Allowed:    WordName.Allowed,
	}
	// EventName additionally allows spaces.
	EventName = NameRule{
		Min:        2,
		Max:        255,
		Disallowed: regexp.MustCompile(`[^A-Za-z0-9 ]`),
		Allowed:    "alphanumeric characters and spaces",
	}
)

// Name validates a string field against rule. The first failing check is reported:
// missing, not a string, blank, length, then character set.
func Name(field string, value any, rule NameRule) (string, []domain.Violation) {
	if value == nil {
		return "", violation(field, domain.CodeMissing, "%s is missing.", field)
	}
	s, ok := value.(string)
	if !ok {
		return "", violation(field, domain.CodeNotString, "%s must be a string.", field)
	}
	if s == "" {
		return "", violation(field, domain.CodeMissing, "%s is missing.", field)
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", violation(field, domain.CodeBlank, "%s should contain characters.", field)
	}
	// The minimum counts only the trimmed value, the maximum bounds what is stored.
	if utf8.RuneCountInString(trimmed) < rule.Min || utf8.RuneCountInString(s) > rule.Max {
		return "", violation(field, domain.CodeLength, "%s must be between %d-%d characters long.", field, rule.Min, rule.Max)
	}
	if rule.Disallowed == nil {
		return s, nil
	}
	if loc := rule.Disallowed.FindStringIndex(s); loc != nil {
		r, _ := utf8.DecodeRuneInString(s[loc[0]:])
		pos := utf8.RuneCountInString(s[:loc[0]]) + 1
		return "", violation(field, domain.CodeInvalidCharacter,
			"%s should only contain %s. Wrong char '%c' was found at position %d.", field, rule.Allowed, r, pos)
	}
	return s, nil
}
