package gomaskx

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// MaskedType represents a predefined masking strategy.
// Each type is bound to a regex pattern that matches the characters to be
// replaced with the mask character ('*'); everything else is left untouched.
// Patterns operate on the value's rendered text form, not on typed semantics.
type MaskedType string

const (
	// MASKED_TYPE_ALL masks every non-whitespace character
	MASKED_TYPE_ALL MaskedType = "ALL"
	// MASKED_TYPE_EMAIL keeps the first character of the local part, the first
	// character of the domain and the final dot-segment (TLD)
	MASKED_TYPE_EMAIL MaskedType = "EMAIL"
	// MASKED_TYPE_DOCUMENT masks all characters except the last three
	MASKED_TYPE_DOCUMENT MaskedType = "DOCUMENT"
	// MASKED_TYPE_NAME masks all characters except the first and the last two
	MASKED_TYPE_NAME MaskedType = "NAME"
	// MASKED_TYPE_DATE masks a digit when at least two more digits follow it,
	// counting across non-digit separators
	MASKED_TYPE_DATE MaskedType = "DATE"
	// MASKED_TYPE_ADDRESS masks a letter or digit when at least three more
	// letters or digits follow it, leaving the trailing word visible
	MASKED_TYPE_ADDRESS MaskedType = "ADDRESS"
	// MASKED_TYPE_ZIP_CODE masks a digit when at least two more digits follow it
	MASKED_TYPE_ZIP_CODE MaskedType = "ZIP_CODE"
	// MASKED_TYPE_NUMBER masks every digit
	MASKED_TYPE_NUMBER MaskedType = "NUMBER"
	// MASKED_TYPE_TELEPHONE masks a digit when at least two more digits follow it
	MASKED_TYPE_TELEPHONE MaskedType = "TELEPHONE"
	// MASKED_TYPE_PASSWORD masks every character except the first
	MASKED_TYPE_PASSWORD MaskedType = "PASSWORD"
)

// maskChar is the literal replacement for every pattern-matched character.
const maskChar = "*"

// maskedTypeRegex maps each strategy to its pattern. The patterns rely on
// lookahead/lookbehind, hence regexp2 instead of the stdlib RE2 engine.
var maskedTypeRegex = map[MaskedType]string{
	MASKED_TYPE_ALL:       `\S`,
	MASKED_TYPE_EMAIL:     `(?<=^[^@]+)[^@](?=[^@]*@)|(?<=@[^@]+)[^@](?=[^@]*\.[^@.]+$)`,
	MASKED_TYPE_DOCUMENT:  `.(?=.{3})`,
	MASKED_TYPE_NAME:      `(?<=.).(?=.*.{2}$)`,
	MASKED_TYPE_DATE:      `\d(?=(?:\D*\d){2})`,
	MASKED_TYPE_ADDRESS:   `[a-zA-Z0-9](?=(?:.*[a-zA-Z0-9]){3})`,
	MASKED_TYPE_ZIP_CODE:  `\d(?=(?:\D*\d){2})`,
	MASKED_TYPE_NUMBER:    `\d`,
	MASKED_TYPE_TELEPHONE: `\d(?=(?:\D*\d){2})`,
	MASKED_TYPE_PASSWORD:  `(?<=.).`,
}

// maskedTypePatterns holds the compiled pattern for each strategy.
// The catalog is closed, so compilation happens exactly once at init.
var maskedTypePatterns = make(map[MaskedType]*regexp2.Regexp, len(maskedTypeRegex))

func init() {
	for t, expr := range maskedTypeRegex {
		maskedTypePatterns[t] = regexp2.MustCompile(expr, regexp2.None)
	}
}

// parseMaskedType resolves a tag value like "email" or "zip_code" to its
// MaskedType. An empty value defaults to MASKED_TYPE_ALL.
func parseMaskedType(name string) (MaskedType, bool) {
	if name == "" {
		return MASKED_TYPE_ALL, true
	}
	t := MaskedType(strings.ToUpper(name))
	if _, ok := maskedTypeRegex[t]; !ok {
		return "", false
	}
	return t, true
}

// Valid reports whether t is one of the predefined masking strategies.
func (t MaskedType) Valid() bool {
	_, ok := maskedTypeRegex[t]
	return ok
}

// Regex returns the pattern bound to this strategy, or an empty string for
// an unknown strategy.
func (t MaskedType) Regex() string {
	return maskedTypeRegex[t]
}

// Apply masks value using this strategy's pattern.
// Empty or all-whitespace input yields an empty string.
func (t MaskedType) Apply(value string) (string, error) {
	re, ok := maskedTypePatterns[t]
	if !ok {
		return "", &InvalidPatternError{Pattern: string(t), Err: errUnknownMaskedType(string(t))}
	}
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	return applyPattern(re, value)
}

// applyPattern replaces every match of re in value with the mask character.
func applyPattern(re *regexp2.Regexp, value string) (string, error) {
	masked, err := re.Replace(value, maskChar, -1, -1)
	if err != nil {
		return "", err
	}
	return masked, nil
}
