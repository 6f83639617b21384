package gomaskx

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// MaskString masks parts of value using the given regex pattern.
// Every match of the pattern is replaced with an asterisk.
// Empty or all-whitespace input yields an empty string.
//
// This is the general-purpose, string-level entry point. For struct values
// prefer Masker.Mask, which caches the per-type work.
//
// Example:
//
//	masked, err := gomaskx.MaskString("1234567890", `\d(?=\d{2})`)
//	// masked == "********90"
func MaskString(value, pattern string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return "", &InvalidPatternError{Pattern: pattern, Err: err}
	}
	return applyPattern(re, value)
}
