package java

import (
	"fmt"
	"strconv"
	"strings"
)

// NotFound is reported in place of a version when no Java runtime answered
const NotFound = "Java is not installed"

// Version is a Java version split by dot position.
// The third component is stored as Patch and the fourth as Update.
type Version struct {
	Feature int
	Interim int
	Patch   int
	Update  int
}

// Unknown is the version value used before anything has been parsed
var Unknown = Version{Feature: -1}

// IsKnown reports whether at least the feature number was parsed
func (v Version) IsKnown() bool {
	return v.Feature >= 0
}

// String renders the version as dotted numbers, dropping trailing zero fields
func (v Version) String() string {
	if !v.IsKnown() {
		return "unknown"
	}

	parts := []int{v.Feature, v.Interim, v.Patch, v.Update}
	n := len(parts)
	for n > 1 && parts[n-1] == 0 {
		n--
	}

	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = strconv.Itoa(parts[i])
	}
	return strings.Join(out, ".")
}

// ExtractVersionToken returns the first double-quoted word of a banner line
// with its quotes removed, or NotFound when the line has none.
func ExtractVersionToken(line string) string {
	for _, token := range strings.Fields(line) {
		if strings.HasPrefix(token, `"`) {
			return strings.ReplaceAll(token, `"`, "")
		}
	}
	return NotFound
}

// ParseVersion splits text on periods and assigns up to four components
// positionally. Components past the fourth are ignored.
func ParseVersion(text string) (Version, error) {
	result := Unknown

	position := 0
	for _, token := range strings.Split(text, ".") {
		// consecutive dots yield empty tokens, which are skipped
		if token == "" {
			continue
		}
		if position >= 4 {
			break
		}

		n, err := leadingInt(token)
		if err != nil {
			return Unknown, &MalformedVersionError{Raw: text, Token: token, Err: err}
		}

		switch position {
		case 0:
			result.Feature = n
		case 1:
			result.Interim = n
		case 2:
			result.Patch = n
		case 3:
			result.Update = n
		}
		position++
	}

	return result, nil
}

// leadingInt converts the leading integer of token, ignoring whatever
// trails the digits ("0_381" is 0, "17-ea" is 17).
func leadingInt(token string) (int, error) {
	s := strings.TrimLeft(token, " \t\n\v\f\r")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("%q does not start with a number", token)
	}

	return strconv.Atoi(s[:end])
}
