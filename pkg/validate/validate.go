package validate

import (
	"regexp"
	"strings"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IsEmail reports whether s looks like a well-formed email address.
func IsEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

// NotBlank reports whether s contains at least one non-space character.
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
