package scriptgen

import (
	"regexp"
	"strings"
)

var shellSpecial = regexp.MustCompile("[ \t\n\r\f\v$`\"'\\\\;|&<>(){}*?\\[\\]~#!]")

// needsQuotes reports whether a path must be quoted in the generated script.
// Command substitutions are left bare so the shell still evaluates them.
func needsQuotes(path string) bool {
	if strings.HasPrefix(path, "$(") && strings.HasSuffix(path, ")") {
		return false
	}
	return shellSpecial.MatchString(path)
}

// FormatPath single-quotes a path only when it carries shell-special
// characters.
func FormatPath(path string) string {
	if needsQuotes(path) {
		return "'" + path + "'"
	}
	return path
}
