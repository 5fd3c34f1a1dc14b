package llm

import (
	"regexp"
	"strings"
)

var (
	fenceOpen  = regexp.MustCompile("(?m)^```[a-zA-Z]*[ \t]*\n?")
	fenceClose = regexp.MustCompile("(?m)\n?```[ \t]*$")
)

// StripFences removes markdown code-fence wrapping that models sometimes add
// around JSON responses despite being told not to.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = fenceOpen.ReplaceAllString(s, "")
	s = fenceClose.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
