package cmdline

import "strings"

// IndentBy prefixes every line of `lines` with `indentation` spaces.
// An empty string stays empty.
func IndentBy(lines string, indentation int) string {
	if lines == "" {
		return ""
	}
	spaces := strings.Repeat(" ", max(indentation, 0))
	return spaces + strings.ReplaceAll(lines, "\n", "\n"+spaces)
}
