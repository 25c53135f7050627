// Package bytestrings provides small helpers for iterating over line-based
// text without allocating.
package bytestrings

import "strings"

// NextNonEmptyLine returns the next non-empty line and the remaining text.
// Line endings may be LF or CRLF. When no line is left, both return values
// are empty.
func NextNonEmptyLine(text string) (line, rest string) {
	for {
		line, rest, _ = strings.Cut(text, "\n")
		line = strings.TrimSuffix(line, "\r")
		if len(line) > 0 || len(rest) == 0 {
			return line, rest
		}
		text = rest
	}
}

// Lines splits text into its non-empty lines.
func Lines(text string) []string {
	var lines []string
	for {
		line, rest := NextNonEmptyLine(text)
		if len(line) == 0 {
			return lines
		}
		lines = append(lines, line)
		text = rest
	}
}
