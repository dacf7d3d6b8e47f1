package diff

import "strings"

// SplitLines splits a document into the lines used for comparison. All line
// ending variants (\r\n, \r, \n) are treated as the same line break and the
// returned lines carry no line break characters.
//
// A document with trailing content but no trailing newline must not be
// mistaken for one with an extra empty final line, so a line break is assumed
// at the end of non-empty input and the one synthetic empty element it
// introduces is dropped again after splitting. Blank lines that are genuinely
// part of the document are preserved. An empty document has no lines.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	lines := strings.Split(s, "\n")
	return lines[:len(lines)-1]
}
