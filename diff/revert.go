package diff

import (
	"fmt"
	"slices"
	"strings"
)

// OldLineFor returns the old-document line that corresponds to records[i].
// Added lines have no natural counterpart in the old document, so the anchor
// is best effort and an explicit policy: the record's own old-side number
// when present, otherwise the nearest preceding record's old-side number,
// otherwise the nearest following record's old-side number minus one,
// otherwise zero (top of document).
func OldLineFor(records []Record, i int) int {
	if records[i].OldLine > 0 {
		return records[i].OldLine
	}
	for j := i - 1; j >= 0; j-- {
		if records[j].OldLine > 0 {
			return records[j].OldLine
		}
	}
	for j := i + 1; j < len(records); j++ {
		if records[j].OldLine > 0 {
			return max(records[j].OldLine-1, 0)
		}
	}
	return 0
}

// NewLineFor is the new-side mirror of OldLineFor.
func NewLineFor(records []Record, i int) int {
	if records[i].NewLine > 0 {
		return records[i].NewLine
	}
	for j := i - 1; j >= 0; j-- {
		if records[j].NewLine > 0 {
			return records[j].NewLine
		}
	}
	for j := i + 1; j < len(records); j++ {
		if records[j].NewLine > 0 {
			return max(records[j].NewLine-1, 0)
		}
	}
	return 0
}

// RevertLine undoes the change described by records[i] in the new document
// and returns the updated text. Reverting an added record deletes that line,
// reverting a removed record re-inserts its content after the nearest
// new-side anchor, and reverting a context record changes nothing.
//
// The returned text uses \n line breaks and ends with one whenever it is
// non-empty. current must be the same text the records were computed from,
// otherwise line numbers may no longer apply and an error is returned.
func RevertLine(records []Record, i int, current string) (string, error) {
	if i < 0 || i >= len(records) {
		return "", fmt.Errorf("record index %d out of range", i)
	}

	lines := SplitLines(current)
	switch rec := records[i]; rec.Kind {
	case Context:
		return current, nil
	case Added:
		n := rec.NewLine
		if n < 1 || n > len(lines) {
			return "", fmt.Errorf("line %d does not exist in the current document", n)
		}
		lines = slices.Delete(lines, n-1, n)
	case Removed:
		at := min(NewLineFor(records, i), len(lines))
		lines = slices.Insert(lines, at, rec.Content)
	}

	if len(lines) == 0 {
		return "", nil
	}
	return strings.Join(lines, "\n") + "\n", nil
}
