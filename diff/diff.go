// Package diff computes line-level differences between two text documents.
//
// The comparison works on whole lines: the inputs are split into lines,
// aligned along their longest common subsequence, and every line is classified
// as context, removed, or added. Context lines far away from any change are
// dropped from the result, but retained records keep their absolute line
// numbers on both sides, so a presentation layer can always recover where a
// line sits in either document.
package diff

import (
	"regexp"
	"strings"
)

// Kind describes how a line relates the old document to the new one.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Context Kind = iota // Line is unchanged between both documents
	Removed             // Line exists only in the old document
	Added               // Line exists only in the new document
)

// Record is a single row of a computed diff.
//
//   - For Context, OldLine and NewLine are both set
//   - For Removed, only OldLine is set
//   - For Added, only NewLine is set
//
// Line numbers are 1-based, zero means the record has no correspondent on
// that side. Content carries the line text without its line break.
type Record struct {
	Kind    Kind
	OldLine int
	NewLine int
	Content string
	Marked  bool
}

// Stats summarizes a diff. Changes is always Additions + Deletions; context
// lines don't contribute.
type Stats struct {
	Additions int
	Deletions int
	Changes   int
}

// Result is the outcome of a single comparison. Records are ordered with
// strictly increasing line numbers on each side.
type Result struct {
	Records []Record
	Stats   Stats
}

// defaultContext is the number of record positions around a change within
// which context lines survive collapsing.
const defaultContext = 3

type config struct {
	context int
	full    bool
}

// Option configures a comparison.
type Option func(*config)

// ContextLines sets the collapse window: context lines further than n record
// positions away from the nearest change are dropped from the result.
func ContextLines(n int) Option {
	return func(cfg *config) { cfg.context = n }
}

// Full disables collapsing, every context line is retained.
func Full() Option {
	return func(cfg *config) { cfg.full = true }
}

// Compute compares two documents line by line and returns the classified
// records together with change counts. Empty inputs are valid and describe
// empty documents.
//
// Compute is a pure function: it holds no state between calls, so concurrent
// calls never interfere.
func Compute(old, new string, opts ...Option) Result {
	cfg := config{context: defaultContext}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	oldLines := SplitLines(old)
	newLines := SplitLines(new)
	lcs := longestCommonSubsequence(oldLines, newLines)
	records := classify(oldLines, newLines, lcs)
	if !cfg.full {
		records = collapse(records, cfg.context)
	}

	var stats Stats
	for _, r := range records {
		switch r.Kind {
		case Added:
			stats.Additions++
		case Removed:
			stats.Deletions++
		}
	}
	stats.Changes = stats.Additions + stats.Deletions

	return Result{Records: records, Stats: stats}
}

// markerRE recognizes inline-attribute annotation lines like {: id="abc"}.
// Those lines carry document metadata rather than content and are flagged so
// that a presentation layer can de-emphasize them. They take part in the
// comparison like any other line.
var markerRE = regexp.MustCompile(`^\{:\s+.+`)

func marked(content string) bool {
	return markerRE.MatchString(strings.TrimSpace(content))
}

// classify merges the two line sequences against their common subsequence
// into an ordered record list. Dropping the added records from the result
// reproduces the old document, dropping the removed records reproduces the
// new one.
//
// When a removal and an insertion are both eligible, the removal is emitted
// first. Like the backtrack tie-break in longestCommonSubsequence this only
// affects how adjacent change blocks interleave, but it has to stay
// deterministic so that identical inputs always render identically.
func classify(old, new, lcs []string) []Record {
	var records []Record
	i, j, k := 0, 0, 0
	oldLine, newLine := 1, 1
	for i < len(old) || j < len(new) {
		switch {
		case i < len(old) && j < len(new) && k < len(lcs) && old[i] == lcs[k] && new[j] == lcs[k]:
			records = append(records, Record{
				Kind:    Context,
				OldLine: oldLine,
				NewLine: newLine,
				Content: old[i],
				Marked:  marked(old[i]),
			})
			i++
			j++
			k++
			oldLine++
			newLine++
		case i < len(old) && (k >= len(lcs) || old[i] != lcs[k]):
			records = append(records, Record{
				Kind:    Removed,
				OldLine: oldLine,
				Content: old[i],
				Marked:  marked(old[i]),
			})
			i++
			oldLine++
		default:
			records = append(records, Record{
				Kind:    Added,
				NewLine: newLine,
				Content: new[j],
				Marked:  marked(new[j]),
			})
			j++
			newLine++
		}
	}
	return records
}
