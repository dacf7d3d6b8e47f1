// Package render turns computed diffs into presentations: a unified
// single-column view, a side-by-side view for terminals, and an HTML page.
// All strategies consume the same diff.Result, so switching between them
// never requires recomputing the diff.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"notediff.znkr.io/diff"
)

var (
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	markedStyle  = lipgloss.NewStyle().Faint(true)
	gutterStyle  = lipgloss.NewStyle().Faint(true)
	gapStyle     = lipgloss.NewStyle().Faint(true)
)

const gapMarker = "···"

type config struct {
	width    int
	lang     string
	filename string
	noColor  bool
}

// Option configures a rendering.
type Option func(*config)

// Width sets the total output width for the side-by-side view.
func Width(n int) Option {
	return func(cfg *config) { cfg.width = n }
}

// Lang selects the syntax highlighting lexer by language name.
func Lang(lang string) Option {
	return func(cfg *config) { cfg.lang = lang }
}

// LangFromFilename selects the syntax highlighting lexer from a file name.
// Lang takes precedence when both are given.
func LangFromFilename(name string) Option {
	return func(cfg *config) { cfg.filename = name }
}

// NoColor disables all terminal styling.
func NoColor() Option {
	return func(cfg *config) { cfg.noColor = true }
}

func fromOptions(opts []Option) *config {
	cfg := &config{width: 120}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	return cfg
}

func (cfg *config) style(st lipgloss.Style, s string) string {
	if cfg.noColor {
		return s
	}
	return st.Render(s)
}

// Unified renders a diff as a single column with both line numbers in the
// gutter, a change symbol, and a separator row wherever collapsed context
// was dropped.
func Unified(res diff.Result, opts ...Option) string {
	cfg := fromOptions(opts)
	hl := newHighlighter(cfg.lang, cfg.filename)
	w := numWidth(res.Records)

	var sb strings.Builder
	prevOld, prevNew := 0, 0
	for _, rec := range res.Records {
		if rec.OldLine > prevOld+1 || rec.NewLine > prevNew+1 {
			sb.WriteString(cfg.style(gapStyle, fmt.Sprintf("%*s %*s   %s", w, "", w, "", gapMarker)))
			sb.WriteByte('\n')
		}
		if rec.OldLine > 0 {
			prevOld = rec.OldLine
		}
		if rec.NewLine > 0 {
			prevNew = rec.NewLine
		}

		gutter := fmt.Sprintf("%*s %*s", w, numString(rec.OldLine), w, numString(rec.NewLine))
		sb.WriteString(cfg.style(gutterStyle, gutter))
		sb.WriteByte(' ')
		switch rec.Kind {
		case diff.Removed:
			sb.WriteString(cfg.style(removedStyle, "- "+rec.Content))
		case diff.Added:
			sb.WriteString(cfg.style(addedStyle, "+ "+rec.Content))
		default:
			sb.WriteString("  ")
			sb.WriteString(cfg.contentCell(hl, rec, -1))
		}
		sb.WriteByte('\n')
	}

	if res.Stats.Changes > 0 {
		sb.WriteString(statsLine(cfg, res.Stats))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// SideBySide renders a diff as two columns, the old document on the left and
// the new one on the right. Adjacent removed and added runs are zipped into
// shared rows; cells without a counterpart stay blank.
func SideBySide(res diff.Result, opts ...Option) string {
	cfg := fromOptions(opts)
	hl := newHighlighter(cfg.lang, cfg.filename)
	w := numWidth(res.Records)

	colWidth := max((cfg.width-2*w-5)/2, 10)

	var sb strings.Builder
	prevOld, prevNew := 0, 0
	for _, row := range pairRows(res.Records) {
		gap := false
		if row.left != nil && row.left.OldLine > prevOld+1 {
			gap = true
		}
		if row.right != nil && row.right.NewLine > prevNew+1 {
			gap = true
		}
		if gap {
			sb.WriteString(cfg.style(gapStyle, fmt.Sprintf("%*s %-*s │ %*s %s", w, "", colWidth, gapMarker, w, "", gapMarker)))
			sb.WriteByte('\n')
		}
		if row.left != nil {
			prevOld = row.left.OldLine
		}
		if row.right != nil {
			prevNew = row.right.NewLine
		}

		sb.WriteString(cfg.sideCell(hl, row.left, sideOld, w, colWidth))
		sb.WriteString(" │ ")
		sb.WriteString(cfg.sideCell(hl, row.right, sideNew, w, colWidth))
		sb.WriteByte('\n')
	}

	if res.Stats.Changes > 0 {
		sb.WriteString(statsLine(cfg, res.Stats))
		sb.WriteByte('\n')
	}
	return sb.String()
}

type side int

const (
	sideOld side = iota
	sideNew
)

// row pairs an old-side record with a new-side record. Context records
// occupy both cells.
type row struct {
	left, right *diff.Record
}

func pairRows(records []diff.Record) []row {
	var rows []row
	for i := 0; i < len(records); {
		if records[i].Kind == diff.Context {
			r := records[i]
			rows = append(rows, row{&r, &r})
			i++
			continue
		}

		var removed, added []diff.Record
		for i < len(records) && records[i].Kind == diff.Removed {
			removed = append(removed, records[i])
			i++
		}
		for i < len(records) && records[i].Kind == diff.Added {
			added = append(added, records[i])
			i++
		}
		for j := 0; j < len(removed) || j < len(added); j++ {
			var r row
			if j < len(removed) {
				r.left = &removed[j]
			}
			if j < len(added) {
				r.right = &added[j]
			}
			rows = append(rows, r)
		}
	}
	return rows
}

func (cfg *config) sideCell(hl *highlighter, rec *diff.Record, s side, numWidth, colWidth int) string {
	if rec == nil {
		return fmt.Sprintf("%*s %-*s", numWidth, "", colWidth, "")
	}

	num := rec.OldLine
	if s == sideNew {
		num = rec.NewLine
	}
	gutter := cfg.style(gutterStyle, fmt.Sprintf("%*s", numWidth, numString(num)))
	return gutter + " " + cfg.contentCell(hl, *rec, colWidth)
}

// contentCell styles a record's content, truncated and padded to width when
// width is positive. Truncation happens before styling so that escape
// sequences stay intact.
func (cfg *config) contentCell(hl *highlighter, rec diff.Record, width int) string {
	content := rec.Content
	pad := 0
	if width > 0 {
		runes := []rune(content)
		if len(runes) > width {
			runes = runes[:width]
		}
		content = string(runes)
		pad = width - len(runes)
	}

	switch {
	case rec.Kind == diff.Removed:
		content = cfg.style(removedStyle, content)
	case rec.Kind == diff.Added:
		content = cfg.style(addedStyle, content)
	case rec.Marked:
		content = cfg.style(markedStyle, content)
	case cfg.noColor:
		// leave plain
	default:
		content = hl.line(content)
	}
	return content + strings.Repeat(" ", pad)
}

func statsLine(cfg *config, stats diff.Stats) string {
	return cfg.style(addedStyle, fmt.Sprintf("+%d", stats.Additions)) +
		" " +
		cfg.style(removedStyle, fmt.Sprintf("-%d", stats.Deletions))
}

func numString(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprint(n)
}

func numWidth(records []diff.Record) int {
	maxLine := 1
	for _, rec := range records {
		maxLine = max(maxLine, rec.OldLine, rec.NewLine)
	}
	return len(fmt.Sprint(maxLine))
}
