package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"
)

// tokenStyles maps chroma token categories to terminal styles. Lookup falls
// back from the concrete token type to its subcategory and category, so the
// map only needs entries for the broad strokes.
var tokenStyles = map[chroma.TokenType]lipgloss.Style{
	chroma.Keyword:           lipgloss.NewStyle().Bold(true),
	chroma.KeywordPseudo:     lipgloss.NewStyle(),
	chroma.KeywordType:       lipgloss.NewStyle(),
	chroma.NameClass:         lipgloss.NewStyle().Bold(true),
	chroma.NameEntity:        lipgloss.NewStyle().Bold(true),
	chroma.NameException:     lipgloss.NewStyle().Bold(true),
	chroma.NameNamespace:     lipgloss.NewStyle().Bold(true),
	chroma.NameTag:           lipgloss.NewStyle().Bold(true),
	chroma.LiteralString:     lipgloss.NewStyle().Italic(true),
	chroma.OperatorWord:      lipgloss.NewStyle().Bold(true),
	chroma.Comment:           lipgloss.NewStyle().Faint(true),
	chroma.CommentPreproc:    lipgloss.NewStyle(),
	chroma.GenericEmph:       lipgloss.NewStyle().Italic(true),
	chroma.GenericHeading:    lipgloss.NewStyle().Bold(true),
	chroma.GenericStrong:     lipgloss.NewStyle().Bold(true),
	chroma.GenericSubheading: lipgloss.NewStyle().Bold(true),
}

// highlighter tokenises single lines for terminal output. Without a lexer it
// passes lines through unchanged.
type highlighter struct {
	lexer chroma.Lexer
}

func newHighlighter(lang, filename string) *highlighter {
	hl := &highlighter{}
	switch {
	case lang != "":
		hl.lexer = lexers.Get(lang)
	case filename != "":
		hl.lexer = lexers.Match(filename)
	}
	if hl.lexer != nil {
		hl.lexer = chroma.Coalesce(hl.lexer)
	}
	return hl
}

// line returns s with per-token terminal styling applied. Lines are
// tokenised individually; s must not contain a line break.
func (hl *highlighter) line(s string) string {
	if hl.lexer == nil || s == "" {
		return s
	}
	it, err := hl.lexer.Tokenise(nil, s)
	if err != nil {
		return s
	}

	var sb strings.Builder
	for _, token := range it.Tokens() {
		// The lexer guarantees a trailing newline that isn't part of the
		// original line.
		v := strings.TrimSuffix(token.Value, "\n")
		if v == "" {
			continue
		}
		if style, ok := styleFor(token.Type); ok {
			sb.WriteString(style.Render(v))
		} else {
			sb.WriteString(v)
		}
	}
	return sb.String()
}

func styleFor(t chroma.TokenType) (lipgloss.Style, bool) {
	if s, ok := tokenStyles[t]; ok {
		return s, true
	}
	if s, ok := tokenStyles[t.SubCategory()]; ok {
		return s, true
	}
	if s, ok := tokenStyles[t.Category()]; ok {
		return s, true
	}
	return lipgloss.Style{}, false
}
