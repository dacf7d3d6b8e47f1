package render

import (
	"bytes"
	"fmt"
	"html/template"

	"notediff.znkr.io/diff"
)

// HTML renders a diff as a standalone page containing both a merged
// single-column view and a two-column view of the same record list.
func HTML(res diff.Result, oldName, newName string) ([]byte, error) {
	page := htmlPage{
		OldName: oldName,
		NewName: newName,
		Stats:   res.Stats,
	}

	prevOld, prevNew := 0, 0
	for _, rec := range res.Records {
		if rec.OldLine > prevOld+1 || rec.NewLine > prevNew+1 {
			page.Merged = append(page.Merged, htmlRow{Gap: true})
		}
		if rec.OldLine > 0 {
			prevOld = rec.OldLine
		}
		if rec.NewLine > 0 {
			prevNew = rec.NewLine
		}
		page.Merged = append(page.Merged, htmlRow{
			Class:   kindClass(rec.Kind),
			OldLine: numString(rec.OldLine),
			NewLine: numString(rec.NewLine),
			Symbol:  kindSymbol(rec.Kind),
			Content: rec.Content,
			Marked:  rec.Marked,
		})
	}

	prevOld, prevNew = 0, 0
	for _, r := range pairRows(res.Records) {
		gap := r.left != nil && r.left.OldLine > prevOld+1 ||
			r.right != nil && r.right.NewLine > prevNew+1
		if gap {
			page.Split = append(page.Split, htmlSplitRow{Gap: true})
		}
		if r.left != nil {
			prevOld = r.left.OldLine
		}
		if r.right != nil {
			prevNew = r.right.NewLine
		}
		page.Split = append(page.Split, htmlSplitRow{
			Left:  htmlCellFor(r.left, sideOld),
			Right: htmlCellFor(r.right, sideNew),
		})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("rendering diff page: %v", err)
	}
	return buf.Bytes(), nil
}

type htmlPage struct {
	OldName string
	NewName string
	Stats   diff.Stats
	Merged  []htmlRow
	Split   []htmlSplitRow
}

type htmlRow struct {
	Class   string
	OldLine string
	NewLine string
	Symbol  string
	Content string
	Marked  bool
	Gap     bool
}

type htmlCell struct {
	Class   string
	Line    string
	Content string
	Marked  bool
}

type htmlSplitRow struct {
	Left  *htmlCell
	Right *htmlCell
	Gap   bool
}

func htmlCellFor(rec *diff.Record, s side) *htmlCell {
	if rec == nil {
		return nil
	}
	num := rec.OldLine
	if s == sideNew {
		num = rec.NewLine
	}
	return &htmlCell{
		Class:   kindClass(rec.Kind),
		Line:    numString(num),
		Content: rec.Content,
		Marked:  rec.Marked,
	}
}

func kindClass(k diff.Kind) string {
	switch k {
	case diff.Added:
		return "add"
	case diff.Removed:
		return "rem"
	default:
		return "ctx"
	}
}

func kindSymbol(k diff.Kind) string {
	switch k {
	case diff.Added:
		return "+"
	case diff.Removed:
		return "-"
	default:
		return ""
	}
}

var pageTemplate = template.Must(template.New("diff").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.OldName}} → {{.NewName}}</title>
<style>
  body { font-family: ui-monospace, monospace; margin: 2em; }
  h1 { font-size: 1em; }
  table { border-collapse: collapse; width: 100%; margin-bottom: 2em; }
  td { padding: 0 .5em; white-space: pre-wrap; vertical-align: top; }
  td.num { color: #6e7781; text-align: right; user-select: none; width: 1%; }
  td.sym { color: #6e7781; user-select: none; width: 1%; }
  tr.add td.line, td.line.add { background: #e6ffec; }
  tr.rem td.line, td.line.rem { background: #ffebe9; }
  td.line.marked { color: #6e7781; }
  tr.gap td { color: #6e7781; text-align: center; }
  .stats .add { color: #1a7f37; }
  .stats .rem { color: #cf222e; }
</style>
</head>
<body>
<h1>{{.OldName}} → {{.NewName}}
  <span class="stats"><span class="add">+{{.Stats.Additions}}</span> <span class="rem">-{{.Stats.Deletions}}</span></span>
</h1>

<h2>Merged</h2>
<table>
{{- range .Merged}}
{{- if .Gap}}
<tr class="gap"><td colspan="4">⋯</td></tr>
{{- else}}
<tr class="{{.Class}}"><td class="num">{{.OldLine}}</td><td class="num">{{.NewLine}}</td><td class="sym">{{.Symbol}}</td><td class="line{{if .Marked}} marked{{end}}">{{.Content}}</td></tr>
{{- end}}
{{- end}}
</table>

<h2>Side by side</h2>
<table>
{{- range .Split}}
{{- if .Gap}}
<tr class="gap"><td colspan="4">⋯</td></tr>
{{- else}}
<tr>
{{- with .Left}}<td class="num">{{.Line}}</td><td class="line {{.Class}}{{if .Marked}} marked{{end}}">{{.Content}}</td>{{- else}}<td class="num"></td><td></td>{{- end}}
{{- with .Right}}<td class="num">{{.Line}}</td><td class="line {{.Class}}{{if .Marked}} marked{{end}}">{{.Content}}</td>{{- else}}<td class="num"></td><td></td>{{- end}}
</tr>
{{- end}}
{{- end}}
</table>
</body>
</html>
`))
