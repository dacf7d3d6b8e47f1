package diff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "single-line-with-newline",
			in:   "foo\n",
			want: []string{"foo"},
		},
		{
			name: "single-line-without-newline",
			in:   "foo",
			want: []string{"foo"},
		},
		{
			name: "trailing-content-not-extra-line",
			in:   "foo\nbar",
			want: []string{"foo", "bar"},
		},
		{
			name: "crlf",
			in:   "foo\r\nbar\r\n",
			want: []string{"foo", "bar"},
		},
		{
			name: "bare-cr",
			in:   "foo\rbar",
			want: []string{"foo", "bar"},
		},
		{
			name: "mixed-endings",
			in:   "a\r\nb\rc\nd",
			want: []string{"a", "b", "c", "d"},
		},
		{
			name: "only-line-breaks",
			in:   "\n\n",
			want: []string{"", ""},
		},
		{
			name: "interior-blank-lines-preserved",
			in:   "a\n\n\nb\n",
			want: []string{"a", "", "", "b"},
		},
		{
			name: "trailing-blank-line-preserved",
			in:   "a\n\n",
			want: []string{"a", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitLines result is different (-want, +got):\n%s", diff)
			}
		})
	}
}

// Rejoining the lines with a single \n, plus a trailing \n for non-empty
// input, must reproduce the line-ending-normalized form of the input.
func TestSplitLinesRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"foo",
		"foo\n",
		"foo\nbar",
		"foo\r\nbar\rbaz\n",
		"\n",
		"\n\n\n",
		"a\n\nb",
	}

	for _, in := range inputs {
		normalized := strings.ReplaceAll(in, "\r\n", "\n")
		normalized = strings.ReplaceAll(normalized, "\r", "\n")
		if normalized != "" && !strings.HasSuffix(normalized, "\n") {
			normalized += "\n"
		}

		lines := SplitLines(in)
		got := strings.Join(lines, "\n")
		if len(lines) > 0 {
			got += "\n"
		}
		if got != normalized {
			t.Errorf("SplitLines(%q) round trip = %q, want %q", in, got, normalized)
		}
	}
}
