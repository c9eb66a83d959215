package export

import (
	"strings"
	"testing"
)

func TestVisibleText(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string // lines that must appear, in order
		deny []string // substrings that must not appear
	}{
		{
			name: "strips script and style",
			doc:  `<html><head><title>x</title></head><body><style>.a{}</style><script>alert(1)</script><p>visible</p></body></html>`,
			want: []string{"visible"},
			deny: []string{"alert", ".a{}", "x"},
		},
		{
			name: "block tags become line breaks",
			doc:  `<div>first</div><div>second</div><h2>third</h2>`,
			want: []string{"first", "second", "third"},
		},
		{
			name: "br and hr break lines",
			doc:  `one<br>two<br/>three<hr>four`,
			want: []string{"one", "two", "three", "four"},
		},
		{
			name: "entities unescaped",
			doc:  `<p>fish &amp; chips &lt;3</p>`,
			want: []string{"fish & chips <3"},
		},
		{
			name: "comments removed",
			doc:  `<p>kept</p><!-- dropped -->`,
			want: []string{"kept"},
			deny: []string{"dropped"},
		},
		{
			name: "whitespace collapsed per line",
			doc:  "<p>a    lot\t\tof   space</p>",
			want: []string{"a lot of space"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleText(tt.doc)

			lastIdx := -1
			for _, want := range tt.want {
				idx := indexOfLine(got, want)
				if idx < 0 {
					t.Fatalf("line %q missing from output:\n%s", want, got)
				}
				if idx <= lastIdx {
					t.Errorf("line %q out of order", want)
				}
				lastIdx = idx
			}
			for _, deny := range tt.deny {
				if strings.Contains(got, deny) {
					t.Errorf("output contains %q:\n%s", deny, got)
				}
			}
		})
	}
}

func indexOfLine(text, line string) int {
	for i, l := range strings.Split(text, "\n") {
		if l == line {
			return i
		}
	}
	return -1
}

func TestVisibleTextPreservesBlankLines(t *testing.T) {
	got := VisibleText("<h2>Title</h2><p></p><div>User</div>")
	if !strings.Contains(got, "\n") {
		t.Fatalf("no line structure in output: %q", got)
	}
	lines := strings.Split(got, "\n")
	sawBlank := false
	for _, l := range lines {
		if l == "" {
			sawBlank = true
		}
	}
	if !sawBlank {
		t.Errorf("blank lines were collapsed: %q", got)
	}
}
