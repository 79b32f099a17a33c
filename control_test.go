package webobj

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWrapRows(t *testing.T) {
	type tc struct {
		text     string
		width    int
		expected []string
	}

	tests := map[string]tc{
		"fits":           {text: "hello", width: 10, expected: []string{"hello"}},
		"wraps":          {text: "hello world", width: 5, expected: []string{"hello", " worl", "d"}},
		"hard breaks":    {text: "a\nb", width: 5, expected: []string{"a", "b"}},
		"empty":          {text: "", width: 5, expected: []string{""}},
		"wide runes":     {text: "日本語", width: 4, expected: []string{"日本", "語"}},
		"too wide rune":  {text: "日", width: 1, expected: []string{"?"}},
		"zero width":     {text: "ab", width: 0, expected: []string{"a", "b"}},
		"trailing break": {text: "ab\n", width: 5, expected: []string{"ab"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, wrapRows(tt.text, tt.width)); diff != "" {
				t.Errorf("wrapRows() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLabel_NaturalHeight(t *testing.T) {
	type tc struct {
		label    Label
		width    int
		expected int
	}

	tests := map[string]tc{
		"unsized uses hard breaks": {label: NewLabel("one\ntwo"), width: 0, expected: 2},
		"wraps at width":           {label: NewLabel("0123456789"), width: 4, expected: 3},
		"line height":              {label: Label{Text: "0123456789", LineHeight: 16}, width: 5, expected: 32},
		"char width":               {label: Label{Text: "0123456789", CharWidth: 8, LineHeight: 16}, width: 40, expected: 32},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.label.NaturalHeight(tt.width); got != tt.expected {
				t.Errorf("NaturalHeight(%d) = %d, want %d", tt.width, got, tt.expected)
			}
		})
	}
}

func TestLabel_RelayoutOnResize(t *testing.T) {
	tree := NewTree()
	root := tree.NewNode("root", KindContainer, DefaultConfig())
	text := tree.NewNode("text", KindControl, DefaultConfig())
	if err := tree.Append(root, text); err != nil {
		t.Fatal(err)
	}
	if err := tree.SetContent(text, NewLabel("the quick brown fox")); err != nil {
		t.Fatal(err)
	}

	s := NewMemorySurface(tree, 10, 24)
	e := NewEngine(tree, s, root, DefaultOptions())
	if err := e.Resize(context.Background(), root); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if got := tree.Layout(text).Rect.Height; got != 2 {
		t.Errorf("height at width 10 = %d, want 2", got)
	}

	e.OnAvailableSpaceChanged(5, 24)
	if err := e.Flush(context.Background()); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if got := tree.Layout(text).Rect.Height; got != 4 {
		t.Errorf("height at width 5 = %d, want 4", got)
	}
}
