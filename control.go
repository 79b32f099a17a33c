package webobj

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-webobj/internal/layout"
)

// Label is text content whose height follows its wrapped line count.
// It re-measures whenever the control's width changes.
type Label struct {
	Text string

	// LineHeight is the height of one row of text. Zero means 1.
	LineHeight int

	// CharWidth is the width of one terminal column. Zero means 1.
	CharWidth int
}

var _ layout.Content = Label{}

// NewLabel creates a Label with one unit per row and column.
func NewLabel(text string) Label {
	return Label{Text: text, LineHeight: 1, CharWidth: 1}
}

// NaturalHeight returns the wrapped line count times LineHeight.
func (l Label) NaturalHeight(width int) int {
	return len(l.Lines(width)) * max(l.LineHeight, 1)
}

// Lines returns the text wrapped to width. A width of zero means the
// control has not been sized yet and only hard line breaks apply.
func (l Label) Lines(width int) []string {
	if width <= 0 {
		return strings.Split(l.Text, "\n")
	}
	return wrapRows(l.Text, width/max(l.CharWidth, 1))
}

// wrapRows converts text into visual rows using display widths.
func wrapRows(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	if text == "" {
		return []string{""}
	}

	rows := make([]string, 0, 4)
	var row strings.Builder
	col := 0

	flush := func() {
		rows = append(rows, row.String())
		row.Reset()
		col = 0
	}

	for _, r := range text {
		if r == '\n' {
			flush()
			continue
		}

		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		if w > width {
			r = '?'
			w = 1
		}

		if col+w > width {
			flush()
		}

		row.WriteRune(r)
		col += w
	}

	if row.Len() > 0 || len(rows) == 0 {
		rows = append(rows, row.String())
	}

	return rows
}

// Spacer returns content of a fixed height.
func Spacer(height int) Content {
	return layout.FixedContent(height)
}
