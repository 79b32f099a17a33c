// Package render draws laid out trees as text, one cell per terminal
// column and row.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-webobj/internal/layout"
)

// continuation marks the second cell of a wide rune.
const continuation rune = -1

// Canvas is a 2D grid of runes.
type Canvas struct {
	cells  []rune
	width  int
	height int
}

// NewCanvas creates a canvas of the given size filled with spaces.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = ' '
	}
	return &Canvas{cells: cells, width: width, height: height}
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in rows.
func (c *Canvas) Height() int {
	return c.height
}

// Rect returns the canvas bounds as a Rect starting at (0, 0).
func (c *Canvas) Rect() layout.Rect {
	return layout.NewRect(0, 0, c.width, c.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (c *Canvas) idx(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return -1
	}
	return y*c.width + x
}

// Rune returns the rune at (x, y), or 0 when out of bounds. The second
// cell of a wide rune reads as 0 too.
func (c *Canvas) Rune(x, y int) rune {
	i := c.idx(x, y)
	if i < 0 || c.cells[i] == continuation {
		return 0
	}
	return c.cells[i]
}

// SetRune places r at (x, y). A wide rune also takes the next cell and is
// replaced by a space when it does not fit. Wide runes partly overwritten
// are cleared.
func (c *Canvas) SetRune(x, y int, r rune) {
	i := c.idx(x, y)
	if i < 0 {
		return
	}

	w := runewidth.RuneWidth(r)
	c.clearWide(x, y)
	if w == 2 {
		if x+1 >= c.width {
			c.cells[i] = ' '
			return
		}
		c.clearWide(x+1, y)
		c.cells[i] = r
		c.cells[i+1] = continuation
		return
	}
	c.cells[i] = r
}

// clearWide blanks the wide rune covering (x, y), if any.
func (c *Canvas) clearWide(x, y int) {
	i := c.idx(x, y)
	if i < 0 {
		return
	}
	switch {
	case c.cells[i] == continuation:
		c.cells[i] = ' '
		if x > 0 {
			c.cells[i-1] = ' '
		}
	case runewidth.RuneWidth(c.cells[i]) == 2 && x+1 < c.width:
		c.cells[i+1] = ' '
	}
}

// SetStringClipped writes s starting at (x, y), dropping runes outside
// clip. Returns the display width written.
func (c *Canvas) SetStringClipped(x, y int, s string, clip layout.Rect) int {
	clip = clip.Intersect(c.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	total := 0
	cur := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if cur >= clip.Right() {
			break
		}
		if cur >= clip.X && cur+w <= clip.Right() {
			c.SetRune(cur, y, r)
			total += w
		}
		cur += w
	}
	return total
}

// Fill fills rect with r.
func (c *Canvas) Fill(rect layout.Rect, r rune) {
	rect = rect.Intersect(c.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			c.SetRune(x, y, r)
		}
	}
}

// String renders the canvas with rows separated by newlines.
func (c *Canvas) String() string {
	return c.render(false)
}

// StringTrimmed renders the canvas with trailing spaces removed from each
// row.
func (c *Canvas) StringTrimmed() string {
	return c.render(true)
}

func (c *Canvas) render(trim bool) string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		var line strings.Builder
		for _, r := range c.cells[y*c.width : (y+1)*c.width] {
			if r != continuation {
				line.WriteRune(r)
			}
		}
		row := line.String()
		if trim {
			row = strings.TrimRight(row, " ")
		}
		sb.WriteString(row)
		if y < c.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
