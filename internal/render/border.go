package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-webobj/internal/layout"
)

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderSingle
	BorderDouble
	BorderRounded
	BorderThick
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft, Top, TopRight          rune
	Left, Right                     rune
	BottomLeft, Bottom, BottomRight rune
}

var borderChars = map[BorderStyle]BorderChars{
	BorderSingle:  {'┌', '─', '┐', '│', '│', '└', '─', '┘'},
	BorderDouble:  {'╔', '═', '╗', '║', '║', '╚', '═', '╝'},
	BorderRounded: {'╭', '─', '╮', '│', '│', '╰', '─', '╯'},
	BorderThick:   {'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'},
}

// Chars returns the box-drawing characters for this border style. Unknown
// styles draw spaces.
func (b BorderStyle) Chars() BorderChars {
	if ch, ok := borderChars[b]; ok {
		return ch
	}
	return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
}

// DrawBox draws a border along the edge of rect. Rects smaller than 2x2
// are skipped. Edges outside the canvas are clipped.
func DrawBox(c *Canvas, rect layout.Rect, border BorderStyle) {
	if border == BorderNone || rect.Width < 2 || rect.Height < 2 {
		return
	}
	ch := border.Chars()

	left, right := rect.X, rect.Right()-1
	top, bottom := rect.Y, rect.Bottom()-1

	c.SetRune(left, top, ch.TopLeft)
	c.SetRune(right, top, ch.TopRight)
	c.SetRune(left, bottom, ch.BottomLeft)
	c.SetRune(right, bottom, ch.BottomRight)
	for x := left + 1; x < right; x++ {
		c.SetRune(x, top, ch.Top)
		c.SetRune(x, bottom, ch.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		c.SetRune(left, y, ch.Left)
		c.SetRune(right, y, ch.Right)
	}
}

// DrawBoxWithTitle draws a box with title set into the top edge, truncated
// to fit between the corners.
func DrawBoxWithTitle(c *Canvas, rect layout.Rect, border BorderStyle, title string) {
	DrawBox(c, rect, border)
	if border == BorderNone || title == "" || rect.Width < 4 || rect.Height < 2 {
		return
	}
	room := rect.Width - 2
	title = runewidth.Truncate(title, room, "…")
	edge := layout.NewRect(rect.X+1, rect.Y, room, 1)
	c.SetStringClipped(rect.X+1, rect.Y, title, edge)
}
