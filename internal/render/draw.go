package render

import (
	"github.com/grindlemire/go-webobj/internal/layout"
)

// Options control how Draw maps geometry to cells.
type Options struct {
	// Scale is the number of layout units per cell. Zero means 1.
	Scale int

	// Titles writes node names into container borders.
	Titles bool
}

// lines is implemented by text content that can report its wrapped rows.
type lines interface {
	Lines(width int) []string
}

var kindBorders = map[layout.Kind]BorderStyle{
	layout.KindContainer: BorderSingle,
	layout.KindPanel:     BorderRounded,
	layout.KindFloat:     BorderDouble,
}

// Draw renders the laid out subtree at root onto a canvas large enough to
// hold every visible node, with root's top-left corner at cell (0, 0).
// Hosts get a border per kind; controls show their text, or their name when
// they have none.
func Draw(tree *layout.Tree, root layout.NodeID, opts Options) *Canvas {
	scale := max(opts.Scale, 1)
	origin := tree.Layout(root).Rect
	cell := func(r layout.Rect) layout.Rect {
		r = r.Translate(-origin.X, -origin.Y)
		x, y := r.X/scale, r.Y/scale
		return layout.NewRect(x, y, ceilDiv(r.Right(), scale)-x, ceilDiv(r.Bottom(), scale)-y)
	}

	width, height := 0, 0
	visible(tree, root, func(id layout.NodeID) {
		r := cell(tree.Layout(id).Rect)
		width, height = max(width, r.Right()), max(height, r.Bottom())
	})

	c := NewCanvas(width, height)
	visible(tree, root, func(id layout.NodeID) {
		l := tree.Layout(id)
		rect := cell(l.Rect)
		if rect.IsEmpty() {
			return
		}

		if tree.Kind(id) != layout.KindControl {
			if opts.Titles {
				DrawBoxWithTitle(c, rect, kindBorders[tree.Kind(id)], tree.Name(id))
			} else {
				DrawBox(c, rect, kindBorders[tree.Kind(id)])
			}
			return
		}

		content := cell(l.ContentRect)
		c.Fill(rect, ' ')
		text, ok := tree.Content(id).(lines)
		if !ok {
			c.SetStringClipped(content.X, content.Y, tree.Name(id), content)
			return
		}
		for i, row := range text.Lines(l.ContentRect.Width) {
			c.SetStringClipped(content.X, content.Y+i, row, content)
		}
	})
	return c
}

// visible calls fn for every visible node below root, parents first.
func visible(tree *layout.Tree, root layout.NodeID, fn func(layout.NodeID)) {
	tree.Walk(root, func(id layout.NodeID, _ int) bool {
		if tree.Config(id).Hidden {
			return false
		}
		fn(id)
		return true
	})
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
