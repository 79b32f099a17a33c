package layout

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEngine_BandApportionment(t *testing.T) {
	tree := NewTree()
	root := add(t, tree, None, "root", KindContainer, nil)
	top := add(t, tree, root, "top", KindPanel, func(c *Config) { c.Region = RegionTop; c.Height = 40 })
	bottom := add(t, tree, root, "bottom", KindPanel, func(c *Config) { c.Region = RegionBottom; c.Height = 30 })
	center := add(t, tree, root, "center", KindPanel, func(c *Config) { c.Fill = true })

	e, _ := setup(tree, root, 500, 300)
	resize(t, e)

	assertRect(t, tree, root, NewRect(0, 0, 500, 300))
	assertRect(t, tree, top, NewRect(0, 0, 500, 40))
	assertRect(t, tree, center, NewRect(0, 40, 500, 230))
	assertRect(t, tree, bottom, NewRect(0, 270, 500, 30))

	if m := tree.Measured(root); !m.Stretch || m.WantedHeight != 70 {
		t.Errorf("root measurement = %+v, want stretch with wanted 70", m)
	}
	if m := tree.Measured(top); m.Stretch {
		t.Error("top panel should never stretch")
	}
}

func TestEngine_BandShrinksToContent(t *testing.T) {
	tree := NewTree()
	root := add(t, tree, None, "root", KindContainer, nil)
	add(t, tree, root, "top", KindPanel, func(c *Config) { c.Region = RegionTop; c.Height = 40 })
	left := add(t, tree, root, "left", KindPanel, func(c *Config) { c.Region = RegionLeft; c.Height = 20 })
	center := add(t, tree, root, "center", KindPanel, func(c *Config) { c.Height = 50 })
	bottom := add(t, tree, root, "bottom", KindPanel, func(c *Config) { c.Region = RegionBottom; c.Height = 30 })

	e, _ := setup(tree, root, 500, 300)
	resize(t, e)

	if got := tree.Layout(root).Rect.Height; got != 120 {
		t.Errorf("root height = %d, want 120", got)
	}
	// Band panels all take the band height.
	if got := tree.Layout(left).Rect.Height; got != 50 {
		t.Errorf("left height = %d, want 50", got)
	}
	if got := tree.Layout(center).Rect.Y; got != 40 {
		t.Errorf("center y = %d, want 40", got)
	}
	if got := tree.Layout(bottom).Rect.Y; got != 90 {
		t.Errorf("bottom y = %d, want 90", got)
	}
}

func TestEngine_HostGrowsForDockedPanels(t *testing.T) {
	tree := NewTree()
	root := add(t, tree, None, "root", KindContainer, func(c *Config) { c.Height = 50 })
	add(t, tree, root, "top", KindPanel, func(c *Config) { c.Region = RegionTop; c.Height = 40 })
	add(t, tree, root, "center", KindPanel, nil)
	bottom := add(t, tree, root, "bottom", KindPanel, func(c *Config) { c.Region = RegionBottom; c.Height = 30 })

	e, _ := setup(tree, root, 500, 300)
	resize(t, e)

	l := tree.Layout(root)
	if l.Rect.Height != 70 {
		t.Errorf("root height = %d, want 70 (grown by the 20px shortfall)", l.Rect.Height)
	}
	if l.ScrollHeight != 70 {
		t.Errorf("root ScrollHeight = %d, want 70", l.ScrollHeight)
	}
	assertRect(t, tree, bottom, NewRect(0, 40, 500, 30))
}

func TestEngine_PanelWidths(t *testing.T) {
	type tc struct {
		leftWidth, rightWidth int
		noRight               bool
		band                  int
		left, right           int
	}

	tests := map[string]tc{
		"left computed from right": {
			rightWidth: 100,
			band:       500,
			left:       200,
			right:      100,
		},
		"both computed": {
			band:  300,
			left:  100,
			right: 100,
		},
		"both explicit": {
			leftWidth:  50,
			rightWidth: 70,
			band:       400,
			left:       50,
			right:      70,
		},
		"right absent": {
			noRight: true,
			band:    500,
			left:    250,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := NewTree()
			root := add(t, tree, None, "root", KindContainer, nil)
			left := add(t, tree, root, "left", KindPanel, func(c *Config) {
				c.Region = RegionLeft
				c.Width = tt.leftWidth
			})
			center := add(t, tree, root, "center", KindPanel, nil)
			right := add(t, tree, root, "right", KindPanel, func(c *Config) {
				c.Region = RegionRight
				c.Width = tt.rightWidth
				c.Hidden = tt.noRight
			})

			e, _ := setup(tree, root, tt.band, 100)
			resize(t, e)

			lo, ro := tree.CenterOffsets(root)
			if lo != tt.left || ro != tt.right {
				t.Errorf("CenterOffsets() = (%d, %d), want (%d, %d)", lo, ro, tt.left, tt.right)
			}
			if got := tree.Layout(left).Rect.Width; got != tt.left {
				t.Errorf("left width = %d, want %d", got, tt.left)
			}
			if got := tree.Layout(right).Rect.Width; got != tt.right {
				t.Errorf("right width = %d, want %d", got, tt.right)
			}
			c := tree.Layout(center).Rect
			if c.X != tt.left || c.Width != tt.band-tt.left-tt.right {
				t.Errorf("center = x %d width %d, want x %d width %d",
					c.X, c.Width, tt.left, tt.band-tt.left-tt.right)
			}
		})
	}
}

func TestEngine_FlowRows(t *testing.T) {
	tree := NewTree()
	root := add(t, tree, None, "root", KindContainer, func(c *Config) { c.ColumnCount = 12 })
	a := control(t, tree, root, "a", 10, func(c *Config) { c.ColumnSpan = 12 })
	b := control(t, tree, root, "b", 20, func(c *Config) { c.ColumnSpan = 6 })
	c := control(t, tree, root, "c", 30, func(c *Config) { c.ColumnSpan = 6 })

	e, _ := setup(tree, root, 600, 400)
	resize(t, e)

	assertRect(t, tree, root, NewRect(0, 0, 600, 40))
	assertRect(t, tree, a, NewRect(0, 0, 600, 10))
	assertRect(t, tree, b, NewRect(0, 10, 300, 20))
	assertRect(t, tree, c, NewRect(300, 10, 300, 30))

	slot, ok := tree.FlowSlot(c)
	if !ok {
		t.Fatal("FlowSlot(c) not found")
	}
	if slot.Row != 1 || slot.MarginBP != 0 || slot.WidthBP != 4998 {
		t.Errorf("FlowSlot(c) = %+v, want row 1, margin 0, 4998bp", slot)
	}
	if slot, _ := tree.FlowSlot(a); slot.Percent() != 100 {
		t.Errorf("FlowSlot(a).Percent() = %v, want 100", slot.Percent())
	}
}

func TestEngine_FlowStretch(t *testing.T) {
	type tc struct {
		height   int
		reserve  int
		children []bool // true = fill
		expected []Rect
	}

	tests := map[string]tc{
		"fill takes the rest less the reserve": {
			height:   100,
			reserve:  DefaultRoundingReserve,
			children: []bool{false, true},
			expected: []Rect{NewRect(0, 0, 200, 20), NewRect(0, 20, 200, 79)},
		},
		"no reserve": {
			height:   100,
			children: []bool{false, true},
			expected: []Rect{NewRect(0, 0, 200, 20), NewRect(0, 20, 200, 80)},
		},
		"two fill rows share 101": {
			height:   101,
			reserve:  DefaultRoundingReserve,
			children: []bool{true, true},
			expected: []Rect{NewRect(0, 0, 200, 49), NewRect(0, 49, 200, 51)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := NewTree()
			root := add(t, tree, None, "root", KindContainer, nil)
			var ids []NodeID
			for i, fill := range tt.children {
				h := 20
				if fill {
					h = 0
				}
				ids = append(ids, control(t, tree, root, string(rune('a'+i)), h, func(c *Config) { c.Fill = fill }))
			}

			s := NewMemorySurface(tree, 200, tt.height)
			opts := DefaultOptions()
			opts.RoundingReserve = tt.reserve
			e := NewEngine(tree, s, root, opts)
			resize(t, e)

			for i, id := range ids {
				assertRect(t, tree, id, tt.expected[i])
				if got := s.Geometry(id); got != tt.expected[i] {
					t.Errorf("surface geometry of %s = %+v, want %+v", tree.Path(id), got, tt.expected[i])
				}
			}
		})
	}
}

func TestEngine_Grid(t *testing.T) {
	tree := NewTree()
	root := add(t, tree, None, "root", KindContainer, func(c *Config) {
		c.Strategy = StrategyGrid
		c.Columns = "0/100px 1/1fr"
	})
	a := control(t, tree, root, "a", 10, nil)
	b := control(t, tree, root, "b", 20, nil)
	c := control(t, tree, root, "c", 30, nil)
	d := control(t, tree, root, "d", 5, nil)

	e, _ := setup(tree, root, 400, 300)
	resize(t, e)

	assertRect(t, tree, root, NewRect(0, 0, 400, 50))
	assertRect(t, tree, a, NewRect(0, 0, 100, 10))
	assertRect(t, tree, b, NewRect(100, 0, 300, 20))
	assertRect(t, tree, c, NewRect(0, 20, 100, 30))
	assertRect(t, tree, d, NewRect(100, 20, 300, 5))

	im := tree.node(root).host.(*itemModel)
	if diff := cmp.Diff([]int{100, 300}, im.colSizes); diff != "" {
		t.Errorf("column sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestEngine_GridFractionRows(t *testing.T) {
	tree := NewTree()
	root := add(t, tree, None, "root", KindContainer, func(c *Config) {
		c.Strategy = StrategyGrid
		c.Columns = "0/1fr 1/1fr"
		c.Rows = "1/1fr"
	})
	control(t, tree, root, "a", 10, nil)
	control(t, tree, root, "b", 20, nil)
	c := control(t, tree, root, "c", 30, func(c *Config) { c.Fill = true })

	e, _ := setup(tree, root, 400, 300)
	resize(t, e)

	if m := tree.Measured(root); !m.Stretch {
		t.Error("grid with a fraction row should stretch")
	}
	im := tree.node(root).host.(*itemModel)
	if diff := cmp.Diff([]int{20, 280}, im.rowSizes); diff != "" {
		t.Errorf("row sizes mismatch (-want +got):\n%s", diff)
	}
	assertRect(t, tree, c, NewRect(0, 20, 200, 280))
}

func TestEngine_GridAutoColumns(t *testing.T) {
	type tc struct {
		columns string
		def     string
		a, b    Rect
	}

	tests := map[string]tc{
		"auto takes the default 1fr": {
			columns: "0/auto 1/1fr",
			a:       NewRect(0, 0, 200, 10),
			b:       NewRect(200, 0, 200, 20),
		},
		"auto takes a fixed default": {
			columns: "0/auto 1/1fr",
			def:     "50",
			a:       NewRect(0, 0, 50, 10),
			b:       NewRect(50, 0, 350, 20),
		},
		"unknown token behaves like auto": {
			columns: "0/min-content 1/100px",
			a:       NewRect(0, 0, 300, 10),
			b:       NewRect(300, 0, 100, 20),
		},
		"auto default": {
			columns: "0/auto 1/auto",
			def:     "auto",
			a:       NewRect(0, 0, 200, 10),
			b:       NewRect(200, 0, 200, 20),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := NewTree()
			root := add(t, tree, None, "root", KindContainer, func(c *Config) {
				c.Strategy = StrategyGrid
				c.Columns = tt.columns
				c.DefaultColumnWidth = tt.def
			})
			a := control(t, tree, root, "a", 10, nil)
			b := control(t, tree, root, "b", 20, nil)

			e, _ := setup(tree, root, 400, 300)
			resize(t, e)

			assertRect(t, tree, a, tt.a)
			assertRect(t, tree, b, tt.b)
		})
	}
}

func TestEngine_GridExplicitPlacement(t *testing.T) {
	tree := NewTree()
	root := add(t, tree, None, "root", KindContainer, func(c *Config) {
		c.Strategy = StrategyGrid
		c.Rows = "0/25"
		c.MinColumns = 3
	})
	wide := control(t, tree, root, "wide", 10, func(c *Config) {
		c.Row, c.Column, c.ColumnSpan = 0, 1, 2
	})
	tall := control(t, tree, root, "tall", 60, func(c *Config) {
		c.Row, c.Column, c.RowSpan = 0, 0, 2
	})

	e, _ := setup(tree, root, 300, 300)
	resize(t, e)

	im := tree.node(root).host.(*itemModel)
	// Fixed row 0 keeps 25px; the spanning item pushes its shortfall into row 1.
	if diff := cmp.Diff([]int{25, 35}, im.rowSizes); diff != "" {
		t.Errorf("row sizes mismatch (-want +got):\n%s", diff)
	}
	assertRect(t, tree, wide, NewRect(100, 0, 200, 10))
	assertRect(t, tree, tall, NewRect(0, 0, 100, 60))
}

func TestEngine_BoxModel(t *testing.T) {
	tree := NewTree()
	root := add(t, tree, None, "root", KindContainer, func(c *Config) { c.Padding = EdgeAll(2) })
	child := control(t, tree, root, "child", 10, func(c *Config) { c.Margin = EdgeSymmetric(1, 3) })

	e, _ := setup(tree, root, 100, 50)
	resize(t, e)

	l := tree.Layout(root)
	if l.Rect != NewRect(0, 0, 100, 16) {
		t.Errorf("root Rect = %+v, want {0 0 100 16}", l.Rect)
	}
	if l.ContentRect != NewRect(2, 2, 96, 12) {
		t.Errorf("root ContentRect = %+v, want {2 2 96 12}", l.ContentRect)
	}
	assertRect(t, tree, child, NewRect(5, 3, 90, 10))
	if m := tree.Measured(child); m.WantedHeight != 12 {
		t.Errorf("child WantedHeight = %d, want 12 (margin included)", m.WantedHeight)
	}
}

func TestEngine_HeightResolution(t *testing.T) {
	type tc struct {
		content  int
		cfg      func(*Config)
		wanted   int
		min      int
		stretch  bool
		expected int
	}

	tests := map[string]tc{
		"natural": {
			content: 12, wanted: 12, min: 12, expected: 12,
		},
		"explicit height wins": {
			content: 12, cfg: func(c *Config) { c.Height = 30; c.Fill = true },
			wanted: 30, min: 30, expected: 30,
		},
		"min height floors": {
			content: 5, cfg: func(c *Config) { c.MinHeight = 20 },
			wanted: 20, min: 20, expected: 20,
		},
		"scroll drops content minimum": {
			content: 50, cfg: func(c *Config) { c.Scroll = true },
			wanted: 50, min: 0, expected: 50,
		},
		"scrolling view fills": {
			content: 50, cfg: func(c *Config) { c.Scroll = true; c.FillView = true },
			wanted: 50, min: 0, stretch: true, expected: 79,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := NewTree()
			root := add(t, tree, None, "root", KindContainer, nil)
			id := control(t, tree, root, "x", tt.content, tt.cfg)

			e, _ := setup(tree, root, 100, 80)
			resize(t, e)

			m := tree.Measured(id)
			if m.WantedHeight != tt.wanted || m.MinHeight != tt.min || m.Stretch != tt.stretch {
				t.Errorf("Measured() = %+v, want wanted %d min %d stretch %v", m, tt.wanted, tt.min, tt.stretch)
			}
			if got := tree.Layout(id).Rect.Height; got != tt.expected {
				t.Errorf("height = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestEngine_ScrollHeight(t *testing.T) {
	tree := NewTree()
	root := add(t, tree, None, "root", KindContainer, nil)
	view := add(t, tree, root, "view", KindContainer, func(c *Config) { c.Scroll = true; c.Height = 50 })
	control(t, tree, view, "long", 200, nil)

	e, _ := setup(tree, root, 100, 100)
	resize(t, e)

	l := tree.Layout(view)
	if l.Rect.Height != 50 {
		t.Errorf("view height = %d, want 50", l.Rect.Height)
	}
	if l.ScrollHeight != 200 {
		t.Errorf("view ScrollHeight = %d, want 200", l.ScrollHeight)
	}
}

func TestEngine_ScrollingPanelHost(t *testing.T) {
	type tc struct {
		content int
		center  Rect
		bottom  Rect
		scroll  int
	}

	tests := map[string]tc{
		"band overflows the budget": {
			content: 200,
			center:  NewRect(0, 10, 100, 200),
			bottom:  NewRect(0, 210, 100, 10),
			scroll:  220,
		},
		"short band takes the remainder": {
			content: 20,
			center:  NewRect(0, 10, 100, 40),
			bottom:  NewRect(0, 50, 100, 10),
			scroll:  60,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := NewTree()
			root := add(t, tree, None, "root", KindContainer, nil)
			view := add(t, tree, root, "view", KindContainer, func(c *Config) { c.Scroll = true; c.Height = 60 })
			top := add(t, tree, view, "top", KindPanel, func(c *Config) { c.Region = RegionTop; c.Height = 10 })
			center := add(t, tree, view, "center", KindPanel, nil)
			control(t, tree, center, "body", tt.content, nil)
			bottom := add(t, tree, view, "bottom", KindPanel, func(c *Config) { c.Region = RegionBottom; c.Height = 10 })

			e, _ := setup(tree, root, 100, 100)
			resize(t, e)

			assertRect(t, tree, view, NewRect(0, 0, 100, 60))
			assertRect(t, tree, top, NewRect(0, 0, 100, 10))
			assertRect(t, tree, center, tt.center)
			assertRect(t, tree, bottom, tt.bottom)
			if got := tree.Layout(view).ScrollHeight; got != tt.scroll {
				t.Errorf("view ScrollHeight = %d, want %d", got, tt.scroll)
			}
		})
	}
}

func TestEngine_MinWidthBoundsInnerWidth(t *testing.T) {
	type tc struct {
		minWidth int
		host     Rect
		content  int
	}

	tests := map[string]tc{
		"below the slot has no effect": {minWidth: 50, host: NewRect(0, 0, 100, 20), content: 90},
		"equal to the inner width":     {minWidth: 90, host: NewRect(0, 0, 100, 20), content: 90},
		"wider than the slot":          {minWidth: 150, host: NewRect(0, 0, 160, 20), content: 150},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := NewTree()
			root := add(t, tree, None, "root", KindContainer, nil)
			host := add(t, tree, root, "host", KindContainer, func(c *Config) {
				c.Padding = EdgeAll(5)
				c.MinWidth = tt.minWidth
			})
			item := control(t, tree, host, "item", 10, nil)

			e, _ := setup(tree, root, 100, 100)
			resize(t, e)

			assertRect(t, tree, host, tt.host)
			if got := tree.Layout(host).ContentRect.Width; got != tt.content {
				t.Errorf("host inner width = %d, want %d", got, tt.content)
			}
			assertRect(t, tree, item, NewRect(5, 5, tt.content, 10))
		})
	}
}

func TestEngine_HiddenAndFloats(t *testing.T) {
	tree := NewTree()
	root := add(t, tree, None, "root", KindContainer, func(c *Config) { c.ColumnCount = 2 })
	a := control(t, tree, root, "a", 10, func(c *Config) { c.ColumnSpan = 1 })
	hidden := control(t, tree, root, "hidden", 10, func(c *Config) { c.ColumnSpan = 1; c.Hidden = true })
	b := control(t, tree, root, "b", 10, func(c *Config) { c.ColumnSpan = 1 })
	popup := add(t, tree, root, "popup", KindFloat, nil)
	item := control(t, tree, popup, "item", 15, nil)

	e, s := setup(tree, root, 200, 100)
	s.SetClientSize(popup, 80, 40)
	resize(t, e)

	assertRect(t, tree, a, NewRect(0, 0, 100, 10))
	assertRect(t, tree, b, NewRect(100, 0, 100, 10))
	assertRect(t, tree, hidden, Rect{})
	assertRect(t, tree, root, NewRect(0, 0, 200, 10))
	assertRect(t, tree, popup, NewRect(0, 0, 80, 15))
	assertRect(t, tree, item, NewRect(0, 0, 80, 15))
}

func TestEngine_Idempotent(t *testing.T) {
	tree := NewTree()
	root := add(t, tree, None, "root", KindContainer, nil)
	add(t, tree, root, "top", KindPanel, func(c *Config) { c.Region = RegionTop; c.Height = 20 })
	center := add(t, tree, root, "center", KindPanel, func(c *Config) { c.ColumnCount = 3 })
	for _, name := range []string{"x", "y", "z", "w"} {
		add(t, tree, center, name, KindControl, func(c *Config) { c.ColumnSpan = 1 })
	}
	text := add(t, tree, center, "text", KindControl, nil)
	if err := tree.SetContent(text, ContentFunc(func(w int) int { return 600 / max(w, 1) })); err != nil {
		t.Fatal(err)
	}

	e, s := setup(tree, root, 300, 200)
	resize(t, e)

	snapshot := func() map[string]Layout {
		out := make(map[string]Layout)
		tree.Walk(root, func(id NodeID, _ int) bool {
			out[tree.Path(id)] = tree.Layout(id)
			return true
		})
		return out
	}
	first := snapshot()
	if got := tree.Layout(text).Rect.Height; got != 2 {
		t.Errorf("text height = %d, want 2 (re-measured at width 300)", got)
	}

	s.ResetWrites()
	resize(t, e)
	if diff := cmp.Diff(first, snapshot()); diff != "" {
		t.Errorf("second pass changed geometry (-first +second):\n%s", diff)
	}
	if s.Writes() != 0 {
		t.Errorf("second pass wrote %d times to the surface, want 0", s.Writes())
	}
}

func TestEngine_IncrementalRemeasure(t *testing.T) {
	tree := NewTree()
	root := add(t, tree, None, "root", KindContainer, nil)
	a := add(t, tree, root, "a", KindContainer, nil)
	b := add(t, tree, root, "b", KindContainer, nil)

	calls := map[string]int{}
	counted := func(name string, h *int) Content {
		return ContentFunc(func(int) int { calls[name]++; return *h })
	}
	hA, hB := 10, 10
	ctlA := add(t, tree, a, "ctl-a", KindControl, nil)
	ctlB := add(t, tree, b, "ctl-b", KindControl, nil)
	tree.SetContent(ctlA, counted("a", &hA))
	tree.SetContent(ctlB, counted("b", &hB))

	e, _ := setup(tree, root, 100, 100)
	resize(t, e)
	clear(calls)

	hA = 25
	if err := e.NotifySizeChanged(ctlA, false); err != nil {
		t.Fatalf("NotifySizeChanged() error = %v", err)
	}
	if err := e.Flush(context.Background()); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if calls["a"] != 1 || calls["b"] != 0 {
		t.Errorf("measure calls = %v, want a:1 b:0", calls)
	}
	if m := tree.Measured(ctlA); !m.WantedChanged {
		t.Error("WantedChanged = false after content grew")
	}
	assertRect(t, tree, b, NewRect(0, 25, 100, 10))
	assertRect(t, tree, root, NewRect(0, 0, 100, 35))

	clear(calls)
	if err := e.NotifySizeChanged(root, true); err != nil {
		t.Fatalf("NotifySizeChanged(cascade) error = %v", err)
	}
	resize(t, e)
	if calls["a"] != 1 || calls["b"] != 1 {
		t.Errorf("cascade measure calls = %v, want a:1 b:1", calls)
	}
}

func TestEngine_ViewportChange(t *testing.T) {
	tree := NewTree()
	root := add(t, tree, None, "root", KindContainer, nil)
	text := add(t, tree, root, "text", KindControl, nil)
	tree.SetContent(text, ContentFunc(func(w int) int { return 100 / max(w, 1) }))

	e, s := setup(tree, root, 50, 100)
	resize(t, e)
	if got := tree.Layout(text).Rect.Height; got != 2 {
		t.Fatalf("height at width 50 = %d, want 2", got)
	}

	sig := &fakeSignal{}
	stop := e.Watch(sig)
	sig.emit(25, 100)
	if !e.Pending() {
		t.Error("Pending() = false after a viewport change")
	}
	if got := s.Viewport(); got != (Size{Width: 25, Height: 100}) {
		t.Errorf("Viewport() = %+v, want 25x100", got)
	}
	if err := e.Flush(context.Background()); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	assertRect(t, tree, text, NewRect(0, 0, 25, 4))

	stop()
	if len(sig.subs) != 0 {
		t.Error("stop() did not cancel the subscription")
	}
}

func TestEngine_ConfigErrors(t *testing.T) {
	type tc struct {
		host  func(*Config)
		field string
		is    error
	}

	tests := map[string]tc{
		"zero column count": {
			host:  func(c *Config) { c.ColumnCount = 0 },
			field: "column-count",
			is:    ErrColumnCount,
		},
		"malformed columns": {
			host:  func(c *Config) { c.Strategy = StrategyGrid; c.Columns = "1fr" },
			field: "columns",
			is:    ErrMalformedTemplate,
		},
		"malformed rows": {
			host:  func(c *Config) { c.Strategy = StrategyGrid; c.Rows = "0/-1" },
			field: "rows",
			is:    ErrMalformedTemplate,
		},
		"malformed default row": {
			host:  func(c *Config) { c.Strategy = StrategyGrid; c.DefaultRowHeight = "-3px" },
			field: "default-row-height",
			is:    ErrMalformedTemplate,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := NewTree()
			root := add(t, tree, None, "root", KindContainer, nil)
			host := add(t, tree, root, "host", KindContainer, tt.host)
			control(t, tree, host, "x", 10, nil)

			e, _ := setup(tree, root, 100, 100)
			err := e.Resize(context.Background(), root)
			if !errors.Is(err, tt.is) {
				t.Errorf("error = %v, want %v", err, tt.is)
			}
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("error = %v, want ErrConfiguration", err)
			}
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("error %T is not a *ConfigError", err)
			}
			if ce.Node != "root/host" || ce.Field != tt.field {
				t.Errorf("ConfigError = {%s %s}, want {root/host %s}", ce.Node, ce.Field, tt.field)
			}
		})
	}
}

func TestEngine_StrategyInherited(t *testing.T) {
	tree := NewTree()
	root := add(t, tree, None, "root", KindContainer, func(c *Config) { c.Strategy = StrategyGrid })
	inner := add(t, tree, root, "inner", KindContainer, nil)
	control(t, tree, inner, "x", 10, nil)

	e, _ := setup(tree, root, 100, 100)
	resize(t, e)

	if im := tree.node(inner).host.(*itemModel); im.strategy != StrategyGrid {
		t.Errorf("inner strategy = %v, want grid", im.strategy)
	}
	if _, ok := tree.FlowSlot(tree.Find(root, "x")); ok {
		t.Error("FlowSlot() should not report grid items")
	}
}

func TestEngine_UnknownNode(t *testing.T) {
	tree := NewTree()
	root := add(t, tree, None, "root", KindContainer, nil)
	e, _ := setup(tree, root, 10, 10)

	gone := tree.NewNode("gone", KindControl, DefaultConfig())
	tree.Destroy(gone)

	if err := e.Resize(context.Background(), gone); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("Resize() error = %v, want ErrUnknownNode", err)
	}
	if _, err := e.Measure(gone); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("Measure() error = %v, want ErrUnknownNode", err)
	}
	if err := e.NotifySizeChanged(gone, false); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("NotifySizeChanged() error = %v, want ErrUnknownNode", err)
	}
}

func TestEngine_PhasesCallableSeparately(t *testing.T) {
	tree := NewTree()
	root := add(t, tree, None, "root", KindContainer, nil)
	x := control(t, tree, root, "x", 10, nil)
	e, s := setup(tree, root, 100, 100)

	tree.node(root).slot = NewRect(0, 0, 100, 100)
	if err := e.Position(root); err != nil {
		t.Fatalf("Position() error = %v", err)
	}
	m, err := e.Measure(root)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if m.WantedHeight != 10 {
		t.Errorf("Measure().WantedHeight = %d, want 10", m.WantedHeight)
	}
	if err := e.ResizeHorizontal(root); err != nil {
		t.Fatalf("ResizeHorizontal() error = %v", err)
	}
	if err := e.ResizeVertical(root); err != nil {
		t.Fatalf("ResizeVertical() error = %v", err)
	}
	if got := s.Geometry(x); got != NewRect(0, 0, 100, 10) {
		t.Errorf("Geometry(x) = %+v, want {0 0 100 10}", got)
	}
}

type fakeSignal struct {
	subs map[int]func(int, int)
	next int
}

func (f *fakeSignal) Subscribe(fn func(width, height int)) func() {
	if f.subs == nil {
		f.subs = make(map[int]func(int, int))
	}
	id := f.next
	f.next++
	f.subs[id] = fn
	return func() { delete(f.subs, id) }
}

func (f *fakeSignal) emit(w, h int) {
	for _, fn := range f.subs {
		fn(w, h)
	}
}
