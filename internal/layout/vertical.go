package layout

// resizeVertical assigns the height of id, apportions its content height
// among its children and recurses. Stale nodes are measured first.
func (e *Engine) resizeVertical(id NodeID) error {
	n := e.tree.node(id)
	if n.state != StateClean {
		if _, err := e.measure(id); err != nil {
			return err
		}
	}
	if n.config.Hidden {
		n.layout.Rect.Y, n.layout.Rect.Height = n.slot.Y, 0
		n.layout.ContentRect.Y, n.layout.ContentRect.Height = n.slot.Y, 0
		n.layout.ScrollHeight = 0
		e.applyHeight(id, n.slot.Y, 0)
		return nil
	}

	m := n.measured
	h := m.WantedHeight
	if m.Stretch || e.inBand(id) {
		h = n.slot.Height
	}
	h = max(h, m.MinHeight)

	margin := e.surface.Box(id, BoxOuter)
	inner := e.surface.Box(id, BoxInner|BoxContentOuter|BoxContentInner)
	y := n.slot.Y + margin.Top
	height := nonNegative(h - margin.Vertical())
	n.layout.Rect.Y, n.layout.Rect.Height = y, height
	n.layout.ContentRect.Y = y + inner.Top
	n.layout.ContentRect.Height = nonNegative(height - inner.Vertical())

	extent := n.layout.ContentRect.Height
	switch hm := n.host.(type) {
	case *regionModel:
		used, grow := e.dockVertical(id, hm)
		if grow > 0 {
			n.layout.Rect.Height += grow
			n.layout.ContentRect.Height += grow
		}
		extent = used
	case *itemModel:
		if hm.strategy == StrategyGrid {
			extent = e.gridVertical(id, hm)
		} else {
			extent = e.flowVertical(id, hm)
		}
	default:
		if n.content != nil {
			extent = n.natural
		}
	}
	n.layout.ScrollHeight = max(extent, n.layout.ContentRect.Height)
	e.applyHeight(id, n.layout.Rect.Y, n.layout.Rect.Height)

	for _, c := range n.children {
		if e.tree.node(c).kind == KindFloat {
			continue
		}
		if err := e.resizeVertical(c); err != nil {
			return err
		}
	}
	return nil
}

// inBand reports whether id is docked in the middle band of a panel host.
// Band panels take the band height whatever they want.
func (e *Engine) inBand(id NodeID) bool {
	return e.dockedIn(id).band()
}

// grantY sets the vertical part of a child's slot.
func (e *Engine) grantY(id NodeID, y, height int) {
	s := &e.tree.node(id).slot
	s.Y, s.Height = y, nonNegative(height)
}

// dockVertical resolves Top, then Bottom, then the middle band. Top and
// Bottom always get their wanted height; when they do not fit the host
// grows by the shortfall instead of clipping them. It returns the height
// used by the panels and the growth.
func (e *Engine) dockVertical(id NodeID, h *regionModel) (used, grow int) {
	n := e.tree.node(id)
	cr := n.layout.ContentRect
	r := h.resolve()
	remaining := cr.Height

	take := func(p NodeID) int {
		if !e.rendered(p) {
			return 0
		}
		want := e.tree.node(p).measured.WantedHeight
		if want > remaining {
			grow += want - remaining
			remaining = 0
		} else {
			remaining -= want
		}
		return want
	}
	top := take(r.Top)
	bottom := take(r.Bottom)

	bandWanted, bandStretch := 0, false
	for _, p := range [...]NodeID{r.Left, r.Center, r.Right} {
		if !e.rendered(p) {
			continue
		}
		pm := e.tree.node(p).measured
		bandWanted = max(bandWanted, pm.WantedHeight)
		bandStretch = bandStretch || pm.Stretch
	}

	var band int
	switch {
	case n.config.Scroll:
		band = max(bandWanted, remaining)
	case n.measured.Stretch || bandStretch:
		band = remaining
	default:
		band = bandWanted
		if band > remaining {
			grow += band - remaining
		}
	}

	if e.rendered(r.Top) {
		e.grantY(r.Top, cr.Y, top)
	}
	for _, p := range [...]NodeID{r.Left, r.Center, r.Right} {
		if e.rendered(p) {
			e.grantY(p, cr.Y+top, band)
		}
	}
	if e.rendered(r.Bottom) {
		e.grantY(r.Bottom, cr.Y+top+max(band, remaining), bottom)
	}
	return top + band + bottom, grow
}

// flowVertical stacks the flow rows. Rows holding fill-seeking children are
// stretch groups that share whatever the fixed rows leave, but only when the
// host's own height is definite. It returns the stacked height.
func (e *Engine) flowVertical(id NodeID, h *itemModel) int {
	n := e.tree.node(id)
	cr := n.layout.ContentRect
	definite := n.measured.Stretch || n.config.Height > 0

	rows := flowRows(h.slots)
	heights := make([]int, len(rows))
	var groups []StretchGroup
	fixed := 0

	for ri, row := range rows {
		g := StretchGroup{Row: ri}
		natural := 0
		for _, i := range row {
			item := h.items[i]
			m := e.tree.node(item).measured
			natural = max(natural, m.WantedHeight)
			if m.Stretch {
				g.Members = append(g.Members, item)
				g.Base = max(g.Base, m.MinHeight)
			} else {
				g.Base = max(g.Base, m.WantedHeight)
			}
		}
		if len(g.Members) == 0 || !definite {
			heights[ri] = natural
			fixed += natural
			continue
		}
		groups = append(groups, g)
	}

	if len(groups) > 0 {
		DistributeStretch(cr.Height-fixed, groups, e.opts.RoundingReserve)
		for _, g := range groups {
			heights[g.Row] = g.Height
		}
	}

	y := cr.Y
	for ri, row := range rows {
		for _, i := range row {
			item := h.items[i]
			m := e.tree.node(item).measured
			height := m.WantedHeight
			if m.Stretch {
				height = heights[ri]
			}
			e.grantY(item, y, height)
		}
		y += heights[ri]
	}
	return y - cr.Y
}

// gridVertical sizes the row tracks and grants each item its spanned rows.
// Fraction rows only share leftover space when the host height is definite.
func (e *Engine) gridVertical(id NodeID, h *itemModel) int {
	n := e.tree.node(id)
	cr := n.layout.ContentRect
	definite := n.measured.Stretch || n.config.Height > 0

	wanted, _ := e.gridRowContent(h, cr.Height)
	h.rowSizes = resolveTracks(h.rows, h.defRow, cr.Height, wanted, definite)
	offs := offsets(h.rowSizes)

	for i, item := range h.items {
		c := h.cells[i]
		start := offs[min(c.Row, len(h.rowSizes))]
		e.grantY(item, cr.Y+start, span(h.rowSizes, c.Row, c.RowSpan))
	}
	return offs[len(h.rowSizes)]
}
