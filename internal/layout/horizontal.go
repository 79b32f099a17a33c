package layout

// resizeHorizontal assigns the width of id from the slot its host granted,
// then grants slots to its children and recurses.
func (e *Engine) resizeHorizontal(id NodeID) error {
	n := e.tree.node(id)
	if n.state == StateNeedsPosition {
		if err := e.position(id); err != nil {
			return err
		}
	}
	if n.config.Hidden {
		n.layout.Rect.X, n.layout.Rect.Width = n.slot.X, 0
		n.layout.ContentRect.X, n.layout.ContentRect.Width = n.slot.X, 0
		e.applyWidth(id, n.slot.X, 0)
		return nil
	}

	margin := e.surface.Box(id, BoxOuter)
	x := n.slot.X + margin.Left
	w := n.slot.Width - margin.Horizontal()
	if n.config.Width > 0 && e.dockedIn(id) != RegionCenter {
		w = n.config.Width
	}

	// The minimum width bounds the inner width; the border box grows around it.
	inner := e.surface.Box(id, BoxInner|BoxContentOuter|BoxContentInner)
	cw := max(w-inner.Horizontal(), n.config.MinWidth)
	w = nonNegative(cw + inner.Horizontal())
	n.layout.Rect.X, n.layout.Rect.Width = x, w
	n.layout.ContentRect.X = x + inner.Left
	n.layout.ContentRect.Width = nonNegative(cw)
	e.applyWidth(id, x, w)

	// Text and other width-dependent content measured at a different width
	// is stale now; the vertical phase re-measures it.
	if n.host == nil && n.state == StateClean && widthSensitive(n.content) &&
		n.layout.ContentRect.Width != n.measuredWidth {
		e.tree.invalidate(id, StateNeedsMeasure)
	}

	switch h := n.host.(type) {
	case *regionModel:
		e.dockHorizontal(id, h)
	case *itemModel:
		if h.strategy == StrategyGrid {
			e.gridHorizontal(id, h)
		} else {
			e.flowHorizontal(id, h)
		}
	}

	for _, c := range n.children {
		if e.tree.node(c).kind == KindFloat {
			continue
		}
		if err := e.resizeHorizontal(c); err != nil {
			return err
		}
	}
	return nil
}

// grantX sets the horizontal part of a child's slot.
func (e *Engine) grantX(id NodeID, x, width int) {
	s := &e.tree.node(id).slot
	s.X, s.Width = x, nonNegative(width)
}

// dockHorizontal spans Top and Bottom over the full content width and splits
// the middle band between Left, Center and Right.
func (e *Engine) dockHorizontal(id NodeID, h *regionModel) {
	cr := e.tree.node(id).layout.ContentRect
	r := h.resolve()

	for _, p := range [...]NodeID{r.Top, r.Bottom} {
		if e.rendered(p) {
			e.grantX(p, cr.X, cr.Width)
		}
	}

	left := e.sideWidth(r.Left, r.Right, cr.Width)
	right := e.sideWidth(r.Right, r.Left, cr.Width)
	h.leftOffset, h.rightOffset = left, right

	if e.rendered(r.Left) {
		e.grantX(r.Left, cr.X, left)
	}
	if e.rendered(r.Right) {
		e.grantX(r.Right, cr.Right()-right, right)
	}
	if e.rendered(r.Center) {
		e.grantX(r.Center, cr.X+left, cr.Width-left-right)
	}
}

// sideWidth resolves the slot width of a Left or Right panel: its own
// configured width, else half of what the opposite side leaves (a third of
// the band when the opposite has no width), else half the band.
func (e *Engine) sideWidth(side, opposite NodeID, band int) int {
	if !e.rendered(side) {
		return 0
	}
	if w := e.explicitWidth(side); w > 0 {
		return w
	}
	if !e.rendered(opposite) {
		return band / 2
	}
	other := e.explicitWidth(opposite)
	if other == 0 {
		other = band / 3
	}
	return nonNegative((band - other) / 2)
}

// explicitWidth returns the configured width of id plus its margin, or 0.
func (e *Engine) explicitWidth(id NodeID) int {
	cfg := e.tree.node(id).config
	if cfg.Width <= 0 {
		return 0
	}
	return cfg.Width + BoxDiff(e.surface, id, AxisHorizontal, BoxOuter)
}

// flowHorizontal converts each row's basis points to pixels. Offsets are
// accumulated per row and rounded to the nearest pixel, so the floored unit
// columns of a complete row still end at the right edge.
func (e *Engine) flowHorizontal(id NodeID, h *itemModel) {
	cr := e.tree.node(id).layout.ContentRect
	px := func(bp int) int {
		if bp >= FullWidth {
			return cr.Width
		}
		return (cr.Width*bp + FullWidth/2) / FullWidth
	}

	for _, row := range flowRows(h.slots) {
		acc := 0
		for _, i := range row {
			s := h.slots[i]
			acc += s.MarginBP
			start := px(acc)
			acc += s.WidthBP
			e.grantX(h.items[i], cr.X+start, px(acc)-start)
		}
	}
}

// gridHorizontal sizes the column tracks against the content width and
// grants each item its spanned columns.
func (e *Engine) gridHorizontal(id NodeID, h *itemModel) {
	cr := e.tree.node(id).layout.ContentRect
	columns, def := columnTracks(h.columns, h.defColumn)
	h.colSizes = resolveTracks(columns, def, cr.Width, nil, true)
	offs := offsets(h.colSizes)

	for i, item := range h.items {
		c := h.cells[i]
		start := offs[min(c.Column, len(h.colSizes))]
		e.grantX(item, cr.X+start, span(h.colSizes, c.Column, c.ColSpan))
	}
}
