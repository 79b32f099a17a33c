package layout

// Measurement is the height demand a node reports to its host. Heights
// include the node's margin.
type Measurement struct {
	MinHeight    int
	WantedHeight int
	Stretch      bool

	// WantedChanged is set when WantedHeight differs from the previous
	// measurement, so hosts such as tab containers can react without a
	// full re-measure.
	WantedChanged bool
}

// measure returns the cached measurement of a clean node, or recomputes it
// bottom-up. Positioning runs first if the node is stale.
func (e *Engine) measure(id NodeID) (Measurement, error) {
	n := e.tree.node(id)
	if n.state == StateNeedsPosition {
		if err := e.position(id); err != nil {
			return Measurement{}, err
		}
	}
	if n.state == StateClean {
		return n.measured, nil
	}

	var m Measurement
	if !n.config.Hidden {
		var err error
		if m, err = e.measureVisible(id); err != nil {
			return Measurement{}, err
		}
	}
	m.WantedChanged = n.hasMeasured && m.WantedHeight != n.measured.WantedHeight
	n.measured = m
	n.hasMeasured = true
	n.state = StateClean
	return m, nil
}

func (e *Engine) measureVisible(id NodeID) (Measurement, error) {
	n := e.tree.node(id)
	cfg := n.config

	var (
		content, contentMin int
		fill                = cfg.Fill
		err                 error
	)
	switch h := n.host.(type) {
	case *regionModel:
		content, contentMin, fill, err = e.measurePanels(id, h, fill)
	case *itemModel:
		if h.strategy == StrategyGrid {
			content, contentMin, fill, err = e.measureGrid(id, h, fill)
		} else {
			content, contentMin, fill, err = e.measureFlow(id, h, fill)
		}
	default:
		if n.content != nil {
			w := n.layout.ContentRect.Width
			content = nonNegative(n.content.NaturalHeight(w))
			contentMin = content
			n.measuredWidth, n.natural = w, content
		}
	}
	if err != nil {
		return Measurement{}, err
	}
	if cfg.Scroll {
		contentMin = 0
	}

	chrome := BoxDiff(e.surface, id, AxisVertical, BoxAll)
	margin := BoxDiff(e.surface, id, AxisVertical, BoxOuter)
	floor := cfg.MinHeight + margin

	var m Measurement
	if cfg.Height > 0 {
		m.WantedHeight = cfg.Height + margin
		m.MinHeight = m.WantedHeight
	} else {
		m.WantedHeight = max(content+chrome, floor)
		m.MinHeight = min(max(contentMin+chrome, floor), m.WantedHeight)
		m.Stretch = fill || (cfg.Scroll && cfg.FillView)
	}

	switch e.dockedIn(id) {
	case RegionTop, RegionBottom:
		m.Stretch = false
	}
	return m, nil
}

// measureChildren measures every non-float child so the subtree ends clean.
func (e *Engine) measureChildren(id NodeID) error {
	for _, c := range e.tree.node(id).children {
		if e.tree.node(c).kind == KindFloat {
			continue
		}
		if _, err := e.measure(c); err != nil {
			return err
		}
	}
	return nil
}

// measurePanels adds the top and bottom demand to the tallest of the
// left, center and right panels.
func (e *Engine) measurePanels(id NodeID, h *regionModel, fill bool) (content, contentMin int, _ bool, _ error) {
	if err := e.measureChildren(id); err != nil {
		return 0, 0, false, err
	}
	r := h.resolve()

	for _, p := range [...]NodeID{r.Top, r.Bottom} {
		if !e.rendered(p) {
			continue
		}
		m := e.tree.node(p).measured
		content += m.WantedHeight
		contentMin += m.MinHeight
	}

	band, bandMin := 0, 0
	for _, p := range [...]NodeID{r.Left, r.Center, r.Right} {
		if !e.rendered(p) {
			continue
		}
		m := e.tree.node(p).measured
		band = max(band, m.WantedHeight)
		bandMin = max(bandMin, m.MinHeight)
		fill = fill || m.Stretch
	}
	return content + band, contentMin + bandMin, fill, nil
}

// measureFlow sums the tallest child of each flow row.
func (e *Engine) measureFlow(id NodeID, h *itemModel, fill bool) (content, contentMin int, _ bool, _ error) {
	if err := e.measureChildren(id); err != nil {
		return 0, 0, false, err
	}
	for _, row := range flowRows(h.slots) {
		wanted, least := 0, 0
		for _, i := range row {
			m := e.tree.node(h.items[i]).measured
			wanted = max(wanted, m.WantedHeight)
			least = max(least, m.MinHeight)
			fill = fill || m.Stretch
		}
		content += wanted
		contentMin += least
	}
	return content, contentMin, fill, nil
}

// measureGrid sums the row tracks sized by content. Fractional rows make
// the host stretch-capable.
func (e *Engine) measureGrid(id NodeID, h *itemModel, fill bool) (content, contentMin int, _ bool, _ error) {
	if err := e.measureChildren(id); err != nil {
		return 0, 0, false, err
	}
	wanted, least := e.gridRowContent(h, 0)
	sizes := resolveTracks(h.rows, h.defRow, 0, wanted, false)
	for i, s := range sizes {
		content += s
		if h.rows.At(i, h.defRow).Kind == SizeFraction {
			contentMin += least[i]
		} else {
			contentMin += s
		}
	}
	return content, contentMin, fill || h.rows.HasFraction(h.defRow), nil
}

// gridRowContent returns the wanted and minimum content height of each row.
// Items spanning several rows push whatever the spanned rows cannot hold
// into their last row. available resolves percentage rows.
func (e *Engine) gridRowContent(h *itemModel, available int) (wanted, least []int) {
	wanted = make([]int, len(h.rows))
	least = make([]int, len(h.rows))
	for i, item := range h.items {
		c := h.cells[i]
		if c.RowSpan != 1 || c.Row >= len(wanted) {
			continue
		}
		m := e.tree.node(item).measured
		wanted[c.Row] = max(wanted[c.Row], m.WantedHeight)
		least[c.Row] = max(least[c.Row], m.MinHeight)
	}

	spanned := func(sizes []int, c gridCell) int {
		total := 0
		for r := c.Row; r < c.Row+c.RowSpan && r < len(sizes); r++ {
			track := h.rows.At(r, h.defRow)
			if track.Kind == SizeFraction {
				total += sizes[r]
			} else {
				total += nonNegative(track.Resolve(available, sizes[r]))
			}
		}
		return total
	}
	for i, item := range h.items {
		c := h.cells[i]
		if c.RowSpan == 1 || c.Row >= len(wanted) {
			continue
		}
		last := min(c.Row+c.RowSpan, len(wanted)) - 1
		m := e.tree.node(item).measured
		if short := m.WantedHeight - spanned(wanted, c); short > 0 {
			wanted[last] += short
		}
		if short := m.MinHeight - spanned(least, c); short > 0 {
			least[last] += short
		}
	}
	return wanted, least
}
