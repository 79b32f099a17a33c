package layout

// position rebuilds stale host models below id. Clean subtrees are skipped.
func (e *Engine) position(id NodeID) error {
	n := e.tree.node(id)
	if n.state == StateClean {
		return nil
	}
	if n.state == StateNeedsPosition {
		if err := e.positionHost(id); err != nil {
			return err
		}
		n.state = StateNeedsMeasure
	}
	for _, c := range n.children {
		if e.tree.node(c).state == StateClean {
			continue
		}
		if err := e.position(c); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) positionHost(id NodeID) error {
	n := e.tree.node(id)
	switch h := n.host.(type) {
	case *regionModel:
		h.resolve()
		return nil
	case *itemModel:
		h.items = h.items[:0]
		var cfgs []Config
		for _, c := range n.children {
			cn := e.tree.node(c)
			if cn.kind == KindFloat || cn.config.Hidden {
				continue
			}
			h.items = append(h.items, c)
			cfgs = append(cfgs, cn.config)
		}

		h.strategy = e.strategyOf(id)
		if h.strategy == StrategyGrid {
			return e.positionGrid(id, h, cfgs)
		}

		reqs := make([]FlowRequest, len(cfgs))
		for i, c := range cfgs {
			reqs[i] = FlowRequest{Column: c.Column, Span: c.ColumnSpan}
		}
		slots, err := PlaceFlow(n.config.ColumnCount, reqs)
		if err != nil {
			return &ConfigError{Node: e.tree.Path(id), Field: "column-count", Err: err}
		}
		h.slots = slots
		h.cells = nil
		return nil
	default:
		return nil
	}
}

func (e *Engine) positionGrid(id NodeID, h *itemModel, cfgs []Config) error {
	n := e.tree.node(id)
	path := e.tree.Path(id)

	columns, err := ParseTemplate(n.config.Columns, n.config.MinColumns)
	if err != nil {
		return &ConfigError{Node: path, Field: "columns", Err: err}
	}
	rows, err := ParseTemplate(n.config.Rows, n.config.MinRows)
	if err != nil {
		return &ConfigError{Node: path, Field: "rows", Err: err}
	}
	defColumn, err := parseDefault(n.config.DefaultColumnWidth, Fraction(1))
	if err != nil {
		return &ConfigError{Node: path, Field: "default-column-width", Err: err}
	}
	defRow, err := parseDefault(n.config.DefaultRowHeight, Auto())
	if err != nil {
		return &ConfigError{Node: path, Field: "default-row-height", Err: err}
	}

	count := gridColumnCount(columns, cfgs)
	h.columns = columns.Pad(count)
	h.cells = placeGrid(cfgs, count)
	h.rows = rows.Pad(gridRowCount(h.cells))
	h.defColumn, h.defRow = defColumn, defRow
	h.slots = nil
	return nil
}

// strategyOf resolves StrategyInherit to the nearest ancestor's concrete
// strategy, defaulting to flow.
func (e *Engine) strategyOf(id NodeID) Strategy {
	for cur := id; !cur.IsNone(); cur = e.tree.node(cur).parent {
		if s := e.tree.node(cur).config.Strategy; s != StrategyInherit {
			return s
		}
	}
	return StrategyFlow
}
