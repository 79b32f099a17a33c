package layout

// Axis selects horizontal or vertical measurement.
type Axis uint8

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// BoxPart selects layers of a node's box. Parts combine with |.
type BoxPart uint8

const (
	BoxOuter        BoxPart = 1 << iota // Margin around the node
	BoxInner                            // Border and padding of the node
	BoxContentOuter                     // Margin of the content wrapper
	BoxContentInner                     // Padding of the content wrapper

	BoxAll = BoxOuter | BoxInner | BoxContentOuter | BoxContentInner
)

// Surface is the rendering backend that displays nodes.
//
// The engine reads box edges and the client size of layout roots, and
// pushes final geometry through ApplyWidth and ApplyHeight. It never calls
// Apply* twice in a row with the same value for a node.
type Surface interface {
	// ClientSize reports the space available to a layout root (the tree
	// root or a float).
	ClientSize(id NodeID) (width, height int)

	// Box returns the summed edges of the requested layers of id.
	Box(id NodeID, parts BoxPart) Edges

	// ApplyWidth positions id horizontally. x and width describe the
	// border box in absolute pixels.
	ApplyWidth(id NodeID, x, width int)

	// ApplyHeight positions id vertically.
	ApplyHeight(id NodeID, y, height int)
}

// BoxDiff returns the pixels taken by the requested layers along axis.
// It converts between outer and inner size budgets.
func BoxDiff(s Surface, id NodeID, axis Axis, parts BoxPart) int {
	return s.Box(id, parts).Along(axis)
}

// MemorySurface is an in-memory Surface. Box edges come from each node's
// Config; applied geometry is recorded for inspection.
type MemorySurface struct {
	tree     *Tree
	viewport Size
	client   map[NodeID]Size
	applied  map[NodeID]Rect
	writes   int
}

// NewMemorySurface creates a surface for t with the given viewport size.
func NewMemorySurface(t *Tree, width, height int) *MemorySurface {
	return &MemorySurface{
		tree:     t,
		viewport: Size{Width: width, Height: height},
		client:   make(map[NodeID]Size),
		applied:  make(map[NodeID]Rect),
	}
}

// SetViewport changes the size reported for layout roots.
func (s *MemorySurface) SetViewport(width, height int) {
	s.viewport = Size{Width: width, Height: height}
}

// Viewport returns the current viewport size.
func (s *MemorySurface) Viewport() Size {
	return s.viewport
}

// SetClientSize overrides the client size reported for id.
func (s *MemorySurface) SetClientSize(id NodeID, width, height int) {
	s.client[id] = Size{Width: width, Height: height}
}

// ClientSize implements Surface.
func (s *MemorySurface) ClientSize(id NodeID) (int, int) {
	if sz, ok := s.client[id]; ok {
		return sz.Width, sz.Height
	}
	return s.viewport.Width, s.viewport.Height
}

// Box implements Surface.
func (s *MemorySurface) Box(id NodeID, parts BoxPart) Edges {
	n, err := s.tree.get(id)
	if err != nil {
		return Edges{}
	}
	var e Edges
	if parts&BoxOuter != 0 {
		e = e.Add(n.config.Margin)
	}
	if parts&BoxInner != 0 {
		e = e.Add(n.config.Padding)
	}
	if parts&BoxContentOuter != 0 {
		e = e.Add(n.config.ContentMargin)
	}
	if parts&BoxContentInner != 0 {
		e = e.Add(n.config.ContentPadding)
	}
	return e
}

// ApplyWidth implements Surface.
func (s *MemorySurface) ApplyWidth(id NodeID, x, width int) {
	r := s.applied[id]
	r.X, r.Width = x, width
	s.applied[id] = r
	s.writes++
}

// ApplyHeight implements Surface.
func (s *MemorySurface) ApplyHeight(id NodeID, y, height int) {
	r := s.applied[id]
	r.Y, r.Height = y, height
	s.applied[id] = r
	s.writes++
}

// Geometry returns the last geometry applied to id.
func (s *MemorySurface) Geometry(id NodeID) Rect {
	return s.applied[id]
}

// Writes returns the number of Apply calls received.
func (s *MemorySurface) Writes() int {
	return s.writes
}

// ResetWrites zeroes the Apply counter.
func (s *MemorySurface) ResetWrites() {
	s.writes = 0
}
