package layout

// Regions maps each docking region of a panel host to its panel.
// Unoccupied regions hold None.
type Regions struct {
	Top, Left, Center, Right, Bottom NodeID
}

// Get returns the panel docked in r.
func (r Regions) Get(region Region) NodeID {
	switch region {
	case RegionTop:
		return r.Top
	case RegionLeft:
		return r.Left
	case RegionCenter:
		return r.Center
	case RegionRight:
		return r.Right
	case RegionBottom:
		return r.Bottom
	default:
		return None
	}
}

// regionModel owns the region-to-panel assignment of a panel host.
type regionModel struct {
	slots    [regionCount]NodeID
	resolved Regions
	valid    bool

	// Horizontal offsets of the center panel, set by the horizontal phase.
	leftOffset, rightOffset int
}

func newRegionModel() *regionModel {
	return &regionModel{}
}

func (*regionModel) hostKind() string { return "panels" }

// dockRegion returns the region a panel docks into; unset means center.
func dockRegion(cfg Config) Region {
	if cfg.Region == RegionNone {
		return RegionCenter
	}
	return cfg.Region
}

// assign docks panel into r. It fails if a different panel already holds r.
// A panel moving between regions releases its previous one.
func (m *regionModel) assign(r Region, panel NodeID) error {
	if cur := m.slots[r]; !cur.IsNone() && cur != panel {
		return &DuplicateRegionError{Region: r, Occupant: cur, Panel: panel}
	}
	m.unassign(panel)
	m.slots[r] = panel
	return nil
}

// unassign clears panel's region. Unassigned panels are ignored.
func (m *regionModel) unassign(panel NodeID) {
	for i := range m.slots {
		if m.slots[i] == panel {
			m.slots[i] = None
		}
	}
	m.valid = false
}

// resolve returns the current mapping, memoized until the next assignment
// change.
func (m *regionModel) resolve() Regions {
	if m.valid {
		return m.resolved
	}
	m.resolved = Regions{
		Top:    m.slots[RegionTop],
		Left:   m.slots[RegionLeft],
		Center: m.slots[RegionCenter],
		Right:  m.slots[RegionRight],
		Bottom: m.slots[RegionBottom],
	}
	m.valid = true
	return m.resolved
}
