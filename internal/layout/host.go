package layout

// hostModel is the content model of a container: either docked panels
// (*regionModel) or positioned items (*itemModel). A host holds exactly one,
// chosen by the first non-float child it receives.
type hostModel interface {
	hostKind() string
}

// itemModel positions ordinary children in a flow or a grid.
type itemModel struct {
	strategy Strategy
	items    []NodeID // Visible, non-float children in order

	// Flow placement, parallel to items.
	slots []FlowSlot

	// Grid placement, parallel to items.
	cells             []gridCell
	columns, rows     Template
	defColumn, defRow TrackSize
	colSizes          []int
	rowSizes          []int
}

func newItemModel() *itemModel {
	return &itemModel{}
}

func (*itemModel) hostKind() string { return "items" }

func (m *itemModel) indexOf(id NodeID) int {
	for i, item := range m.items {
		if item == id {
			return i
		}
	}
	return -1
}

// gridCell is the resolved placement of an item in a grid host.
type gridCell struct {
	Row, Column      int
	RowSpan, ColSpan int
}

// gridColumnCount returns the number of column tracks a grid needs.
func gridColumnCount(tpl Template, cfgs []Config) int {
	n := max(len(tpl), 1)
	for _, c := range cfgs {
		if c.Column >= 0 {
			n = max(n, c.Column+max(c.ColumnSpan, 1))
		}
	}
	return n
}

// placeGrid assigns cells in row-major order. Explicit indices are kept;
// AutoIndex continues from the cursor and wraps at the column count.
func placeGrid(cfgs []Config, columns int) []gridCell {
	cells := make([]gridCell, len(cfgs))
	row, col := 0, 0

	for i, c := range cfgs {
		cs := clamp(max(c.ColumnSpan, 1), 1, columns)
		rs := max(c.RowSpan, 1)
		r, k := c.Row, c.Column

		switch {
		case r >= 0 && k >= 0:
		case k >= 0:
			if k < col {
				row++
			}
			r = row
		case r >= 0:
			k = 0
			if r == row {
				k = col
			}
			if k+cs > columns {
				r, k = r+1, 0
			}
		default:
			if col+cs > columns {
				row++
				col = 0
			}
			r, k = row, col
		}

		cells[i] = gridCell{Row: r, Column: k, RowSpan: rs, ColSpan: cs}
		row, col = r, k+cs
	}
	return cells
}

// gridRowCount returns the number of row tracks the cells occupy.
func gridRowCount(cells []gridCell) int {
	n := 0
	for _, c := range cells {
		n = max(n, c.Row+c.RowSpan)
	}
	return n
}
