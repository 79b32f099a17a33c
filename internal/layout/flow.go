package layout

import "fmt"

// FullWidth is 100% expressed in basis points.
const FullWidth = 10000

// FlowRequest is the placement a child asks for in a flow host.
type FlowRequest struct {
	Column int // AutoIndex continues at the cursor
	Span   int // <= 0 or > column count spans the full row
}

// FlowSlot is the resolved placement of a child in a flow host.
// Widths and margins are basis points of the host's inner width.
type FlowSlot struct {
	Row      int
	Column   int
	Span     int
	WidthBP  int
	MarginBP int // Gap before the child, from the cursor to Column
}

// PlaceFlow walks reqs in order and assigns each one a row and column.
//
// A new row starts whenever the requested column is behind the running
// cursor or the span would overflow columnCount; an overflowing child
// restarts at column 0.
func PlaceFlow(columnCount int, reqs []FlowRequest) ([]FlowSlot, error) {
	if columnCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrColumnCount, columnCount)
	}

	slots := make([]FlowSlot, len(reqs))
	row, cursor := 0, 0
	rowUsed := false

	for i, req := range reqs {
		span := req.Span
		if span <= 0 || span > columnCount {
			span = columnCount
		}
		col := req.Column
		if col < 0 {
			col = cursor
		}

		switch {
		case col+span > columnCount:
			col = 0
			if rowUsed {
				row++
				cursor = 0
			}
		case col < cursor:
			row++
			cursor = 0
		}

		slots[i] = FlowSlot{
			Row:      row,
			Column:   col,
			Span:     span,
			WidthBP:  basisPoints(span, columnCount),
			MarginBP: basisPoints(col-cursor, columnCount),
		}
		cursor = col + span
		rowUsed = true
	}
	return slots, nil
}

// basisPoints converts n of cols columns to basis points. The unit column is
// floored once and multiplied, so every span of the same size gets the same
// width; a full row is exact.
func basisPoints(n, cols int) int {
	if n >= cols {
		return FullWidth
	}
	if n <= 0 {
		return 0
	}
	return FullWidth / cols * n
}

// Percent returns the slot width as a percentage.
func (s FlowSlot) Percent() float64 {
	return float64(s.WidthBP) / 100
}

// flowRows groups item indices by row, preserving order.
func flowRows(slots []FlowSlot) [][]int {
	var rows [][]int
	for i, s := range slots {
		if len(rows) == 0 || s.Row != slots[rows[len(rows)-1][0]].Row {
			rows = append(rows, nil)
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], i)
	}
	return rows
}
