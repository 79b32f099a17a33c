package layout

// DefaultRoundingReserve is the pixel held back from each stretch division
// to absorb sub-pixel rounding in the rendering backend.
const DefaultRoundingReserve = 1

// StretchGroup is a flow row containing fill-seeking children. Base is the
// row's height without stretching; Members share the resolved Height.
type StretchGroup struct {
	Row     int
	Base    int
	Members []NodeID
	Height  int
}

// DistributeStretch shares space between groups first come first served:
// each group gets the remaining space divided by the groups still to
// process, minus reserve, floored at its Base. Space is spent as it goes.
func DistributeStretch(space int, groups []StretchGroup, reserve int) {
	space = nonNegative(space)
	for i := range groups {
		left := len(groups) - i
		h := space/left - reserve
		h = nonNegative(max(h, groups[i].Base))
		groups[i].Height = h
		space = nonNegative(space - h)
	}
}
