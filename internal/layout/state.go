package layout

// State is the per-node layout state machine.
//
//	NeedsPosition --position--> NeedsMeasure --measure--> Clean
//
// Structural mutations and configuration changes move the affected host to
// NeedsPosition and its ancestors to at least NeedsMeasure. A width change
// seen by the horizontal phase moves width-sensitive controls back to
// NeedsMeasure, which the vertical phase re-validates lazily. A non-clean
// node always has non-clean ancestors.
type State uint8

const (
	StateClean State = iota
	StateNeedsMeasure
	StateNeedsPosition
)

func (s State) String() string {
	switch s {
	case StateClean:
		return "clean"
	case StateNeedsMeasure:
		return "needs-measure"
	case StateNeedsPosition:
		return "needs-position"
	default:
		return "unknown"
	}
}

// raise moves n to s if s is stricter than its current state.
func (n *node) raise(s State) bool {
	if s > n.state {
		n.state = s
		return true
	}
	return false
}

// invalidate moves id to s and its ancestors to at least NeedsMeasure.
// The walk stops at the first ancestor that is already dirty since its own
// ancestors are dirty too.
func (t *Tree) invalidate(id NodeID, s State) {
	n := &t.nodes[id.index]
	n.raise(s)
	for p := n.parent; !p.IsNone(); {
		pn := &t.nodes[p.index]
		if !pn.raise(StateNeedsMeasure) {
			break
		}
		p = pn.parent
	}
	if t.onInvalidate != nil {
		t.onInvalidate(id)
	}
}

// invalidateSubtree moves every node under id (inclusive) to at least s,
// then propagates upward.
func (t *Tree) invalidateSubtree(id NodeID, s State) {
	var walk func(NodeID)
	walk = func(cur NodeID) {
		n := &t.nodes[cur.index]
		n.raise(s)
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(id)
	t.invalidate(id, s)
}
