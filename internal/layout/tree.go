package layout

import (
	"fmt"
	"slices"
	"strings"
)

// NodeID is a stable handle to a node in a Tree. Handles of destroyed nodes
// stop resolving even if their slot is reused. The zero value is None.
type NodeID struct {
	index uint32
	gen   uint32
}

// None is the handle of no node.
var None NodeID

// IsNone returns true if id refers to no node.
func (id NodeID) IsNone() bool {
	return id.gen == 0
}

func (id NodeID) String() string {
	if id.IsNone() {
		return "none"
	}
	return fmt.Sprintf("#%d", id.index)
}

// node is one element of the arena.
type node struct {
	gen      uint32
	alive    bool
	name     string
	kind     Kind
	config   Config
	content  Content
	parent   NodeID
	children []NodeID
	host     hostModel
	state    State

	// Measure cache.
	measured      Measurement
	hasMeasured   bool
	measuredWidth int
	natural       int // Content height of a control at measuredWidth

	// Slot granted by the host, margin included.
	slot Rect

	layout  Layout
	applied applied
}

// applied remembers what was last pushed to the surface.
type applied struct {
	x, width, y, height int
	horizontal          bool
	vertical            bool
}

// Tree is an arena of layout nodes.
// The tree is mutated only by its structural operations, which callers
// serialize; the engine only updates cached sizes and geometry.
type Tree struct {
	nodes []node
	free  []uint32

	// onInvalidate is called after every invalidation; the Engine uses it
	// to schedule a relayout.
	onInvalidate func(NodeID)
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// NewNode creates a detached node and returns its handle.
func (t *Tree) NewNode(name string, kind Kind, cfg Config) NodeID {
	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		idx = uint32(len(t.nodes))
		t.nodes = append(t.nodes, node{})
	}

	gen := t.nodes[idx].gen + 1
	t.nodes[idx] = node{
		gen:    gen,
		alive:  true,
		name:   name,
		kind:   kind,
		config: cfg,
		state:  StateNeedsPosition,
	}
	return NodeID{index: idx, gen: gen}
}

func (t *Tree) get(id NodeID) (*node, error) {
	if id.IsNone() || int(id.index) >= len(t.nodes) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	n := &t.nodes[id.index]
	if !n.alive || n.gen != id.gen {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	return n, nil
}

// node returns the node for a handle the engine already validated.
func (t *Tree) node(id NodeID) *node {
	return &t.nodes[id.index]
}

// Valid returns true if id refers to a live node.
func (t *Tree) Valid(id NodeID) bool {
	_, err := t.get(id)
	return err == nil
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	return len(t.nodes) - len(t.free)
}

// Name returns the node's name.
func (t *Tree) Name(id NodeID) string {
	if n, err := t.get(id); err == nil {
		return n.name
	}
	return ""
}

// Kind returns the node's kind.
func (t *Tree) Kind(id NodeID) Kind {
	if n, err := t.get(id); err == nil {
		return n.kind
	}
	return KindContainer
}

// Config returns the node's configuration.
func (t *Tree) Config(id NodeID) Config {
	if n, err := t.get(id); err == nil {
		return n.config
	}
	return Config{}
}

// Parent returns the node's host, or None.
func (t *Tree) Parent(id NodeID) NodeID {
	if n, err := t.get(id); err == nil {
		return n.parent
	}
	return None
}

// Children returns a copy of the node's ordered children.
func (t *Tree) Children(id NodeID) []NodeID {
	if n, err := t.get(id); err == nil {
		return slices.Clone(n.children)
	}
	return nil
}

// State returns the node's layout state.
func (t *Tree) State(id NodeID) State {
	if n, err := t.get(id); err == nil {
		return n.state
	}
	return StateClean
}

// Layout returns the geometry computed by the last pass.
func (t *Tree) Layout(id NodeID) Layout {
	if n, err := t.get(id); err == nil {
		return n.layout
	}
	return Layout{}
}

// Content returns the intrinsic content of a control, or nil.
func (t *Tree) Content(id NodeID) Content {
	if n, err := t.get(id); err == nil {
		return n.content
	}
	return nil
}

// Measured returns the cached measurement of the node.
func (t *Tree) Measured(id NodeID) Measurement {
	if n, err := t.get(id); err == nil {
		return n.measured
	}
	return Measurement{}
}

// Regions returns the panel docking of a panel host.
func (t *Tree) Regions(host NodeID) (Regions, bool) {
	n, err := t.get(host)
	if err != nil {
		return Regions{}, false
	}
	rm, ok := n.host.(*regionModel)
	if !ok {
		return Regions{}, false
	}
	return rm.resolve(), true
}

// CenterOffsets returns the left and right offsets of a panel host's center
// region from the last horizontal pass.
func (t *Tree) CenterOffsets(host NodeID) (left, right int) {
	n, err := t.get(host)
	if err != nil {
		return 0, 0
	}
	if rm, ok := n.host.(*regionModel); ok {
		return rm.leftOffset, rm.rightOffset
	}
	return 0, 0
}

// FlowSlot returns the flow placement of id from the last position pass.
func (t *Tree) FlowSlot(id NodeID) (FlowSlot, bool) {
	n, err := t.get(id)
	if err != nil || n.parent.IsNone() {
		return FlowSlot{}, false
	}
	im, ok := t.node(n.parent).host.(*itemModel)
	if !ok || im.strategy != StrategyFlow {
		return FlowSlot{}, false
	}
	i := im.indexOf(id)
	if i < 0 || i >= len(im.slots) {
		return FlowSlot{}, false
	}
	return im.slots[i], true
}

// Path returns the slash-separated names from the root to id.
func (t *Tree) Path(id NodeID) string {
	var parts []string
	for cur := id; !cur.IsNone(); {
		n, err := t.get(cur)
		if err != nil {
			break
		}
		name := n.name
		if name == "" {
			name = cur.String()
		}
		parts = append(parts, name)
		cur = n.parent
	}
	slices.Reverse(parts)
	return strings.Join(parts, "/")
}

// Walk visits root and its descendants in depth-first order.
// Returning false from fn skips the node's children.
func (t *Tree) Walk(root NodeID, fn func(id NodeID, depth int) bool) {
	var walk func(NodeID, int)
	walk = func(id NodeID, depth int) {
		n, err := t.get(id)
		if err != nil {
			return
		}
		if !fn(id, depth) {
			return
		}
		for _, c := range n.children {
			walk(c, depth+1)
		}
	}
	walk(root, 0)
}

// Find returns the first node named name under root, or None.
func (t *Tree) Find(root NodeID, name string) NodeID {
	found := None
	t.Walk(root, func(id NodeID, _ int) bool {
		if !found.IsNone() {
			return false
		}
		if t.node(id).name == name {
			found = id
			return false
		}
		return true
	})
	return found
}

// Append adds child as the last child of parent.
func (t *Tree) Append(parent, child NodeID) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	return t.Insert(parent, child, len(p.children))
}

// Insert adds child to parent at index. Panels are docked into their
// configured region immediately, so region conflicts and panel/non-panel
// mixing fail here.
func (t *Tree) Insert(parent, child NodeID, index int) error {
	if _, err := t.get(parent); err != nil {
		return err
	}
	c, err := t.get(child)
	if err != nil {
		return err
	}
	if parent == child || t.isAncestor(child, parent) {
		return fmt.Errorf("%w: %s cannot contain itself", ErrInvalidTree, t.Path(child))
	}
	if !c.parent.IsNone() {
		return fmt.Errorf("%w: %s is already attached; use Move", ErrInvalidTree, t.Path(child))
	}
	return t.attach(parent, child, index)
}

// Remove detaches child from its parent. The node stays alive.
func (t *Tree) Remove(child NodeID) error {
	c, err := t.get(child)
	if err != nil {
		return err
	}
	if c.parent.IsNone() {
		return fmt.Errorf("%w: %s has no parent", ErrInvalidTree, t.Path(child))
	}
	t.detach(child)
	return nil
}

// Move reattaches child under newParent at index. On failure the child is
// restored to its previous position.
func (t *Tree) Move(child, newParent NodeID, index int) error {
	c, err := t.get(child)
	if err != nil {
		return err
	}
	if _, err := t.get(newParent); err != nil {
		return err
	}
	if newParent == child || t.isAncestor(child, newParent) {
		return fmt.Errorf("%w: %s cannot contain itself", ErrInvalidTree, t.Path(child))
	}

	oldParent := c.parent
	oldIndex := -1
	if !oldParent.IsNone() {
		oldIndex = slices.Index(t.node(oldParent).children, child)
		t.detach(child)
	}
	if err := t.attach(newParent, child, index); err != nil {
		if !oldParent.IsNone() {
			// The slot we just vacated is free, so this cannot fail.
			_ = t.attach(oldParent, child, oldIndex)
		}
		return err
	}
	return nil
}

// Destroy detaches id from its parent and releases it and its descendants.
func (t *Tree) Destroy(id NodeID) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	if !n.parent.IsNone() {
		t.detach(id)
	}
	t.release(id)
	return nil
}

// SetConfig replaces the node's configuration. Changing a panel's region
// re-docks it and fails if the new region is taken.
func (t *Tree) SetConfig(id NodeID, cfg Config) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	old := n.config
	if err := t.checkRegion(id, n.kind, cfg); err != nil {
		return err
	}

	if n.kind == KindPanel && !n.parent.IsNone() {
		if rm, ok := t.node(n.parent).host.(*regionModel); ok && dockRegion(old) != dockRegion(cfg) {
			if err := rm.assign(dockRegion(cfg), id); err != nil {
				return t.regionError(n.parent, err)
			}
		}
	}

	n.config = cfg
	if old.Strategy != cfg.Strategy {
		t.invalidateSubtree(id, StateNeedsPosition)
	} else {
		t.invalidate(id, StateNeedsPosition)
	}
	if !n.parent.IsNone() {
		t.invalidate(n.parent, StateNeedsPosition)
	}
	return nil
}

// SetContent replaces a control's intrinsic content.
func (t *Tree) SetContent(id NodeID, c Content) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	n.content = c
	t.invalidate(id, StateNeedsMeasure)
	return nil
}

func (t *Tree) isAncestor(ancestor, id NodeID) bool {
	for cur := t.node(id).parent; !cur.IsNone(); cur = t.node(cur).parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

func (t *Tree) attach(parent, child NodeID, index int) error {
	p := t.node(parent)
	c := t.node(child)

	if p.kind == KindControl {
		return &ConfigError{Node: t.Path(parent), Message: "controls cannot host children", Err: ErrInvalidTree}
	}

	if err := t.checkRegion(child, c.kind, c.config); err != nil {
		return err
	}

	if c.kind != KindFloat {
		switch h := p.host.(type) {
		case nil:
			if c.kind == KindPanel {
				rm := newRegionModel()
				_ = rm.assign(dockRegion(c.config), child)
				p.host = rm
			} else {
				p.host = newItemModel()
			}
		case *regionModel:
			if c.kind != KindPanel {
				return t.mixedError(parent, child, h)
			}
			if err := h.assign(dockRegion(c.config), child); err != nil {
				return t.regionError(parent, err)
			}
		case *itemModel:
			if c.kind == KindPanel {
				return t.mixedError(parent, child, h)
			}
		}
	}

	index = clamp(index, 0, len(p.children))
	p.children = slices.Insert(p.children, index, child)
	c.parent = parent
	t.invalidate(parent, StateNeedsPosition)
	return nil
}

func (t *Tree) detach(child NodeID) {
	c := t.node(child)
	parent := c.parent
	p := t.node(parent)

	if i := slices.Index(p.children, child); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	if rm, ok := p.host.(*regionModel); ok {
		rm.unassign(child)
	}
	if !t.hostsItems(parent) {
		p.host = nil
	}
	c.parent = None
	t.invalidate(parent, StateNeedsPosition)
}

// hostsItems reports whether id still has non-float children.
func (t *Tree) hostsItems(id NodeID) bool {
	for _, c := range t.node(id).children {
		if t.node(c).kind != KindFloat {
			return true
		}
	}
	return false
}

func (t *Tree) release(id NodeID) {
	n := t.node(id)
	for _, c := range n.children {
		t.release(c)
	}
	t.nodes[id.index] = node{gen: n.gen}
	t.free = append(t.free, id.index)
}

func (t *Tree) mixedError(parent, child NodeID, h hostModel) error {
	c := t.node(child)
	return &ConfigError{
		Node:    t.Path(parent),
		Message: fmt.Sprintf("cannot add %s %q to a host of %s", c.kind, c.name, h.hostKind()),
		Err:     ErrMixedChildren,
	}
}

// checkRegion rejects a panel docked outside the five known regions.
func (t *Tree) checkRegion(id NodeID, kind Kind, cfg Config) error {
	if kind != KindPanel || cfg.Region < regionCount {
		return nil
	}
	return &ConfigError{
		Node:    t.Path(id),
		Field:   "region",
		Message: fmt.Sprintf("unknown region %s", cfg.Region),
		Err:     ErrUnknownRegion,
	}
}

func (t *Tree) regionError(host NodeID, err error) error {
	if dup, ok := err.(*DuplicateRegionError); ok {
		dup.Host = t.Path(host)
	}
	return err
}
