package layout

import (
	"context"
	"testing"
)

// cfgWith returns DefaultConfig modified by fn.
func cfgWith(fn func(*Config)) Config {
	c := DefaultConfig()
	if fn != nil {
		fn(&c)
	}
	return c
}

// add creates a node and appends it to parent, failing the test on error.
func add(t *testing.T, tree *Tree, parent NodeID, name string, kind Kind, fn func(*Config)) NodeID {
	t.Helper()
	id := tree.NewNode(name, kind, cfgWith(fn))
	if !parent.IsNone() {
		if err := tree.Append(parent, id); err != nil {
			t.Fatalf("Append(%s, %s) error = %v", tree.Path(parent), name, err)
		}
	}
	return id
}

// control adds a control with fixed content height.
func control(t *testing.T, tree *Tree, parent NodeID, name string, height int, fn func(*Config)) NodeID {
	t.Helper()
	id := add(t, tree, parent, name, KindControl, fn)
	if err := tree.SetContent(id, FixedContent(height)); err != nil {
		t.Fatalf("SetContent(%s) error = %v", name, err)
	}
	return id
}

// setup creates an engine over a memory surface of width x height.
func setup(tree *Tree, root NodeID, width, height int) (*Engine, *MemorySurface) {
	s := NewMemorySurface(tree, width, height)
	return NewEngine(tree, s, root, DefaultOptions()), s
}

// resize runs a full pass on root, failing the test on error.
func resize(t *testing.T, e *Engine) {
	t.Helper()
	if err := e.Resize(context.Background(), e.Root()); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
}

func assertRect(t *testing.T, tree *Tree, id NodeID, want Rect) {
	t.Helper()
	if got := tree.Layout(id).Rect; got != want {
		t.Errorf("%s: Rect = %+v, want %+v", tree.Path(id), got, want)
	}
}
