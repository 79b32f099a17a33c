package manifest

import (
	"fmt"

	webobj "github.com/grindlemire/go-webobj"
	"github.com/grindlemire/go-webobj/internal/layout"
)

// Instance is a manifest instantiated on an in-memory surface.
type Instance struct {
	Tree    *layout.Tree
	Root    layout.NodeID
	Surface *layout.MemorySurface
	Engine  *layout.Engine
}

// Build validates the manifest and creates its tree.
func (d *Document) Build() (*layout.Tree, layout.NodeID, error) {
	if err := d.Validate(); err != nil {
		return nil, layout.None, err
	}
	tree := layout.NewTree()
	root, err := build(tree, &d.Root, segment(&d.Root, 0, "root"))
	if err != nil {
		return nil, layout.None, err
	}
	return tree, root, nil
}

// Instantiate builds the tree and wires an engine to a memory surface of
// the manifest's viewport size.
func (d *Document) Instantiate(opts layout.Options) (*Instance, error) {
	tree, root, err := d.Build()
	if err != nil {
		return nil, err
	}
	s := layout.NewMemorySurface(tree, d.Viewport.Width, d.Viewport.Height)
	return &Instance{
		Tree:    tree,
		Root:    root,
		Surface: s,
		Engine:  layout.NewEngine(tree, s, root, opts),
	}, nil
}

func build(tree *layout.Tree, s *NodeSpec, path string) (layout.NodeID, error) {
	kind, err := s.kind()
	if err != nil {
		return layout.None, &ManifestError{Path: path, Field: "kind", Err: err}
	}
	id := tree.NewNode(s.Name, kind, s.Config())

	var content layout.Content
	switch {
	case s.Text != "":
		content = webobj.NewLabel(s.Text)
	case s.ContentHeight > 0:
		content = layout.FixedContent(s.ContentHeight)
	}
	if content != nil {
		if err := tree.SetContent(id, content); err != nil {
			return layout.None, &ManifestError{Path: path, Field: "text", Err: err}
		}
	}

	for i := range s.Children {
		c := &s.Children[i]
		childPath := path + "/" + segment(c, i, "")
		child, err := build(tree, c, childPath)
		if err != nil {
			return layout.None, err
		}
		if err := tree.Append(id, child); err != nil {
			return layout.None, &ManifestError{Path: childPath, Message: fmt.Sprintf("cannot attach: %v", err), Err: err}
		}
	}
	return id, nil
}
