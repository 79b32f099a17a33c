package layout

// Layout holds the computed position and size of a node after a pass.
type Layout struct {
	// Rect is the border box: the slot granted by the host minus this
	// node's margin. Use for hit testing and bounds.
	Rect Rect

	// ContentRect is Rect minus border, padding and the content wrapper's
	// box. Children are positioned inside it.
	ContentRect Rect

	// ScrollHeight is the height of the laid out content. It exceeds
	// ContentRect.Height when a scrolling host overflows.
	ScrollHeight int
}
