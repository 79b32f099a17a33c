package layout

// Content is the intrinsic content of a control.
// The engine works entirely with this interface, so rendering backends can
// plug in their own text, image or widget measurement.
type Content interface {
	// NaturalHeight returns the height the content needs when it does not
	// stretch, given the inner width of the control. Width is zero before
	// the first horizontal pass.
	NaturalHeight(width int) int
}

// ContentFunc adapts a function to the Content interface.
type ContentFunc func(width int) int

// NaturalHeight calls f(width).
func (f ContentFunc) NaturalHeight(width int) int {
	return f(width)
}

// FixedContent is content whose height does not depend on width.
type FixedContent int

// NaturalHeight returns the fixed height.
func (c FixedContent) NaturalHeight(int) int {
	return int(c)
}

// widthSensitive reports whether c may change height with width.
func widthSensitive(c Content) bool {
	_, fixed := c.(FixedContent)
	return c != nil && !fixed
}
