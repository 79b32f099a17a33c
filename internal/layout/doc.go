// Package layout implements the recursive container sizing engine for trees of
// server-driven web objects.
//
// A [Tree] holds containers, docked panels, controls and floats addressed by
// [NodeID] handles. Containers either dock panel children into the five
// regions (top, left, center, right, bottom) or position ordinary children in
// a column flow or an explicit row/column grid template.
//
// Layout runs in three phases driven by an [Engine]: [Engine.Measure] reports
// height demand bottom-up, [Engine.ResizeHorizontal] pushes widths top-down,
// and [Engine.ResizeVertical] pushes heights top-down. [Engine.Resize] runs a
// full pass. Final geometry is written to a [Surface] and mirrored in
// [Tree.Layout]. Types are re-exported through the root webobj package.
package layout
