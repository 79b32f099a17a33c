// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package webobj

import "github.com/grindlemire/go-webobj/internal/layout"

// Tree is an arena of layout nodes addressed by NodeID handles.
type Tree = layout.Tree

// NodeID is a stable handle to a node in a Tree.
type NodeID = layout.NodeID

// None is the handle of no node.
var None = layout.None

// Kind specifies the role a node plays in the tree.
type Kind = layout.Kind

const (
	KindContainer = layout.KindContainer
	KindPanel     = layout.KindPanel
	KindControl   = layout.KindControl
	KindFloat     = layout.KindFloat
)

// Region is one of the five docking slots of a panel host.
type Region = layout.Region

const (
	RegionNone   = layout.RegionNone
	RegionTop    = layout.RegionTop
	RegionLeft   = layout.RegionLeft
	RegionCenter = layout.RegionCenter
	RegionRight  = layout.RegionRight
	RegionBottom = layout.RegionBottom
)

// Regions maps each docking region of a panel host to its panel.
type Regions = layout.Regions

// Strategy selects how a host positions its non-panel children.
type Strategy = layout.Strategy

const (
	StrategyInherit = layout.StrategyInherit
	StrategyFlow    = layout.StrategyFlow
	StrategyGrid    = layout.StrategyGrid
)

// AutoIndex places a child at the current cursor.
const AutoIndex = layout.AutoIndex

// Config contains the layout properties of a node.
type Config = layout.Config

// Content is the intrinsic content of a control.
type Content = layout.Content

// ContentFunc adapts a function to the Content interface.
type ContentFunc = layout.ContentFunc

// FixedContent is content whose height does not depend on width.
type FixedContent = layout.FixedContent

// Engine runs layout passes over a Tree.
type Engine = layout.Engine

// Options tune an Engine.
type Options = layout.Options

// Measurement is the height demand a node reports to its host.
type Measurement = layout.Measurement

// Surface is the rendering backend that displays nodes.
type Surface = layout.Surface

// MemorySurface is an in-memory Surface.
type MemorySurface = layout.MemorySurface

// ViewportSignal reports changes of the space available to the root.
type ViewportSignal = layout.ViewportSignal

// BoxPart selects layers of a node's box.
type BoxPart = layout.BoxPart

const (
	BoxOuter        = layout.BoxOuter
	BoxInner        = layout.BoxInner
	BoxContentOuter = layout.BoxContentOuter
	BoxContentInner = layout.BoxContentInner
	BoxAll          = layout.BoxAll
)

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// LayoutResult holds the computed layout for a node.
type LayoutResult = layout.Layout

// FlowSlot is the resolved placement of a child in a flow host.
type FlowSlot = layout.FlowSlot

// State is the layout state of a node.
type State = layout.State

const (
	StateClean         = layout.StateClean
	StateNeedsMeasure  = layout.StateNeedsMeasure
	StateNeedsPosition = layout.StateNeedsPosition
)

// Template is a parsed track template of a grid host.
type Template = layout.Template

// TrackSize is one row or column size of a Template.
type TrackSize = layout.TrackSize

// FlowRequest asks for a column and span in a flow host.
type FlowRequest = layout.FlowRequest

// StretchGroup is a flow row sharing leftover height.
type StretchGroup = layout.StretchGroup

// FullWidth is the width of a flow row in basis points.
const FullWidth = layout.FullWidth

// DefaultRoundingReserve is the default pixel held back per stretch group.
const DefaultRoundingReserve = layout.DefaultRoundingReserve

// Errors returned by tree mutations and layout passes.
var (
	ErrConfiguration     = layout.ErrConfiguration
	ErrDuplicateRegion   = layout.ErrDuplicateRegion
	ErrMixedChildren     = layout.ErrMixedChildren
	ErrMalformedTemplate = layout.ErrMalformedTemplate
	ErrColumnCount       = layout.ErrColumnCount
	ErrUnknownNode       = layout.ErrUnknownNode
	ErrInvalidTree       = layout.ErrInvalidTree
)

// ConfigError reports a configuration error on a specific node.
type ConfigError = layout.ConfigError

// DuplicateRegionError reports a panel docked into an occupied region.
type DuplicateRegionError = layout.DuplicateRegionError

// TemplateError reports a malformed template token.
type TemplateError = layout.TemplateError

// NewTree creates an empty tree.
func NewTree() *Tree {
	return layout.NewTree()
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return layout.DefaultConfig()
}

// DefaultOptions returns Options with the default rounding reserve.
func DefaultOptions() Options {
	return layout.DefaultOptions()
}

// NewEngine creates an engine for the tree rooted at root.
func NewEngine(tree *Tree, surface Surface, root NodeID, opts Options) *Engine {
	return layout.NewEngine(tree, surface, root, opts)
}

// NewMemorySurface creates an in-memory surface with the given viewport.
func NewMemorySurface(tree *Tree, width, height int) *MemorySurface {
	return layout.NewMemorySurface(tree, width, height)
}

// ParseTemplate parses an "index/size ..." template padded to minCount.
func ParseTemplate(spec string, minCount int) (Template, error) {
	return layout.ParseTemplate(spec, minCount)
}

// PlaceFlow resolves flow requests into rows of basis-point slots.
func PlaceFlow(columnCount int, reqs []FlowRequest) ([]FlowSlot, error) {
	return layout.PlaceFlow(columnCount, reqs)
}

// DistributeStretch divides space among stretch groups, first group first.
func DistributeStretch(space int, groups []StretchGroup, reserve int) {
	layout.DistributeStretch(space, groups, reserve)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}
