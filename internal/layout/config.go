package layout

import (
	"fmt"
	"strings"
)

// Kind specifies the role a node plays in the tree.
type Kind uint8

const (
	KindContainer Kind = iota // Hosts flowed, gridded or docked children
	KindPanel                 // Container docked into a region of its host
	KindControl               // Leaf with intrinsic content
	KindFloat                 // Laid out against the viewport, outside the host's flow
)

var kindNames = [...]string{"container", "panel", "control", "float"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// ParseKind converts a kind name such as "panel" into a Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown node kind %q", s)
}

// Region is one of the five docking slots of a panel host.
type Region uint8

const (
	RegionNone Region = iota
	RegionTop
	RegionLeft
	RegionCenter
	RegionRight
	RegionBottom

	regionCount
)

var regionNames = [...]string{"none", "top", "left", "center", "right", "bottom"}

func (r Region) String() string {
	if r < regionCount {
		return regionNames[r]
	}
	return fmt.Sprintf("region(%d)", r)
}

// ParseRegion converts a region name such as "left" into a Region.
// The empty string maps to RegionNone.
func ParseRegion(s string) (Region, error) {
	if s == "" {
		return RegionNone, nil
	}
	for i, name := range regionNames {
		if strings.EqualFold(s, name) {
			return Region(i), nil
		}
	}
	return RegionNone, fmt.Errorf("unknown region %q", s)
}

// band reports whether r shares the middle band (left, center, right).
func (r Region) band() bool {
	return r == RegionLeft || r == RegionCenter || r == RegionRight
}

// Strategy selects how a host positions its non-panel children.
type Strategy uint8

const (
	StrategyInherit Strategy = iota // Use the nearest ancestor's strategy
	StrategyFlow                    // Column flow with row wrapping
	StrategyGrid                    // Explicit row/column templates
)

var strategyNames = [...]string{"inherit", "flow", "grid"}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("strategy(%d)", s)
}

// ParseStrategy converts a strategy name into a Strategy.
// The empty string maps to StrategyInherit.
func ParseStrategy(s string) (Strategy, error) {
	if s == "" {
		return StrategyInherit, nil
	}
	for i, name := range strategyNames {
		if strings.EqualFold(s, name) {
			return Strategy(i), nil
		}
	}
	return StrategyInherit, fmt.Errorf("unknown layout strategy %q", s)
}

// AutoIndex places a child at the current cursor instead of an explicit
// row or column.
const AutoIndex = -1

// Config contains the layout properties of a node.
//
// Heights and widths describe the border box. The engine adds the margin
// when it reports demand to the host.
type Config struct {
	// Sizing. Zero means unset.
	Height    int
	MinHeight int
	Width     int
	MinWidth  int

	Fill     bool // Seeks leftover height instead of its natural height
	Scroll   bool // Content scrolls instead of growing the node
	FillView bool // A scrolling view that asks to fill available space
	Hidden   bool // Not rendered; takes no space

	// Placement inside the host.
	Region     Region // Panel children only
	Column     int
	ColumnSpan int // 0 spans the full row in flow, one track in grid
	Row        int
	RowSpan    int

	// Host properties.
	Strategy           Strategy
	ColumnCount        int    // Flow columns
	Columns            string // Grid column template, "index/size ..."
	Rows               string // Grid row template, "index/size ..."
	MinColumns         int
	MinRows            int
	DefaultColumnWidth string
	DefaultRowHeight   string

	// Box model.
	Margin         Edges
	Padding        Edges // Includes the border
	ContentMargin  Edges
	ContentPadding Edges
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Column:      AutoIndex,
		Row:         AutoIndex,
		RowSpan:     1,
		Strategy:    StrategyInherit,
		ColumnCount: 1,
	}
}
