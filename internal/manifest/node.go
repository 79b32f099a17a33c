package manifest

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-webobj/internal/layout"
)

// NodeSpec describes one node and its children.
type NodeSpec struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	// Sizing.
	Height    int  `yaml:"height"`
	MinHeight int  `yaml:"min-height"`
	Width     int  `yaml:"width"`
	MinWidth  int  `yaml:"min-width"`
	Fill      bool `yaml:"fill"`
	Scroll    bool `yaml:"scroll"`
	FillView  bool `yaml:"fill-view"`
	Hidden    bool `yaml:"hidden"`

	// Placement. A nil Column or Row places the node at the cursor.
	Region     string `yaml:"region"`
	Column     *int   `yaml:"column"`
	ColumnSpan int    `yaml:"column-span"`
	Row        *int   `yaml:"row"`
	RowSpan    int    `yaml:"row-span"`

	// Host properties.
	Strategy           string `yaml:"strategy"`
	ColumnCount        int    `yaml:"column-count"`
	Columns            string `yaml:"columns"`
	Rows               string `yaml:"rows"`
	MinColumns         int    `yaml:"min-columns"`
	MinRows            int    `yaml:"min-rows"`
	DefaultColumnWidth string `yaml:"default-column-width"`
	DefaultRowHeight   string `yaml:"default-row-height"`

	// Box model.
	Margin         EdgesSpec `yaml:"margin"`
	Padding        EdgesSpec `yaml:"padding"`
	ContentMargin  EdgesSpec `yaml:"content-margin"`
	ContentPadding EdgesSpec `yaml:"content-padding"`

	// Control content. Text wraps to the control width; ContentHeight is
	// a fixed natural height.
	Text          string `yaml:"text"`
	ContentHeight int    `yaml:"content-height"`

	Children []NodeSpec `yaml:"children"`
}

// Config converts the spec into a layout.Config. Names that do not parse
// are reported by Validate; Config leaves the default in their place.
func (s *NodeSpec) Config() layout.Config {
	cfg := layout.DefaultConfig()
	cfg.Height, cfg.MinHeight = s.Height, s.MinHeight
	cfg.Width, cfg.MinWidth = s.Width, s.MinWidth
	cfg.Fill, cfg.Scroll, cfg.FillView, cfg.Hidden = s.Fill, s.Scroll, s.FillView, s.Hidden

	if r, err := layout.ParseRegion(s.Region); err == nil {
		cfg.Region = r
	}
	if s.Column != nil {
		cfg.Column = *s.Column
	}
	cfg.ColumnSpan = s.ColumnSpan
	if s.Row != nil {
		cfg.Row = *s.Row
	}
	if s.RowSpan > 0 {
		cfg.RowSpan = s.RowSpan
	}

	if st, err := layout.ParseStrategy(s.Strategy); err == nil {
		cfg.Strategy = st
	}
	if s.ColumnCount > 0 {
		cfg.ColumnCount = s.ColumnCount
	}
	cfg.Columns, cfg.Rows = s.Columns, s.Rows
	cfg.MinColumns, cfg.MinRows = s.MinColumns, s.MinRows
	cfg.DefaultColumnWidth, cfg.DefaultRowHeight = s.DefaultColumnWidth, s.DefaultRowHeight

	cfg.Margin = s.Margin.Edges
	cfg.Padding = s.Padding.Edges
	cfg.ContentMargin = s.ContentMargin.Edges
	cfg.ContentPadding = s.ContentPadding.Edges
	return cfg
}

// kind returns the parsed kind, defaulting to container.
func (s *NodeSpec) kind() (layout.Kind, error) {
	if s.Kind == "" {
		return layout.KindContainer, nil
	}
	return layout.ParseKind(s.Kind)
}

// EdgesSpec decodes box edges either as a CSS-like shorthand of one, two,
// three or four numbers ("1", "1 2", "1 2 3", "1 2 3 4") or as a mapping
// with top, right, bottom and left keys.
type EdgesSpec struct {
	layout.Edges
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *EdgesSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		edges, err := parseEdges(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		e.Edges = edges
		return nil
	case yaml.MappingNode:
		var m struct {
			Top    int `yaml:"top"`
			Right  int `yaml:"right"`
			Bottom int `yaml:"bottom"`
			Left   int `yaml:"left"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		e.Edges = layout.EdgeTRBL(m.Top, m.Right, m.Bottom, m.Left)
		return nil
	default:
		return fmt.Errorf("line %d: edges must be a number list or a mapping", value.Line)
	}
}

func parseEdges(s string) (layout.Edges, error) {
	fields := strings.Fields(s)
	vals := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return layout.Edges{}, fmt.Errorf("invalid edge value %q", f)
		}
		vals[i] = v
	}

	switch len(vals) {
	case 1:
		return layout.EdgeAll(vals[0]), nil
	case 2:
		return layout.EdgeSymmetric(vals[0], vals[1]), nil
	case 3:
		return layout.EdgeTRBL(vals[0], vals[1], vals[2], vals[1]), nil
	case 4:
		return layout.EdgeTRBL(vals[0], vals[1], vals[2], vals[3]), nil
	default:
		return layout.Edges{}, fmt.Errorf("edges need 1 to 4 values, got %d", len(vals))
	}
}
