package manifest

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-webobj/internal/layout"
)

// Validate checks the manifest without building it. It reports every
// problem it finds, each as a *ManifestError naming the node path.
func (d *Document) Validate() error {
	var errs []error
	if d.Viewport.Width < 0 || d.Viewport.Height < 0 {
		errs = append(errs, &ManifestError{Path: "/", Field: "viewport", Message: "size must not be negative"})
	}
	if d.RoundingReserve != nil && *d.RoundingReserve < 0 {
		errs = append(errs, &ManifestError{Path: "/", Field: "rounding-reserve", Message: "must not be negative"})
	}
	errs = append(errs, d.Root.validate(segment(&d.Root, 0, "root"))...)
	return errors.Join(errs...)
}

// segment names a node in a path. Unnamed nodes use their kind and index.
func segment(s *NodeSpec, index int, fallback string) string {
	if s.Name != "" {
		return s.Name
	}
	if fallback != "" {
		return fallback
	}
	kind := s.Kind
	if kind == "" {
		kind = "container"
	}
	return fmt.Sprintf("%s[%d]", kind, index)
}

func (s *NodeSpec) validate(path string) []error {
	var errs []error
	fail := func(field, format string, args ...any) {
		errs = append(errs, &ManifestError{Path: path, Field: field, Message: fmt.Sprintf(format, args...)})
	}
	wrap := func(field string, err error) {
		errs = append(errs, &ManifestError{Path: path, Field: field, Err: err})
	}

	kind, err := s.kind()
	if err != nil {
		wrap("kind", err)
	}
	if _, err := layout.ParseStrategy(s.Strategy); err != nil {
		wrap("strategy", err)
	}
	if _, err := layout.ParseRegion(s.Region); err != nil {
		wrap("region", err)
	} else if s.Region != "" && kind != layout.KindPanel {
		fail("region", "only panels dock into regions")
	}

	for field, v := range map[string]int{
		"height":       s.Height,
		"min-height":   s.MinHeight,
		"width":        s.Width,
		"min-width":    s.MinWidth,
		"column-span":  s.ColumnSpan,
		"row-span":     s.RowSpan,
		"column-count": s.ColumnCount,
		"min-columns":  s.MinColumns,
		"min-rows":     s.MinRows,
	} {
		if v < 0 {
			fail(field, "must not be negative")
		}
	}
	if s.Column != nil && *s.Column < 0 {
		fail("column", "must not be negative; omit it to place at the cursor")
	}
	if s.Row != nil && *s.Row < 0 {
		fail("row", "must not be negative; omit it to place at the cursor")
	}

	for field, e := range map[string]EdgesSpec{
		"margin":          s.Margin,
		"padding":         s.Padding,
		"content-margin":  s.ContentMargin,
		"content-padding": s.ContentPadding,
	} {
		if e.Top < 0 || e.Right < 0 || e.Bottom < 0 || e.Left < 0 {
			fail(field, "edges must not be negative")
		}
	}

	if _, err := layout.ParseTemplate(s.Columns, 0); err != nil {
		wrap("columns", err)
	}
	if _, err := layout.ParseTemplate(s.Rows, 0); err != nil {
		wrap("rows", err)
	}
	if s.DefaultColumnWidth != "" {
		if _, err := layout.ParseTrackSize(s.DefaultColumnWidth); err != nil {
			wrap("default-column-width", err)
		}
	}
	if s.DefaultRowHeight != "" {
		if _, err := layout.ParseTrackSize(s.DefaultRowHeight); err != nil {
			wrap("default-row-height", err)
		}
	}

	switch {
	case kind == layout.KindControl:
		if len(s.Children) > 0 {
			fail("children", "controls cannot have children")
		}
		if s.Text != "" && s.ContentHeight > 0 {
			fail("text", "text and content-height are exclusive")
		}
		if s.ContentHeight < 0 {
			fail("content-height", "must not be negative")
		}
	case s.Text != "" || s.ContentHeight != 0:
		fail("text", "only controls have content")
	}

	errs = append(errs, s.validateChildren(path)...)
	return errs
}

// validateChildren checks the sibling rules of a host: panels and other
// content never mix, and each region holds at most one panel.
func (s *NodeSpec) validateChildren(path string) []error {
	var errs []error
	docked := make(map[layout.Region]string)
	var firstPanel, firstOther string

	for i := range s.Children {
		c := &s.Children[i]
		childPath := path + "/" + segment(c, i, "")
		errs = append(errs, c.validate(childPath)...)

		kind, err := c.kind()
		if err != nil || kind == layout.KindFloat {
			continue
		}
		if kind != layout.KindPanel {
			if firstOther == "" {
				firstOther = childPath
			}
			continue
		}
		if firstPanel == "" {
			firstPanel = childPath
		}

		region, err := layout.ParseRegion(c.Region)
		if err != nil {
			continue
		}
		if region == layout.RegionNone {
			region = layout.RegionCenter
		}
		if other, ok := docked[region]; ok {
			errs = append(errs, &ManifestError{
				Path:    childPath,
				Field:   "region",
				Message: fmt.Sprintf("%s is already occupied by '%s'", region, other),
				Err:     layout.ErrDuplicateRegion,
			})
			continue
		}
		docked[region] = childPath
	}

	if firstPanel != "" && firstOther != "" {
		errs = append(errs, &ManifestError{
			Path:    path,
			Field:   "children",
			Message: fmt.Sprintf("panel '%s' and non-panel '%s' share a host", firstPanel, firstOther),
			Err:     layout.ErrMixedChildren,
		})
	}
	return errs
}
