package main

import (
	"context"
	"flag"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-webobj/internal/debug"
	"github.com/grindlemire/go-webobj/internal/layout"
	"github.com/grindlemire/go-webobj/internal/manifest"
	"github.com/grindlemire/go-webobj/internal/render"
	"github.com/grindlemire/go-webobj/internal/telemetry"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
)

// row is the computed geometry of one node.
type row struct {
	Node    string // Indented by depth
	Kind    string
	Rect    layout.Rect
	Content layout.Rect
	Scroll  int // Zero unless the content overflows
}

// laidOut is a manifest after a full layout pass.
type laidOut struct {
	file string
	doc  *manifest.Document
	inst *manifest.Instance
}

// runLayout implements the layout subcommand. Manifests are independent,
// so they are laid out concurrently and printed in argument order.
func runLayout(ctx context.Context, tp *telemetry.Provider, args []string) error {
	fs := flag.NewFlagSet("layout", flag.ContinueOnError)
	draw := fs.Bool("draw", false, "draw the laid out boxes below the table")
	titles := fs.Bool("titles", true, "write node names into drawn borders")
	width := fs.Int("width", 0, "override the manifest viewport width")
	height := fs.Int("height", 0, "override the manifest viewport height")
	verbose := fs.Bool("v", false, "verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := collectManifests(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no manifest files found")
	}
	if *verbose {
		fmt.Printf("Laying out %d manifest(s)\n", len(files))
	}

	results := make([]*laidOut, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			res, err := layoutFile(gctx, tp, file, *width, *height)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, res := range results {
		if i > 0 {
			fmt.Println()
		}
		vp := res.doc.Viewport
		fmt.Println(titleStyle.Render(fmt.Sprintf("%s (%dx%d)", res.doc.Name, vp.Width, vp.Height)))
		fmt.Println(formatTable(report(res.inst.Tree, res.inst.Root)))
		if *draw {
			fmt.Println(render.Draw(res.inst.Tree, res.inst.Root, render.Options{Titles: *titles}).StringTrimmed())
		}
	}
	return nil
}

// layoutFile loads a manifest and runs one full pass over it.
func layoutFile(ctx context.Context, tp *telemetry.Provider, file string, width, height int) (*laidOut, error) {
	doc, err := manifest.Load(file)
	if err != nil {
		return nil, err
	}
	if width > 0 {
		doc.Viewport.Width = width
	}
	if height > 0 {
		doc.Viewport.Height = height
	}

	opts := doc.Options()
	opts.Tracer = tp.Tracer()
	inst, err := doc.Instantiate(opts)
	if err != nil {
		return nil, err
	}
	if err := inst.Engine.Resize(ctx, inst.Root); err != nil {
		return nil, err
	}
	debug.Log("webobj: laid out %s with %d nodes", file, inst.Tree.Len())
	return &laidOut{file: file, doc: doc, inst: inst}, nil
}

// report lists the visible nodes below root in depth-first order.
func report(tree *layout.Tree, root layout.NodeID) []row {
	var rows []row
	tree.Walk(root, func(id layout.NodeID, depth int) bool {
		cfg := tree.Config(id)
		if cfg.Hidden {
			return false
		}

		name := tree.Name(id)
		if name == "" {
			name = id.String()
		}
		kind := tree.Kind(id).String()
		if tree.Kind(id) == layout.KindPanel {
			region := cfg.Region
			if region == layout.RegionNone {
				region = layout.RegionCenter
			}
			kind += ":" + region.String()
		}

		l := tree.Layout(id)
		r := row{
			Node:    strings.Repeat("  ", depth) + name,
			Kind:    kind,
			Rect:    l.Rect,
			Content: l.ContentRect,
		}
		if l.ScrollHeight > l.ContentRect.Height {
			r.Scroll = l.ScrollHeight
		}
		rows = append(rows, r)
		return true
	})
	return rows
}

// formatTable renders rows as a bordered table.
func formatTable(rows []row) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NODE", "KIND", "X", "Y", "WIDTH", "HEIGHT", "CONTENT", "SCROLL").
		StyleFunc(func(r, _ int) lipgloss.Style {
			if r == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range rows {
		scroll := ""
		if r.Scroll > 0 {
			scroll = strconv.Itoa(r.Scroll)
		}
		t.Row(
			r.Node,
			r.Kind,
			strconv.Itoa(r.Rect.X),
			strconv.Itoa(r.Rect.Y),
			strconv.Itoa(r.Rect.Width),
			strconv.Itoa(r.Rect.Height),
			fmt.Sprintf("%dx%d", r.Content.Width, r.Content.Height),
			scroll,
		)
	}
	return t.String()
}
