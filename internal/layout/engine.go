package layout

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/grindlemire/go-webobj/internal/debug"
)

// Options tune an Engine.
type Options struct {
	// RoundingReserve is the number of pixels held back from each stretch
	// division. Tune it per backend; it has no meaning for non-pixel hosts.
	RoundingReserve int

	// Tracer records a span per pass and per phase. Nil disables tracing.
	Tracer trace.Tracer

	// OnRelayout is called whenever a node asks for a fresh pass: after a
	// structural mutation, a configuration change, NotifySizeChanged or a
	// viewport change. Orchestrators use it to debounce passes.
	OnRelayout func(id NodeID)
}

// DefaultOptions returns Options with the default rounding reserve.
func DefaultOptions() Options {
	return Options{RoundingReserve: DefaultRoundingReserve}
}

// ViewportSignal reports changes of the space available to the root.
type ViewportSignal interface {
	// Subscribe calls fn with the new size on every change until cancel
	// is called.
	Subscribe(fn func(width, height int)) (cancel func())
}

// Engine runs the measure and resize phases over a Tree and writes the
// results to a Surface. It never touches process-wide state; viewport
// changes arrive through OnAvailableSpaceChanged.
type Engine struct {
	tree    *Tree
	surface Surface
	root    NodeID
	opts    Options
	tracer  trace.Tracer

	pending bool
	inPass  bool
}

// NewEngine creates an engine for the tree rooted at root.
func NewEngine(tree *Tree, surface Surface, root NodeID, opts Options) *Engine {
	tracer := opts.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("webobj/layout")
	}
	e := &Engine{
		tree:    tree,
		surface: surface,
		root:    root,
		opts:    opts,
		tracer:  tracer,
		pending: true,
	}
	tree.onInvalidate = e.requestRelayout
	return e
}

// Tree returns the engine's tree.
func (e *Engine) Tree() *Tree {
	return e.tree
}

// Root returns the root node.
func (e *Engine) Root() NodeID {
	return e.root
}

// Surface returns the engine's surface.
func (e *Engine) Surface() Surface {
	return e.surface
}

func (e *Engine) requestRelayout(id NodeID) {
	if e.inPass {
		return
	}
	e.pending = true
	if e.opts.OnRelayout != nil {
		e.opts.OnRelayout(id)
	}
}

// Pending reports whether a relayout was requested since the last full pass.
func (e *Engine) Pending() bool {
	return e.pending
}

// Flush runs a full pass on the root if one is pending.
func (e *Engine) Flush(ctx context.Context) error {
	if !e.pending {
		return nil
	}
	return e.Resize(ctx, e.root)
}

// NotifySizeChanged invalidates the cached geometry of id after a local
// change and requests a relayout. With forceCascade every descendant is
// re-measured too.
func (e *Engine) NotifySizeChanged(id NodeID, forceCascade bool) error {
	if _, err := e.tree.get(id); err != nil {
		return err
	}
	debug.Log("layout: size changed at %s (cascade=%t)", e.tree.Path(id), forceCascade)
	if forceCascade {
		e.tree.invalidateSubtree(id, StateNeedsMeasure)
	} else {
		e.tree.invalidate(id, StateNeedsMeasure)
	}
	return nil
}

// OnAvailableSpaceChanged records a new viewport size and requests a
// relayout. Surfaces that track the viewport themselves are updated.
func (e *Engine) OnAvailableSpaceChanged(width, height int) {
	if vs, ok := e.surface.(interface{ SetViewport(width, height int) }); ok {
		vs.SetViewport(width, height)
	}
	debug.Log("layout: viewport %dx%d", width, height)
	e.requestRelayout(e.root)
}

// Watch subscribes the engine to sig. Call the returned func to stop.
func (e *Engine) Watch(sig ViewportSignal) (stop func()) {
	return sig.Subscribe(e.OnAvailableSpaceChanged)
}

// Position re-derives region docking and flow/grid placement below id
// wherever it is stale. It is a no-op on a clean subtree.
func (e *Engine) Position(id NodeID) error {
	if _, err := e.tree.get(id); err != nil {
		return err
	}
	return e.guard(func() error { return e.position(id) })
}

// Measure computes the height demand of id and its descendants.
func (e *Engine) Measure(id NodeID) (Measurement, error) {
	if _, err := e.tree.get(id); err != nil {
		return Measurement{}, err
	}
	var m Measurement
	err := e.guard(func() error {
		var err error
		m, err = e.measure(id)
		return err
	})
	return m, err
}

// ResizeHorizontal assigns widths to id and its descendants.
func (e *Engine) ResizeHorizontal(id NodeID) error {
	if _, err := e.tree.get(id); err != nil {
		return err
	}
	return e.guard(func() error { return e.resizeHorizontal(id) })
}

// ResizeVertical assigns heights to id and its descendants, measuring
// first wherever the cache is stale.
func (e *Engine) ResizeVertical(id NodeID) error {
	if _, err := e.tree.get(id); err != nil {
		return err
	}
	return e.guard(func() error { return e.resizeVertical(id) })
}

// Resize runs a full pass on the subtree at id: position, measure,
// horizontal resize, vertical resize, each completing for the whole subtree
// before the next starts. Floats below id are then laid out against the
// viewport. Configuration errors are returned as they are found.
func (e *Engine) Resize(ctx context.Context, id NodeID) error {
	if _, err := e.tree.get(id); err != nil {
		return err
	}
	ctx, span := e.tracer.Start(ctx, "layout.Resize",
		trace.WithAttributes(attribute.String("layout.node", e.tree.Path(id))))
	defer span.End()

	start := time.Now()
	err := e.guard(func() error {
		if err := e.pass(ctx, id); err != nil {
			return err
		}
		for _, f := range e.floats(id) {
			if err := e.pass(ctx, f); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		debug.Log("layout: resize %s failed: %v", e.tree.Path(id), err)
		return err
	}

	if id == e.root {
		e.pending = false
	}
	debug.Log("layout: resize %s in %s", e.tree.Path(id), time.Since(start))
	return nil
}

func (e *Engine) guard(fn func() error) error {
	if e.inPass {
		return fn()
	}
	e.inPass = true
	defer func() { e.inPass = false }()
	return fn()
}

// pass runs the phases for one layout root.
func (e *Engine) pass(ctx context.Context, id NodeID) error {
	n := e.tree.node(id)
	if n.parent.IsNone() || n.kind == KindFloat {
		w, h := e.surface.ClientSize(id)
		n.slot = Rect{Width: w, Height: h}
	}

	phases := []struct {
		name string
		run  func() error
	}{
		{"layout.position", func() error { return e.position(id) }},
		{"layout.measure", func() error { _, err := e.measure(id); return err }},
		{"layout.horizontal", func() error { return e.resizeHorizontal(id) }},
		{"layout.vertical", func() error { return e.resizeVertical(id) }},
	}
	for _, p := range phases {
		_, span := e.tracer.Start(ctx, p.name)
		err := p.run()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		if err != nil {
			return err
		}
	}
	return nil
}

// floats returns the rendered floats below id in depth-first order.
func (e *Engine) floats(id NodeID) []NodeID {
	var out []NodeID
	e.tree.Walk(id, func(cur NodeID, _ int) bool {
		n := e.tree.node(cur)
		if n.config.Hidden {
			return false
		}
		if cur != id && n.kind == KindFloat {
			out = append(out, cur)
		}
		return true
	})
	return out
}

// rendered reports whether id is a live, visible node.
func (e *Engine) rendered(id NodeID) bool {
	if id.IsNone() {
		return false
	}
	n, err := e.tree.get(id)
	return err == nil && !n.config.Hidden
}

// dockedIn returns the region id is docked in, or RegionNone.
func (e *Engine) dockedIn(id NodeID) Region {
	n := e.tree.node(id)
	if n.kind != KindPanel || n.parent.IsNone() {
		return RegionNone
	}
	if _, ok := e.tree.node(n.parent).host.(*regionModel); !ok {
		return RegionNone
	}
	return dockRegion(n.config)
}

func (e *Engine) applyWidth(id NodeID, x, width int) {
	a := &e.tree.node(id).applied
	if a.horizontal && a.x == x && a.width == width {
		return
	}
	a.x, a.width, a.horizontal = x, width, true
	e.surface.ApplyWidth(id, x, width)
}

func (e *Engine) applyHeight(id NodeID, y, height int) {
	a := &e.tree.node(id).applied
	if a.vertical && a.y == y && a.height == height {
		return
	}
	a.y, a.height, a.vertical = y, height, true
	e.surface.ApplyHeight(id, y, height)
}
