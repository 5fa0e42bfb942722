package shade

import (
	"sync"
	"sync/atomic"
)

const defaultDecisionCap = 256

// Engine decides, once per frame, whether each item-bearing widget should be
// dimmed because the underlying item is tradeable but not yet unlocked, and
// applies the result as an opacity value. It is designed to run from the
// host's pre-render hook so nothing later in the same frame can overwrite
// its writes.
//
// All traversal state is owned by the render goroutine. Enabled and dim
// opacity may be toggled from other goroutines (e.g. a settings callback);
// the tradeable cache is safe for concurrent use.
type Engine struct {
	host     Host
	resolver Resolver
	oracle   Oracle // nil means "everything unlocked"

	// Long-lived classification cache: canonical item id -> tradeable.
	// Insert-only; tradability of a canonical item is immutable for the
	// life of the process.
	tradeable sync.Map

	// Per-frame verdict cache: raw item id -> should dim. Valid only within
	// a single BeforeRender call, because unlock state may change between
	// frames. Render goroutine only.
	decisions map[int]bool

	enabled    atomic.Bool
	dimOpacity atomic.Int32

	stats FrameStats
}

// FrameStats holds counters from the most recent frame walk. Read them from
// the render goroutine after BeforeRender returns; they are reset at the
// start of every enabled frame.
type FrameStats struct {
	Visited       int // widgets visited (hidden subtrees excluded)
	VerdictHits   int // decision-cache hits
	VerdictMisses int // full verdict computations
	Writes        int // opacity writes actually performed
}

// NewEngine constructs an engine around the injected collaborators. A nil
// oracle is permitted and disables dimming entirely (fail open); host and
// resolver are required for the engine to do anything useful, but a nil
// host simply makes every frame a no-op.
func NewEngine(host Host, resolver Resolver, oracle Oracle) *Engine {
	e := &Engine{
		host:      host,
		resolver:  resolver,
		oracle:    oracle,
		decisions: make(map[int]bool, defaultDecisionCap),
	}
	e.enabled.Store(true)
	e.dimOpacity.Store(DefaultDimOpacity)
	return e
}

// SetEnabled toggles the engine. When disabled, BeforeRender performs no
// traversal and no mutation. Safe to call from any goroutine.
func (e *Engine) SetEnabled(enabled bool) {
	e.enabled.Store(enabled)
}

// Enabled reports whether the engine will act on the next frame.
func (e *Engine) Enabled() bool {
	return e.enabled.Load()
}

// SetDimOpacity sets the opacity applied to dimmed icons, clamped to
// [0, 255]. Safe to call from any goroutine.
func (e *Engine) SetDimOpacity(opacity int) {
	e.dimOpacity.Store(int32(clampOpacity(opacity)))
}

// DimOpacity returns the configured dim opacity.
func (e *Engine) DimOpacity() int {
	return int(e.dimOpacity.Load())
}

// Stats returns the counters from the most recent frame.
func (e *Engine) Stats() FrameStats {
	return e.stats
}

// BeforeRender is the per-frame entry point. Call it from the host's
// pre-render hook, after all other frame logic has run and before the scene
// is composited. It never panics and never blocks: every fallible lookup
// degrades to a safe default.
func (e *Engine) BeforeRender() {
	if !e.enabled.Load() || e.host == nil || !e.host.Active() {
		return
	}

	clear(e.decisions)
	e.stats = FrameStats{}

	for _, root := range e.host.Roots() {
		if root != nil {
			e.walk(root)
		}
	}
}

// walk applies dimming to w and recurses into all three child partitions.
// Hidden widgets are skipped along with their entire subtree.
func (e *Engine) walk(w Widget) {
	if w == nil || w.Hidden() {
		return
	}
	e.stats.Visited++

	if itemID := w.ItemID(); itemID > 0 {
		verdict := e.shouldDimMemoized(itemID)

		// Don't override the host's own dim on empty placeholder slots.
		// The verdict above is still cached for the frame.
		if !isPlaceholderSlot(w) {
			target := OpacityOpaque
			if verdict {
				target = int(e.dimOpacity.Load())
			}
			if w.Opacity() != target {
				w.SetOpacity(target)
				e.stats.Writes++
			}
		}
	}

	for _, c := range w.DynamicChildren() {
		if c != nil {
			e.walk(c)
		}
	}
	for _, c := range w.StaticChildren() {
		if c != nil {
			e.walk(c)
		}
	}
	for _, c := range w.NestedChildren() {
		if c != nil {
			e.walk(c)
		}
	}
}

// isPlaceholderSlot reports whether w is a bank-placeholder slot: a widget
// bound to an item it holds zero of.
func isPlaceholderSlot(w Widget) bool {
	return w.ItemID() > 0 && w.ItemQuantity() == 0
}
