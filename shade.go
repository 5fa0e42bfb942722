package shade

import "errors"

// Opacity values follow the host convention: 0 is fully opaque (not dimmed)
// and 255 is fully transparent. The engine only ever writes 0 or the
// configured dim opacity.
const (
	// OpacityOpaque is the "not dimmed" sentinel.
	OpacityOpaque = 0

	// OpacityMax is the largest representable opacity (fully transparent).
	OpacityMax = 255

	// DefaultDimOpacity is the dim level applied to locked tradeable items
	// unless overridden via Engine.SetDimOpacity.
	DefaultDimOpacity = 150
)

// ErrUnknownItem is returned by a Resolver when an item identifier has no
// composition data. Distinct from transient lookup failures: the engine
// caches "not tradeable" for unknown items but not for other errors.
var ErrUnknownItem = errors.New("shade: unknown item")

// clampOpacity snaps v into [OpacityOpaque, OpacityMax].
func clampOpacity(v int) int {
	if v < OpacityOpaque {
		return OpacityOpaque
	}
	if v > OpacityMax {
		return OpacityMax
	}
	return v
}

// Widget is the engine's read view of a single host UI node. The host owns
// the tree and its structure; the engine only reads these attributes,
// enumerates children, and writes opacity.
//
// An item identifier ≤ 0 means "no item bound". Any of the three child
// partitions may be nil, and entries within a partition may be nil; the
// engine tolerates both.
type Widget interface {
	Hidden() bool
	ItemID() int
	ItemQuantity() int
	Opacity() int
	SetOpacity(opacity int)

	// The host models UI composition as three ownership-distinct child
	// groups per node. They are disjoint; traversal order among them does
	// not affect the outcome.
	DynamicChildren() []Widget
	StaticChildren() []Widget
	NestedChildren() []Widget
}

// Host exposes the scene forest and the activity gate. Roots may return nil
// (no UI this frame). Active reports whether the application is in a state
// where UI mutation is meaningful (e.g. logged in); the engine no-ops
// otherwise.
type Host interface {
	Active() bool
	Roots() []Widget
}

// Composition is the metadata the engine needs about one item identifier.
type Composition struct {
	// Tradeable reports whether the item can be exchanged with other
	// players. Dimming only ever applies to tradeable items.
	Tradeable bool

	// Placeholder reports whether this identifier is a placeholder variant.
	// When true, PlaceholderID names the item the placeholder represents.
	Placeholder   bool
	PlaceholderID int

	// LinkedNoteID is the noted/unnoted counterpart identifier, or 0 if the
	// item has none.
	LinkedNoteID int
}

// Resolver provides item identity and composition metadata. Both methods
// may fail; the engine applies a documented safe default at every call site
// rather than propagating errors out of the frame hook.
type Resolver interface {
	// Canonicalize maps a raw item identifier (possibly a noted or
	// placeholder variant) to its canonical base identifier.
	Canonicalize(raw int) (int, error)

	// Composition returns metadata for an item identifier. Absence is
	// reported as ErrUnknownItem.
	Composition(id int) (Composition, error)
}

// Oracle answers unlock membership queries. A nil Oracle is a valid
// null-object: the engine then treats every item as unlocked and never dims.
type Oracle interface {
	IsUnlocked(id int) (bool, error)
}
