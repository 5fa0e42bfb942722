package shade

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// ItemNode is a ready-made Widget implementation for hosts that don't bring
// their own UI tree. A single flat struct is used for every slot kind
// (container, item slot, placeholder) to avoid interface dispatch inside the
// host's own code; the engine still sees it through the Widget interface.
//
// Structure (the three child partitions) belongs to the host; the engine
// only writes the opacity field.
type ItemNode struct {
	Name string

	// Item binding. ID ≤ 0 means no item bound; Quantity 0 with a positive
	// ID marks a bank-placeholder slot.
	ID       int
	Quantity int

	// HiddenFlag excludes the node and its whole subtree from dimming.
	HiddenFlag bool

	// Icon is drawn by DrawIcon with alpha derived from opacity. Optional.
	Icon *ebiten.Image

	// X, Y position the icon on screen for DrawIcon. The engine never reads
	// these.
	X, Y float64

	opacity int

	dynamic []Widget
	static  []Widget
	nested  []Widget
}

// NewItemNode creates a node bound to the given item id and quantity.
// Pass id ≤ 0 for a plain container.
func NewItemNode(name string, id, quantity int) *ItemNode {
	return &ItemNode{Name: name, ID: id, Quantity: quantity}
}

func (n *ItemNode) Hidden() bool      { return n.HiddenFlag }
func (n *ItemNode) ItemID() int       { return n.ID }
func (n *ItemNode) ItemQuantity() int { return n.Quantity }
func (n *ItemNode) Opacity() int      { return n.opacity }

// SetOpacity writes the node's opacity, clamped to [0, 255].
func (n *ItemNode) SetOpacity(opacity int) {
	n.opacity = clampOpacity(opacity)
}

func (n *ItemNode) DynamicChildren() []Widget { return n.dynamic }
func (n *ItemNode) StaticChildren() []Widget  { return n.static }
func (n *ItemNode) NestedChildren() []Widget  { return n.nested }

// AddDynamic appends c to the dynamic child partition.
func (n *ItemNode) AddDynamic(c Widget) { n.dynamic = append(n.dynamic, c) }

// AddStatic appends c to the static child partition.
func (n *ItemNode) AddStatic(c Widget) { n.static = append(n.static, c) }

// AddNested appends c to the nested child partition.
func (n *ItemNode) AddNested(c Widget) { n.nested = append(n.nested, c) }

// DrawIcon renders the node's icon at its position with alpha derived from
// the current opacity: 0 draws fully opaque, 255 fully transparent. Hidden
// nodes and nodes without an icon draw nothing. Children are not drawn;
// hosts composite in their own order.
func (n *ItemNode) DrawIcon(screen *ebiten.Image) {
	if n.HiddenFlag || n.Icon == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(n.X, n.Y)
	op.ColorScale.ScaleAlpha(float32(OpacityMax-n.opacity) / float32(OpacityMax))
	screen.DrawImage(n.Icon, op)
}

// Forest is a minimal Host: a root list plus an activity gate. It mirrors
// the shape of a game client's root-widget array and logged-in state.
type Forest struct {
	roots  []Widget
	active bool
}

// NewForest creates an inactive forest with no roots.
func NewForest() *Forest {
	return &Forest{}
}

// AddRoot appends a root widget to the forest.
func (f *Forest) AddRoot(w Widget) {
	f.roots = append(f.roots, w)
}

// SetActive sets the activity gate consulted by the engine each frame.
func (f *Forest) SetActive(active bool) {
	f.active = active
}

func (f *Forest) Active() bool    { return f.active }
func (f *Forest) Roots() []Widget { return f.roots }
