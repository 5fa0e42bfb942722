package shade

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// StatsOverlay draws the engine's per-frame counters into a small panel for
// debugging. Draw it from the render goroutine after BeforeRender has run,
// so the counters reflect the frame being composited.
type StatsOverlay struct {
	engine *Engine
	img    *ebiten.Image

	// X, Y position the panel on screen.
	X, Y float64
}

// NewStatsOverlay creates an overlay bound to the given engine.
func NewStatsOverlay(engine *Engine) *StatsOverlay {
	// 150x48 is enough for four counter lines.
	return &StatsOverlay{
		engine: engine,
		img:    ebiten.NewImage(150, 48),
	}
}

// Draw renders the current frame's stats onto screen.
func (o *StatsOverlay) Draw(screen *ebiten.Image) {
	stats := o.engine.Stats()

	o.img.Clear()
	// Semi-transparent background for readability.
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf(
		"visited: %d\nwrites: %d\nverdict hit: %d\nverdict miss: %d",
		stats.Visited, stats.Writes, stats.VerdictHits, stats.VerdictMisses))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.X, o.Y)
	screen.DrawImage(o.img, op)
}
