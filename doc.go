// Package shade dims the icons of tradeable items the player has not yet
// unlocked, once per rendered frame, from the host's pre-render hook.
//
// Shade does not decide which items are tradeable or unlocked — it queries
// injected collaborators — and it does not animate anything: each frame it
// computes a dim verdict per item and writes a target opacity outright, so
// nothing earlier in the frame can overwrite the result.
//
// # Quick start
//
// Construct an [Engine] around your scene host, an item metadata [Resolver],
// and an unlock [Oracle], then call [Engine.BeforeRender] at the top of your
// draw step:
//
//	manifest, _ := shade.LoadManifestFile("items.json")
//	unlocks, _ := shade.LoadUnlockSet("unlocks.json")
//	engine := shade.NewEngine(forest, manifest, unlocks)
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		engine.BeforeRender()
//		// ... composite the scene ...
//	}
//
// Hosts with their own UI tree implement [Widget] and [Host]; hosts without
// one can build a forest of [ItemNode] values under a [Forest].
//
// # Failure policy
//
// Every external lookup degrades to a safe default instead of escaping the
// frame hook: uncertain tradability resolves to "not tradeable" and
// uncertain unlock status to "unlocked", so errors always under-dim rather
// than visually mislead. A nil Oracle disables dimming entirely.
//
// # Concurrency
//
// BeforeRender must be called from a single goroutine (the render thread).
// [Engine.SetEnabled] and [Engine.SetDimOpacity] are safe to call from any
// goroutine, as is [UnlockSet].
package shade
