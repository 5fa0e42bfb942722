package shade

import "errors"

// shouldDimMemoized returns the frame's cached verdict for rawID, computing
// and caching it on first use. Within one frame the resolvers are consulted
// at most once per raw id.
func (e *Engine) shouldDimMemoized(rawID int) bool {
	if verdict, ok := e.decisions[rawID]; ok {
		e.stats.VerdictHits++
		return verdict
	}
	e.stats.VerdictMisses++

	verdict := e.shouldDim(rawID)
	e.decisions[rawID] = verdict
	return verdict
}

// shouldDim computes the dim verdict for a raw item id: dim exactly when the
// canonical item is tradeable and no related id is unlocked.
func (e *Engine) shouldDim(rawID int) bool {
	canonicalID := e.canonicalize(rawID)
	if canonicalID <= 0 {
		return false
	}

	if !e.tradeableCanonical(canonicalID) {
		return false
	}

	return !e.unlocked(rawID, canonicalID)
}

// canonicalize maps a raw id to its canonical id, falling back to the raw id
// itself when resolution fails.
func (e *Engine) canonicalize(rawID int) int {
	if e.resolver == nil {
		return rawID
	}
	canonicalID, err := e.resolver.Canonicalize(rawID)
	if err != nil {
		return rawID
	}
	return canonicalID
}

// tradeableCanonical classifies a canonical id through the long-lived cache.
// Unknown items are cached as not tradeable; transient resolver errors
// return false without caching, so one bad lookup cannot poison a
// process-lifetime entry. When unsure, err on the side of not dimming.
func (e *Engine) tradeableCanonical(canonicalID int) bool {
	if cached, ok := e.tradeable.Load(canonicalID); ok {
		return cached.(bool)
	}
	if e.resolver == nil {
		return false
	}

	comp, err := e.resolver.Composition(canonicalID)
	if err != nil {
		if errors.Is(err, ErrUnknownItem) {
			e.tradeable.LoadOrStore(canonicalID, false)
		}
		return false
	}

	actual, _ := e.tradeable.LoadOrStore(canonicalID, comp.Tradeable)
	return actual.(bool)
}

// unlocked reports whether any identity of the item is in the unlock set.
// A nil oracle and any error during resolution both fail open: never dim
// when unlock data can't be consulted.
func (e *Engine) unlocked(rawID, canonicalID int) bool {
	if e.oracle == nil {
		return true
	}

	// Fast paths: raw or canonical known unlocked. Errors fail open.
	if ok, err := e.oracle.IsUnlocked(rawID); ok || err != nil {
		return true
	}
	if canonicalID > 0 && canonicalID != rawID {
		if ok, err := e.oracle.IsUnlocked(canonicalID); ok || err != nil {
			return true
		}
	}

	// Slower path: expand to related ids (placeholders, noted variants).
	candidates := make([]int, 0, 4)
	candidates = appendUnique(candidates, rawID)
	candidates = appendUnique(candidates, canonicalID)

	candidates = e.relatedIDs(rawID, candidates)
	if canonicalID != rawID {
		candidates = e.relatedIDs(canonicalID, candidates)
	}

	// Rechecking the seeds is harmless; the set stays tiny.
	for _, id := range candidates {
		if id <= 0 {
			continue
		}
		ok, err := e.oracle.IsUnlocked(id)
		if err != nil || ok {
			return true
		}
	}
	return false
}

// relatedIDs appends the ids that share unlock status with itemID: the
// placeholder's represented item and the noted/unnoted counterpart. Lookup
// failures contribute nothing; the caller falls back to the ids it already
// has.
func (e *Engine) relatedIDs(itemID int, sink []int) []int {
	if itemID <= 0 || e.resolver == nil {
		return sink
	}

	comp, err := e.resolver.Composition(itemID)
	if err != nil {
		return sink
	}

	if comp.Placeholder {
		sink = appendUnique(sink, comp.PlaceholderID)
	}
	if comp.LinkedNoteID > 0 && comp.LinkedNoteID != itemID {
		sink = appendUnique(sink, comp.LinkedNoteID)
	}
	return sink
}

// appendUnique appends id to set if not already present. The candidate sets
// here hold at most a handful of entries, so linear scan beats a map.
func appendUnique(set []int, id int) []int {
	for _, existing := range set {
		if existing == id {
			return set
		}
	}
	return append(set, id)
}
