package shade

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a dimming script.
type scriptStep struct {
	Action string `json:"action"`
	ID     int    `json:"id,omitempty"`
	Value  int    `json:"value,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a dimming script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences unlock-state changes and engine frames for
// automated end-to-end testing. Each Step call consumes one script step.
//
// Supported actions:
//
//	frame    — run BeforeRender once (or Frames times when set)
//	unlock   — add item ID to the unlock set
//	lock     — remove item ID from the unlock set
//	enable   — enable the engine
//	disable  — disable the engine
//	opacity  — set the dim opacity to Value
type ScriptRunner struct {
	engine  *Engine
	unlocks *UnlockSet
	steps   []scriptStep
	cursor  int
	done    bool
}

// LoadScript parses a JSON dimming script and returns a runner bound to the
// given engine and unlock set.
func LoadScript(jsonData []byte, engine *Engine, unlocks *UnlockSet) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse dimming script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse dimming script: no steps")
	}
	for _, st := range sc.Steps {
		switch st.Action {
		case "frame", "unlock", "lock", "enable", "disable", "opacity":
		default:
			return nil, fmt.Errorf("parse dimming script: unknown action %q", st.Action)
		}
	}
	return &ScriptRunner{engine: engine, unlocks: unlocks, steps: sc.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step executes the next script step. Calling Step after the script has
// finished is a no-op.
func (r *ScriptRunner) Step() {
	if r.done {
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "frame":
		frames := st.Frames
		if frames < 1 {
			frames = 1
		}
		for i := 0; i < frames; i++ {
			r.engine.BeforeRender()
		}
	case "unlock":
		r.unlocks.Unlock(st.ID)
	case "lock":
		r.unlocks.Lock(st.ID)
	case "enable":
		r.engine.SetEnabled(true)
	case "disable":
		r.engine.SetEnabled(false)
	case "opacity":
		r.engine.SetDimOpacity(st.Value)
	}

	if r.cursor >= len(r.steps) {
		r.done = true
	}
}

// Run executes all remaining steps.
func (r *ScriptRunner) Run() {
	for !r.done {
		r.Step()
	}
}
