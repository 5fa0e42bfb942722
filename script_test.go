package shade

import "testing"

// scriptRig wires a manifest-backed engine over a small bank interface.
type scriptRig struct {
	engine  *Engine
	unlocks *UnlockSet
	slot    *ItemNode // item 100, quantity 1
	noted   *ItemNode // item 101, noted form of 100
}

func newScriptRig(t *testing.T) *scriptRig {
	t.Helper()

	f := NewForest()
	root := NewItemNode("bank", 0, 0)
	slot := NewItemNode("slot", 100, 1)
	noted := NewItemNode("noted", 101, 1)
	root.AddDynamic(slot)
	root.AddDynamic(noted)
	f.AddRoot(root)
	f.SetActive(true)

	unlocks := NewUnlockSet()
	engine := NewEngine(f, loadTestManifest(t), unlocks)
	return &scriptRig{engine: engine, unlocks: unlocks, slot: slot, noted: noted}
}

func runScript(t *testing.T, rig *scriptRig, jsonScript string) {
	t.Helper()
	r, err := LoadScript([]byte(jsonScript), rig.engine, rig.unlocks)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	r.Run()
	if !r.Done() {
		t.Fatal("runner not done after Run")
	}
}

func TestScriptLockedItemIsDimmed(t *testing.T) {
	rig := newScriptRig(t)
	runScript(t, rig, `{"steps": [{"action": "frame"}]}`)

	if rig.slot.Opacity() != DefaultDimOpacity {
		t.Errorf("slot opacity = %d, want %d", rig.slot.Opacity(), DefaultDimOpacity)
	}
}

func TestScriptUnlockClearsDim(t *testing.T) {
	rig := newScriptRig(t)
	runScript(t, rig, `{"steps": [
		{"action": "frame"},
		{"action": "unlock", "id": 100},
		{"action": "frame"}
	]}`)

	if rig.slot.Opacity() != OpacityOpaque {
		t.Errorf("slot opacity = %d, want %d", rig.slot.Opacity(), OpacityOpaque)
	}
}

func TestScriptNotedFormFollowsUnnotedUnlock(t *testing.T) {
	// Unlocking the unnoted item clears the dim on its noted form: the
	// noted id canonicalizes onto the unlocked one.
	rig := newScriptRig(t)
	runScript(t, rig, `{"steps": [
		{"action": "frame"},
		{"action": "unlock", "id": 100},
		{"action": "frame"}
	]}`)

	if rig.noted.Opacity() != OpacityOpaque {
		t.Errorf("noted opacity = %d, want %d", rig.noted.Opacity(), OpacityOpaque)
	}
}

func TestScriptCustomOpacity(t *testing.T) {
	rig := newScriptRig(t)
	runScript(t, rig, `{"steps": [
		{"action": "opacity", "value": 90},
		{"action": "frame"}
	]}`)

	if rig.slot.Opacity() != 90 {
		t.Errorf("slot opacity = %d, want 90", rig.slot.Opacity())
	}
}

func TestScriptDisableFreezesOpacity(t *testing.T) {
	rig := newScriptRig(t)
	runScript(t, rig, `{"steps": [
		{"action": "frame"},
		{"action": "disable"},
		{"action": "unlock", "id": 100},
		{"action": "frame", "frames": 3}
	]}`)

	// Disabled frames perform no traversal: the dim from the first frame
	// stays even though the item is now unlocked.
	if rig.slot.Opacity() != DefaultDimOpacity {
		t.Errorf("slot opacity = %d, want %d", rig.slot.Opacity(), DefaultDimOpacity)
	}
}

func TestScriptReEnableCatchesUp(t *testing.T) {
	rig := newScriptRig(t)
	runScript(t, rig, `{"steps": [
		{"action": "disable"},
		{"action": "frame"},
		{"action": "enable"},
		{"action": "frame"}
	]}`)

	if rig.slot.Opacity() != DefaultDimOpacity {
		t.Errorf("slot opacity = %d, want %d", rig.slot.Opacity(), DefaultDimOpacity)
	}
}

func TestScriptRelock(t *testing.T) {
	rig := newScriptRig(t)
	runScript(t, rig, `{"steps": [
		{"action": "unlock", "id": 100},
		{"action": "frame"},
		{"action": "lock", "id": 100},
		{"action": "frame"}
	]}`)

	if rig.slot.Opacity() != DefaultDimOpacity {
		t.Errorf("slot opacity = %d, want %d", rig.slot.Opacity(), DefaultDimOpacity)
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{steps`},
		{"no steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "teleport"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data), nil, nil); err == nil {
				t.Error("LoadScript succeeded, want error")
			}
		})
	}
}

func TestScriptStepAfterDoneIsNoop(t *testing.T) {
	rig := newScriptRig(t)
	r, err := LoadScript([]byte(`{"steps": [{"action": "frame"}]}`), rig.engine, rig.unlocks)
	if err != nil {
		t.Fatal(err)
	}
	r.Step()
	if !r.Done() {
		t.Fatal("runner should be done after the only step")
	}
	r.Step() // should not panic or advance
}
