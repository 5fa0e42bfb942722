package shade

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testManifest = `[
	{"id": 100, "name": "Rune scimitar", "tradeable": true},
	{"id": 101, "name": "Rune scimitar (noted)", "tradeable": true, "noted": true, "linkedNoteId": 100},
	{"id": 102, "name": "Rune scimitar (placeholder)", "placeholder": true, "placeholderId": 100},
	{"id": 200, "name": "Quest cape", "tradeable": false}
]`

func loadTestManifest(t *testing.T) *Manifest {
	t.Helper()
	m, err := LoadManifest([]byte(testManifest))
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	return m
}

func TestLoadManifest(t *testing.T) {
	m := loadTestManifest(t)
	if m.Len() != 4 {
		t.Errorf("Len() = %d, want 4", m.Len())
	}
}

func TestLoadManifestErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{not json`},
		{"non-positive id", `[{"id": 0, "tradeable": true}]`},
		{"negative id", `[{"id": -3}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadManifest([]byte(tt.data)); err == nil {
				t.Error("LoadManifest succeeded, want error")
			}
		})
	}
}

func TestLoadManifestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	if err := os.WriteFile(path, []byte(testManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadManifestFile(path)
	if err != nil {
		t.Fatalf("LoadManifestFile: %v", err)
	}
	if m.Len() != 4 {
		t.Errorf("Len() = %d, want 4", m.Len())
	}
}

func TestLoadManifestFileMissing(t *testing.T) {
	if _, err := LoadManifestFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("LoadManifestFile succeeded, want error")
	}
}

func TestManifestCanonicalize(t *testing.T) {
	m := loadTestManifest(t)
	tests := []struct {
		name   string
		raw    int
		expect int
	}{
		{"base item maps to itself", 100, 100},
		{"noted form maps to unnoted", 101, 100},
		{"placeholder maps to represented item", 102, 100},
		{"untradeable base item", 200, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Canonicalize(tt.raw)
			if err != nil {
				t.Fatalf("Canonicalize(%d): %v", tt.raw, err)
			}
			if got != tt.expect {
				t.Errorf("Canonicalize(%d) = %d, want %d", tt.raw, got, tt.expect)
			}
		})
	}
}

func TestManifestCanonicalizeUnknown(t *testing.T) {
	m := loadTestManifest(t)
	if _, err := m.Canonicalize(999); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("err = %v, want ErrUnknownItem", err)
	}
}

func TestManifestComposition(t *testing.T) {
	m := loadTestManifest(t)

	comp, err := m.Composition(101)
	if err != nil {
		t.Fatalf("Composition(101): %v", err)
	}
	if !comp.Tradeable {
		t.Error("Tradeable = false, want true")
	}
	if comp.LinkedNoteID != 100 {
		t.Errorf("LinkedNoteID = %d, want 100", comp.LinkedNoteID)
	}

	comp, err = m.Composition(102)
	if err != nil {
		t.Fatalf("Composition(102): %v", err)
	}
	if !comp.Placeholder || comp.PlaceholderID != 100 {
		t.Errorf("placeholder fields = (%v, %d), want (true, 100)", comp.Placeholder, comp.PlaceholderID)
	}

	if _, err := m.Composition(999); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("err = %v, want ErrUnknownItem", err)
	}
}
