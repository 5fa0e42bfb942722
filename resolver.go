package shade

import (
	"encoding/json"
	"fmt"
	"os"
)

// manifestRecord is the JSON form of one item definition.
type manifestRecord struct {
	ID            int    `json:"id"`
	Name          string `json:"name,omitempty"`
	Tradeable     bool   `json:"tradeable"`
	Noted         bool   `json:"noted,omitempty"`
	LinkedNoteID  int    `json:"linkedNoteId,omitempty"`
	Placeholder   bool   `json:"placeholder,omitempty"`
	PlaceholderID int    `json:"placeholderId,omitempty"`
}

// Manifest is an in-memory item metadata table implementing Resolver.
// Variant identifiers (noted forms, placeholders) canonicalize onto the base
// item they represent; base items canonicalize to themselves.
type Manifest struct {
	records map[int]manifestRecord
}

// LoadManifest parses a JSON array of item records.
func LoadManifest(data []byte) (*Manifest, error) {
	var records []manifestRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse item manifest: %w", err)
	}
	m := &Manifest{records: make(map[int]manifestRecord, len(records))}
	for _, r := range records {
		if r.ID <= 0 {
			return nil, fmt.Errorf("parse item manifest: non-positive item id %d", r.ID)
		}
		m.records[r.ID] = r
	}
	return m, nil
}

// LoadManifestFile reads and parses a manifest from disk.
func LoadManifestFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item manifest: %w", err)
	}
	return LoadManifest(data)
}

// Canonicalize maps a variant id to its base item: noted forms map to their
// linked unnoted item, placeholders to the item they represent. Base items
// map to themselves. Unknown ids report ErrUnknownItem.
func (m *Manifest) Canonicalize(raw int) (int, error) {
	r, ok := m.records[raw]
	if !ok {
		return 0, fmt.Errorf("canonicalize %d: %w", raw, ErrUnknownItem)
	}
	if r.Noted && r.LinkedNoteID > 0 {
		return r.LinkedNoteID, nil
	}
	if r.Placeholder && r.PlaceholderID > 0 {
		return r.PlaceholderID, nil
	}
	return raw, nil
}

// Composition returns the metadata for an item id, or ErrUnknownItem.
func (m *Manifest) Composition(id int) (Composition, error) {
	r, ok := m.records[id]
	if !ok {
		return Composition{}, fmt.Errorf("composition %d: %w", id, ErrUnknownItem)
	}
	return Composition{
		Tradeable:     r.Tradeable,
		Placeholder:   r.Placeholder,
		PlaceholderID: r.PlaceholderID,
		LinkedNoteID:  r.LinkedNoteID,
	}, nil
}

// Len returns the number of item records in the manifest.
func (m *Manifest) Len() int {
	return len(m.records)
}
