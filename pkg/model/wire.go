package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/google/uuid"
)

// =============================================================================
// Model Serialization API
// =============================================================================

// MarshalModel converts a Model to JSON bytes.
// Elements and relationships are sorted by ID for deterministic output.
func MarshalModel(m Model) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeModelTo(m, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteModelFile writes a Model to a JSON file.
// The file is created with 0644 permissions.
func WriteModelFile(m Model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeModelTo(m, f)
}

// WriteModel writes a Model as JSON to an io.Writer.
func WriteModel(m Model, w io.Writer) error {
	return writeModelTo(m, w)
}

// ReadModelFile reads a JSON file and returns the decoded Model.
// Entities with blank ids are assigned fresh "id-<uuid>" identifiers.
func ReadModelFile(path string) (Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return Model{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readModelFrom(f)
}

// ReadModel decodes a JSON model from an io.Reader.
func ReadModel(r io.Reader) (Model, error) {
	return readModelFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeModelTo(m Model, w io.Writer) error {
	out := Model{
		Elements:      slices.Clone(m.Elements),
		Relationships: slices.Clone(m.Relationships),
	}
	slices.SortFunc(out.Elements, func(a, b Element) int {
		return compareStrings(a.ID, b.ID)
	})
	slices.SortFunc(out.Relationships, func(a, b Relationship) int {
		return compareStrings(a.ID, b.ID)
	})

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readModelFrom(r io.Reader) (Model, error) {
	var m Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return Model{}, fmt.Errorf("decode: %w", err)
	}
	for i := range m.Elements {
		if m.Elements[i].ID == "" {
			m.Elements[i].ID = NewID()
		}
	}
	for i := range m.Relationships {
		if m.Relationships[i].ID == "" {
			m.Relationships[i].ID = NewID()
		}
	}
	return m, nil
}

func compareStrings(a, b string) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// NewID returns a fresh "id-<uuid>" identifier.
// Used for entities and documents whose id the caller left unspecified.
func NewID() string {
	return "id-" + uuid.NewString()
}
