package model

import (
	"github.com/archigen/archigen/pkg/errors"
)

// Element is an immutable enterprise-architecture entity.
// The layer is derived from the type and never set independently.
type Element struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Type ElementType `json:"type"`
}

// Layer returns the architectural layer the element's type belongs to.
// Unknown types map to the empty layer.
func (e Element) Layer() Layer {
	l, _ := LayerOf(e.Type)
	return l
}

// NewElement constructs an Element, rejecting types outside the vocabulary
// and malformed identifiers.
func NewElement(typ ElementType, id, name string) (Element, error) {
	if !KnownElementType(typ) {
		return Element{}, errors.New(errors.ErrCodeSchema, "unknown element type %q", typ)
	}
	if err := errors.ValidateIdentifier(id); err != nil {
		return Element{}, err
	}
	if err := errors.ValidateName(name); err != nil {
		return Element{}, err
	}
	return Element{ID: id, Name: name, Type: typ}, nil
}

// Relationship is an immutable directed edge between two elements.
// Source and target are element-id references; they are checked for
// resolution by the validator and exporter, not at construction.
type Relationship struct {
	ID     string           `json:"id"`
	Source string           `json:"source"`
	Target string           `json:"target"`
	Type   RelationshipType `json:"type"`
}

// NewRelationship constructs a Relationship, rejecting types outside the
// vocabulary and malformed identifiers.
func NewRelationship(typ RelationshipType, id, source, target string) (Relationship, error) {
	if !KnownRelationshipType(typ) {
		return Relationship{}, errors.New(errors.ErrCodeSchema, "unknown relationship type %q", typ)
	}
	if err := errors.ValidateIdentifier(id); err != nil {
		return Relationship{}, err
	}
	return Relationship{ID: id, Source: source, Target: target, Type: typ}, nil
}

// Model bundles elements and relationships for serialization.
// It is the canonical wire format for archigen model data.
type Model struct {
	Elements      []Element      `json:"elements"`
	Relationships []Relationship `json:"relationships"`
}

// ElementIndex builds an id → element lookup.
// Later duplicates win; duplicate detection is the exporter's concern.
func ElementIndex(elements []Element) map[string]Element {
	idx := make(map[string]Element, len(elements))
	for _, e := range elements {
		idx[e.ID] = e
	}
	return idx
}
