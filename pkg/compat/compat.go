// Package compat implements the relationship compatibility matrix and the
// in-memory relationship validator.
//
// The matrix is a sparse lookup from an ordered (source type, target type)
// pair to the set of relationship types permitted between them. Absence of
// an entry is a default-deny: unlisted pairs permit no relationship at all.
// Lookups are asymmetric; (A,B) and (B,A) are independent entries.
package compat

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/archigen/archigen/pkg/model"
)

// Pair is an ordered (source, target) element-type pair.
type Pair struct {
	Source model.ElementType
	Target model.ElementType
}

// Matrix maps ordered type pairs to their permitted relationship types.
type Matrix map[Pair][]model.RelationshipType

// Default returns the shipped compatibility table.
//
// The table is deliberately sparse: it carries only the pairs attested by
// the source data. Completing it to the full legality space is a data
// concern, not a code concern; use Merge with a table loaded via LoadTOML.
func Default() Matrix {
	return Matrix{
		{model.TypeBusinessActor, model.TypeBusinessActor}: {
			model.RelComposition, model.RelAggregation,
		},
		{model.TypeBusinessProcess, model.TypeBusinessProcess}: {
			model.RelComposition, model.RelAggregation,
		},
		{model.TypeApplicationComponent, model.TypeApplicationComponent}: {
			model.RelComposition, model.RelAggregation,
		},
		{model.TypeNode, model.TypeNode}: {
			model.RelComposition, model.RelAggregation,
		},
		{model.TypeBusinessActor, model.TypeBusinessRole}: {
			model.RelAssignment,
		},
		{model.TypeBusinessActor, model.TypeBusinessProcess}: {
			model.RelTriggering, model.RelAssignment,
		},
	}
}

// Allowed returns the permitted relationship types for the ordered pair.
// The second return value is false when the pair has no entry.
func (m Matrix) Allowed(source, target model.ElementType) ([]model.RelationshipType, bool) {
	types, ok := m[Pair{source, target}]
	return types, ok
}

// Permits reports whether rel is allowed between source and target.
// Missing entries deny everything.
func (m Matrix) Permits(source, target model.ElementType, rel model.RelationshipType) bool {
	types, ok := m[Pair{source, target}]
	if !ok {
		return false
	}
	for _, t := range types {
		if t == rel {
			return true
		}
	}
	return false
}

// Merge overlays other onto m, replacing entries for pairs both define.
func (m Matrix) Merge(other Matrix) {
	for p, types := range other {
		m[p] = types
	}
}

// tomlMatrix is the on-disk shape for externally supplied matrix data:
//
//	[[rules]]
//	source = "BusinessActor"
//	target = "BusinessRole"
//	types  = ["Assignment"]
type tomlMatrix struct {
	Rules []tomlRule `toml:"rules"`
}

type tomlRule struct {
	Source string   `toml:"source"`
	Target string   `toml:"target"`
	Types  []string `toml:"types"`
}

// LoadTOML reads matrix entries from a TOML file.
// Unknown element or relationship types are rejected.
func LoadTOML(path string) (Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseTOML(data)
}

// ParseTOML decodes matrix entries from TOML bytes.
func ParseTOML(data []byte) (Matrix, error) {
	var doc tomlMatrix
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse matrix: %w", err)
	}

	m := make(Matrix, len(doc.Rules))
	for _, r := range doc.Rules {
		src, tgt := model.ElementType(r.Source), model.ElementType(r.Target)
		if !model.KnownElementType(src) {
			return nil, fmt.Errorf("matrix rule: unknown element type %q", r.Source)
		}
		if !model.KnownElementType(tgt) {
			return nil, fmt.Errorf("matrix rule: unknown element type %q", r.Target)
		}
		types := make([]model.RelationshipType, 0, len(r.Types))
		for _, s := range r.Types {
			rt := model.RelationshipType(s)
			if !model.KnownRelationshipType(rt) {
				return nil, fmt.Errorf("matrix rule %s→%s: unknown relationship type %q", r.Source, r.Target, s)
			}
			types = append(types, rt)
		}
		m[Pair{src, tgt}] = types
	}
	return m, nil
}
