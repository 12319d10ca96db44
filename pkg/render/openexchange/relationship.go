package openexchange

import (
	"slices"
	"strings"

	"github.com/archigen/archigen/pkg/errors"
	"github.com/archigen/archigen/pkg/model"
)

// RelationshipOptions configures relationship fragment generation.
type RelationshipOptions struct {
	// GroupByType orders fragments by the canonical relationship-type order.
	GroupByType bool

	// GenerateNames composes "{source} {verb} {target}" names when element
	// context is available, falling back to "{type} relationship".
	GenerateNames bool

	// ValidateReferences makes a dangling source or target a hard failure.
	// This path emits artifacts and must not reference nonexistent entities,
	// so it is stricter than the in-memory validator, which skips them.
	ValidateReferences bool
}

// RelationshipGenerator renders one fragment per relationship.
type RelationshipGenerator struct {
	opts RelationshipOptions
	tmpl templates
}

// NewRelationshipGenerator constructs a generator, reading the documentation
// templates once. Reuse the generator across calls.
func NewRelationshipGenerator(opts RelationshipOptions) (*RelationshipGenerator, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	return &RelationshipGenerator{opts: opts, tmpl: tmpl}, nil
}

// Generate renders fragments for the given relationships. Elements supply
// name context and reference validation; pass nil when neither is wanted.
//
// With ValidateReferences set and elements supplied, the first relationship
// whose source or target does not resolve aborts generation with an error.
func (g *RelationshipGenerator) Generate(relationships []model.Relationship, elements []model.Element) ([]RelationshipNode, error) {
	var idx map[string]model.Element
	if elements != nil {
		idx = model.ElementIndex(elements)
	}

	ordered := relationships
	if g.opts.GroupByType {
		ordered = groupByType(relationships)
	}

	nodes := make([]RelationshipNode, 0, len(ordered))
	for _, rel := range ordered {
		if g.opts.ValidateReferences && idx != nil {
			if _, ok := idx[rel.Source]; !ok {
				return nil, errors.New(errors.ErrCodeReference,
					"relationship %s: source %q does not resolve to an element", rel.ID, rel.Source)
			}
			if _, ok := idx[rel.Target]; !ok {
				return nil, errors.New(errors.ErrCodeReference,
					"relationship %s: target %q does not resolve to an element", rel.ID, rel.Target)
			}
		}
		nodes = append(nodes, RelationshipNode{
			Identifier: rel.ID,
			Source:     rel.Source,
			Target:     rel.Target,
			Type:       string(rel.Type),
			Name:       g.name(rel, idx),
		})
	}
	return nodes, nil
}

// name composes the optional relationship name.
func (g *RelationshipGenerator) name(rel model.Relationship, idx map[string]model.Element) string {
	if !g.opts.GenerateNames {
		return ""
	}
	if idx != nil {
		src, srcOK := idx[rel.Source]
		tgt, tgtOK := idx[rel.Target]
		if srcOK && tgtOK {
			if verb, ok := g.tmpl.verb(rel.Type); ok {
				return src.Name + " " + verb + " " + tgt.Name
			}
		}
	}
	return strings.ReplaceAll(g.tmpl.RelationshipFallback, "{type}", string(rel.Type))
}

// groupByType returns relationships ordered by the canonical type order,
// preserving input order within each group.
func groupByType(relationships []model.Relationship) []model.Relationship {
	rank := make(map[model.RelationshipType]int, len(model.RelationshipOrder))
	for i, t := range model.RelationshipOrder {
		rank[t] = i
	}

	ordered := slices.Clone(relationships)
	slices.SortStableFunc(ordered, func(a, b model.Relationship) int {
		ra, okA := rank[a.Type]
		rb, okB := rank[b.Type]
		if !okA {
			ra = len(model.RelationshipOrder)
		}
		if !okB {
			rb = len(model.RelationshipOrder)
		}
		return ra - rb
	})
	return ordered
}
