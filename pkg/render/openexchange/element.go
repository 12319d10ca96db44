package openexchange

import (
	"slices"

	"github.com/archigen/archigen/pkg/model"
)

// ElementOptions configures element fragment generation.
type ElementOptions struct {
	// GroupByLayer orders fragments by canonical layer, then type tag.
	// Grouping is presentation only; it carries no semantic effect.
	GroupByLayer bool

	// DocTemplate, when set, overrides documentation generation.
	// {type}, {name}, and {layer} tokens are substituted.
	DocTemplate string
}

// ElementGenerator renders one fragment per model element.
type ElementGenerator struct {
	opts ElementOptions
	tmpl templates
}

// NewElementGenerator constructs a generator, reading the documentation
// templates once. Reuse the generator across calls.
func NewElementGenerator(opts ElementOptions) (*ElementGenerator, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	return &ElementGenerator{opts: opts, tmpl: tmpl}, nil
}

// Generate renders fragments for the given elements.
// Without grouping, input order is preserved.
func (g *ElementGenerator) Generate(elements []model.Element) []ElementNode {
	ordered := elements
	if g.opts.GroupByLayer {
		ordered = groupByLayer(elements)
	}

	nodes := make([]ElementNode, 0, len(ordered))
	for _, e := range ordered {
		nodes = append(nodes, ElementNode{
			Identifier:    e.ID,
			Type:          string(e.Type),
			Name:          e.Name,
			Documentation: g.documentation(e),
		})
	}
	return nodes
}

// documentation picks the fragment text: explicit template first, then the
// layer-keyed sentence, then the generic default.
func (g *ElementGenerator) documentation(e model.Element) string {
	if g.opts.DocTemplate != "" {
		return substitute(g.opts.DocTemplate, e)
	}
	if doc, ok := g.tmpl.layerDoc(e); ok {
		return doc
	}
	return substitute(g.tmpl.Default, e)
}

// groupByLayer returns elements ordered by canonical layer, with a lexical
// type sub-sort (id as tiebreak) within each layer. Elements whose type has
// no layer sort after all known layers.
func groupByLayer(elements []model.Element) []model.Element {
	rank := make(map[model.Layer]int, len(model.LayerOrder))
	for i, l := range model.LayerOrder {
		rank[l] = i
	}

	ordered := slices.Clone(elements)
	slices.SortStableFunc(ordered, func(a, b model.Element) int {
		ra, okA := rank[a.Layer()]
		rb, okB := rank[b.Layer()]
		if !okA {
			ra = len(model.LayerOrder)
		}
		if !okB {
			rb = len(model.LayerOrder)
		}
		if ra != rb {
			return ra - rb
		}
		if a.Type != b.Type {
			if a.Type < b.Type {
				return -1
			}
			return 1
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return ordered
}
