package openexchange

import (
	"math"

	"github.com/archigen/archigen/pkg/errors"
	"github.com/archigen/archigen/pkg/layout"
	"github.com/archigen/archigen/pkg/model"
	"github.com/archigen/archigen/pkg/render/theme"
)

// BendThreshold is the center-to-center distance, in layout units, beyond
// which a connection gets a single midpoint bend point.
const BendThreshold = 200.0

// ViewGenerator derives visual shapes and connections from a layout and the
// active color theme.
type ViewGenerator struct {
	theme *theme.Theme
}

// NewViewGenerator constructs a view generator for the given theme.
func NewViewGenerator(th *theme.Theme) *ViewGenerator {
	return &ViewGenerator{theme: th}
}

// Generate builds one view: a shape per element and a connection per
// relationship. A relationship whose endpoint has no shape (the element was
// excluded from layout) fails hard.
func (g *ViewGenerator) Generate(id, name string, elements []model.Element, relationships []model.Relationship, l layout.Layout) (ViewNode, error) {
	view := ViewNode{
		Identifier: id,
		Type:       "Diagram",
		Name:       name,
		Nodes:      make([]ShapeNode, 0, len(elements)),
	}

	shapeIDs := make(map[string]string, len(elements))
	for _, e := range elements {
		pos, ok := l.Positions[e.ID]
		if !ok {
			continue
		}
		dim := l.Dimensions[e.ID]
		colors := g.theme.ColorsFor(e.Type)

		shapeID := "node-" + e.ID
		shapeIDs[e.ID] = shapeID
		view.Nodes = append(view.Nodes, ShapeNode{
			Identifier: shapeID,
			ElementRef: e.ID,
			Type:       "Element",
			X:          int(math.Round(pos.X)),
			Y:          int(math.Round(pos.Y)),
			W:          int(math.Round(dim.Width)),
			H:          int(math.Round(dim.Height)),
			Style: &StyleNode{
				FillColor: parseHex(colors.Fill),
				LineColor: parseHex(colors.Line),
				Font:      FontNode{Color: parseHex(colors.Text)},
			},
		})
	}

	view.Connections = make([]ConnectionNode, 0, len(relationships))
	for _, rel := range relationships {
		srcShape, srcOK := shapeIDs[rel.Source]
		tgtShape, tgtOK := shapeIDs[rel.Target]
		if !srcOK {
			return ViewNode{}, errors.New(errors.ErrCodeReference,
				"relationship %s: source %q has no visual shape", rel.ID, rel.Source)
		}
		if !tgtOK {
			return ViewNode{}, errors.New(errors.ErrCodeReference,
				"relationship %s: target %q has no visual shape", rel.ID, rel.Target)
		}

		conn := ConnectionNode{
			Identifier:      "conn-" + rel.ID,
			RelationshipRef: rel.ID,
			Type:            "Relationship",
			Source:          srcShape,
			Target:          tgtShape,
		}
		if bend, ok := bendpoint(l, rel.Source, rel.Target); ok {
			conn.Bendpoints = []BendpointNode{bend}
		}
		view.Connections = append(view.Connections, conn)
	}

	return view, nil
}

// bendpoint returns the midpoint bend for endpoints whose centers are more
// than BendThreshold apart. Closer pairs connect directly.
func bendpoint(l layout.Layout, sourceID, targetID string) (BendpointNode, bool) {
	sx, sy := center(l, sourceID)
	tx, ty := center(l, targetID)

	if math.Hypot(tx-sx, ty-sy) <= BendThreshold {
		return BendpointNode{}, false
	}
	return BendpointNode{
		X: int(math.Round((sx + tx) / 2)),
		Y: int(math.Round((sy + ty) / 2)),
	}, true
}

func center(l layout.Layout, id string) (float64, float64) {
	pos := l.Positions[id]
	dim := l.Dimensions[id]
	return pos.X + dim.Width/2, pos.Y + dim.Height/2
}
