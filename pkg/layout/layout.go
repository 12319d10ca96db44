// Package layout computes deterministic 2-D positions for model elements.
//
// Elements are bucketed by architectural layer and laid out row by row in the
// canonical layer order, left to right within a row. The algorithm is a pure
// function of its input: identical elements and relationships always produce
// identical positions, dimensions, and viewport.
package layout

import (
	"slices"

	"github.com/archigen/archigen/pkg/model"
)

// Geometry constants, in layout units.
const (
	// DefaultWidth and DefaultHeight are the base element box size.
	DefaultWidth  = 120.0
	DefaultHeight = 55.0

	// ElementSpacing is the horizontal gap between elements in a row.
	ElementSpacing = 30.0

	// LayerSpacing is the vertical gap between layer rows.
	LayerSpacing = 60.0

	// Padding surrounds the laid-out content on all sides.
	Padding = 40.0

	// nameWidthThreshold is the name length beyond which boxes widen.
	nameWidthThreshold = 15

	// perCharWidth is the extra width per character past the threshold.
	perCharWidth = 7.0
)

// minSizes reserves larger boxes for container-like types.
var minSizes = map[model.ElementType]Size{
	model.TypeBusinessProcess:      {Width: 140, Height: 60},
	model.TypeBusinessFunction:     {Width: 140, Height: 60},
	model.TypeApplicationComponent: {Width: 140, Height: 65},
	model.TypeApplicationService:   {Width: 140, Height: 60},
	model.TypeNode:                 {Width: 140, Height: 70},
	model.TypeDevice:               {Width: 140, Height: 70},
}

// Point is an element's top-left origin.
type Point struct {
	X float64
	Y float64
}

// Size is an element's box dimensions.
type Size struct {
	Width  float64
	Height float64
}

// Layout is the engine's output: per-element geometry plus the bounding
// viewport. It is recomputed on every call and never persisted with the
// model; the view generator consumes it read-only.
type Layout struct {
	Positions  map[string]Point
	Dimensions map[string]Size
	Viewport   Size
}

// Build computes the layered layout for the given elements.
//
// Relationships do not influence the base pass; they are accepted so the
// signature matches BuildRefined and the refinement seam. The algorithm is
// total: any input, including the empty set, yields a valid layout.
func Build(elements []model.Element, relationships []model.Relationship) Layout {
	l := Layout{
		Positions:  make(map[string]Point, len(elements)),
		Dimensions: make(map[string]Size, len(elements)),
	}

	buckets := bucketByLayer(elements)

	maxX := 0.0
	y := Padding
	for _, layer := range model.LayerOrder {
		bucket := buckets[layer]
		if len(bucket) == 0 {
			continue
		}

		x := Padding
		tallest := 0.0
		for _, e := range bucket {
			size := SizeFor(e)
			l.Positions[e.ID] = Point{X: x, Y: y}
			l.Dimensions[e.ID] = size
			x += size.Width + ElementSpacing
			if size.Height > tallest {
				tallest = size.Height
			}
		}

		// x overshoots by one spacing after the last element.
		if rowExtent := x - ElementSpacing; rowExtent > maxX {
			maxX = rowExtent
		}
		y += tallest + LayerSpacing
	}

	if len(l.Positions) == 0 {
		l.Viewport = Size{Width: 2 * Padding, Height: 2 * Padding}
		return l
	}

	// y overshoots by one layer spacing after the last row.
	l.Viewport = Size{
		Width:  maxX + Padding,
		Height: y - LayerSpacing + Padding,
	}
	return l
}

// BuildRefined computes the layered layout and runs the connection-aware
// refinement pass over it.
func BuildRefined(elements []model.Element, relationships []model.Relationship) Layout {
	l := Build(elements, relationships)
	return refineConnections(l, relationships)
}

// refineConnections is the extension seam for connection-aware placement
// (e.g. reordering rows to shorten edges). It currently returns the layout
// unchanged; no behavior depends on refinement today.
func refineConnections(l Layout, relationships []model.Relationship) Layout {
	return l
}

// SizeFor returns the box size for a single element: the per-type minimum
// when one is reserved, widened when the name runs past the threshold.
func SizeFor(e model.Element) Size {
	size := Size{Width: DefaultWidth, Height: DefaultHeight}
	if min, ok := minSizes[e.Type]; ok {
		size = min
	}
	if extra := len(e.Name) - nameWidthThreshold; extra > 0 {
		widened := DefaultWidth + float64(extra)*perCharWidth
		if widened > size.Width {
			size.Width = widened
		}
	}
	return size
}

// bucketByLayer partitions elements by layer and sorts each bucket by type
// tag, then id, for deterministic left-to-right placement.
func bucketByLayer(elements []model.Element) map[model.Layer][]model.Element {
	buckets := make(map[model.Layer][]model.Element)
	for _, e := range elements {
		layer := e.Layer()
		buckets[layer] = append(buckets[layer], e)
	}
	for layer := range buckets {
		slices.SortFunc(buckets[layer], func(a, b model.Element) int {
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
	}
	return buckets
}
