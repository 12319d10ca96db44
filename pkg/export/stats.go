package export

import (
	"github.com/archigen/archigen/pkg/model"
	"github.com/archigen/archigen/pkg/render/openexchange"
)

// Statistics aggregates counts over the exported model.
type Statistics struct {
	Elements      ElementStats      `json:"elements"`
	Relationships RelationshipStats `json:"relationships"`
	Views         *ViewStats        `json:"views,omitempty"`
}

// ElementStats counts elements overall, by layer, and by type.
type ElementStats struct {
	Total   int            `json:"total"`
	ByLayer map[string]int `json:"by_layer"`
	ByType  map[string]int `json:"by_type"`
}

// RelationshipStats counts relationships by type plus the number of
// distinct element ids they reference.
type RelationshipStats struct {
	Total          int            `json:"total"`
	ByType         map[string]int `json:"by_type"`
	UniqueElements int            `json:"unique_elements"`
}

// ViewStats describes the produced view.
type ViewStats struct {
	ElementCount      int        `json:"element_count"`
	RelationshipCount int        `json:"relationship_count"`
	Dimensions        Dimensions `json:"dimensions"`
}

// Dimensions is the view's bounding box.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// collectStatistics computes aggregate statistics; view may be nil.
func collectStatistics(elements []model.Element, relationships []model.Relationship, view *openexchange.ViewNode) *Statistics {
	stats := &Statistics{
		Elements: ElementStats{
			Total:   len(elements),
			ByLayer: make(map[string]int),
			ByType:  make(map[string]int),
		},
		Relationships: RelationshipStats{
			Total:  len(relationships),
			ByType: make(map[string]int),
		},
	}

	for _, e := range elements {
		stats.Elements.ByLayer[string(e.Layer())]++
		stats.Elements.ByType[string(e.Type)]++
	}

	referenced := make(map[string]bool)
	for _, r := range relationships {
		stats.Relationships.ByType[string(r.Type)]++
		referenced[r.Source] = true
		referenced[r.Target] = true
	}
	stats.Relationships.UniqueElements = len(referenced)

	if view != nil {
		stats.Views = &ViewStats{
			ElementCount:      len(view.Nodes),
			RelationshipCount: len(view.Connections),
			Dimensions:        viewBounds(view),
		}
	}

	return stats
}

// viewBounds computes the bounding box over the view's shapes.
func viewBounds(view *openexchange.ViewNode) Dimensions {
	var d Dimensions
	for _, n := range view.Nodes {
		if right := n.X + n.W; right > d.Width {
			d.Width = right
		}
		if bottom := n.Y + n.H; bottom > d.Height {
			d.Height = bottom
		}
	}
	return d
}
