package openexchange

import (
	"testing"

	"github.com/archigen/archigen/pkg/errors"
	"github.com/archigen/archigen/pkg/layout"
	"github.com/archigen/archigen/pkg/model"
	"github.com/archigen/archigen/pkg/render/theme"
)

func mustTheme(t *testing.T) *theme.Theme {
	t.Helper()
	th, err := theme.Preset(theme.PresetArchimate)
	if err != nil {
		t.Fatalf("Preset() error = %v", err)
	}
	return th
}

func TestViewGenerator_ShapesAndConnections(t *testing.T) {
	elements := []model.Element{
		{ID: "a", Name: "Customer", Type: model.TypeBusinessActor},
		{ID: "b", Name: "Orders", Type: model.TypeBusinessProcess},
	}
	relationships := []model.Relationship{
		{ID: "r1", Source: "a", Target: "b", Type: model.RelTriggering},
	}
	l := layout.Build(elements, relationships)

	view, err := NewViewGenerator(mustTheme(t)).Generate("view-1", "Overview", elements, relationships, l)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(view.Nodes) != 2 {
		t.Fatalf("view nodes = %d, want 2", len(view.Nodes))
	}
	if len(view.Connections) != 1 {
		t.Fatalf("view connections = %d, want 1", len(view.Connections))
	}

	conn := view.Connections[0]
	if conn.RelationshipRef != "r1" {
		t.Errorf("RelationshipRef = %q, want r1", conn.RelationshipRef)
	}
	if conn.Source != "node-a" || conn.Target != "node-b" {
		t.Errorf("connection endpoints = %q → %q", conn.Source, conn.Target)
	}
	// Same-row neighbors sit closer than the bend threshold.
	if len(conn.Bendpoints) != 0 {
		t.Errorf("Bendpoints = %v, want none below threshold", conn.Bendpoints)
	}
}

func TestViewGenerator_BendpointBeyondThreshold(t *testing.T) {
	elements := []model.Element{
		{ID: "g", Name: "Growth", Type: model.TypeGoal},
		{ID: "n", Name: "Server", Type: model.TypeNode},
	}
	relationships := []model.Relationship{
		{ID: "r1", Source: "g", Target: "n", Type: model.RelAssociation},
	}
	// Motivation and Technology rows are several layer gaps apart only when
	// intermediate layers exist; force distance with an explicit layout.
	l := layout.Layout{
		Positions: map[string]layout.Point{
			"g": {X: 0, Y: 0},
			"n": {X: 400, Y: 300},
		},
		Dimensions: map[string]layout.Size{
			"g": {Width: 100, Height: 50},
			"n": {Width: 100, Height: 50},
		},
		Viewport: layout.Size{Width: 600, Height: 450},
	}

	view, err := NewViewGenerator(mustTheme(t)).Generate("view-1", "Overview", elements, relationships, l)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	conn := view.Connections[0]
	if len(conn.Bendpoints) != 1 {
		t.Fatalf("Bendpoints = %d, want exactly 1 beyond threshold", len(conn.Bendpoints))
	}
	bp := conn.Bendpoints[0]
	if bp.X != 250 || bp.Y != 175 {
		t.Errorf("bendpoint = (%d,%d), want segment midpoint (250,175)", bp.X, bp.Y)
	}
}

func TestViewGenerator_MissingShapeFails(t *testing.T) {
	elements := []model.Element{
		{ID: "a", Name: "Customer", Type: model.TypeBusinessActor},
	}
	relationships := []model.Relationship{
		{ID: "r1", Source: "a", Target: "ghost", Type: model.RelTriggering},
	}
	l := layout.Build(elements, relationships)

	_, err := NewViewGenerator(mustTheme(t)).Generate("view-1", "Overview", elements, relationships, l)
	if err == nil {
		t.Fatal("Generate() = nil, want error for endpoint without shape")
	}
	if !errors.Is(err, errors.ErrCodeReference) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeReference)
	}
}

func TestViewGenerator_StyleColors(t *testing.T) {
	elements := []model.Element{
		{ID: "a", Name: "Customer", Type: model.TypeBusinessActor},
	}
	l := layout.Build(elements, nil)

	view, err := NewViewGenerator(mustTheme(t)).Generate("view-1", "Overview", elements, nil, l)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	style := view.Nodes[0].Style
	if style == nil {
		t.Fatal("shape style is nil")
	}
	// Business fill #FFFFB5.
	want := RGBNode{R: 0xFF, G: 0xFF, B: 0xB5}
	if style.FillColor != want {
		t.Errorf("FillColor = %+v, want %+v", style.FillColor, want)
	}
}
