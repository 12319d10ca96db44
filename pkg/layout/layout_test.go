package layout

import (
	"reflect"
	"testing"

	"github.com/archigen/archigen/pkg/model"
)

func sampleElements() []model.Element {
	return []model.Element{
		{ID: "g", Name: "Faster Checkout", Type: model.TypeGoal},
		{ID: "a", Name: "Customer", Type: model.TypeBusinessActor},
		{ID: "p", Name: "Order Processing", Type: model.TypeBusinessProcess},
		{ID: "c", Name: "Web Shop", Type: model.TypeApplicationComponent},
		{ID: "n", Name: "App Server", Type: model.TypeNode},
	}
}

func TestBuild_Deterministic(t *testing.T) {
	elements := sampleElements()

	first := Build(elements, nil)
	second := Build(elements, nil)

	if !reflect.DeepEqual(first, second) {
		t.Error("Build() is not deterministic across identical inputs")
	}
}

func TestBuild_LayerRowOrdering(t *testing.T) {
	l := Build(sampleElements(), nil)

	// Motivation < Business < Application < Technology row offsets.
	order := []string{"g", "a", "c", "n"}
	for i := 1; i < len(order); i++ {
		prev, cur := l.Positions[order[i-1]], l.Positions[order[i]]
		if prev.Y >= cur.Y {
			t.Errorf("row offset of %s (%v) not below %s (%v)", order[i-1], prev.Y, order[i], cur.Y)
		}
	}
}

func TestBuild_TypeOrderWithinLayer(t *testing.T) {
	l := Build(sampleElements(), nil)

	// Within Business: BusinessActor sorts before BusinessProcess.
	if l.Positions["a"].X >= l.Positions["p"].X {
		t.Errorf("actor x = %v, process x = %v; want actor left of process",
			l.Positions["a"].X, l.Positions["p"].X)
	}
	if l.Positions["a"].Y != l.Positions["p"].Y {
		t.Errorf("same-layer elements on different rows: %v vs %v",
			l.Positions["a"].Y, l.Positions["p"].Y)
	}
}

func TestBuild_Empty(t *testing.T) {
	l := Build(nil, nil)

	if len(l.Positions) != 0 {
		t.Errorf("Build(empty) positions = %d, want 0", len(l.Positions))
	}
	want := Size{Width: 2 * Padding, Height: 2 * Padding}
	if l.Viewport != want {
		t.Errorf("Viewport = %+v, want %+v", l.Viewport, want)
	}
}

func TestSizeFor_NameWidening(t *testing.T) {
	short := SizeFor(model.Element{Name: "CRM", Type: model.TypeGoal})
	if short.Width != DefaultWidth {
		t.Errorf("short name width = %v, want %v", short.Width, DefaultWidth)
	}

	long := SizeFor(model.Element{Name: "Customer Relationship Management Platform", Type: model.TypeGoal})
	if long.Width <= DefaultWidth {
		t.Errorf("long name width = %v, want > %v", long.Width, DefaultWidth)
	}
}

func TestSizeFor_MinimumSizes(t *testing.T) {
	got := SizeFor(model.Element{Name: "Db", Type: model.TypeNode})
	want := minSizes[model.TypeNode]
	if got != want {
		t.Errorf("SizeFor(Node) = %+v, want %+v", got, want)
	}
}

func TestBuild_ViewportCoversContent(t *testing.T) {
	l := Build(sampleElements(), nil)

	for id, p := range l.Positions {
		d := l.Dimensions[id]
		if p.X+d.Width > l.Viewport.Width {
			t.Errorf("element %s overflows viewport width", id)
		}
		if p.Y+d.Height > l.Viewport.Height {
			t.Errorf("element %s overflows viewport height", id)
		}
	}
}

func TestBuildRefined_IsNoOp(t *testing.T) {
	elements := sampleElements()
	relationships := []model.Relationship{
		{ID: "r1", Source: "a", Target: "p", Type: model.RelTriggering},
	}

	base := Build(elements, relationships)
	refined := BuildRefined(elements, relationships)

	if !reflect.DeepEqual(base, refined) {
		t.Error("BuildRefined() changed positions; refinement pass must stay a no-op")
	}
}
