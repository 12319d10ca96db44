package openexchange

import (
	"strings"
	"testing"

	"github.com/archigen/archigen/pkg/model"
)

func TestElementGenerator_Defaults(t *testing.T) {
	gen, err := NewElementGenerator(ElementOptions{})
	if err != nil {
		t.Fatalf("NewElementGenerator() error = %v", err)
	}

	nodes := gen.Generate([]model.Element{
		{ID: "a", Name: "Customer", Type: model.TypeBusinessActor},
	})

	if len(nodes) != 1 {
		t.Fatalf("Generate() = %d nodes, want 1", len(nodes))
	}
	n := nodes[0]
	if n.Identifier != "a" || n.Type != "BusinessActor" || n.Name != "Customer" {
		t.Errorf("node = %+v", n)
	}
	if !strings.Contains(n.Documentation, "business processes, functions, events, and actors") {
		t.Errorf("Documentation = %q, want Business layer sentence", n.Documentation)
	}
}

func TestElementGenerator_DocTemplate(t *testing.T) {
	gen, err := NewElementGenerator(ElementOptions{DocTemplate: "{name} is a {type} in the {layer} layer"})
	if err != nil {
		t.Fatalf("NewElementGenerator() error = %v", err)
	}

	nodes := gen.Generate([]model.Element{
		{ID: "g", Name: "Faster Checkout", Type: model.TypeGoal},
	})

	want := "Faster Checkout is a Goal in the Motivation layer"
	if nodes[0].Documentation != want {
		t.Errorf("Documentation = %q, want %q", nodes[0].Documentation, want)
	}
}

func TestElementGenerator_TemplateTokenInName(t *testing.T) {
	gen, err := NewElementGenerator(ElementOptions{DocTemplate: "{name}: {type}"})
	if err != nil {
		t.Fatalf("NewElementGenerator() error = %v", err)
	}

	// A name containing a token must not be substituted again.
	nodes := gen.Generate([]model.Element{
		{ID: "g", Name: "Weird {type} Name", Type: model.TypeGoal},
	})

	want := "Weird {type} Name: Goal"
	if nodes[0].Documentation != want {
		t.Errorf("Documentation = %q, want %q", nodes[0].Documentation, want)
	}
}

func TestElementGenerator_GroupByLayer(t *testing.T) {
	gen, err := NewElementGenerator(ElementOptions{GroupByLayer: true})
	if err != nil {
		t.Fatalf("NewElementGenerator() error = %v", err)
	}

	nodes := gen.Generate([]model.Element{
		{ID: "n", Name: "Server", Type: model.TypeNode},
		{ID: "p", Name: "Ordering", Type: model.TypeBusinessProcess},
		{ID: "a", Name: "Customer", Type: model.TypeBusinessActor},
		{ID: "g", Name: "Growth", Type: model.TypeGoal},
	})

	got := make([]string, len(nodes))
	for i, n := range nodes {
		got[i] = n.Identifier
	}
	// Motivation, then Business (actor before process lexically), then Technology.
	want := []string{"g", "a", "p", "n"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("grouped order = %v, want %v", got, want)
		}
	}
}

func TestElementGenerator_UngroupedPreservesInputOrder(t *testing.T) {
	gen, err := NewElementGenerator(ElementOptions{})
	if err != nil {
		t.Fatalf("NewElementGenerator() error = %v", err)
	}

	nodes := gen.Generate([]model.Element{
		{ID: "n", Name: "Server", Type: model.TypeNode},
		{ID: "g", Name: "Growth", Type: model.TypeGoal},
	})

	if nodes[0].Identifier != "n" || nodes[1].Identifier != "g" {
		t.Errorf("ungrouped order = [%s %s], want [n g]", nodes[0].Identifier, nodes[1].Identifier)
	}
}
