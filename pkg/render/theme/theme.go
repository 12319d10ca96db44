// Package theme maps element types to fill, line, and text colors.
//
// Three named presets are table-driven; a custom table can replace the
// active mapping at construction or via SetOverrides. Lookups for unmapped
// types fall back to white fill with black line and text.
package theme

import (
	"github.com/archigen/archigen/pkg/errors"
	"github.com/archigen/archigen/pkg/model"
)

// Preset names.
const (
	PresetArchimate    = "archimate"    // full multi-color scheme, one color family per layer
	PresetMonochrome   = "monochrome"   // flat grey
	PresetHighContrast = "highcontrast" // black on white
)

// Colors is the three-color tuple applied to a visual element.
// Values are "#RRGGBB" hex strings.
type Colors struct {
	Fill string
	Line string
	Text string
}

// DefaultColors is the fallback for unmapped element types.
var DefaultColors = Colors{Fill: "#FFFFFF", Line: "#000000", Text: "#000000"}

// layerColors drives the archimate preset: each layer gets one color family.
var layerColors = map[model.Layer]Colors{
	model.LayerMotivation:     {Fill: "#CCCCFF", Line: "#6666A8", Text: "#000000"},
	model.LayerStrategy:       {Fill: "#F5DEAA", Line: "#B0965D", Text: "#000000"},
	model.LayerBusiness:       {Fill: "#FFFFB5", Line: "#B2B181", Text: "#000000"},
	model.LayerApplication:    {Fill: "#B5FFFF", Line: "#6BA5A5", Text: "#000000"},
	model.LayerTechnology:     {Fill: "#C9E7B7", Line: "#89A978", Text: "#000000"},
	model.LayerPhysical:       {Fill: "#C9E7B7", Line: "#6F8F5F", Text: "#000000"},
	model.LayerImplementation: {Fill: "#FFE0E0", Line: "#B08D8D", Text: "#000000"},
}

// Theme resolves element types to colors.
type Theme struct {
	table map[model.ElementType]Colors
}

// Preset returns a named preset theme.
// Unrecognized names fail with an "unknown theme" error; no default is
// substituted.
func Preset(name string) (*Theme, error) {
	switch name {
	case PresetArchimate:
		table := make(map[model.ElementType]Colors)
		for _, t := range model.ElementTypes() {
			layer, _ := model.LayerOf(t)
			if c, ok := layerColors[layer]; ok {
				table[t] = c
			}
		}
		return &Theme{table: table}, nil
	case PresetMonochrome:
		return uniform(Colors{Fill: "#F0F0F0", Line: "#333333", Text: "#000000"}), nil
	case PresetHighContrast:
		return uniform(Colors{Fill: "#FFFFFF", Line: "#000000", Text: "#000000"}), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q", name)
	}
}

// NewCustom builds a theme from an explicit override table.
// Types absent from the table resolve to DefaultColors.
func NewCustom(table map[model.ElementType]Colors) *Theme {
	copied := make(map[model.ElementType]Colors, len(table))
	for t, c := range table {
		copied[t] = c
	}
	return &Theme{table: copied}
}

// ColorsFor returns the colors for an element type, falling back to
// DefaultColors for unmapped types.
func (t *Theme) ColorsFor(typ model.ElementType) Colors {
	if c, ok := t.table[typ]; ok {
		return c
	}
	return DefaultColors
}

// SetOverrides replaces the colors for the given types, keeping the rest of
// the active table.
func (t *Theme) SetOverrides(overrides map[model.ElementType]Colors) {
	if t.table == nil {
		t.table = make(map[model.ElementType]Colors, len(overrides))
	}
	for typ, c := range overrides {
		t.table[typ] = c
	}
}

func uniform(c Colors) *Theme {
	table := make(map[model.ElementType]Colors)
	for _, t := range model.ElementTypes() {
		table[t] = c
	}
	return &Theme{table: table}
}
