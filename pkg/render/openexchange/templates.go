package openexchange

import (
	_ "embed"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/archigen/archigen/pkg/errors"
	"github.com/archigen/archigen/pkg/model"
)

//go:embed templates.toml
var templatesTOML []byte

// templates holds the parsed documentation templates.
// Parsed once per generator construction; generators should be reused.
type templates struct {
	Default              string            `toml:"default"`
	RelationshipFallback string            `toml:"relationship_fallback"`
	Layers               map[string]string `toml:"layers"`
	Verbs                map[string]string `toml:"verbs"`
}

// loadTemplates parses the embedded template document.
// A parse failure is fatal for the constructing generator.
func loadTemplates() (templates, error) {
	var t templates
	if err := toml.Unmarshal(templatesTOML, &t); err != nil {
		return templates{}, errors.Wrap(errors.ErrCodeInternal, err, "load document templates")
	}
	return t, nil
}

// layerDoc returns the canned sentence for a layer, with tokens substituted.
// The second return value is false when the layer has no sentence.
func (t templates) layerDoc(e model.Element) (string, bool) {
	sentence, ok := t.Layers[string(e.Layer())]
	if !ok {
		return "", false
	}
	return substitute(sentence, e), true
}

// verb returns the naming verb for a relationship type.
func (t templates) verb(typ model.RelationshipType) (string, bool) {
	v, ok := t.Verbs[string(typ)]
	return v, ok
}

// substitute replaces {type}, {name}, and {layer} tokens in one pass.
// Replacement values are never re-scanned, so a name containing a token
// cannot trigger a second substitution.
func substitute(template string, e model.Element) string {
	return strings.NewReplacer(
		"{type}", string(e.Type),
		"{name}", e.Name,
		"{layer}", string(e.Layer()),
	).Replace(template)
}
