package theme

import (
	"github.com/BurntSushi/toml"

	"github.com/archigen/archigen/pkg/errors"
	"github.com/archigen/archigen/pkg/model"
)

// colorsFile is the on-disk shape of an override table:
//
//	[colors.BusinessActor]
//	fill = "#FFFFB5"
//	line = "#B2B181"
//	text = "#000000"
type colorsFile struct {
	Colors map[string]colorEntry `toml:"colors"`
}

type colorEntry struct {
	Fill string `toml:"fill"`
	Line string `toml:"line"`
	Text string `toml:"text"`
}

// LoadOverrides reads a TOML color override table from path.
// Keys must be known element types; unknown keys fail rather than being
// silently dropped.
func LoadOverrides(path string) (map[model.ElementType]Colors, error) {
	var file colorsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "cannot parse color table %s", path)
	}

	overrides := make(map[model.ElementType]Colors, len(file.Colors))
	for name, entry := range file.Colors {
		typ := model.ElementType(name)
		if !model.KnownElementType(typ) {
			return nil, errors.New(errors.ErrCodeInvalidTheme, "color table %s names unknown element type %q", path, name)
		}
		c := DefaultColors
		if entry.Fill != "" {
			c.Fill = entry.Fill
		}
		if entry.Line != "" {
			c.Line = entry.Line
		}
		if entry.Text != "" {
			c.Text = entry.Text
		}
		overrides[typ] = c
	}
	return overrides, nil
}
