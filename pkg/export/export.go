// Package export orchestrates the validate → layout → serialize pipeline.
//
// The Exporter sequences optional pre-export structural checks, theme and
// layout configuration, document assembly, and statistics collection. It is
// the only component with multi-step control flow and user-facing error
// aggregation.
//
// # Usage
//
//	x, err := export.New(export.Options{
//	    ModelName:     "Webshop",
//	    IncludeViews:  true,
//	    ValidateModel: true,
//	})
//	if err != nil {
//	    return err
//	}
//	result, err := x.Export(elements, relationships)
//
// An Exporter holds mutable generator and theme configuration; use one
// instance per concurrent export or serialize calls externally.
package export

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/archigen/archigen/pkg/errors"
	"github.com/archigen/archigen/pkg/layout"
	"github.com/archigen/archigen/pkg/model"
	"github.com/archigen/archigen/pkg/render/openexchange"
	"github.com/archigen/archigen/pkg/render/theme"
)

// DefaultViewName is used when views are requested without a name.
const DefaultViewName = "Default View"

// DefaultTheme is the preset applied when options name none.
const DefaultTheme = theme.PresetArchimate

// Options configures one Exporter. The struct supports JSON serialization
// for API requests.
type Options struct {
	ModelID      string `json:"model_id,omitempty"`
	ModelName    string `json:"model_name,omitempty"`
	ModelPurpose string `json:"model_purpose,omitempty"`

	IncludeViews bool   `json:"include_views,omitempty"`
	ViewName     string `json:"view_name,omitempty"`
	ViewID       string `json:"view_id,omitempty"`

	// ColorTheme names a preset; CustomColors, when non-nil, replaces the
	// preset table entirely.
	ColorTheme   string                             `json:"color_theme,omitempty"`
	CustomColors map[model.ElementType]theme.Colors `json:"custom_colors,omitempty"`

	// ValidateModel enables the pre-export structural checks.
	// StrictValidation promotes orphaned-reference and duplicate-id findings
	// to blocking errors; emptiness and blank names always stay warnings.
	ValidateModel    bool `json:"validate_model,omitempty"`
	StrictValidation bool `json:"strict_validation,omitempty"`

	IncludeStatistics bool `json:"include_statistics,omitempty"`

	// Fragment generation options.
	GroupElements      bool   `json:"group_elements,omitempty"`
	GroupRelationships bool   `json:"group_relationships,omitempty"`
	RelationshipNames  bool   `json:"relationship_names,omitempty"`
	ValidateReferences bool   `json:"validate_references,omitempty"`
	DocTemplate        string `json:"doc_template,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// ValidateAndSetDefaults applies defaults in place.
// ModelID is the one non-deterministic default: leaving it empty yields a
// fresh identifier per call. Set it for byte-identical output.
func (o *Options) ValidateAndSetDefaults() {
	if o.ColorTheme == "" && o.CustomColors == nil {
		o.ColorTheme = DefaultTheme
	}
	if o.ViewName == "" {
		o.ViewName = DefaultViewName
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Result is the outcome of one export call, produced fresh per call.
type Result struct {
	Document   string      `json:"document"`
	Warnings   []string    `json:"warnings"`
	Errors     []string    `json:"errors"`
	Statistics *Statistics `json:"statistics,omitempty"`
}

// Exporter holds the configured theme and generators.
type Exporter struct {
	opts    Options
	theme   *theme.Theme
	elemGen *openexchange.ElementGenerator
	relGen  *openexchange.RelationshipGenerator
	viewGen *openexchange.ViewGenerator
}

// New builds an Exporter from options, resolving the theme and constructing
// the generators (which read their templates once here).
func New(opts Options) (*Exporter, error) {
	opts.ValidateAndSetDefaults()

	var th *theme.Theme
	if opts.CustomColors != nil {
		th = theme.NewCustom(opts.CustomColors)
	} else {
		var err error
		th, err = theme.Preset(opts.ColorTheme)
		if err != nil {
			return nil, err
		}
	}

	elemGen, err := openexchange.NewElementGenerator(openexchange.ElementOptions{
		GroupByLayer: opts.GroupElements,
		DocTemplate:  opts.DocTemplate,
	})
	if err != nil {
		return nil, err
	}
	relGen, err := openexchange.NewRelationshipGenerator(openexchange.RelationshipOptions{
		GroupByType:        opts.GroupRelationships,
		GenerateNames:      opts.RelationshipNames,
		ValidateReferences: opts.ValidateReferences,
	})
	if err != nil {
		return nil, err
	}

	return &Exporter{
		opts:    opts,
		theme:   th,
		elemGen: elemGen,
		relGen:  relGen,
		viewGen: openexchange.NewViewGenerator(th),
	}, nil
}

// Export runs the pipeline and returns the document plus aggregated
// warnings and errors. Partial documents are never returned: a blocking
// pre-check or an assembly failure yields an empty Document.
func (x *Exporter) Export(elements []model.Element, relationships []model.Relationship) (Result, error) {
	logger := x.opts.Logger
	result := Result{Warnings: []string{}, Errors: []string{}}

	if x.opts.ValidateModel {
		warnings, blocking := precheck(elements, relationships, x.opts.StrictValidation)
		result.Warnings = append(result.Warnings, warnings...)
		if len(blocking) > 0 {
			result.Errors = append(result.Errors, blocking...)
			return result, errors.New(errors.ErrCodeInvalidModel,
				"model validation failed with %d blocking error(s)", len(blocking))
		}
		logger.Debug("pre-export checks passed", "warnings", len(warnings))
	}

	modelID := x.opts.ModelID
	if modelID == "" {
		modelID = model.NewID()
	}

	elementNodes := x.elemGen.Generate(elements)
	relationshipNodes, err := x.relGen.Generate(relationships, elements)
	if err != nil {
		return result, errors.Wrap(errors.ErrCodeInternal, err, "export failed")
	}

	var view *openexchange.ViewNode
	if x.opts.IncludeViews {
		l := layout.BuildRefined(elements, relationships)
		viewID := x.opts.ViewID
		if viewID == "" {
			viewID = model.NewID()
		}
		v, err := x.viewGen.Generate(viewID, x.opts.ViewName, elements, relationships, l)
		if err != nil {
			return result, errors.Wrap(errors.ErrCodeInternal, err, "export failed")
		}
		view = &v
	}

	doc, err := openexchange.Assemble(openexchange.Header{
		ModelID:   modelID,
		ModelName: x.opts.ModelName,
		Purpose:   x.opts.ModelPurpose,
	}, elementNodes, relationshipNodes, view)
	if err != nil {
		return result, errors.Wrap(errors.ErrCodeInternal, err, "export failed")
	}
	result.Document = doc

	if x.opts.IncludeStatistics {
		result.Statistics = collectStatistics(elements, relationships, view)
	}

	logger.Debug("export complete",
		"elements", len(elements),
		"relationships", len(relationships),
		"views", x.opts.IncludeViews)
	return result, nil
}

// Export is a convenience wrapper constructing a one-shot Exporter.
func Export(elements []model.Element, relationships []model.Relationship, opts Options) (Result, error) {
	x, err := New(opts)
	if err != nil {
		return Result{}, err
	}
	return x.Export(elements, relationships)
}
