package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/archigen/archigen/pkg/cache"
	"github.com/archigen/archigen/pkg/export"
	"github.com/archigen/archigen/pkg/model"
	"github.com/archigen/archigen/pkg/render/theme"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output     string // output file path ("-" or empty for stdout)
	modelID    string // fixed model identifier (generated when empty)
	name       string // model name
	purpose    string // model documentation
	views      bool   // include a visual view
	viewName   string // view name
	theme      string // color theme preset
	themeFile  string // TOML color override table
	strict     bool   // promote structural findings to blocking errors
	noValidate bool   // skip pre-export checks
	stats      bool   // log aggregate statistics
	groupElems bool   // group element fragments by layer
	groupRels  bool   // group relationship fragments by type
	relNames   bool   // generate relationship names
	checkRefs  bool   // fail hard on dangling references
	cacheDir   string // document cache directory ("" disables)
	refresh    bool   // bypass the cache
}

// newExportCmd creates the export command for rendering model files.
func newExportCmd() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export [model.json]",
		Short: "Export a model file to an Open Exchange document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.modelID, "model-id", "", "model identifier (generated when empty)")
	cmd.Flags().StringVar(&opts.name, "name", "", "model name")
	cmd.Flags().StringVar(&opts.purpose, "purpose", "", "model purpose documentation")
	cmd.Flags().BoolVar(&opts.views, "views", false, "include a visual view")
	cmd.Flags().StringVar(&opts.viewName, "view-name", "", "view name")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "color theme: archimate (default), monochrome, highcontrast")
	cmd.Flags().StringVar(&opts.themeFile, "theme-file", "", "TOML file with color overrides per element type")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "promote structural warnings to blocking errors")
	cmd.Flags().BoolVar(&opts.noValidate, "no-validate", false, "skip pre-export model checks")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "log aggregate statistics")
	cmd.Flags().BoolVar(&opts.groupElems, "group-elements", false, "group element fragments by layer")
	cmd.Flags().BoolVar(&opts.groupRels, "group-relationships", false, "group relationship fragments by type")
	cmd.Flags().BoolVar(&opts.relNames, "relationship-names", false, "generate relationship names")
	cmd.Flags().BoolVar(&opts.checkRefs, "check-references", false, "fail on dangling references")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "document cache directory (disabled when empty)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the document cache")

	return cmd
}

func runExport(ctx context.Context, path string, opts *exportOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	m, err := model.ReadModelFile(path)
	if err != nil {
		return err
	}
	logger.Debug("model loaded", "elements", len(m.Elements), "relationships", len(m.Relationships))

	var custom map[model.ElementType]theme.Colors
	if opts.themeFile != "" {
		custom, err = theme.LoadOverrides(opts.themeFile)
		if err != nil {
			return err
		}
	}

	eopts := export.Options{
		ModelID:            opts.modelID,
		ModelName:          opts.name,
		ModelPurpose:       opts.purpose,
		IncludeViews:       opts.views,
		ViewName:           opts.viewName,
		ColorTheme:         opts.theme,
		CustomColors:       custom,
		ValidateModel:      !opts.noValidate,
		StrictValidation:   opts.strict,
		IncludeStatistics:  opts.stats,
		GroupElements:      opts.groupElems,
		GroupRelationships: opts.groupRels,
		RelationshipNames:  opts.relNames,
		ValidateReferences: opts.checkRefs,
		Logger:             logger,
	}

	store, key, err := openCache(opts, m, eopts)
	if err != nil {
		return err
	}
	if !opts.refresh {
		if doc, hit, err := store.Get(key); err == nil && hit {
			logger.Debug("cache hit", "key", key)
			return writeDocument(opts.output, string(doc))
		}
	}

	result, err := export.Export(m.Elements, m.Relationships, eopts)
	for _, w := range result.Warnings {
		logger.Warn(w)
	}
	for _, e := range result.Errors {
		logger.Error(e)
	}
	if err != nil {
		return err
	}

	if result.Statistics != nil {
		s := result.Statistics
		logger.Info("statistics",
			"elements", s.Elements.Total,
			"relationships", s.Relationships.Total,
			"referenced", s.Relationships.UniqueElements)
		if s.Views != nil {
			logger.Info("view statistics",
				"shapes", s.Views.ElementCount,
				"connections", s.Views.RelationshipCount,
				"width", s.Views.Dimensions.Width,
				"height", s.Views.Dimensions.Height)
		}
	}

	if err := store.Set(key, []byte(result.Document)); err != nil {
		logger.Warn("cache write failed", "err", err)
	}

	if err := writeDocument(opts.output, result.Document); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Exported %d elements, %d relationships", len(m.Elements), len(m.Relationships)))
	return nil
}

// openCache returns the configured cache and the document key for this run.
// Caching requires a fixed model id; generated ids change every call, so the
// cache stays disabled without one.
func openCache(opts *exportOpts, m model.Model, eopts export.Options) (cache.Cache, string, error) {
	modelJSON, err := model.MarshalModel(m)
	if err != nil {
		return nil, "", err
	}
	key := cache.DocumentKey(modelJSON, eopts)

	if opts.cacheDir == "" || opts.modelID == "" {
		return cache.NewNullCache(), key, nil
	}
	store, err := cache.NewFileCache(filepath.Clean(opts.cacheDir))
	if err != nil {
		return nil, "", err
	}
	return store, key, nil
}

func writeDocument(path, doc string) error {
	if path == "" || path == "-" {
		_, err := fmt.Print(doc)
		return err
	}
	return os.WriteFile(path, []byte(doc), 0644)
}
