package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archigen/archigen/pkg/compat"
	"github.com/archigen/archigen/pkg/errors"
	"github.com/archigen/archigen/pkg/model"
)

// newValidateCmd creates the validate command for checking relationship
// legality against the compatibility matrix.
func newValidateCmd() *cobra.Command {
	var matrixPath string

	cmd := &cobra.Command{
		Use:   "validate [model.json]",
		Short: "Validate model relationships against the compatibility matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), args[0], matrixPath)
		},
	}

	cmd.Flags().StringVar(&matrixPath, "matrix", "", "TOML file with additional compatibility rules")

	return cmd
}

func runValidate(ctx context.Context, path, matrixPath string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	m, err := model.ReadModelFile(path)
	if err != nil {
		return err
	}

	matrix := compat.Default()
	if matrixPath != "" {
		extra, err := compat.LoadTOML(matrixPath)
		if err != nil {
			return err
		}
		matrix.Merge(extra)
		logger.Debug("merged compatibility rules", "file", matrixPath)
	}

	violations := compat.Validate(m.Elements, m.Relationships, matrix)
	for _, v := range violations {
		logger.Error(v.Message, "source", v.Source, "target", v.Target, "type", v.Relationship)
	}
	if len(violations) > 0 {
		return errors.New(errors.ErrCodeInvalidModel,
			"%d relationship(s) violate the compatibility matrix", len(violations))
	}

	prog.done(fmt.Sprintf("Validated %d relationships", len(m.Relationships)))
	return nil
}
