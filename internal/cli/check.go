package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/archigen/archigen/pkg/doccheck"
	"github.com/archigen/archigen/pkg/errors"
)

// newCheckCmd creates the check command for verifying exported documents.
func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [document.xml]",
		Short: "Check an Open Exchange document for structural defects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), args[0])
		},
	}
	return cmd
}

func runCheck(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "cannot read %s", path)
	}

	report := doccheck.Check(string(data))
	for _, w := range report.Warnings {
		logger.Warn(w.Message, "code", w.Code)
	}
	for _, e := range report.Errors {
		logger.Error(e.Message, "code", e.Code)
	}
	if !report.Valid() {
		return errors.New(errors.ErrCodeInvalidModel,
			"document has %d error(s)", len(report.Errors))
	}

	prog.done(fmt.Sprintf("Checked %s", path))
	return nil
}
