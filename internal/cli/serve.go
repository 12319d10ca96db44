package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/archigen/archigen/pkg/compat"
	"github.com/archigen/archigen/pkg/export"
	"github.com/archigen/archigen/pkg/model"
)

// newServeCmd creates the serve command exposing export and validation
// over HTTP.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the export and validation API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

func runServe(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	logger.Info("listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}

func newRouter(logger *charmlog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Post("/api/export", handleExport(logger))
	r.Post("/api/validate", handleValidate(logger))

	return r
}

// exportRequest is the JSON body accepted by POST /api/export. The Model
// field uses the same wire format as model files on disk.
type exportRequest struct {
	Model   json.RawMessage `json:"model"`
	Options export.Options  `json:"options"`
}

type exportResponse struct {
	Document string             `json:"document,omitempty"`
	Warnings []string           `json:"warnings,omitempty"`
	Errors   []string           `json:"errors,omitempty"`
	Stats    *export.Statistics `json:"statistics,omitempty"`
}

func handleExport(logger *charmlog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var body exportRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		m, err := model.ReadModel(bytes.NewReader(body.Model))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		opts := body.Options
		opts.Logger = logger
		result, err := export.Export(m.Elements, m.Relationships, opts)
		resp := exportResponse{
			Document: result.Document,
			Warnings: result.Warnings,
			Errors:   result.Errors,
			Stats:    result.Statistics,
		}
		status := http.StatusOK
		if err != nil {
			// Blocking validation findings come back in the body; anything
			// else is an export failure.
			if len(result.Errors) > 0 {
				status = http.StatusUnprocessableEntity
			} else {
				logger.Error("export failed", "err", err)
				http.Error(w, "export failed", http.StatusInternalServerError)
				return
			}
		}
		writeJSON(w, status, resp)
	}
}

type validateResponse struct {
	Valid      bool               `json:"valid"`
	Violations []compat.Violation `json:"violations,omitempty"`
}

func handleValidate(logger *charmlog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Model json.RawMessage `json:"model"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		m, err := model.ReadModel(bytes.NewReader(body.Model))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		violations := compat.Validate(m.Elements, m.Relationships, compat.Default())
		logger.Debug("validated", "relationships", len(m.Relationships), "violations", len(violations))
		writeJSON(w, http.StatusOK, validateResponse{
			Valid:      len(violations) == 0,
			Violations: violations,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already written; nothing left to do but note it.
		charmlog.Default().Error("response encoding failed", "err", err)
	}
}
