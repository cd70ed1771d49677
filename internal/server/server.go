// Package server exposes the projection engine over a JSON HTTP API.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/iwvelando/nbfc-projection/internal/config"
	"github.com/iwvelando/nbfc-projection/internal/forecast"
	"github.com/iwvelando/nbfc-projection/pkg/constants"
	"github.com/iwvelando/nbfc-projection/pkg/output"
	"go.uber.org/zap"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the projection API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	router := mux.NewRouter()
	router.Use(h.logRequests)
	h.RegisterRoutes(router.PathPrefix("/api").Subrouter())
	return router
}

// RegisterRoutes registers the API routes on router.
func (h *handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/projection", h.handleProjection).Methods(http.MethodPost)
	router.HandleFunc("/projection/upload", h.handleUpload).Methods(http.MethodPost)
	router.HandleFunc("/export/csv", h.handleExportCSV).Methods(http.MethodPost)
	router.HandleFunc("/export/summary", h.handleExportSummary).Methods(http.MethodPost)
	router.HandleFunc("/defaults", h.handleDefaults).Methods(http.MethodGet)
	router.HandleFunc("/version", h.handleVersion).Methods(http.MethodGet)
}

type projectionResponse struct {
	output.Report
	CSV      string `json:"csv"`
	Duration string `json:"duration"`
}

func (h *handler) handleProjection(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleProjection"
	start := time.Now()

	conf, err := h.decodeParameters(w, r)
	if err != nil {
		h.respondError(w, statusFor(err), err.Error(), op)
		return
	}
	h.runProjection(w, conf, start, op)
}

func (h *handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleUpload"
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), op)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing configuration file", op)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), op)
		return
	}

	conf, err := config.LoadConfigurationFromReader(&buf, uploadFormat(fileHeader.Filename))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.runProjection(w, *conf, start, op)
}

func (h *handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExportCSV"

	result, ok := h.forecastFromBody(w, r, op)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", attachment(output.CSVFileName(result.Derived.TotalCapital)))
	w.WriteHeader(http.StatusOK)
	if err := output.WriteCSV(w, result.Projection); err != nil {
		h.logger.Error("failed to write csv export", zap.String("op", op), zap.Error(err))
	}
}

func (h *handler) handleExportSummary(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExportSummary"

	result, ok := h.forecastFromBody(w, r, op)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", attachment(output.SummaryFileName(result.Derived.TotalCapital)))
	w.WriteHeader(http.StatusOK)
	if err := output.WriteSummary(w, result); err != nil {
		h.logger.Error("failed to write summary export", zap.String("op", op), zap.Error(err))
	}
}

func (h *handler) handleDefaults(w http.ResponseWriter, _ *http.Request) {
	conf, err := config.LoadDefaults()
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleDefaults")
		return
	}
	h.writeJSON(w, http.StatusOK, conf.Parameters)
}

func (h *handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) forecastFromBody(w http.ResponseWriter, r *http.Request, op string) (*forecast.Forecast, bool) {
	conf, err := h.decodeParameters(w, r)
	if err != nil {
		h.respondError(w, statusFor(err), err.Error(), op)
		return nil, false
	}
	result, err := forecast.GetForecast(h.logger, conf)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute projection: %v", err), op)
		return nil, false
	}
	return result, true
}

func (h *handler) runProjection(w http.ResponseWriter, conf config.Configuration, start time.Time, op string) {
	if err := conf.Parameters.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid parameters: %v", err), op)
		return
	}

	result, err := forecast.GetForecast(h.logger, conf)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute projection: %v", err), op)
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("projection served",
		zap.String("op", op),
		zap.String("id", result.ID),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, projectionResponse{
		Report:   output.NewReport(result),
		CSV:      output.CsvString(result.Projection),
		Duration: elapsed.String(),
	})
}

type requestError struct {
	status int
	msg    string
}

func (e *requestError) Error() string { return e.msg }

func statusFor(err error) int {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return reqErr.status
	}
	return http.StatusBadRequest
}

// decodeParameters reads a JSON parameter object and applies it over the
// defaults. An empty body yields the defaults.
func (h *handler) decodeParameters(w http.ResponseWriter, r *http.Request) (config.Configuration, error) {
	conf := config.DefaultConfiguration()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&conf.Parameters); err != nil && !errors.Is(err, io.EOF) {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return conf, &requestError{http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize)}
		}
		return conf, &requestError{http.StatusBadRequest, fmt.Sprintf("failed to decode parameters: %v", err)}
	}

	if err := conf.Parameters.Validate(); err != nil {
		return conf, &requestError{http.StatusBadRequest, fmt.Sprintf("invalid parameters: %v", err)}
	}
	return conf, nil
}

func uploadFormat(filename string) string {
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		return constants.ParamsFormatTOML
	}
	return constants.ParamsFormatYAML
}

func attachment(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("projection request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.logger.Debug("request handled",
			zap.String("op", "server.logRequests"),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// Serve runs the API on cfg.Address until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, logger *zap.Logger, cfg *Config, version string) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           NewHandler(logger, cfg.UploadSizeBytes(), version),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("op", "server.Serve"),
			zap.String("address", cfg.Address),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server", zap.String("op", "server.Serve"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
