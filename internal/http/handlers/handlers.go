package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	nethttp "net/http"

	"hockey-notify-service/internal/logging"
	"hockey-notify-service/internal/providers"
	"hockey-notify-service/internal/workflows"
)

// WorkflowRunner executes one notification invocation.
type WorkflowRunner interface {
	Run(ctx context.Context, req workflows.Request) (workflows.Response, error)
}

// Handler wires HTTP routes to the workflow runner.
type Handler struct {
	runner WorkflowRunner
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(runner WorkflowRunner, logger *slog.Logger) *Handler {
	return &Handler{
		runner: runner,
		logger: logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Notify runs the requested workflows and returns the combined summary.
func (h *Handler) Notify(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req workflows.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "notification requested",
		logging.FieldMode, req.Mode,
		logging.FieldTeamID, req.TeamID,
		logging.FieldCompany, req.Company,
	)

	resp, err := h.runner.Run(r.Context(), req)
	if err != nil {
		if cfgErr, ok := providers.AsConfigError(err); ok {
			writeError(w, r, nethttp.StatusBadRequest, cfgErr.Error(), logger)
			return
		}
		logging.Error(logger, "notification run failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "internal error", logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, resp, logger)
}
