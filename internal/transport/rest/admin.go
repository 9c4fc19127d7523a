package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
	"github.com/heartmarshall/readtrack-backend/internal/service/logdraft"
	"github.com/heartmarshall/readtrack-backend/internal/service/moderation"
)

type moderationService interface {
	FlagLog(ctx context.Context, actorID, logID uuid.UUID) (*domain.ViolationRecord, error)
	RestoreViolation(ctx context.Context, actorID, violationID uuid.UUID) (*domain.ReadingLog, error)
	UpdateViolation(ctx context.Context, actorID, violationID uuid.UUID, input logdraft.Input) (*domain.ViolationRecord, error)
	GetViolation(ctx context.Context, actorID, violationID uuid.UUID) (*domain.ViolationRecord, error)
	ListViolations(ctx context.Context, actorID uuid.UUID, input moderation.ListInput) ([]domain.ViolationRecord, error)
	ListUserViolations(ctx context.Context, actorID, userID uuid.UUID) ([]domain.ViolationRecord, error)
}

// AdminHandler serves moderation endpoints. Role checks happen in the
// service against the user directory.
type AdminHandler struct {
	moderation moderationService
	log        *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(moderation moderationService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		moderation: moderation,
		log:        logger.With("handler", "admin"),
	}
}

// Flag quarantines a reading log.
// POST /admin/reading-logs/{id}/flag
func (h *AdminHandler) Flag(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if _, err := h.moderation.FlagLog(r.Context(), actor(r), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Restore returns a quarantined log to the log store.
// POST /admin/violations/{id}/restore
func (h *AdminHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if _, err := h.moderation.RestoreViolation(r.Context(), actor(r), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListViolations returns quarantined records, newest first.
// GET /admin/violations?limit=50&offset=0
func (h *AdminHandler) ListViolations(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	records, err := h.moderation.ListViolations(r.Context(), actor(r), moderation.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toViolationResponses(records))
}

// GetViolation returns one quarantined record.
// GET /admin/violations/{id}
func (h *AdminHandler) GetViolation(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	v, err := h.moderation.GetViolation(r.Context(), actor(r), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toViolationResponse(*v))
}

// UpdateViolation edits a quarantined record; owners may fix their own.
// PUT /violations/{id}
func (h *AdminHandler) UpdateViolation(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input, err := decodeLogRequest(w, r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	updated, err := h.moderation.UpdateViolation(r.Context(), actor(r), id, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, idResponse{ID: updated.ID.String()})
}

// ListUserViolations returns one owner's quarantined records.
// GET /users/{id}/violations
func (h *AdminHandler) ListUserViolations(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	records, err := h.moderation.ListUserViolations(r.Context(), actor(r), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toViolationResponses(records))
}
