package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
	"github.com/heartmarshall/readtrack-backend/internal/service/logdraft"
	"github.com/heartmarshall/readtrack-backend/internal/service/readinglog"
	"github.com/heartmarshall/readtrack-backend/pkg/ctxutil"
)

type readingLogService interface {
	CreateLog(ctx context.Context, actorID uuid.UUID, input logdraft.Input) (*domain.ReadingLog, error)
	UpdateLog(ctx context.Context, actorID, logID uuid.UUID, input logdraft.Input) (*domain.ReadingLog, error)
	DeleteLog(ctx context.Context, actorID, logID uuid.UUID) error
	GetLog(ctx context.Context, actorID, logID uuid.UUID) (*domain.ReadingLog, error)
	ListLogs(ctx context.Context, actorID uuid.UUID) ([]domain.ReadingLog, error)
	ListAllLogs(ctx context.Context, actorID uuid.UUID, input readinglog.ListAllInput) ([]domain.ReadingLog, error)
	GetHistory(ctx context.Context, actorID uuid.UUID, input readinglog.HistoryInput) ([]domain.HistoryItem, error)
}

// ReadingLogHandler serves reading log and history endpoints.
type ReadingLogHandler struct {
	svc readingLogService
	log *slog.Logger
}

// NewReadingLogHandler creates a ReadingLogHandler.
func NewReadingLogHandler(svc readingLogService, logger *slog.Logger) *ReadingLogHandler {
	return &ReadingLogHandler{svc: svc, log: logger.With("handler", "reading_log")}
}

// Create handles POST /reading-logs.
func (h *ReadingLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, err := decodeLogRequest(w, r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.CreateLog(r.Context(), actor(r), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: created.ID.String()})
}

// List handles GET /reading-logs.
func (h *ReadingLogHandler) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.svc.ListLogs(r.Context(), actor(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogResponses(logs))
}

// History handles GET /reading-logs/history?title=&author=&currentLogId=&userId=.
func (h *ReadingLogHandler) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := readinglog.HistoryInput{
		Title:  q.Get("title"),
		Author: q.Get("author"),
	}

	var err error
	if input.UserID, err = queryUUID(r, "userId"); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if input.CurrentLogID, err = queryUUID(r, "currentLogId"); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, err := h.svc.GetHistory(r.Context(), actor(r), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toHistoryResponses(items))
}

// Get handles GET /reading-logs/{id}.
func (h *ReadingLogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	l, err := h.svc.GetLog(r.Context(), actor(r), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogResponse(*l))
}

// Update handles PUT /reading-logs/{id}.
func (h *ReadingLogHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	updated, err := h.svc.UpdateLog(r.Context(), actor(r), id, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, idResponse{ID: updated.ID.String()})
}

// Delete handles DELETE /reading-logs/{id}.
func (h *ReadingLogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteLog(r.Context(), actor(r), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListAll handles GET /admin/reading-logs?limit=&offset=.
func (h *ReadingLogHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	logs, err := h.svc.ListAllLogs(r.Context(), actor(r), readinglog.ListAllInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogResponses(logs))
}

// actor returns the authenticated caller, or uuid.Nil for anonymous
// requests; services reject uuid.Nil as unauthorized.
func actor(r *http.Request) uuid.UUID {
	id, _ := ctxutil.UserIDFromCtx(r.Context())
	return id
}
