package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
	"github.com/heartmarshall/readtrack-backend/internal/service/administration"
)

type userAdminService interface {
	FreezeUsers(ctx context.Context, actorID uuid.UUID, input administration.BatchInput) (*administration.BatchResult, error)
	UnfreezeUsers(ctx context.Context, actorID uuid.UUID, input administration.BatchInput) (*administration.BatchResult, error)
	PromoteUsers(ctx context.Context, actorID uuid.UUID, input administration.BatchInput) (*administration.BatchResult, error)
	DemoteUsers(ctx context.Context, actorID uuid.UUID, input administration.BatchInput) (*administration.BatchResult, error)
	ListUsers(ctx context.Context, actorID uuid.UUID, input administration.ListUsersInput) ([]domain.User, error)
}

// maxBatchBodyBytes fits a full batch of quoted UUIDs.
const maxBatchBodyBytes = 64 << 10

// UserAdminHandler serves account moderation endpoints.
type UserAdminHandler struct {
	svc userAdminService
	log *slog.Logger
}

// NewUserAdminHandler creates a UserAdminHandler.
func NewUserAdminHandler(svc userAdminService, logger *slog.Logger) *UserAdminHandler {
	return &UserAdminHandler{
		svc: svc,
		log: logger.With("handler", "user_admin"),
	}
}

type batchFunc func(ctx context.Context, actorID uuid.UUID, input administration.BatchInput) (*administration.BatchResult, error)

// Freeze handles POST /admin/users/freeze.
func (h *UserAdminHandler) Freeze(w http.ResponseWriter, r *http.Request) {
	h.batch(w, r, h.svc.FreezeUsers)
}

// Unfreeze handles POST /admin/users/unfreeze.
func (h *UserAdminHandler) Unfreeze(w http.ResponseWriter, r *http.Request) {
	h.batch(w, r, h.svc.UnfreezeUsers)
}

// Promote handles POST /admin/users/promote.
func (h *UserAdminHandler) Promote(w http.ResponseWriter, r *http.Request) {
	h.batch(w, r, h.svc.PromoteUsers)
}

// Demote handles POST /admin/users/demote.
func (h *UserAdminHandler) Demote(w http.ResponseWriter, r *http.Request) {
	h.batch(w, r, h.svc.DemoteUsers)
}

// List handles GET /admin/users?sort=username&order=desc&limit=50&offset=0.
func (h *UserAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q := r.URL.Query()
	var desc bool
	switch strings.ToLower(strings.TrimSpace(q.Get("order"))) {
	case "", "asc":
	case "desc":
		desc = true
	default:
		handleError(w, r, h.log, domain.NewValidationError("order", "must be asc or desc"))
		return
	}

	users, err := h.svc.ListUsers(r.Context(), actor(r), administration.ListUsersInput{
		SortBy: strings.TrimSpace(q.Get("sort")),
		Desc:   desc,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *UserAdminHandler) batch(w http.ResponseWriter, r *http.Request, fn batchFunc) {
	input, err := decodeBatchRequest(w, r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := fn(r.Context(), actor(r), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, batchResponse{
		Changed:   idStrings(result.Changed),
		Unchanged: idStrings(result.Unchanged),
		Missing:   idStrings(result.Missing),
	})
}

type batchRequest struct {
	UserIDs []string `json:"userIds"`
}

func decodeBatchRequest(w http.ResponseWriter, r *http.Request) (administration.BatchInput, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBatchBodyBytes)

	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return administration.BatchInput{}, errBodyTooLarge
		}
		return administration.BatchInput{}, domain.NewValidationError("body", "invalid JSON")
	}

	ids := make([]uuid.UUID, 0, len(req.UserIDs))
	for _, raw := range req.UserIDs {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return administration.BatchInput{}, domain.NewValidationError("userIds", "must contain UUIDs only")
		}
		ids = append(ids, id)
	}
	return administration.BatchInput{UserIDs: ids}, nil
}

type batchResponse struct {
	Changed   []string `json:"changed"`
	Unchanged []string `json:"unchanged"`
	Missing   []string `json:"missing"`
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

type userResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	TimesFlagged int    `json:"timesFlagged"`
	Frozen       bool   `json:"frozen"`
	CreatedAt    string `json:"createdAt"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:           u.ID.String(),
		Email:        u.Email,
		Username:     u.Username,
		Role:         u.Role.String(),
		TimesFlagged: u.TimesFlagged,
		Frozen:       u.Frozen,
		CreatedAt:    u.CreatedAt.UTC().Format(time.RFC3339),
	}
}
