package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
	"github.com/heartmarshall/readtrack-backend/internal/service/logdraft"
)

// logRequest is the body of every create and update of a log or violation.
// Date is a calendar day formatted as 2006-01-02.
type logRequest struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Date        string  `json:"date"`
	TimeSpent   int     `json:"timeSpent"`
	CurrentPage *int    `json:"currentPage"`
	TotalPages  *int    `json:"totalPages"`
	Notes       *string `json:"notes"`
}

func (req logRequest) toInput() (logdraft.Input, error) {
	var date time.Time
	if strings.TrimSpace(req.Date) != "" {
		var err error
		date, err = time.Parse(time.DateOnly, strings.TrimSpace(req.Date))
		if err != nil {
			return logdraft.Input{}, domain.NewValidationError("date", "must be formatted as YYYY-MM-DD")
		}
	}
	return logdraft.Input{
		Title:       req.Title,
		Author:      req.Author,
		Date:        date,
		TimeSpent:   req.TimeSpent,
		CurrentPage: req.CurrentPage,
		TotalPages:  req.TotalPages,
		Notes:       req.Notes,
	}, nil
}

// maxLogBodyBytes leaves room for JSON escaping of maximal notes.
const maxLogBodyBytes = 4 * domain.MaxNotesLength

// errBodyTooLarge is answered with 413.
var errBodyTooLarge = errors.New("request body too large")

func decodeLogRequest(w http.ResponseWriter, r *http.Request) (logdraft.Input, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxLogBodyBytes)

	var req logRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return logdraft.Input{}, errBodyTooLarge
		}
		return logdraft.Input{}, domain.NewValidationError("body", "invalid JSON")
	}
	return req.toInput()
}

type idResponse struct {
	ID string `json:"id"`
}

type logResponse struct {
	ID                string  `json:"id"`
	UserID            string  `json:"userId"`
	Title             string  `json:"title"`
	Author            string  `json:"author"`
	Date              string  `json:"date"`
	TimeSpent         int     `json:"timeSpent"`
	CurrentPage       *int    `json:"currentPage"`
	TotalPages        *int    `json:"totalPages"`
	Notes             *string `json:"notes"`
	CreatedAt         string  `json:"createdAt"`
	PreviousVersionID *string `json:"previousVersionId"`
	IsCurrent         bool    `json:"isCurrent"`
}

func toLogResponse(l domain.ReadingLog) logResponse {
	resp := logResponse{
		ID:          l.ID.String(),
		UserID:      l.UserID.String(),
		Title:       l.Title,
		Author:      l.Author,
		Date:        l.Date.Format(time.DateOnly),
		TimeSpent:   l.TimeSpent,
		CurrentPage: l.CurrentPage,
		TotalPages:  l.TotalPages,
		Notes:       l.Notes,
		CreatedAt:   l.CreatedAt.UTC().Format(time.RFC3339),
		IsCurrent:   l.IsCurrent,
	}
	if l.PreviousVersionID != nil {
		prev := l.PreviousVersionID.String()
		resp.PreviousVersionID = &prev
	}
	return resp
}

func toLogResponses(logs []domain.ReadingLog) []logResponse {
	out := make([]logResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, toLogResponse(l))
	}
	return out
}

type historyItemResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Date        string  `json:"date"`
	TimeSpent   int     `json:"timeSpent"`
	CurrentPage *int    `json:"currentPage"`
	TotalPages  *int    `json:"totalPages"`
	Notes       *string `json:"notes"`
	IsCurrent   bool    `json:"isCurrent"`
}

func toHistoryResponses(items []domain.HistoryItem) []historyItemResponse {
	out := make([]historyItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, historyItemResponse{
			ID:          it.ID.String(),
			Title:       it.Title,
			Author:      it.Author,
			Date:        it.Date.Format(time.DateOnly),
			TimeSpent:   it.TimeSpent,
			CurrentPage: it.CurrentPage,
			TotalPages:  it.TotalPages,
			Notes:       it.Notes,
			IsCurrent:   it.IsCurrent,
		})
	}
	return out
}

type violationResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	Username    string  `json:"username"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Date        string  `json:"date"`
	TimeSpent   int     `json:"timeSpent"`
	CurrentPage *int    `json:"currentPage"`
	TotalPages  *int    `json:"totalPages"`
	Notes       *string `json:"notes"`
	Reason      string  `json:"reason"`
	CreatedAt   string  `json:"createdAt"`
	FlaggedAt   string  `json:"flaggedAt"`
}

func toViolationResponse(v domain.ViolationRecord) violationResponse {
	return violationResponse{
		ID:          v.ID.String(),
		UserID:      v.UserID.String(),
		Username:    v.Username,
		Title:       v.Title,
		Author:      v.Author,
		Date:        v.Date.Format(time.DateOnly),
		TimeSpent:   v.TimeSpent,
		CurrentPage: v.CurrentPage,
		TotalPages:  v.TotalPages,
		Notes:       v.Notes,
		Reason:      v.Reason,
		CreatedAt:   v.CreatedAt.UTC().Format(time.RFC3339),
		FlaggedAt:   v.FlaggedAt.UTC().Format(time.RFC3339),
	}
}

func toViolationResponses(records []domain.ViolationRecord) []violationResponse {
	out := make([]violationResponse, 0, len(records))
	for _, v := range records {
		out = append(out, toViolationResponse(v))
	}
	return out
}

// pathUUID parses the named path wildcard.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

// queryUUID parses an optional UUID query parameter.
func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a UUID")
	}
	return &id, nil
}

// pagination reads limit and offset; absent values are zero.
func pagination(r *http.Request) (limit, offset int, err error) {
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil {
			return 0, 0, domain.NewValidationError("limit", "must be an integer")
		}
	}
	if v := q.Get("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil {
			return 0, 0, domain.NewValidationError("offset", "must be an integer")
		}
	}
	return limit, offset, nil
}
