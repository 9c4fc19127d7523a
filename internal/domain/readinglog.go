package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultViolationReason is stamped on every quarantined log unless
// configuration overrides it.
const DefaultViolationReason = "Violation of content policy"

// MaxNotesLength bounds the free-text notes of a log, in bytes.
const MaxNotesLength = 65535

// ReadingLog is one snapshot of reading progress for a book.
// Logs sharing an owner and a case-insensitive title/author form a chain
// linked backwards through PreviousVersionID; at most one of them is current.
type ReadingLog struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Title             string
	Author            string
	Date              time.Time
	TimeSpent         int
	CurrentPage       *int
	TotalPages        *int
	Notes             *string
	CreatedAt         time.Time
	PreviousVersionID *uuid.UUID
	IsCurrent         bool
}

// ChainKey returns the key identifying the chain this log belongs to.
func (l *ReadingLog) ChainKey() ChainKey {
	return NewChainKey(l.UserID, l.Title, l.Author)
}

// ApplyDraft overwrites the content fields of the log in place.
// Identity, ownership and chain linkage are left untouched.
func (l *ReadingLog) ApplyDraft(d LogDraft) {
	l.Title = d.Title
	l.Author = d.Author
	l.Date = d.Date
	l.TimeSpent = d.TimeSpent
	l.CurrentPage = d.CurrentPage
	l.TotalPages = d.TotalPages
	l.Notes = d.Notes
}

// LogDraft carries the user-editable content of a reading log.
type LogDraft struct {
	Title       string
	Author      string
	Date        time.Time
	TimeSpent   int
	CurrentPage *int
	TotalPages  *int
	Notes       *string
}

// ChainKey identifies a version chain: one owner, one book.
// Title and Author are stored normalized.
type ChainKey struct {
	UserID uuid.UUID
	Title  string
	Author string
}

// NewChainKey builds a ChainKey with normalized title and author.
func NewChainKey(userID uuid.UUID, title, author string) ChainKey {
	return ChainKey{
		UserID: userID,
		Title:  NormalizeChainText(title),
		Author: NormalizeChainText(author),
	}
}

// CheckPageCount returns a PageCountConflictError when given disagrees with
// the first recorded total page count among existing. Logs without a
// recorded total and a nil given value never conflict.
func CheckPageCount(existing []ReadingLog, given *int) error {
	if given == nil {
		return nil
	}
	for _, l := range existing {
		if l.TotalPages == nil {
			continue
		}
		if *l.TotalPages != *given {
			return NewPageCountConflict(*l.TotalPages, given)
		}
		return nil
	}
	return nil
}

// CheckHeadPageCount is the rule for appending a new version to a chain.
// Once the head records a total, the draft must carry the same total; a
// draft without one conflicts too.
func CheckHeadPageCount(head ReadingLog, given *int) error {
	if head.TotalPages == nil {
		return nil
	}
	if given == nil || *given != *head.TotalPages {
		return NewPageCountConflict(*head.TotalPages, given)
	}
	return nil
}

// HistoryItem is one row of a book's version history. IsCurrent marks the
// version the caller is viewing, not necessarily the chain head.
type HistoryItem struct {
	ID          uuid.UUID
	Title       string
	Author      string
	Date        time.Time
	TimeSpent   int
	CurrentPage *int
	TotalPages  *int
	Notes       *string
	IsCurrent   bool
}

// NewHistoryItem maps a log to its history view relative to currentLogID.
func NewHistoryItem(l ReadingLog, currentLogID *uuid.UUID) HistoryItem {
	return HistoryItem{
		ID:          l.ID,
		Title:       l.Title,
		Author:      l.Author,
		Date:        l.Date,
		TimeSpent:   l.TimeSpent,
		CurrentPage: l.CurrentPage,
		TotalPages:  l.TotalPages,
		Notes:       l.Notes,
		IsCurrent:   currentLogID != nil && l.ID == *currentLogID,
	}
}

// ViolationRecord is the quarantined copy of a log removed for a policy
// violation. It reuses the source log's ID.
type ViolationRecord struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Username    string
	Title       string
	Author      string
	Date        time.Time
	TimeSpent   int
	CurrentPage *int
	TotalPages  *int
	Notes       *string
	Reason      string
	CreatedAt   time.Time
	FlaggedAt   time.Time
}

// NewViolationRecord snapshots a log owned by owner into a violation record.
func NewViolationRecord(l ReadingLog, owner User, reason string, flaggedAt time.Time) ViolationRecord {
	if reason == "" {
		reason = DefaultViolationReason
	}
	return ViolationRecord{
		ID:          l.ID,
		UserID:      l.UserID,
		Username:    owner.Username,
		Title:       l.Title,
		Author:      l.Author,
		Date:        l.Date,
		TimeSpent:   l.TimeSpent,
		CurrentPage: l.CurrentPage,
		TotalPages:  l.TotalPages,
		Notes:       l.Notes,
		Reason:      reason,
		CreatedAt:   l.CreatedAt,
		FlaggedAt:   flaggedAt,
	}
}

// ApplyDraft overwrites the content fields of the record in place.
func (v *ViolationRecord) ApplyDraft(d LogDraft) {
	v.Title = d.Title
	v.Author = d.Author
	v.Date = d.Date
	v.TimeSpent = d.TimeSpent
	v.CurrentPage = d.CurrentPage
	v.TotalPages = d.TotalPages
	v.Notes = d.Notes
}

// RestoredLog rebuilds a reading log from the snapshot under a new ID.
// The restored log is not linked into any chain and is not current.
func (v *ViolationRecord) RestoredLog(id uuid.UUID) ReadingLog {
	return ReadingLog{
		ID:          id,
		UserID:      v.UserID,
		Title:       v.Title,
		Author:      v.Author,
		Date:        v.Date,
		TimeSpent:   v.TimeSpent,
		CurrentPage: v.CurrentPage,
		TotalPages:  v.TotalPages,
		Notes:       v.Notes,
		CreatedAt:   v.CreatedAt,
		IsCurrent:   false,
	}
}

// TruncateToDate drops the clock part of t, keeping the calendar date in UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
