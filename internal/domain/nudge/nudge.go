package nudge

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	TypeDecay     = "decay"
	TypeMilestone = "milestone"
	TypeLocation  = "location"
	TypeIntro     = "intro"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

const (
	StatusPending   = "pending"
	StatusDismissed = "dismissed"
	StatusCompleted = "completed"
)

type Nudge struct {
	ID        uuid.UUID `json:"id"`
	ContactID uuid.UUID `json:"contact_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Priority  string    `json:"priority"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
}

var (
	ErrNudgeNotFound = errors.New("nudge not found")
	ErrInvalidStatus = errors.New("invalid nudge status")
)

func ValidStatus(status string) bool {
	return status == StatusPending || status == StatusDismissed || status == StatusCompleted
}

type Repository interface {
	List(ctx context.Context) ([]*Nudge, error)
	Create(ctx context.Context, n *Nudge) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Nudge, error)
	HasPending(ctx context.Context, contactID uuid.UUID, nudgeType string) (bool, error)
}
