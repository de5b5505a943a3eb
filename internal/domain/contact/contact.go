package contact

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Role              string     `json:"role"`
	Company           string     `json:"company"`
	Location          string     `json:"location"`
	Email             *string    `json:"email"`
	Avatar            *string    `json:"avatar"`
	WarmthScore       int        `json:"warmth_score"`
	PriorityScore     int        `json:"priority_score"`
	LastInteraction   *time.Time `json:"last_interaction"`
	NextFollowUp      *time.Time `json:"next_follow_up"`
	Tags              []string   `json:"tags"`
	Notes             string     `json:"notes"`
	Category          *string    `json:"category"`
	Industry          *string    `json:"industry"`
	Interests         []string   `json:"interests"`
	Expertise         []string   `json:"expertise"`
	MutualConnections int        `json:"mutual_connections"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ParsedContact is a contact candidate extracted from an export, before it is
// persisted. InvalidReason is set when the row failed validation but should
// still be surfaced to the caller instead of being dropped.
type ParsedContact struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Company       string   `json:"company"`
	Role          string   `json:"role"`
	ProfileURL    string   `json:"profile_url"`
	Tags          []string `json:"tags"`
	Notes         string   `json:"notes"`
	InvalidReason string   `json:"invalid_reason,omitempty"`
}

func (p ParsedContact) Valid() bool {
	return p.InvalidReason == ""
}

type ListFilter struct {
	Query     string
	Category  string
	Industry  string
	Tag       string
	MinWarmth *int
	Limit     int
	Offset    int
}

var ErrContactNotFound = errors.New("contact not found")

type Repository interface {
	Create(ctx context.Context, c *Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (*Contact, error)
	GetByEmail(ctx context.Context, email string) (*Contact, error)
	List(ctx context.Context, filter ListFilter) ([]*Contact, error)
	Update(ctx context.Context, c *Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MergeTags unions two tag lists preserving first-seen order.
func MergeTags(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	merged := make([]string, 0, len(existing)+len(incoming))
	for _, t := range existing {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		merged = append(merged, t)
	}
	for _, t := range incoming {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		merged = append(merged, t)
	}
	return merged
}
