package profile

import (
	"context"
	"errors"
	"strings"
	"time"
)

type Position struct {
	Company   string `json:"company"`
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Current reports whether the position has no end date.
func (p Position) Current() bool {
	return strings.TrimSpace(p.EndDate) == ""
}

type UserProfile struct {
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Headline       string     `json:"headline"`
	Summary        string     `json:"summary"`
	CurrentCompany string     `json:"current_company"`
	CurrentRole    string     `json:"current_role"`
	Industries     []string   `json:"industries"`
	Skills         []string   `json:"skills"`
	WorkHistory    []Position `json:"work_history"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

var ErrProfileNotFound = errors.New("user profile not found")

type Repository interface {
	Get(ctx context.Context) (*UserProfile, error)
	Upsert(ctx context.Context, p *UserProfile) error
}

// CurrentPosition returns the first position without an end date. Exports are
// assumed reverse-chronological, so input order breaks ties rather than date
// comparison (export dates are free text).
func CurrentPosition(positions []Position) (Position, bool) {
	for _, pos := range positions {
		if pos.Current() {
			return pos, true
		}
	}
	return Position{}, false
}

// Merge combines an existing profile with an incoming fragment: non-empty
// incoming fields win, empty incoming fields preserve the existing value.
func Merge(existing, incoming *UserProfile) *UserProfile {
	if existing == nil {
		return incoming
	}
	if incoming == nil {
		return existing
	}

	merged := *existing
	if incoming.FirstName != "" {
		merged.FirstName = incoming.FirstName
	}
	if incoming.LastName != "" {
		merged.LastName = incoming.LastName
	}
	if incoming.Headline != "" {
		merged.Headline = incoming.Headline
	}
	if incoming.Summary != "" {
		merged.Summary = incoming.Summary
	}
	if incoming.CurrentCompany != "" {
		merged.CurrentCompany = incoming.CurrentCompany
	}
	if incoming.CurrentRole != "" {
		merged.CurrentRole = incoming.CurrentRole
	}
	if len(incoming.Industries) > 0 {
		merged.Industries = incoming.Industries
	}
	if len(incoming.Skills) > 0 {
		merged.Skills = incoming.Skills
	}
	if len(incoming.WorkHistory) > 0 {
		merged.WorkHistory = incoming.WorkHistory
	}
	return &merged
}
