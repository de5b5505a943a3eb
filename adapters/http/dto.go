package http

import (
	"time"

	"github.com/khoahotran/network-os/internal/domain/contact"
	"github.com/khoahotran/network-os/internal/domain/nudge"
	"github.com/khoahotran/network-os/internal/domain/profile"
)

// Contact DTOs

type ContactDTO struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Role              string     `json:"role"`
	Company           string     `json:"company"`
	Location          string     `json:"location"`
	Email             *string    `json:"email"`
	Avatar            *string    `json:"avatar"`
	WarmthScore       int        `json:"warmth_score"`
	WarmthStatus      string     `json:"warmth_status"`
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

func ToContactDTO(c *contact.Contact, warmthStatus string) ContactDTO {
	return ContactDTO{
		ID:                c.ID.String(),
		Name:              c.Name,
		Role:              c.Role,
		Company:           c.Company,
		Location:          c.Location,
		Email:             c.Email,
		Avatar:            c.Avatar,
		WarmthScore:       c.WarmthScore,
		WarmthStatus:      warmthStatus,
		PriorityScore:     c.PriorityScore,
		LastInteraction:   c.LastInteraction,
		NextFollowUp:      c.NextFollowUp,
		Tags:              c.Tags,
		Notes:             c.Notes,
		Category:          c.Category,
		Industry:          c.Industry,
		Interests:         c.Interests,
		Expertise:         c.Expertise,
		MutualConnections: c.MutualConnections,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

type CreateContactRequest struct {
	Name            string     `json:"name" binding:"required"`
	Role            string     `json:"role"`
	Company         string     `json:"company"`
	Location        string     `json:"location"`
	Email           *string    `json:"email"`
	PriorityScore   int        `json:"priority_score"`
	LastInteraction *time.Time `json:"last_interaction"`
	NextFollowUp    *time.Time `json:"next_follow_up"`
	Tags            []string   `json:"tags"`
	Notes           string     `json:"notes"`
	Category        *string    `json:"category"`
	Industry        *string    `json:"industry"`
	Interests       []string   `json:"interests"`
	Expertise       []string   `json:"expertise"`
}

type UpdateContactRequest struct {
	Name            *string    `json:"name"`
	Role            *string    `json:"role"`
	Company         *string    `json:"company"`
	Location        *string    `json:"location"`
	Email           *string    `json:"email"`
	PriorityScore   *int       `json:"priority_score"`
	LastInteraction *time.Time `json:"last_interaction"`
	NextFollowUp    *time.Time `json:"next_follow_up"`
	Tags            []string   `json:"tags"`
	Notes           *string    `json:"notes"`
	Category        *string    `json:"category"`
	Industry        *string    `json:"industry"`
	Interests       []string   `json:"interests"`
	Expertise       []string   `json:"expertise"`
}

// Profile DTOs

type PositionDTO struct {
	Company   string `json:"company"`
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ProfileDTO struct {
	FirstName      string        `json:"first_name"`
	LastName       string        `json:"last_name"`
	Headline       string        `json:"headline"`
	Summary        string        `json:"summary"`
	CurrentCompany string        `json:"current_company"`
	CurrentRole    string        `json:"current_role"`
	Industries     []string      `json:"industries"`
	Skills         []string      `json:"skills"`
	WorkHistory    []PositionDTO `json:"work_history"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func ToProfileDTO(p *profile.UserProfile) ProfileDTO {
	dto := ProfileDTO{
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Headline:       p.Headline,
		Summary:        p.Summary,
		CurrentCompany: p.CurrentCompany,
		CurrentRole:    p.CurrentRole,
		Industries:     p.Industries,
		Skills:         p.Skills,
		UpdatedAt:      p.UpdatedAt,
	}
	dto.WorkHistory = make([]PositionDTO, len(p.WorkHistory))
	for i, pos := range p.WorkHistory {
		dto.WorkHistory[i] = PositionDTO{
			Company:   pos.Company,
			Title:     pos.Title,
			StartDate: pos.StartDate,
			EndDate:   pos.EndDate,
		}
	}
	return dto
}

type UpdateProfileRequest struct {
	FirstName      string        `json:"first_name"`
	LastName       string        `json:"last_name"`
	Headline       string        `json:"headline"`
	Summary        string        `json:"summary"`
	CurrentCompany string        `json:"current_company"`
	CurrentRole    string        `json:"current_role"`
	Industries     []string      `json:"industries"`
	Skills         []string      `json:"skills"`
	WorkHistory    []PositionDTO `json:"work_history"`
}

func (req *UpdateProfileRequest) ToDomainProfile() *profile.UserProfile {
	p := &profile.UserProfile{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Headline:       req.Headline,
		Summary:        req.Summary,
		CurrentCompany: req.CurrentCompany,
		CurrentRole:    req.CurrentRole,
		Industries:     req.Industries,
		Skills:         req.Skills,
	}
	for _, pos := range req.WorkHistory {
		p.WorkHistory = append(p.WorkHistory, profile.Position{
			Company:   pos.Company,
			Title:     pos.Title,
			StartDate: pos.StartDate,
			EndDate:   pos.EndDate,
		})
	}
	return p
}

// Nudge DTOs

type NudgeDTO struct {
	ID        string    `json:"id"`
	ContactID string    `json:"contact_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Priority  string    `json:"priority"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
}

func ToNudgeDTO(n *nudge.Nudge) NudgeDTO {
	return NudgeDTO{
		ID:        n.ID.String(),
		ContactID: n.ContactID.String(),
		Type:      n.Type,
		Message:   n.Message,
		Priority:  n.Priority,
		Date:      n.Date,
		Status:    n.Status,
	}
}

type CreateNudgeRequest struct {
	ContactID string `json:"contact_id" binding:"required,uuid"`
	Type      string `json:"type" binding:"required,oneof=decay milestone location intro"`
	Message   string `json:"message" binding:"required"`
	Priority  string `json:"priority" binding:"required,oneof=high medium low"`
}

type UpdateNudgeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending dismissed completed"`
}
