package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/network-os/internal/domain/contact"
)

type UpdateContactUseCase struct {
	contactRepo contact.Repository
}

func NewUpdateContactUseCase(repo contact.Repository) *UpdateContactUseCase {
	return &UpdateContactUseCase{contactRepo: repo}
}

// UpdateContactInput carries partial updates; nil fields keep the stored value.
type UpdateContactInput struct {
	ID              uuid.UUID
	Name            *string
	Role            *string
	Company         *string
	Location        *string
	Email           *string
	PriorityScore   *int
	LastInteraction *time.Time
	NextFollowUp    *time.Time
	Tags            []string
	Notes           *string
	Category        *string
	Industry        *string
	Interests       []string
	Expertise       []string
}

type UpdateContactOutput struct {
	Contact      *contact.Contact
	WarmthStatus string
}

func (uc *UpdateContactUseCase) Execute(ctx context.Context, input UpdateContactInput) (*UpdateContactOutput, error) {
	c, err := uc.contactRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("update contact failed: %w", err)
	}

	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Role != nil {
		c.Role = *input.Role
	}
	if input.Company != nil {
		c.Company = *input.Company
	}
	if input.Location != nil {
		c.Location = *input.Location
	}
	if input.Email != nil {
		c.Email = input.Email
	}
	if input.PriorityScore != nil {
		c.PriorityScore = *input.PriorityScore
	}
	if input.LastInteraction != nil {
		c.LastInteraction = input.LastInteraction
	}
	if input.NextFollowUp != nil {
		c.NextFollowUp = input.NextFollowUp
	}
	if input.Tags != nil {
		c.Tags = contact.MergeTags(input.Tags, nil)
	}
	if input.Notes != nil {
		c.Notes = *input.Notes
	}
	if input.Category != nil {
		c.Category = input.Category
	}
	if input.Industry != nil {
		c.Industry = input.Industry
	}
	if input.Interests != nil {
		c.Interests = input.Interests
	}
	if input.Expertise != nil {
		c.Expertise = input.Expertise
	}

	c.WarmthScore = c.CurrentWarmth(time.Now().UTC())

	if err := uc.contactRepo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update contact failed: %w", err)
	}

	return &UpdateContactOutput{
		Contact:      c,
		WarmthStatus: contact.WarmthStatus(c.WarmthScore),
	}, nil
}
