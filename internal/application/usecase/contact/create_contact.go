package contact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/network-os/adapters/event"
	"github.com/khoahotran/network-os/internal/domain/contact"
	"github.com/khoahotran/network-os/pkg/apperror"
	"github.com/khoahotran/network-os/pkg/logger"
)

// EventPublisher lets the contact usecases announce lifecycle changes.
type EventPublisher interface {
	PublishContactCreated(ctx context.Context, payload event.ContactEventPayload) error
}

type CreateContactUseCase struct {
	contactRepo contact.Repository
	events      EventPublisher
	logger      logger.Logger
}

func NewCreateContactUseCase(repo contact.Repository, events EventPublisher, log logger.Logger) *CreateContactUseCase {
	return &CreateContactUseCase{contactRepo: repo, events: events, logger: log}
}

type CreateContactInput struct {
	Name            string
	Role            string
	Company         string
	Location        string
	Email           *string
	PriorityScore   int
	LastInteraction *time.Time
	NextFollowUp    *time.Time
	Tags            []string
	Notes           string
	Category        *string
	Industry        *string
	Interests       []string
	Expertise       []string
}

type CreateContactOutput struct {
	Contact *contact.Contact
}

func (uc *CreateContactUseCase) Execute(ctx context.Context, input CreateContactInput) (*CreateContactOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewInvalidInput("contact name is required", nil)
	}

	c := &contact.Contact{
		Name:            strings.TrimSpace(input.Name),
		Role:            orUnknown(input.Role),
		Company:         orUnknown(input.Company),
		Location:        orUnknown(input.Location),
		Email:           input.Email,
		PriorityScore:   input.PriorityScore,
		LastInteraction: input.LastInteraction,
		NextFollowUp:    input.NextFollowUp,
		Tags:            contact.MergeTags(input.Tags, nil),
		Notes:           input.Notes,
		Category:        input.Category,
		Industry:        input.Industry,
		Interests:       input.Interests,
		Expertise:       input.Expertise,
	}
	c.WarmthScore = c.CurrentWarmth(time.Now().UTC())

	if err := uc.contactRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create contact failed: %w", err)
	}

	if uc.events != nil {
		payload := event.ContactEventPayload{ContactID: c.ID.String(), Name: c.Name}
		if err := uc.events.PublishContactCreated(ctx, payload); err != nil {
			uc.logger.Warn("Failed to publish contact created event", zap.Error(err))
		}
	}

	return &CreateContactOutput{Contact: c}, nil
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}
