package nudge

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/network-os/internal/domain/contact"
	"github.com/khoahotran/network-os/internal/domain/nudge"
	"github.com/khoahotran/network-os/pkg/logger"
)

// GenerateDecayNudgesUseCase runs in the worker after each import: it
// recomputes warmth for every contact and raises a pending decay nudge for
// the ones that went cold, skipping contacts that already have one.
type GenerateDecayNudgesUseCase struct {
	contactRepo contact.Repository
	nudgeRepo   nudge.Repository
	logger      logger.Logger
}

func NewGenerateDecayNudgesUseCase(contactRepo contact.Repository, nudgeRepo nudge.Repository, log logger.Logger) *GenerateDecayNudgesUseCase {
	return &GenerateDecayNudgesUseCase{
		contactRepo: contactRepo,
		nudgeRepo:   nudgeRepo,
		logger:      log,
	}
}

type GenerateDecayNudgesOutput struct {
	NudgesCreated int
}

func (uc *GenerateDecayNudgesUseCase) Execute(ctx context.Context) (*GenerateDecayNudgesOutput, error) {
	contacts, err := uc.contactRepo.List(ctx, contact.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("generate decay nudges failed: %w", err)
	}

	now := time.Now().UTC()
	output := &GenerateDecayNudgesOutput{}

	for _, c := range contacts {
		score := c.CurrentWarmth(now)
		if contact.WarmthStatus(score) != contact.StatusCold {
			continue
		}

		hasPending, err := uc.nudgeRepo.HasPending(ctx, c.ID, nudge.TypeDecay)
		if err != nil {
			uc.logger.Warn("Failed to check pending decay nudge", zap.String("contact_id", c.ID.String()), zap.Error(err))
			continue
		}
		if hasPending {
			continue
		}

		n := &nudge.Nudge{
			ContactID: c.ID,
			Type:      nudge.TypeDecay,
			Message:   fmt.Sprintf("Your connection with %s is going cold. Time to reach out?", c.Name),
			Priority:  nudge.PriorityMedium,
			Status:    nudge.StatusPending,
		}
		if err := uc.nudgeRepo.Create(ctx, n); err != nil {
			uc.logger.Warn("Failed to create decay nudge", zap.String("contact_id", c.ID.String()), zap.Error(err))
			continue
		}
		output.NudgesCreated++
	}

	return output, nil
}
