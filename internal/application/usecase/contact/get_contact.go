package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/network-os/internal/domain/contact"
)

type GetContactUseCase struct {
	contactRepo contact.Repository
}

func NewGetContactUseCase(repo contact.Repository) *GetContactUseCase {
	return &GetContactUseCase{contactRepo: repo}
}

type GetContactInput struct {
	ID uuid.UUID
}

type GetContactOutput struct {
	Contact      *contact.Contact
	WarmthStatus string
}

// Execute fetches a contact with its warmth recomputed as of now. The stored
// score is a snapshot; freshness always comes from the engine.
func (uc *GetContactUseCase) Execute(ctx context.Context, input GetContactInput) (*GetContactOutput, error) {
	c, err := uc.contactRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get contact failed: %w", err)
	}

	c.WarmthScore = c.CurrentWarmth(time.Now().UTC())
	return &GetContactOutput{
		Contact:      c,
		WarmthStatus: contact.WarmthStatus(c.WarmthScore),
	}, nil
}
