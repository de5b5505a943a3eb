package contact

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/khoahotran/network-os/internal/domain/contact"
)

type DeleteContactUseCase struct {
	contactRepo contact.Repository
}

func NewDeleteContactUseCase(repo contact.Repository) *DeleteContactUseCase {
	return &DeleteContactUseCase{contactRepo: repo}
}

type DeleteContactInput struct {
	ID uuid.UUID
}

func (uc *DeleteContactUseCase) Execute(ctx context.Context, input DeleteContactInput) error {
	if err := uc.contactRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("delete contact failed: %w", err)
	}
	return nil
}
