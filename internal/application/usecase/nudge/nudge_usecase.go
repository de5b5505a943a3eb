package nudge

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/khoahotran/network-os/internal/domain/nudge"
	"github.com/khoahotran/network-os/pkg/apperror"
)

type NudgeUseCase struct {
	nudgeRepo nudge.Repository
}

func NewNudgeUseCase(repo nudge.Repository) *NudgeUseCase {
	return &NudgeUseCase{nudgeRepo: repo}
}

func (uc *NudgeUseCase) ExecuteList(ctx context.Context) ([]*nudge.Nudge, error) {
	nudges, err := uc.nudgeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list nudges failed: %w", err)
	}
	return nudges, nil
}

type CreateNudgeInput struct {
	ContactID uuid.UUID
	Type      string
	Message   string
	Priority  string
}

func (uc *NudgeUseCase) ExecuteCreate(ctx context.Context, input CreateNudgeInput) (*nudge.Nudge, error) {
	n := &nudge.Nudge{
		ContactID: input.ContactID,
		Type:      input.Type,
		Message:   input.Message,
		Priority:  input.Priority,
		Status:    nudge.StatusPending,
	}
	if err := uc.nudgeRepo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create nudge failed: %w", err)
	}
	return n, nil
}

type UpdateNudgeStatusInput struct {
	ID     uuid.UUID
	Status string
}

func (uc *NudgeUseCase) ExecuteUpdateStatus(ctx context.Context, input UpdateNudgeStatusInput) (*nudge.Nudge, error) {
	if !nudge.ValidStatus(input.Status) {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("status %q is not valid", input.Status), nudge.ErrInvalidStatus)
	}

	n, err := uc.nudgeRepo.UpdateStatus(ctx, input.ID, input.Status)
	if err != nil {
		return nil, fmt.Errorf("update nudge status failed: %w", err)
	}
	return n, nil
}
