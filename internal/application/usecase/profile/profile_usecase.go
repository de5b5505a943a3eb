package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/khoahotran/network-os/internal/domain/profile"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
}

func NewProfileUseCase(repo profile.Repository) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: repo}
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context) (*profile.UserProfile, error) {
	p, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	return p, nil
}

type UpdateProfileInput struct {
	Profile *profile.UserProfile
}

// ExecuteUpdateProfile merges the incoming fragment into the stored profile:
// non-empty incoming fields win, empty ones preserve what exists.
func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*profile.UserProfile, error) {
	existing, err := uc.profileRepo.Get(ctx)
	if err != nil && !errors.Is(err, profile.ErrProfileNotFound) {
		return nil, fmt.Errorf("update profile failed: %w", err)
	}

	merged := profile.Merge(existing, input.Profile)
	if err := uc.profileRepo.Upsert(ctx, merged); err != nil {
		return nil, fmt.Errorf("update profile failed: %w", err)
	}
	return merged, nil
}
