package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/khoahotran/devboard/internal/domain/profile"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
}

func NewProfileUseCase(repo profile.Repository) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
	}
}

type GetProfileInput struct {
	Email string
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGet(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	return &GetProfileOutput{Profile: p}, nil
}

type CreateProfileInput struct {
	Name      string
	Email     string
	Education string
}

type CreateProfileOutput struct {
	Profile *profile.Profile
}

// ExecuteCreate inserts the profile as given. Duplicate emails are not
// checked here; the unique index rejects them and the error goes back to
// the caller.
func (uc *ProfileUseCase) ExecuteCreate(ctx context.Context, input CreateProfileInput) (*CreateProfileOutput, error) {
	p := &profile.Profile{
		ID:        uuid.New(),
		Email:     input.Email,
		Name:      input.Name,
		Education: input.Education,
	}

	if err := uc.profileRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create profile failed: %w", err)
	}
	return &CreateProfileOutput{Profile: p}, nil
}

type UpdateProfileInput struct {
	Email     string
	Name      string
	Education string
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteUpdate(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	p, err := uc.profileRepo.Update(ctx, input.Email, input.Name, input.Education)
	if err != nil {
		return nil, fmt.Errorf("update profile failed: %w", err)
	}
	return &UpdateProfileOutput{Profile: p}, nil
}
