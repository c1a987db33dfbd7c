package project

import (
	"context"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

type Repository interface {
	// ListBySkill returns every project whose owning profile has at least
	// one skill whose name contains the given text, case-insensitively.
	ListBySkill(ctx context.Context, skill string) ([]Project, error)
}
