package search

import (
	"context"

	"github.com/khoahotran/devboard/internal/domain/profile"
	"github.com/khoahotran/devboard/internal/domain/project"
)

// Results is the aggregate answer of a global search. All three slices
// are always present, empty when nothing matched.
type Results struct {
	Profiles []profile.Profile `json:"profiles"`
	Projects []project.Project `json:"projects"`
	Skills   []profile.Skill   `json:"skills"`
}

// Repository runs one case-insensitive containment query per category.
type Repository interface {
	Profiles(ctx context.Context, q string) ([]profile.Profile, error)
	Projects(ctx context.Context, q string) ([]project.Project, error)
	Skills(ctx context.Context, q string) ([]profile.Skill, error)
}
