package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/devboard/internal/domain/profile"
	"github.com/khoahotran/devboard/internal/domain/project"
	"github.com/khoahotran/devboard/pkg/logger"
)

type stubSearchRepo struct {
	profiles    []profile.Profile
	projects    []project.Project
	skills      []profile.Skill
	profilesErr error
	projectsErr error
	skillsErr   error
}

func (r *stubSearchRepo) Profiles(ctx context.Context, q string) ([]profile.Profile, error) {
	return r.profiles, r.profilesErr
}

func (r *stubSearchRepo) Projects(ctx context.Context, q string) ([]project.Project, error) {
	return r.projects, r.projectsErr
}

func (r *stubSearchRepo) Skills(ctx context.Context, q string) ([]profile.Skill, error) {
	return r.skills, r.skillsErr
}

func TestSearchUseCase_AggregatesAllCategories(t *testing.T) {
	repo := &stubSearchRepo{
		profiles: []profile.Profile{{Name: "Alice"}},
		projects: []project.Project{{Title: "Router"}},
		skills:   []profile.Skill{{SkillName: "Go"}},
	}
	uc := NewSearchUseCase(repo, logger.NewNop())

	out, err := uc.Execute(context.Background(), SearchInput{Query: "x"})
	require.NoError(t, err)

	assert.Len(t, out.Results.Profiles, 1)
	assert.Len(t, out.Results.Projects, 1)
	assert.Len(t, out.Results.Skills, 1)
}

func TestSearchUseCase_FailedCategoryBecomesEmptySlice(t *testing.T) {
	repo := &stubSearchRepo{
		profiles:    []profile.Profile{{Name: "Alice"}},
		projectsErr: errors.New("connection reset"),
		skills:      []profile.Skill{{SkillName: "Go"}},
	}
	uc := NewSearchUseCase(repo, logger.NewNop())

	out, err := uc.Execute(context.Background(), SearchInput{Query: "x"})
	require.NoError(t, err)

	assert.Len(t, out.Results.Profiles, 1)
	assert.NotNil(t, out.Results.Projects)
	assert.Empty(t, out.Results.Projects)
	assert.Len(t, out.Results.Skills, 1)
}

func TestSearchUseCase_AllCategoriesFailing_StillSucceeds(t *testing.T) {
	repo := &stubSearchRepo{
		profilesErr: errors.New("boom"),
		projectsErr: errors.New("boom"),
		skillsErr:   errors.New("boom"),
	}
	uc := NewSearchUseCase(repo, logger.NewNop())

	out, err := uc.Execute(context.Background(), SearchInput{Query: "x"})
	require.NoError(t, err)

	assert.Empty(t, out.Results.Profiles)
	assert.Empty(t, out.Results.Projects)
	assert.Empty(t, out.Results.Skills)
}
