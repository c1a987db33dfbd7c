package project

import (
	"context"
	"fmt"

	"github.com/khoahotran/devboard/internal/domain/project"
)

type ListBySkillUseCase struct {
	projectRepo project.Repository
}

func NewListBySkillUseCase(repo project.Repository) *ListBySkillUseCase {
	return &ListBySkillUseCase{
		projectRepo: repo,
	}
}

type ListBySkillInput struct {
	Skill string
}

type ListBySkillOutput struct {
	Projects []project.Project
}

func (uc *ListBySkillUseCase) Execute(ctx context.Context, input ListBySkillInput) (*ListBySkillOutput, error) {
	projects, err := uc.projectRepo.ListBySkill(ctx, input.Skill)
	if err != nil {
		return nil, fmt.Errorf("list projects by skill failed: %w", err)
	}
	return &ListBySkillOutput{Projects: projects}, nil
}
