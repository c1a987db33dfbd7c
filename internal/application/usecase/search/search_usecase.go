package search

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/khoahotran/devboard/internal/domain/profile"
	"github.com/khoahotran/devboard/internal/domain/project"
	"github.com/khoahotran/devboard/internal/domain/search"
	"github.com/khoahotran/devboard/pkg/logger"
)

type SearchUseCase struct {
	searchRepo search.Repository
	logger     logger.Logger
}

func NewSearchUseCase(sr search.Repository, log logger.Logger) *SearchUseCase {
	return &SearchUseCase{
		searchRepo: sr,
		logger:     log,
	}
}

type SearchInput struct {
	Query string
}

type SearchOutput struct {
	Results search.Results
}

// Execute fans the query out to the three categories at once. A failed
// category is logged and answered with an empty slice; it never fails the
// whole search.
func (uc *SearchUseCase) Execute(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	out := &SearchOutput{
		Results: search.Results{
			Profiles: []profile.Profile{},
			Projects: []project.Project{},
			Skills:   []profile.Skill{},
		},
	}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		profiles, err := uc.searchRepo.Profiles(ctx, input.Query)
		if err != nil {
			uc.logger.Warn("profile search failed", zap.String("query", input.Query), zap.Error(err))
			return
		}
		out.Results.Profiles = profiles
	}()

	go func() {
		defer wg.Done()
		projects, err := uc.searchRepo.Projects(ctx, input.Query)
		if err != nil {
			uc.logger.Warn("project search failed", zap.String("query", input.Query), zap.Error(err))
			return
		}
		out.Results.Projects = projects
	}()

	go func() {
		defer wg.Done()
		skills, err := uc.searchRepo.Skills(ctx, input.Query)
		if err != nil {
			uc.logger.Warn("skill search failed", zap.String("query", input.Query), zap.Error(err))
			return
		}
		out.Results.Skills = skills
	}()

	wg.Wait()
	return out, nil
}
