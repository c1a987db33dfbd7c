package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	profileUC "github.com/khoahotran/devboard/internal/application/usecase/profile"
	projectUC "github.com/khoahotran/devboard/internal/application/usecase/project"
	searchUC "github.com/khoahotran/devboard/internal/application/usecase/search"
	"github.com/khoahotran/devboard/internal/config"
	"github.com/khoahotran/devboard/internal/domain/profile"
	"github.com/khoahotran/devboard/internal/domain/project"
	"github.com/khoahotran/devboard/pkg/apperror"
	"github.com/khoahotran/devboard/pkg/logger"
)

// fakeStore is an in-memory stand-in for the database. It implements the
// same containment matching the SQL layer does, so handler tests exercise
// the full contract without Postgres.
type fakeStore struct {
	profiles []*profile.Profile

	failProfileSearch bool
	failProjectSearch bool
	failSkillSearch   bool

	gatewayCalls int
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

type fakeProfileRepo struct{ store *fakeStore }

func (r *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	r.store.gatewayCalls++
	for _, p := range r.store.profiles {
		if p.Email == email {
			cp := *p
			if cp.Skills == nil {
				cp.Skills = []profile.Skill{}
			}
			if cp.Projects == nil {
				cp.Projects = []profile.Project{}
			}
			if cp.Work == nil {
				cp.Work = []profile.Work{}
			}
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("profile", email)
}

func (r *fakeProfileRepo) Create(ctx context.Context, p *profile.Profile) error {
	r.store.gatewayCalls++
	for _, existing := range r.store.profiles {
		if existing.Email == p.Email {
			return apperror.NewConflict("profile", "email", p.Email)
		}
	}
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.store.profiles = append(r.store.profiles, &cp)
	return nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, email, name, education string) (*profile.Profile, error) {
	r.store.gatewayCalls++
	for _, p := range r.store.profiles {
		if p.Email == email {
			p.Name = name
			p.Education = education
			p.UpdatedAt = time.Now().UTC()
			cp := *p
			cp.Skills, cp.Projects, cp.Work, cp.Links = nil, nil, nil, nil
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("profile", email)
}

type fakeProjectRepo struct{ store *fakeStore }

func (r *fakeProjectRepo) ListBySkill(ctx context.Context, skill string) ([]project.Project, error) {
	r.store.gatewayCalls++
	projects := make([]project.Project, 0)
	for _, p := range r.store.profiles {
		matched := false
		for _, s := range p.Skills {
			if containsFold(s.SkillName, skill) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, pr := range p.Projects {
			projects = append(projects, project.Project{
				ID:          pr.ID,
				ProfileID:   pr.ProfileID,
				Title:       pr.Title,
				Description: pr.Description,
			})
		}
	}
	return projects, nil
}

type fakeSearchRepo struct{ store *fakeStore }

func (r *fakeSearchRepo) Profiles(ctx context.Context, q string) ([]profile.Profile, error) {
	r.store.gatewayCalls++
	if r.store.failProfileSearch {
		return nil, apperror.NewInternal("profile search query failed", errors.New("connection reset"))
	}
	results := make([]profile.Profile, 0)
	for _, p := range r.store.profiles {
		if containsFold(p.Name, q) {
			cp := *p
			cp.Skills, cp.Projects, cp.Work, cp.Links = []profile.Skill{}, []profile.Project{}, []profile.Work{}, nil
			results = append(results, cp)
		}
	}
	return results, nil
}

func (r *fakeSearchRepo) Projects(ctx context.Context, q string) ([]project.Project, error) {
	r.store.gatewayCalls++
	if r.store.failProjectSearch {
		return nil, apperror.NewInternal("project search query failed", errors.New("connection reset"))
	}
	results := make([]project.Project, 0)
	for _, p := range r.store.profiles {
		for _, pr := range p.Projects {
			if containsFold(pr.Title, q) {
				results = append(results, project.Project{
					ID:          pr.ID,
					ProfileID:   pr.ProfileID,
					Title:       pr.Title,
					Description: pr.Description,
				})
			}
		}
	}
	return results, nil
}

func (r *fakeSearchRepo) Skills(ctx context.Context, q string) ([]profile.Skill, error) {
	r.store.gatewayCalls++
	if r.store.failSkillSearch {
		return nil, apperror.NewInternal("skill search query failed", errors.New("connection reset"))
	}
	results := make([]profile.Skill, 0)
	for _, p := range r.store.profiles {
		for _, s := range p.Skills {
			if containsFold(s.SkillName, q) {
				results = append(results, s)
			}
		}
	}
	return results, nil
}

func seedProfile(store *fakeStore, name, email, education string, skills []string, projectTitles []string) *profile.Profile {
	p := &profile.Profile{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		Education: education,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	for _, s := range skills {
		p.Skills = append(p.Skills, profile.Skill{ID: uuid.New(), ProfileID: p.ID, SkillName: s})
	}
	for _, t := range projectTitles {
		p.Projects = append(p.Projects, profile.Project{ID: uuid.New(), ProfileID: p.ID, Title: t})
	}
	store.profiles = append(store.profiles, p)
	return p
}

func newTestRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()

	var cfg config.Config
	cfg.CORS.AllowedOrigins = []string{"*"}

	profileHandler := NewProfileHandler(profileUC.NewProfileUseCase(&fakeProfileRepo{store}), log)
	projectHandler := NewProjectHandler(projectUC.NewListBySkillUseCase(&fakeProjectRepo{store}), log)
	searchHandler := NewSearchHandler(searchUC.NewSearchUseCase(&fakeSearchRepo{store}, log), log)

	return NewRouter(cfg, log, profileHandler, projectHandler, searchHandler, nil)
}

func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
