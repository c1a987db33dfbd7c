package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/devboard/internal/domain/profile"
	"github.com/khoahotran/devboard/internal/domain/project"
	"github.com/khoahotran/devboard/internal/domain/search"
	"github.com/khoahotran/devboard/pkg/apperror"
	"github.com/khoahotran/devboard/pkg/logger"
)

type postgresSearchRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSearchRepo(db *pgxpool.Pool, logger logger.Logger) search.Repository {
	return &postgresSearchRepo{db: db, logger: logger}
}

func (r *postgresSearchRepo) Profiles(ctx context.Context, q string) ([]profile.Profile, error) {
	query, args, err := psql.
		Select("id", "email", "name", "education", "created_at", "updated_at").
		From("profiles").
		Where(sq.ILike{"name": "%" + q + "%"}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build profile search query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to search profiles", err)
	}
	defer rows.Close()

	profiles := make([]profile.Profile, 0)
	for rows.Next() {
		p := profile.Profile{
			Skills:   []profile.Skill{},
			Projects: []profile.Project{},
			Work:     []profile.Work{},
		}
		if err := rows.Scan(&p.ID, &p.Email, &p.Name, &p.Education, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, apperror.NewInternal("failed to scan profile row", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating profile rows", err)
	}
	return profiles, nil
}

func (r *postgresSearchRepo) Projects(ctx context.Context, q string) ([]project.Project, error) {
	query, args, err := psql.
		Select("id", "profile_id", "title", "description").
		From("projects").
		Where(sq.ILike{"title": "%" + q + "%"}).
		OrderBy("title").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build project search query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to search projects", err)
	}
	defer rows.Close()

	projects := make([]project.Project, 0)
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(&p.ID, &p.ProfileID, &p.Title, &p.Description); err != nil {
			return nil, apperror.NewInternal("failed to scan project row", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresSearchRepo) Skills(ctx context.Context, q string) ([]profile.Skill, error) {
	query, args, err := psql.
		Select("id", "profile_id", "skill_name", "level").
		From("skills").
		Where(sq.ILike{"skill_name": "%" + q + "%"}).
		OrderBy("skill_name").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build skill search query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to search skills", err)
	}
	defer rows.Close()

	skills := make([]profile.Skill, 0)
	for rows.Next() {
		var s profile.Skill
		if err := rows.Scan(&s.ID, &s.ProfileID, &s.SkillName, &s.Level); err != nil {
			return nil, apperror.NewInternal("failed to scan skill row", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill rows", err)
	}
	return skills, nil
}
