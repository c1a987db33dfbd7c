package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/devboard/internal/domain/profile"
	"github.com/khoahotran/devboard/pkg/apperror"
	"github.com/khoahotran/devboard/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	query, args, err := psql.
		Select("id", "email", "name", "education", "created_at", "updated_at").
		From("profiles").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build profile query", err)
	}

	p := &profile.Profile{}
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.Email, &p.Name, &p.Education, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", email)
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}

	if p.Skills, err = r.loadSkills(ctx, p); err != nil {
		return nil, err
	}
	if p.Projects, err = r.loadProjects(ctx, p); err != nil {
		return nil, err
	}
	if p.Work, err = r.loadWork(ctx, p); err != nil {
		return nil, err
	}
	if p.Links, err = r.loadLinks(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (r *postgresProfileRepo) Create(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (id, email, name, education)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, p.ID, p.Email, p.Name, p.Education).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewConflict("profile", "email", p.Email)
		}
		return apperror.NewInternal("failed to create profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) Update(ctx context.Context, email, name, education string) (*profile.Profile, error) {
	query := `
		UPDATE profiles
		SET name = $2, education = $3, updated_at = NOW()
		WHERE email = $1
		RETURNING id, email, name, education, created_at, updated_at
	`
	p := &profile.Profile{}
	err := r.db.QueryRow(ctx, query, email, name, education).Scan(
		&p.ID, &p.Email, &p.Name, &p.Education, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", email)
		}
		return nil, apperror.NewInternal("failed to update profile", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) loadSkills(ctx context.Context, p *profile.Profile) ([]profile.Skill, error) {
	query, args, err := psql.
		Select("id", "profile_id", "skill_name", "level").
		From("skills").
		Where(sq.Eq{"profile_id": p.ID}).
		OrderBy("skill_name").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build skills query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills", err)
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

func (r *postgresProfileRepo) loadProjects(ctx context.Context, p *profile.Profile) ([]profile.Project, error) {
	query, args, err := psql.
		Select("id", "profile_id", "title", "description").
		From("projects").
		Where(sq.Eq{"profile_id": p.ID}).
		OrderBy("title").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build projects query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}
	defer rows.Close()

	projects := make([]profile.Project, 0)
	for rows.Next() {
		var pr profile.Project
		if err := rows.Scan(&pr.ID, &pr.ProfileID, &pr.Title, &pr.Description); err != nil {
			return nil, apperror.NewInternal("failed to scan project row", err)
		}
		projects = append(projects, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProfileRepo) loadWork(ctx context.Context, p *profile.Profile) ([]profile.Work, error) {
	query, args, err := psql.
		Select("id", "profile_id", "company", "position").
		From("work").
		Where(sq.Eq{"profile_id": p.ID}).
		OrderBy("company").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build work query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query work", err)
	}
	defer rows.Close()

	work := make([]profile.Work, 0)
	for rows.Next() {
		var w profile.Work
		if err := rows.Scan(&w.ID, &w.ProfileID, &w.Company, &w.Position); err != nil {
			return nil, apperror.NewInternal("failed to scan work row", err)
		}
		work = append(work, w)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating work rows", err)
	}
	return work, nil
}

func (r *postgresProfileRepo) loadLinks(ctx context.Context, p *profile.Profile) (*profile.Links, error) {
	query, args, err := psql.
		Select("profile_id", "github", "linkedin", "portfolio").
		From("links").
		Where(sq.Eq{"profile_id": p.ID}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build links query", err)
	}

	l := &profile.Links{}
	err = r.db.QueryRow(ctx, query, args...).Scan(&l.ProfileID, &l.GitHub, &l.LinkedIn, &l.Portfolio)
	if err != nil {
		// links are one-to-zero-or-one
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to query links", err)
	}
	return l, nil
}
