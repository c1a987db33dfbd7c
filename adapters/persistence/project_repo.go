package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/devboard/internal/domain/project"
	"github.com/khoahotran/devboard/pkg/apperror"
	"github.com/khoahotran/devboard/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

func (r *postgresProjectRepo) ListBySkill(ctx context.Context, skill string) ([]project.Project, error) {
	query, args, err := psql.
		Select("p.id", "p.profile_id", "p.title", "p.description").
		Distinct().
		From("projects p").
		Join("skills s ON s.profile_id = p.profile_id").
		Where(sq.ILike{"s.skill_name": "%" + skill + "%"}).
		OrderBy("p.title").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build projects-by-skill query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects by skill", err)
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
