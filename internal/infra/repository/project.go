package repository

import (
	"context"
	"log/slog"

	"pro-video-services/internal/domain/client"
	"pro-video-services/internal/infra"
	"pro-video-services/internal/infra/db"
	"pro-video-services/internal/infra/repository/converter"
	"pro-video-services/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const projectColumns = `id, client_id, title, description, requirements, budget, deadline,
	video_specs, status, videos, created_at`

type ProjectRepository struct {
	db     db.Pool
	logger *slog.Logger
}

func NewProjectRepository(pool db.Pool, logger *slog.Logger) *ProjectRepository {
	return &ProjectRepository{db: pool, logger: logger}
}

func (r *ProjectRepository) Append(ctx context.Context, p *client.Project) error {
	row, err := converter.ProjectToRow(p)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode project", err)
	}
	if _, err := r.db.Exec(ctx, `
		INSERT INTO projects (`+projectColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		row.ID, row.ClientID, row.Title, row.Description, row.Requirements, row.Budget, row.Deadline,
		row.VideoSpecs, row.Status, row.Videos, row.CreatedAt,
	); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.NewRepoErr(infra.KindDuplicateKey, "project already exists")
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert project", err)
	}
	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Project, error) {
	p, err := scanProject(r.db.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, pgconv.UUIDToPgtype(id)))
	return p, r.findErr(err)
}

func (r *ProjectRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*client.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE client_id = $1 ORDER BY seq`, pgconv.UUIDToPgtype(clientID))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list projects", err)
	}
	defer rows.Close()

	var out []*client.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan project", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate projects", err)
	}
	return out, nil
}

func (r *ProjectRepository) UpdateByKey(ctx context.Context, id uuid.UUID, fn func(*client.Project) error) (*client.Project, error) {
	return db.RunInTx(ctx, r.db, func(tx db.DBTX) (*client.Project, error) {
		p, err := scanProject(tx.QueryRow(ctx,
			`SELECT `+projectColumns+` FROM projects WHERE id = $1 FOR UPDATE`, pgconv.UUIDToPgtype(id)))
		if err := r.findErr(err); err != nil {
			return nil, err
		}

		if err := fn(p); err != nil {
			return nil, err
		}

		row, err := converter.ProjectToRow(p)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode project", err)
		}
		if _, err := tx.Exec(ctx, `
			UPDATE projects
			SET title = $2, description = $3, requirements = $4, budget = $5, deadline = $6,
			    video_specs = $7, status = $8, videos = $9
			WHERE id = $1`,
			row.ID, row.Title, row.Description, row.Requirements, row.Budget, row.Deadline,
			row.VideoSpecs, row.Status, row.Videos,
		); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update project", err)
		}
		return p, nil
	})
}

func (r *ProjectRepository) findErr(err error) error {
	switch {
	case err == nil:
		return nil
	case pgconv.IsNoRows(err):
		return infra.NewRepoErr(infra.KindNotFound, "project not found")
	default:
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load project", err)
	}
}

func scanProject(row pgx.Row) (*client.Project, error) {
	var pr converter.ProjectRow
	if err := row.Scan(
		&pr.ID, &pr.ClientID, &pr.Title, &pr.Description, &pr.Requirements, &pr.Budget, &pr.Deadline,
		&pr.VideoSpecs, &pr.Status, &pr.Videos, &pr.CreatedAt,
	); err != nil {
		return nil, err
	}
	return converter.ProjectFromRow(pr)
}
