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
)

type CommunicationRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewCommunicationRepository(conn db.DBTX, logger *slog.Logger) *CommunicationRepository {
	return &CommunicationRepository{db: conn, logger: logger}
}

func (r *CommunicationRepository) Append(ctx context.Context, c *client.Communication) error {
	row := converter.CommunicationToRow(c)
	if _, err := r.db.Exec(ctx, `
		INSERT INTO communications (id, client_id, type, subject, notes, follow_up_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		row.ID, row.ClientID, row.Type, row.Subject, row.Notes, row.FollowUpDate, row.CreatedAt,
	); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert communication", err)
	}
	return nil
}

func (r *CommunicationRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*client.Communication, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, client_id, type, subject, notes, follow_up_date, created_at
		FROM communications WHERE client_id = $1 ORDER BY seq`, pgconv.UUIDToPgtype(clientID))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list communications", err)
	}
	defer rows.Close()

	var out []*client.Communication
	for rows.Next() {
		var cr converter.CommunicationRow
		if err := rows.Scan(&cr.ID, &cr.ClientID, &cr.Type, &cr.Subject, &cr.Notes, &cr.FollowUpDate, &cr.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan communication", err)
		}
		out = append(out, converter.CommunicationFromRow(cr))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate communications", err)
	}
	return out, nil
}
