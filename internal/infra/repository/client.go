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

const clientColumns = `id, name, email, phone, company, notes, status, source,
	booking_id, created_at, updated_at, last_contact`

type ClientRepository struct {
	db     db.Pool
	logger *slog.Logger
}

func NewClientRepository(pool db.Pool, logger *slog.Logger) *ClientRepository {
	return &ClientRepository{db: pool, logger: logger}
}

func (r *ClientRepository) Append(ctx context.Context, c *client.Client) error {
	row := converter.ClientToRow(c)
	_, err := r.db.Exec(ctx, `
		INSERT INTO clients (`+clientColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		row.ID, row.Name, row.Email, row.Phone, row.Company, row.Notes, row.Status, row.Source,
		row.BookingID, row.CreatedAt, row.UpdatedAt, row.LastContact,
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.NewRepoErr(infra.KindDuplicateKey, "client already exists")
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert client", err)
	}
	return nil
}

func (r *ClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	rows, err := r.db.Query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY seq`)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list clients", err)
	}
	defer rows.Close()

	var out []*client.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan client", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate clients", err)
	}
	return out, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	c, err := scanClient(r.db.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = $1`, pgconv.UUIDToPgtype(id)))
	return c, r.findErr(err)
}

func (r *ClientRepository) FindByEmail(ctx context.Context, email string) (*client.Client, error) {
	c, err := scanClient(r.db.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE lower(email) = lower($1) ORDER BY seq LIMIT 1`, email))
	return c, r.findErr(err)
}

func (r *ClientRepository) UpdateByKey(ctx context.Context, id uuid.UUID, fn func(*client.Client) error) (*client.Client, error) {
	return db.RunInTx(ctx, r.db, func(tx db.DBTX) (*client.Client, error) {
		c, err := scanClient(tx.QueryRow(ctx,
			`SELECT `+clientColumns+` FROM clients WHERE id = $1 FOR UPDATE`, pgconv.UUIDToPgtype(id)))
		if err := r.findErr(err); err != nil {
			return nil, err
		}

		if err := fn(c); err != nil {
			return nil, err
		}

		row := converter.ClientToRow(c)
		if _, err := tx.Exec(ctx, `
			UPDATE clients
			SET name = $2, email = $3, phone = $4, company = $5, notes = $6,
			    status = $7, updated_at = $8, last_contact = $9
			WHERE id = $1`,
			row.ID, row.Name, row.Email, row.Phone, row.Company, row.Notes,
			row.Status, row.UpdatedAt, row.LastContact,
		); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update client", err)
		}
		return c, nil
	})
}

func (r *ClientRepository) findErr(err error) error {
	switch {
	case err == nil:
		return nil
	case pgconv.IsNoRows(err):
		return infra.NewRepoErr(infra.KindNotFound, "client not found")
	default:
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load client", err)
	}
}

func scanClient(row pgx.Row) (*client.Client, error) {
	var cr converter.ClientRow
	if err := row.Scan(
		&cr.ID, &cr.Name, &cr.Email, &cr.Phone, &cr.Company, &cr.Notes, &cr.Status, &cr.Source,
		&cr.BookingID, &cr.CreatedAt, &cr.UpdatedAt, &cr.LastContact,
	); err != nil {
		return nil, err
	}
	return converter.ClientFromRow(cr)
}
