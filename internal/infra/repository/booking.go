package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"pro-video-services/internal/domain/booking"
	"pro-video-services/internal/infra"
	"pro-video-services/internal/infra/db"
	"pro-video-services/internal/infra/repository/converter"
	"pro-video-services/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, name, email, phone, company, booking_date, slot,
	project_type, budget, message, status, created_at`

type BookingRepository struct {
	db     db.Pool
	logger *slog.Logger
}

func NewBookingRepository(pool db.Pool, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{db: pool, logger: logger}
}

func (r *BookingRepository) Append(ctx context.Context, b *booking.Booking) error {
	row := converter.BookingToRow(b)
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		row.ID, row.Name, row.Email, row.Phone, row.Company, row.BookingDate, row.Slot,
		row.ProjectType, row.Budget, row.Message, row.Status, row.CreatedAt,
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.NewRepoErr(infra.KindDuplicateKey, "booking slot already taken")
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) ListFiltered(ctx context.Context, f booking.Filter) ([]*booking.Booking, error) {
	where, args := bookingWhere(f)
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings`+where+` ORDER BY seq`, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list bookings", err)
	}
	defer rows.Close()

	var out []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan booking", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate bookings", err)
	}
	return out, nil
}

// UpdateByKey locks the row, applies fn and persists the status inside one transaction.
func (r *BookingRepository) UpdateByKey(ctx context.Context, id uuid.UUID, fn func(*booking.Booking) error) (*booking.Booking, error) {
	return db.RunInTx(ctx, r.db, func(tx db.DBTX) (*booking.Booking, error) {
		b, err := scanBooking(tx.QueryRow(ctx,
			`SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, pgconv.UUIDToPgtype(id)))
		if err != nil {
			if pgconv.IsNoRows(err) {
				return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
			}
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load booking", err)
		}

		if err := fn(b); err != nil {
			return nil, err
		}

		if _, err := tx.Exec(ctx, `UPDATE bookings SET status = $2 WHERE id = $1`,
			pgconv.UUIDToPgtype(id), b.Status().String()); err != nil {
			if pgconv.IsUniqueViolation(err) {
				return nil, infra.NewRepoErr(infra.KindDuplicateKey, "booking slot already taken")
			}
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update booking", err)
		}
		return b, nil
	})
}

func bookingWhere(f booking.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(expr string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}

	if f.Date != nil {
		add("booking_date = $%d", converter.DateToPgtype(*f.Date))
	}
	if f.Slot != nil {
		add("slot = $%d", f.Slot.String())
	}
	if f.ActiveOnly {
		add("status = $%d", booking.StatusConfirmed.String())
	}
	if f.Email != "" {
		add("lower(email) = lower($%d)", f.Email)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var br converter.BookingRow
	if err := row.Scan(
		&br.ID, &br.Name, &br.Email, &br.Phone, &br.Company, &br.BookingDate, &br.Slot,
		&br.ProjectType, &br.Budget, &br.Message, &br.Status, &br.CreatedAt,
	); err != nil {
		return nil, err
	}
	return converter.BookingFromRow(br)
}
