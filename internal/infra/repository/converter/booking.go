package converter

import (
	"pro-video-services/internal/domain/booking"
	"pro-video-services/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// BookingRow mirrors the bookings table in bookingColumns order.
type BookingRow struct {
	ID          pgtype.UUID
	Name        string
	Email       string
	Phone       pgtype.Text
	Company     pgtype.Text
	BookingDate pgtype.Date
	Slot        string
	ProjectType pgtype.Text
	Budget      pgtype.Text
	Message     pgtype.Text
	Status      string
	CreatedAt   pgtype.Timestamptz
}

func BookingToRow(b *booking.Booking) BookingRow {
	return BookingRow{
		ID:          pgconv.UUIDToPgtype(b.ID()),
		Name:        b.Name(),
		Email:       b.Email(),
		Phone:       pgconv.StringToPgtype(b.Phone()),
		Company:     pgconv.StringToPgtype(b.Company()),
		BookingDate: DateToPgtype(b.Date()),
		Slot:        b.Slot().String(),
		ProjectType: pgconv.StringToPgtype(b.ProjectType()),
		Budget:      pgconv.StringToPgtype(b.Budget()),
		Message:     pgconv.StringToPgtype(b.Message()),
		Status:      b.Status().String(),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingFromRow(row BookingRow) (*booking.Booking, error) {
	return booking.Reconstruct(
		pgconv.UUIDFromPgtype(row.ID),
		row.Name,
		row.Email,
		pgconv.StringFromPgtype(row.Phone),
		pgconv.StringFromPgtype(row.Company),
		booking.DateOf(row.BookingDate.Time),
		booking.Slot(row.Slot),
		pgconv.StringFromPgtype(row.ProjectType),
		pgconv.StringFromPgtype(row.Budget),
		pgconv.StringFromPgtype(row.Message),
		booking.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func DateToPgtype(d booking.Date) pgtype.Date {
	if d.IsZero() {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: d.Time(), Valid: true}
}
