package converter

import (
	"encoding/json"

	"pro-video-services/internal/domain/client"
	"pro-video-services/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type ClientRow struct {
	ID          pgtype.UUID
	Name        string
	Email       string
	Phone       pgtype.Text
	Company     pgtype.Text
	Notes       pgtype.Text
	Status      string
	Source      pgtype.Text
	BookingID   pgtype.UUID
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
	LastContact pgtype.Timestamptz
}

func ClientToRow(c *client.Client) ClientRow {
	return ClientRow{
		ID:          pgconv.UUIDToPgtype(c.ID()),
		Name:        c.Name(),
		Email:       c.Email(),
		Phone:       pgconv.StringToPgtype(c.Phone()),
		Company:     pgconv.StringToPgtype(c.Company()),
		Notes:       pgconv.StringToPgtype(c.Notes()),
		Status:      string(c.Status()),
		Source:      pgconv.StringToPgtype(c.Source()),
		BookingID:   pgconv.UUIDPtrToPgtype(c.BookingID()),
		CreatedAt:   pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:   pgconv.TimePtrToPgtype(c.UpdatedAt()),
		LastContact: pgconv.TimeToPgtype(c.LastContact()),
	}
}

func ClientFromRow(row ClientRow) (*client.Client, error) {
	return client.Reconstruct(
		pgconv.UUIDFromPgtype(row.ID),
		row.Name,
		row.Email,
		pgconv.StringFromPgtype(row.Phone),
		pgconv.StringFromPgtype(row.Company),
		pgconv.StringFromPgtype(row.Notes),
		client.Status(row.Status),
		pgconv.StringFromPgtype(row.Source),
		pgconv.UUIDPtrFromPgtype(row.BookingID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.UpdatedAt),
		pgconv.TimeFromPgtype(row.LastContact),
	)
}

// ProjectRow keeps video_specs and videos as raw JSONB.
type ProjectRow struct {
	ID           pgtype.UUID
	ClientID     pgtype.UUID
	Title        string
	Description  pgtype.Text
	Requirements pgtype.Text
	Budget       pgtype.Float8
	Deadline     pgtype.Timestamptz
	VideoSpecs   []byte
	Status       string
	Videos       []byte
	CreatedAt    pgtype.Timestamptz
}

func ProjectToRow(p *client.Project) (ProjectRow, error) {
	specs, err := json.Marshal(p.VideoSpecs())
	if err != nil {
		return ProjectRow{}, err
	}
	videos, err := json.Marshal(p.Videos())
	if err != nil {
		return ProjectRow{}, err
	}
	return ProjectRow{
		ID:           pgconv.UUIDToPgtype(p.ID()),
		ClientID:     pgconv.UUIDToPgtype(p.ClientID()),
		Title:        p.Title(),
		Description:  pgconv.StringToPgtype(p.Description()),
		Requirements: pgconv.StringToPgtype(p.Requirements()),
		Budget:       pgconv.Float64PtrToPgtype(p.Budget()),
		Deadline:     pgconv.TimePtrToPgtype(p.Deadline()),
		VideoSpecs:   specs,
		Status:       string(p.Status()),
		Videos:       videos,
		CreatedAt:    pgconv.TimeToPgtype(p.CreatedAt()),
	}, nil
}

func ProjectFromRow(row ProjectRow) (*client.Project, error) {
	var specs client.VideoSpecs
	if len(row.VideoSpecs) > 0 {
		if err := json.Unmarshal(row.VideoSpecs, &specs); err != nil {
			return nil, err
		}
	}
	var videos []client.ProjectVideo
	if len(row.Videos) > 0 {
		if err := json.Unmarshal(row.Videos, &videos); err != nil {
			return nil, err
		}
	}
	budget, err := pgconv.Float64PtrFromPgtype(row.Budget)
	if err != nil {
		return nil, err
	}
	return client.ReconstructProject(
		pgconv.UUIDFromPgtype(row.ID),
		pgconv.UUIDFromPgtype(row.ClientID),
		row.Title,
		pgconv.StringFromPgtype(row.Description),
		pgconv.StringFromPgtype(row.Requirements),
		budget,
		pgconv.TimePtrFromPgtype(row.Deadline),
		specs.WithDefaults(),
		client.ProjectStatus(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		videos,
	)
}

type CommunicationRow struct {
	ID           pgtype.UUID
	ClientID     pgtype.UUID
	Type         string
	Subject      pgtype.Text
	Notes        pgtype.Text
	FollowUpDate pgtype.Timestamptz
	CreatedAt    pgtype.Timestamptz
}

func CommunicationToRow(c *client.Communication) CommunicationRow {
	return CommunicationRow{
		ID:           pgconv.UUIDToPgtype(c.ID()),
		ClientID:     pgconv.UUIDToPgtype(c.ClientID()),
		Type:         string(c.Type()),
		Subject:      pgconv.StringToPgtype(c.Subject()),
		Notes:        pgconv.StringToPgtype(c.Notes()),
		FollowUpDate: pgconv.TimePtrToPgtype(c.FollowUpDate()),
		CreatedAt:    pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func CommunicationFromRow(row CommunicationRow) *client.Communication {
	return client.ReconstructCommunication(
		pgconv.UUIDFromPgtype(row.ID),
		pgconv.UUIDFromPgtype(row.ClientID),
		client.CommunicationType(row.Type),
		pgconv.StringFromPgtype(row.Subject),
		pgconv.StringFromPgtype(row.Notes),
		pgconv.TimePtrFromPgtype(row.FollowUpDate),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
