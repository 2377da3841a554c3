package client

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidCommunicationType = errors.New("communication type must be one of call, email, meeting, note")

type Communication struct {
	id           uuid.UUID
	clientID     uuid.UUID
	kind         CommunicationType
	subject      string
	notes        string
	followUpDate *time.Time
	createdAt    time.Time
}

type CommunicationDraft struct {
	Type         string
	Subject      string
	Notes        string
	FollowUpDate *time.Time
}

// NewCommunication defaults an empty type to "note".
func NewCommunication(id, clientID uuid.UUID, d CommunicationDraft, now time.Time) (*Communication, error) {
	kind := CommunicationType(d.Type)
	if kind == "" {
		kind = CommNote
	}
	if !kind.IsValid() {
		return nil, ErrInvalidCommunicationType
	}
	return &Communication{
		id:           id,
		clientID:     clientID,
		kind:         kind,
		subject:      d.Subject,
		notes:        d.Notes,
		followUpDate: d.FollowUpDate,
		createdAt:    now,
	}, nil
}

func ReconstructCommunication(
	id, clientID uuid.UUID,
	kind CommunicationType,
	subject, notes string,
	followUpDate *time.Time,
	createdAt time.Time,
) *Communication {
	return &Communication{
		id:           id,
		clientID:     clientID,
		kind:         kind,
		subject:      subject,
		notes:        notes,
		followUpDate: followUpDate,
		createdAt:    createdAt,
	}
}

func (c *Communication) ID() uuid.UUID            { return c.id }
func (c *Communication) ClientID() uuid.UUID      { return c.clientID }
func (c *Communication) Type() CommunicationType  { return c.kind }
func (c *Communication) Subject() string          { return c.subject }
func (c *Communication) Notes() string            { return c.notes }
func (c *Communication) FollowUpDate() *time.Time { return c.followUpDate }
func (c *Communication) CreatedAt() time.Time     { return c.createdAt }
