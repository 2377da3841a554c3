package client

import (
	"errors"
	"strings"
	"time"

	"pro-video-services/internal/domain/booking"
	"pro-video-services/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrNameEmailRequired = errors.New("name and email are required")
	ErrInvalidStatus     = errors.New("invalid client status")
)

type Client struct {
	id          uuid.UUID
	name        string
	email       string
	phone       string
	company     string
	notes       string
	status      Status
	source      string
	bookingID   *uuid.UUID
	createdAt   time.Time
	updatedAt   *time.Time
	lastContact time.Time
}

type Profile struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Notes   string
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
	Notes   *string
	Status  *string
}

func NewClient(id uuid.UUID, p Profile, now time.Time) (*Client, error) {
	name := strings.TrimSpace(p.Name)
	email := strings.TrimSpace(p.Email)
	if name == "" || email == "" {
		return nil, ErrNameEmailRequired
	}
	return &Client{
		id:          id,
		name:        name,
		email:       email,
		phone:       strings.TrimSpace(p.Phone),
		company:     strings.TrimSpace(p.Company),
		notes:       p.Notes,
		status:      StatusLead,
		createdAt:   now,
		lastContact: now,
	}, nil
}

// NewLeadFromBooking creates the lead recorded when a visitor books a consultation.
func NewLeadFromBooking(id uuid.UUID, b *booking.Booking, now time.Time) *Client {
	bookingID := b.ID()
	return &Client{
		id:          id,
		name:        b.Name(),
		email:       b.Email(),
		phone:       b.Phone(),
		company:     b.Company(),
		status:      StatusLead,
		source:      SourceWebsiteBooking,
		bookingID:   &bookingID,
		createdAt:   now,
		lastContact: now,
	}
}

func Reconstruct(
	id uuid.UUID,
	name, email, phone, company, notes string,
	status Status,
	source string,
	bookingID *uuid.UUID,
	createdAt time.Time,
	updatedAt *time.Time,
	lastContact time.Time,
) (*Client, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Client{
		id:          id,
		name:        name,
		email:       email,
		phone:       phone,
		company:     company,
		notes:       notes,
		status:      status,
		source:      source,
		bookingID:   bookingID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		lastContact: lastContact,
	}, nil
}

func (c *Client) Apply(p Patch, now time.Time) error {
	next := *c
	if p.Name != nil {
		next.name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		next.email = strings.TrimSpace(*p.Email)
	}
	if next.name == "" || next.email == "" {
		return ErrNameEmailRequired
	}
	if p.Status != nil {
		s := Status(*p.Status)
		if !s.IsValid() {
			return ErrInvalidStatus
		}
		next.status = s
	}
	if p.Phone != nil {
		next.phone = strings.TrimSpace(*p.Phone)
	}
	if p.Company != nil {
		next.company = strings.TrimSpace(*p.Company)
	}
	patch.Apply(&next.notes, p.Notes)
	next.updatedAt = &now
	*c = next
	return nil
}

func (c *Client) Touch(now time.Time) {
	c.lastContact = now
}

// Activate marks the client as engaged once a project exists.
func (c *Client) Activate(now time.Time) {
	c.status = StatusActive
	c.lastContact = now
}

func (c *Client) Clone() *Client {
	cp := *c
	if c.bookingID != nil {
		id := *c.bookingID
		cp.bookingID = &id
	}
	if c.updatedAt != nil {
		t := *c.updatedAt
		cp.updatedAt = &t
	}
	return &cp
}

func (c *Client) ID() uuid.UUID          { return c.id }
func (c *Client) Name() string           { return c.name }
func (c *Client) Email() string          { return c.email }
func (c *Client) Phone() string          { return c.phone }
func (c *Client) Company() string        { return c.company }
func (c *Client) Notes() string          { return c.notes }
func (c *Client) Status() Status         { return c.status }
func (c *Client) Source() string         { return c.source }
func (c *Client) BookingID() *uuid.UUID  { return c.bookingID }
func (c *Client) CreatedAt() time.Time   { return c.createdAt }
func (c *Client) UpdatedAt() *time.Time  { return c.updatedAt }
func (c *Client) LastContact() time.Time { return c.lastContact }
