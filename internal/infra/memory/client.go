package memory

import (
	"context"
	"strings"

	"pro-video-services/internal/domain/client"

	"github.com/google/uuid"
)

type ClientStore struct {
	records *Collection[*client.Client]
}

func NewClientStore() *ClientStore {
	return &ClientStore{
		records: NewCollection("client", (*client.Client).ID, (*client.Client).Clone),
	}
}

func (s *ClientStore) Append(_ context.Context, c *client.Client) error {
	return s.records.Append(c)
}

func (s *ClientStore) List(_ context.Context) ([]*client.Client, error) {
	return s.records.Filter(nil), nil
}

func (s *ClientStore) FindByID(_ context.Context, id uuid.UUID) (*client.Client, error) {
	return s.records.Get(id)
}

func (s *ClientStore) FindByEmail(_ context.Context, email string) (*client.Client, error) {
	return s.records.First(func(c *client.Client) bool {
		return strings.EqualFold(c.Email(), email)
	})
}

func (s *ClientStore) UpdateByKey(_ context.Context, id uuid.UUID, fn func(*client.Client) error) (*client.Client, error) {
	return s.records.Update(id, fn)
}

type ProjectStore struct {
	records *Collection[*client.Project]
}

func NewProjectStore() *ProjectStore {
	return &ProjectStore{
		records: NewCollection("project", (*client.Project).ID, (*client.Project).Clone),
	}
}

func (s *ProjectStore) Append(_ context.Context, p *client.Project) error {
	return s.records.Append(p)
}

func (s *ProjectStore) FindByID(_ context.Context, id uuid.UUID) (*client.Project, error) {
	return s.records.Get(id)
}

func (s *ProjectStore) ListByClient(_ context.Context, clientID uuid.UUID) ([]*client.Project, error) {
	return s.records.Filter(func(p *client.Project) bool {
		return p.ClientID() == clientID
	}), nil
}

func (s *ProjectStore) UpdateByKey(_ context.Context, id uuid.UUID, fn func(*client.Project) error) (*client.Project, error) {
	return s.records.Update(id, fn)
}

type CommunicationStore struct {
	records *Collection[*client.Communication]
}

// Communications are immutable once logged, so the store shares pointers.
func NewCommunicationStore() *CommunicationStore {
	identity := func(c *client.Communication) *client.Communication { return c }
	return &CommunicationStore{
		records: NewCollection("communication", (*client.Communication).ID, identity),
	}
}

func (s *CommunicationStore) Append(_ context.Context, c *client.Communication) error {
	return s.records.Append(c)
}

func (s *CommunicationStore) ListByClient(_ context.Context, clientID uuid.UUID) ([]*client.Communication, error) {
	return s.records.Filter(func(c *client.Communication) bool {
		return c.ClientID() == clientID
	}), nil
}
