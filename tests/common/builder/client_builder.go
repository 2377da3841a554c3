//go:build unit || e2e

package builder

import (
	"time"

	"pro-video-services/internal/domain/client"
	reqdto "pro-video-services/internal/handler/dto/request"

	"github.com/google/uuid"
)

type ClientBuilder struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Company   string
	Notes     string
	CreatedAt time.Time
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		ID:        uuid.New(),
		Name:      "Dana",
		Email:     "dana@studio.io",
		Company:   "Studio",
		CreatedAt: time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ClientBuilder) Profile() client.Profile {
	return client.Profile{
		Name:    b.Name,
		Email:   b.Email,
		Phone:   b.Phone,
		Company: b.Company,
		Notes:   b.Notes,
	}
}

func (b *ClientBuilder) BuildRequest() reqdto.CreateClientRequest {
	return reqdto.CreateClientRequest{
		Name:    b.Name,
		Email:   b.Email,
		Phone:   b.Phone,
		Company: b.Company,
		Notes:   b.Notes,
	}
}

// MustBuildDomain panics on invalid fields; use only with valid builder state.
func (b *ClientBuilder) MustBuildDomain() *client.Client {
	c, err := client.NewClient(b.ID, b.Profile(), b.CreatedAt)
	if err != nil {
		panic(err)
	}
	return c
}

// MustBuildProject creates a project owned by this client.
func (b *ClientBuilder) MustBuildProject(title string) *client.Project {
	p, err := client.NewProject(uuid.New(), b.ID, client.ProjectDraft{Title: title}, b.CreatedAt)
	if err != nil {
		panic(err)
	}
	return p
}
