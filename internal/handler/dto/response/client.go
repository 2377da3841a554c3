package response

import (
	"time"

	"pro-video-services/internal/domain/client"
	"pro-video-services/internal/usecase"

	"github.com/google/uuid"
)

type ClientResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Company     string     `json:"company"`
	Notes       string     `json:"notes"`
	Status      string     `json:"status"`
	Source      string     `json:"source,omitempty"`
	BookingID   *uuid.UUID `json:"bookingId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	LastContact time.Time  `json:"lastContact"`
}

type ClientSummaryResponse struct {
	*ClientResponse
	TotalProjects int     `json:"totalProjects"`
	TotalSpent    float64 `json:"totalSpent"`
	TotalBookings int     `json:"totalBookings"`
}

type ClientDetailResponse struct {
	*ClientResponse
	Projects       []*ProjectResponse       `json:"projects"`
	Communications []*CommunicationResponse `json:"communications"`
	TotalSpent     float64                  `json:"totalSpent"`
}

type ProjectResponse struct {
	ID           uuid.UUID             `json:"id"`
	ClientID     uuid.UUID             `json:"clientId"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Requirements string                `json:"requirements"`
	Budget       *float64              `json:"budget"`
	Deadline     *time.Time            `json:"deadline"`
	VideoSpecs   client.VideoSpecs     `json:"videoSpecs"`
	Status       string                `json:"status"`
	CreatedAt    time.Time             `json:"createdAt"`
	Videos       []client.ProjectVideo `json:"videos"`
}

type CommunicationResponse struct {
	ID           uuid.UUID  `json:"id"`
	ClientID     uuid.UUID  `json:"clientId"`
	Type         string     `json:"type"`
	Subject      string     `json:"subject"`
	Notes        string     `json:"notes"`
	FollowUpDate *time.Time `json:"followUpDate"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type ClientListEnvelope struct {
	Success bool                     `json:"success"`
	Clients []*ClientSummaryResponse `json:"clients"`
}

type ClientEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Client  *ClientResponse `json:"client"`
}

type ClientDetailEnvelope struct {
	Success bool                  `json:"success"`
	Client  *ClientDetailResponse `json:"client"`
}

type ProjectEnvelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Project *ProjectResponse `json:"project"`
}

type GeneratedVideoEnvelope struct {
	Success       bool                `json:"success"`
	Message       string              `json:"message"`
	Video         client.ProjectVideo `json:"video"`
	EstimatedCost float64             `json:"estimatedCost"`
}

type CommunicationEnvelope struct {
	Success       bool                   `json:"success"`
	Message       string                 `json:"message"`
	Communication *CommunicationResponse `json:"communication"`
}

func FromClient(c *client.Client) *ClientResponse {
	return &ClientResponse{
		ID:          c.ID(),
		Name:        c.Name(),
		Email:       c.Email(),
		Phone:       c.Phone(),
		Company:     c.Company(),
		Notes:       c.Notes(),
		Status:      string(c.Status()),
		Source:      c.Source(),
		BookingID:   c.BookingID(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
		LastContact: c.LastContact(),
	}
}

func FromClientSummaries(items []*usecase.ClientSummary) []*ClientSummaryResponse {
	out := make([]*ClientSummaryResponse, 0, len(items))
	for _, s := range items {
		out = append(out, &ClientSummaryResponse{
			ClientResponse: FromClient(s.Client),
			TotalProjects:  s.TotalProjects,
			TotalSpent:     s.TotalSpent,
			TotalBookings:  s.TotalBookings,
		})
	}
	return out
}

func FromClientDetail(d *usecase.ClientDetail) *ClientDetailResponse {
	projects := make([]*ProjectResponse, 0, len(d.Projects))
	for _, p := range d.Projects {
		projects = append(projects, FromProject(p))
	}
	comms := make([]*CommunicationResponse, 0, len(d.Communications))
	for _, c := range d.Communications {
		comms = append(comms, FromCommunication(c))
	}
	return &ClientDetailResponse{
		ClientResponse: FromClient(d.Client),
		Projects:       projects,
		Communications: comms,
		TotalSpent:     d.TotalSpent,
	}
}

func FromProject(p *client.Project) *ProjectResponse {
	videos := p.Videos()
	if videos == nil {
		videos = []client.ProjectVideo{}
	}
	return &ProjectResponse{
		ID:           p.ID(),
		ClientID:     p.ClientID(),
		Title:        p.Title(),
		Description:  p.Description(),
		Requirements: p.Requirements(),
		Budget:       p.Budget(),
		Deadline:     p.Deadline(),
		VideoSpecs:   p.VideoSpecs(),
		Status:       string(p.Status()),
		CreatedAt:    p.CreatedAt(),
		Videos:       videos,
	}
}

func FromCommunication(c *client.Communication) *CommunicationResponse {
	return &CommunicationResponse{
		ID:           c.ID(),
		ClientID:     c.ClientID(),
		Type:         string(c.Type()),
		Subject:      c.Subject(),
		Notes:        c.Notes(),
		FollowUpDate: c.FollowUpDate(),
		CreatedAt:    c.CreatedAt(),
	}
}
