package request

import (
	"time"

	"pro-video-services/internal/domain/client"

	"github.com/jinzhu/copier"
)

type CreateClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Notes   string `json:"notes"`
}

func (r *CreateClientRequest) ToDomain() (client.Profile, error) {
	var p client.Profile
	err := copier.Copy(&p, r)
	return p, err
}

// UpdateClientRequest is a partial update; absent fields stay unchanged.
type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Notes   *string `json:"notes"`
	Status  *string `json:"status"`
}

func (r *UpdateClientRequest) ToDomain() (client.Patch, error) {
	var p client.Patch
	err := copier.Copy(&p, r)
	return p, err
}

type VideoSpecsRequest struct {
	Duration int    `json:"duration"`
	Style    string `json:"style"`
	Provider string `json:"provider"`
	Prompt   string `json:"prompt"`
}

type CreateProjectRequest struct {
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Requirements string             `json:"requirements"`
	Budget       *float64           `json:"budget"`
	Deadline     *time.Time         `json:"deadline"`
	VideoSpecs   *VideoSpecsRequest `json:"videoSpecs"`
}

func (r *CreateProjectRequest) ToDomain() client.ProjectDraft {
	d := client.ProjectDraft{
		Title:        r.Title,
		Description:  r.Description,
		Requirements: r.Requirements,
		Budget:       r.Budget,
		Deadline:     r.Deadline,
	}
	if r.VideoSpecs != nil {
		d.VideoSpecs = client.VideoSpecs(*r.VideoSpecs)
	}
	return d
}

type SpecsOverrideRequest struct {
	Duration *int    `json:"duration"`
	Style    *string `json:"style"`
	Provider *string `json:"provider"`
	Prompt   *string `json:"prompt"`
}

type GenerateVideoRequest struct {
	Prompt        string                `json:"prompt"`
	OverrideSpecs *SpecsOverrideRequest `json:"overrideSpecs"`
}

func (r *GenerateVideoRequest) ToDomain() (string, client.SpecsOverride, error) {
	var o client.SpecsOverride
	if r.OverrideSpecs != nil {
		if err := copier.Copy(&o, r.OverrideSpecs); err != nil {
			return "", client.SpecsOverride{}, err
		}
	}
	return r.Prompt, o, nil
}

type LogCommunicationRequest struct {
	Type         string     `json:"type"`
	Subject      string     `json:"subject"`
	Notes        string     `json:"notes"`
	FollowUpDate *time.Time `json:"followUpDate"`
}

func (r *LogCommunicationRequest) ToDomain() (client.CommunicationDraft, error) {
	var d client.CommunicationDraft
	err := copier.Copy(&d, r)
	return d, err
}
