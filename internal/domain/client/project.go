package client

import (
	"errors"
	"strings"
	"time"

	"pro-video-services/internal/domain/video"

	"github.com/google/uuid"
)

var (
	ErrTitleRequired        = errors.New("project title is required")
	ErrInvalidProjectStatus = errors.New("invalid project status")
)

const DefaultProjectDuration = 30

type VideoSpecs struct {
	Duration int    `json:"duration"`
	Style    string `json:"style"`
	Provider string `json:"provider"`
	Prompt   string `json:"prompt"`
}

// SpecsOverride replaces individual VideoSpecs fields for one generation.
type SpecsOverride struct {
	Duration *int
	Style    *string
	Provider *string
	Prompt   *string
}

func DefaultVideoSpecs() VideoSpecs {
	return VideoSpecs{
		Duration: DefaultProjectDuration,
		Style:    video.DefaultStyle,
		Provider: video.ProviderStability,
	}
}

// WithDefaults fills zero fields from DefaultVideoSpecs.
func (s VideoSpecs) WithDefaults() VideoSpecs {
	d := DefaultVideoSpecs()
	if s.Duration > 0 {
		d.Duration = s.Duration
	}
	if strings.TrimSpace(s.Style) != "" {
		d.Style = s.Style
	}
	if strings.TrimSpace(s.Provider) != "" {
		d.Provider = s.Provider
	}
	d.Prompt = s.Prompt
	return d
}

func (s VideoSpecs) Merge(o SpecsOverride) VideoSpecs {
	if o.Duration != nil {
		s.Duration = *o.Duration
	}
	if o.Style != nil {
		s.Style = *o.Style
	}
	if o.Provider != nil {
		s.Provider = *o.Provider
	}
	if o.Prompt != nil {
		s.Prompt = *o.Prompt
	}
	return s
}

type ProjectVideo struct {
	ID        uuid.UUID    `json:"id"`
	Prompt    string       `json:"prompt"`
	Result    video.Result `json:"result"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}

// NewProjectVideo takes its status from the result, or "completed" for finished artifacts.
func NewProjectVideo(id uuid.UUID, prompt string, result video.Result, now time.Time) ProjectVideo {
	status := result.Status
	if status == "" {
		status = string(ProjectCompleted)
	}
	return ProjectVideo{ID: id, Prompt: prompt, Result: result, Status: status, CreatedAt: now}
}

type Project struct {
	id           uuid.UUID
	clientID     uuid.UUID
	title        string
	description  string
	requirements string
	budget       *float64
	deadline     *time.Time
	videoSpecs   VideoSpecs
	status       ProjectStatus
	createdAt    time.Time
	videos       []ProjectVideo
}

type ProjectDraft struct {
	Title        string
	Description  string
	Requirements string
	Budget       *float64
	Deadline     *time.Time
	VideoSpecs   VideoSpecs
}

func NewProject(id, clientID uuid.UUID, d ProjectDraft, now time.Time) (*Project, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	return &Project{
		id:           id,
		clientID:     clientID,
		title:        title,
		description:  d.Description,
		requirements: d.Requirements,
		budget:       d.Budget,
		deadline:     d.Deadline,
		videoSpecs:   d.VideoSpecs.WithDefaults(),
		status:       ProjectPending,
		createdAt:    now,
		videos:       []ProjectVideo{},
	}, nil
}

func ReconstructProject(
	id, clientID uuid.UUID,
	title, description, requirements string,
	budget *float64,
	deadline *time.Time,
	specs VideoSpecs,
	status ProjectStatus,
	createdAt time.Time,
	videos []ProjectVideo,
) (*Project, error) {
	if !status.IsValid() {
		return nil, ErrInvalidProjectStatus
	}
	if videos == nil {
		videos = []ProjectVideo{}
	}
	return &Project{
		id:           id,
		clientID:     clientID,
		title:        title,
		description:  description,
		requirements: requirements,
		budget:       budget,
		deadline:     deadline,
		videoSpecs:   specs,
		status:       status,
		createdAt:    createdAt,
		videos:       videos,
	}, nil
}

// AddVideo records a generation and moves the project into production.
func (p *Project) AddVideo(v ProjectVideo) {
	p.videos = append(p.videos, v)
	p.status = ProjectInProgress
}

// TotalCost sums the vendor cost of every generated video.
func (p *Project) TotalCost() float64 {
	var total float64
	for _, v := range p.videos {
		total += v.Result.Cost
	}
	return total
}

func (p *Project) Clone() *Project {
	cp := *p
	cp.videos = append([]ProjectVideo(nil), p.videos...)
	if cp.videos == nil {
		cp.videos = []ProjectVideo{}
	}
	return &cp
}

func (p *Project) ID() uuid.UUID          { return p.id }
func (p *Project) ClientID() uuid.UUID    { return p.clientID }
func (p *Project) Title() string          { return p.title }
func (p *Project) Description() string    { return p.description }
func (p *Project) Requirements() string   { return p.requirements }
func (p *Project) Budget() *float64       { return p.budget }
func (p *Project) Deadline() *time.Time   { return p.deadline }
func (p *Project) VideoSpecs() VideoSpecs { return p.videoSpecs }
func (p *Project) Status() ProjectStatus  { return p.status }
func (p *Project) CreatedAt() time.Time   { return p.createdAt }
func (p *Project) Videos() []ProjectVideo { return p.videos }
