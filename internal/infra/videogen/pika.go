package videogen

import (
	"context"
	"net/http"

	"pro-video-services/internal/domain/video"
)

const pikaPath = "/v1/generate"

type pikaOptions struct {
	Duration      int     `json:"duration"`
	GuidanceScale float64 `json:"guidanceScale"`
	Seed          int64   `json:"seed"`
}

type pikaRequest struct {
	PromptText string      `json:"promptText"`
	Style      string      `json:"style"`
	Options    pikaOptions `json:"options"`
}

type pikaResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// PikaProvider queues a job and returns its task handle.
type PikaProvider struct {
	client jsonClient
}

func NewPikaProvider(httpClient *http.Client, endpoint Endpoint) *PikaProvider {
	return &PikaProvider{client: jsonClient{http: httpClient, endpoint: endpoint}}
}

func (p *PikaProvider) Name() string { return video.ProviderPika }

func (p *PikaProvider) Submit(ctx context.Context, req video.Request) (*video.Result, error) {
	body := pikaRequest{
		PromptText: req.Prompt,
		Style:      req.Style,
		Options: pikaOptions{
			Duration:      req.Duration,
			GuidanceScale: 12,
			Seed:          0,
		},
	}

	var resp pikaResponse
	if err := p.client.postJSON(ctx, pikaPath, body, &resp); err != nil {
		return nil, video.NewGenerationError(p.Name(), err)
	}
	if resp.ID == "" {
		return nil, video.NewGenerationError(p.Name(), missingField("id"))
	}

	status := resp.Status
	if status == "" {
		status = video.StatusProcessing
	}
	return &video.Result{
		TaskID:   resp.ID,
		Provider: p.Name(),
		Duration: req.Duration,
		Status:   status,
	}, nil
}
