package videogen

import (
	"context"
	"net/http"

	"pro-video-services/internal/domain/video"
)

const (
	runwayPath     = "/v1/tasks"
	runwayTaskType = "gen3a_turbo"
)

type runwayOptions struct {
	TextPrompt  string `json:"text_prompt"`
	Duration    int    `json:"duration"`
	ExploreMode bool   `json:"exploreMode"`
	Watermark   bool   `json:"watermark"`
}

type runwayRequest struct {
	TaskType string        `json:"taskType"`
	Internal bool          `json:"internal"`
	Options  runwayOptions `json:"options"`
}

type runwayResponse struct {
	Task struct {
		ID string `json:"id"`
	} `json:"task"`
}

// RunwayProvider creates a generation task; the video is fetched later by task id.
type RunwayProvider struct {
	client jsonClient
}

func NewRunwayProvider(httpClient *http.Client, endpoint Endpoint) *RunwayProvider {
	return &RunwayProvider{client: jsonClient{http: httpClient, endpoint: endpoint}}
}

func (p *RunwayProvider) Name() string { return video.ProviderRunway }

func (p *RunwayProvider) Submit(ctx context.Context, req video.Request) (*video.Result, error) {
	body := runwayRequest{
		TaskType: runwayTaskType,
		Internal: false,
		Options: runwayOptions{
			TextPrompt:  req.Prompt,
			Duration:    req.Duration,
			ExploreMode: false,
			Watermark:   false,
		},
	}

	var resp runwayResponse
	if err := p.client.postJSON(ctx, runwayPath, body, &resp); err != nil {
		return nil, video.NewGenerationError(p.Name(), err)
	}
	if resp.Task.ID == "" {
		return nil, video.NewGenerationError(p.Name(), missingField("task.id"))
	}

	return &video.Result{
		TaskID:   resp.Task.ID,
		Provider: p.Name(),
		Duration: req.Duration,
		Status:   video.StatusProcessing,
	}, nil
}
