package videogen

import (
	"context"
	"net/http"

	"pro-video-services/internal/domain/video"
)

const stabilityPath = "/v1/generation/stable-video-diffusion-xl/text-to-video"

type stabilityPrompt struct {
	Text string `json:"text"`
}

type stabilityRequest struct {
	TextPrompts    []stabilityPrompt `json:"text_prompts"`
	CfgScale       float64           `json:"cfg_scale"`
	MotionBucketID int               `json:"motion_bucket_id"`
	Seed           int64             `json:"seed"`
	Steps          int               `json:"steps"`
}

type stabilityResponse struct {
	Artifacts []struct {
		Base64 string `json:"base64"`
	} `json:"artifacts"`
}

// StabilityProvider returns the rendered artifact in the same call.
type StabilityProvider struct {
	client jsonClient
}

func NewStabilityProvider(httpClient *http.Client, endpoint Endpoint) *StabilityProvider {
	return &StabilityProvider{client: jsonClient{http: httpClient, endpoint: endpoint}}
}

func (p *StabilityProvider) Name() string { return video.ProviderStability }

func (p *StabilityProvider) Submit(ctx context.Context, req video.Request) (*video.Result, error) {
	body := stabilityRequest{
		TextPrompts:    []stabilityPrompt{{Text: req.Prompt}},
		CfgScale:       7,
		MotionBucketID: 127,
		Seed:           0,
		Steps:          25,
	}

	var resp stabilityResponse
	if err := p.client.postJSON(ctx, stabilityPath, body, &resp); err != nil {
		return nil, video.NewGenerationError(p.Name(), err)
	}
	if len(resp.Artifacts) == 0 || resp.Artifacts[0].Base64 == "" {
		return nil, video.NewGenerationError(p.Name(), missingField("artifacts[0].base64"))
	}

	return &video.Result{
		VideoURL: resp.Artifacts[0].Base64,
		Provider: p.Name(),
		Duration: req.Duration,
	}, nil
}
