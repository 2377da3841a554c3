package request

import "pro-video-services/internal/domain/pricing"

type QuoteRequest struct {
	Prompt   string `json:"prompt"`
	Duration int    `json:"duration"`
	Style    string `json:"style"`
	Tier     string `json:"tier"`
}

func (r *QuoteRequest) ToDomain() pricing.QuoteRequest {
	return pricing.QuoteRequest{
		Prompt:   r.Prompt,
		Duration: r.Duration,
		Style:    r.Style,
		Tier:     r.Tier,
	}
}
