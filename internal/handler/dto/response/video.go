package response

import (
	"pro-video-services/internal/domain/pricing"
	"pro-video-services/internal/domain/video"
)

type ProvidersResponse struct {
	Success   bool                 `json:"success"`
	Providers []video.ProviderCost `json:"providers"`
}

type QuoteResponse struct {
	Success  bool          `json:"success"`
	Quote    pricing.Quote `json:"quote"`
	NextStep string        `json:"nextStep"`
}

type TiersResponse struct {
	Success bool                    `json:"success"`
	Tiers   map[string]pricing.Tier `json:"tiers"`
}

type CampaignsResponse struct {
	Success   bool                        `json:"success"`
	Campaigns map[string]pricing.Campaign `json:"campaigns"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}
