package videogen

import (
	"net/http"

	"pro-video-services/internal/domain/video"
	"pro-video-services/internal/pkg/config"
)

// NewRegistry registers the three vendors in listing order, with base URLs
// and credentials taken from cfg.
func NewRegistry(cfg config.VideoConfig, httpClient *http.Client) (*video.Registry, error) {
	endpoints := map[string]Endpoint{
		video.ProviderStability: {BaseURL: cfg.StabilityBaseURL, APIKey: cfg.StabilityAPIKey},
		video.ProviderPika:      {BaseURL: cfg.PikaBaseURL, APIKey: cfg.PikaAPIKey},
		video.ProviderRunway:    {BaseURL: cfg.RunwayBaseURL, APIKey: cfg.RunwayAPIKey},
	}

	reg := video.NewRegistry()
	for _, pc := range video.DefaultProviderConfigs() {
		ep := endpoints[pc.Name]
		if ep.BaseURL != "" {
			pc.BaseURL = ep.BaseURL
		} else {
			ep.BaseURL = pc.BaseURL
		}

		var p video.Provider
		switch pc.Name {
		case video.ProviderStability:
			p = NewStabilityProvider(httpClient, ep)
		case video.ProviderPika:
			p = NewPikaProvider(httpClient, ep)
		case video.ProviderRunway:
			p = NewRunwayProvider(httpClient, ep)
		}
		if err := reg.Register(pc, p); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
