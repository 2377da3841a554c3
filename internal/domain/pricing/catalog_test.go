//go:build unit

package pricing_test

import (
	"testing"

	"pro-video-services/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuote(t *testing.T) {
	tests := []struct {
		name string
		req  pricing.QuoteRequest
		want pricing.Quote
	}{
		{
			name: "all defaults",
			req:  pricing.QuoteRequest{},
			want: pricing.Quote{Prompt: "Custom video", Duration: 30, Style: "cinematic", Tier: "standard", Price: 597, DeliveryTime: "3-5 business days"},
		},
		{
			name: "premium is rushed",
			req:  pricing.QuoteRequest{Prompt: "drone", Duration: 90, Style: "anime", Tier: "premium"},
			want: pricing.Quote{Prompt: "drone", Duration: 90, Style: "anime", Tier: "premium", Price: 1297, DeliveryTime: "2-3 business days"},
		},
		{
			name: "basic",
			req:  pricing.QuoteRequest{Tier: "basic"},
			want: pricing.Quote{Prompt: "Custom video", Duration: 30, Style: "cinematic", Tier: "basic", Price: 297, DeliveryTime: "3-5 business days"},
		},
		{
			name: "unknown tier priced as standard",
			req:  pricing.QuoteRequest{Tier: "platinum"},
			want: pricing.Quote{Prompt: "Custom video", Duration: 30, Style: "cinematic", Tier: "platinum", Price: 597, DeliveryTime: "3-5 business days"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.NewQuote(tt.req))
		})
	}
}

func TestCatalog(t *testing.T) {
	tiers := pricing.Tiers()
	assert.Len(t, tiers, 3)
	assert.Equal(t, 120, tiers["premium"].Duration)

	campaigns := pricing.Campaigns()
	assert.Len(t, campaigns, 4)
	assert.Equal(t, 2497, campaigns["complete"].Price)
}
