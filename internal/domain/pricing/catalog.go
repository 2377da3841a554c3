package pricing

import "strings"

type Tier struct {
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Duration int      `json:"duration"`
	Features []string `json:"features"`
}

type Campaign struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

const (
	TierBasic    = "basic"
	TierStandard = "standard"
	TierPremium  = "premium"
)

func Tiers() map[string]Tier {
	return map[string]Tier{
		TierBasic: {
			Name:     "Basic Video",
			Price:    297,
			Duration: 30,
			Features: []string{"AI-generated video", "Professional editing", "1 revision", "HD export"},
		},
		TierStandard: {
			Name:     "Standard Video",
			Price:    597,
			Duration: 60,
			Features: []string{"Premium AI generation", "Custom styles", "2 revisions", "Music integration", "Priority support"},
		},
		TierPremium: {
			Name:     "Premium Video",
			Price:    1297,
			Duration: 120,
			Features: []string{"High-end AI generation", "Unlimited revisions", "Voice-over", "24/7 support", "Rush delivery"},
		},
	}
}

func Campaigns() map[string]Campaign {
	return map[string]Campaign{
		"email":    {Name: "Email Sequence", Price: 497, Description: "5-email series with your video"},
		"landing":  {Name: "Landing Page", Price: 797, Description: "High-converting page with video"},
		"social":   {Name: "Social Media Ads", Price: 997, Description: "Facebook & Instagram campaigns"},
		"complete": {Name: "Complete Package", Price: 2497, Description: "Email + Landing Page + Social Ads"},
	}
}

type QuoteRequest struct {
	Prompt   string
	Duration int
	Style    string
	Tier     string
}

type Quote struct {
	Prompt       string `json:"prompt"`
	Duration     int    `json:"duration"`
	Style        string `json:"style"`
	Tier         string `json:"tier"`
	Price        int    `json:"price"`
	DeliveryTime string `json:"deliveryTime"`
}

const NextStep = "Book consultation to discuss your project"

// NewQuote prices an unknown tier as standard while echoing the requested tier name.
func NewQuote(req QuoteRequest) Quote {
	q := Quote{
		Prompt:   req.Prompt,
		Duration: req.Duration,
		Style:    req.Style,
		Tier:     strings.TrimSpace(req.Tier),
	}
	if strings.TrimSpace(q.Prompt) == "" {
		q.Prompt = "Custom video"
	}
	if q.Duration <= 0 {
		q.Duration = 30
	}
	if strings.TrimSpace(q.Style) == "" {
		q.Style = "cinematic"
	}
	if q.Tier == "" {
		q.Tier = TierStandard
	}

	tiers := Tiers()
	tier, ok := tiers[q.Tier]
	if !ok {
		tier = tiers[TierStandard]
	}
	q.Price = tier.Price

	q.DeliveryTime = "3-5 business days"
	if q.Tier == TierPremium {
		q.DeliveryTime = "2-3 business days"
	}
	return q
}
