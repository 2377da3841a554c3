package usecase

import "pro-video-services/internal/domain/pricing"

type PricingUseCase interface {
	Tiers() map[string]pricing.Tier
	Campaigns() map[string]pricing.Campaign
	Quote(req pricing.QuoteRequest) pricing.Quote
}

type pricingUseCaseImpl struct{}

func NewPricingUseCase() PricingUseCase {
	return pricingUseCaseImpl{}
}

func (pricingUseCaseImpl) Tiers() map[string]pricing.Tier         { return pricing.Tiers() }
func (pricingUseCaseImpl) Campaigns() map[string]pricing.Campaign { return pricing.Campaigns() }

func (pricingUseCaseImpl) Quote(req pricing.QuoteRequest) pricing.Quote {
	return pricing.NewQuote(req)
}
