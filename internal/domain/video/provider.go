package video

import (
	"context"
	"time"
)

const (
	ProviderStability = "stabilityai"
	ProviderPika      = "pika"
	ProviderRunway    = "runway"
)

const (
	DefaultDuration = 4
	DefaultStyle    = "cinematic"
)

// Request is the provider-neutral generation input.
type Request struct {
	Prompt    string
	Duration  int
	Style     string
	ClientID  string
	ProjectID string
}

// Provider submits a prompt to one vendor. Synchronous vendors fill VideoURL,
// asynchronous ones return a TaskID and Status.
type Provider interface {
	Name() string
	Submit(ctx context.Context, req Request) (*Result, error)
}

type ProviderConfig struct {
	Name         string
	BaseURL      string
	CostPerVideo float64
	MaxDuration  int
}

func DefaultProviderConfigs() []ProviderConfig {
	return []ProviderConfig{
		{Name: ProviderStability, BaseURL: "https://api.stability.ai", CostPerVideo: 0.50, MaxDuration: 4},
		{Name: ProviderPika, BaseURL: "https://api.pika.art", CostPerVideo: 1.00, MaxDuration: 10},
		{Name: ProviderRunway, BaseURL: "https://api.runwayml.com", CostPerVideo: 5.00, MaxDuration: 16},
	}
}

// ClampDuration applies the default for non-positive input and caps at MaxDuration.
func (c ProviderConfig) ClampDuration(d int) int {
	if d <= 0 {
		d = DefaultDuration
	}
	if c.MaxDuration > 0 && d > c.MaxDuration {
		d = c.MaxDuration
	}
	return d
}

type Result struct {
	VideoURL string  `json:"videoUrl,omitempty"`
	TaskID   string  `json:"taskId,omitempty"`
	Provider string  `json:"provider"`
	Cost     float64 `json:"cost"`
	Duration int     `json:"duration,omitempty"`
	Status   string  `json:"status,omitempty"`
}

// IsAsync reports whether the provider returned a task handle instead of an artifact.
func (r *Result) IsAsync() bool {
	return r.TaskID != ""
}

const BillingStatusInitiated = "initiated"

// StatusProcessing marks an async task that has been accepted by the vendor.
const StatusProcessing = "processing"

type BillingEntry struct {
	ClientID  string    `json:"clientId"`
	ProjectID string    `json:"projectId"`
	Provider  string    `json:"provider"`
	Cost      float64   `json:"cost"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

type ProviderCost struct {
	Name         string  `json:"name"`
	CostPerVideo float64 `json:"costPerVideo"`
	MaxDuration  int     `json:"maxDuration"`
}
