package video

import (
	"fmt"
	"sync"

	"pro-video-services/internal/pkg/errs"
)

type entry struct {
	config   ProviderConfig
	provider Provider
}

// Registry resolves provider names to their config and adapter. Registration
// order is the listing order.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

func (r *Registry) Register(cfg ProviderConfig, p Provider) error {
	if cfg.Name == "" || p == nil {
		return errs.New("provider name and adapter are required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.entries[cfg.Name]; dup {
		return errs.Newf("provider %q already registered", cfg.Name)
	}
	r.entries[cfg.Name] = entry{config: cfg, provider: p}
	r.order = append(r.order, cfg.Name)
	return nil
}

func (r *Registry) Lookup(name string) (ProviderConfig, Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok {
		return ProviderConfig{}, nil, errs.MarkNew(errs.ErrUnsupportedProvider, fmt.Sprintf("unsupported provider: %s", name))
	}
	return e.config, e.provider, nil
}

func (r *Registry) Costs() []ProviderCost {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ProviderCost, 0, len(r.order))
	for _, name := range r.order {
		c := r.entries[name].config
		out = append(out, ProviderCost{Name: c.Name, CostPerVideo: c.CostPerVideo, MaxDuration: c.MaxDuration})
	}
	return out
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}
