//go:build unit

package video_test

import (
	"context"
	"errors"
	"testing"

	"pro-video-services/internal/domain/video"
	"pro-video-services/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct{ name string }

func (s stubProvider) Name() string { return s.name }

func (s stubProvider) Submit(_ context.Context, _ video.Request) (*video.Result, error) {
	return &video.Result{Provider: s.name}, nil
}

func newDefaultRegistry(t *testing.T) *video.Registry {
	t.Helper()
	reg := video.NewRegistry()
	for _, cfg := range video.DefaultProviderConfigs() {
		require.NoError(t, reg.Register(cfg, stubProvider{name: cfg.Name}))
	}
	return reg
}

func TestRegistry_Costs(t *testing.T) {
	reg := newDefaultRegistry(t)

	assert.Equal(t, []video.ProviderCost{
		{Name: "stabilityai", CostPerVideo: 0.50, MaxDuration: 4},
		{Name: "pika", CostPerVideo: 1.00, MaxDuration: 10},
		{Name: "runway", CostPerVideo: 5.00, MaxDuration: 16},
	}, reg.Costs())
	assert.Equal(t, []string{"stabilityai", "pika", "runway"}, reg.Names())
}

func TestRegistry_Lookup(t *testing.T) {
	reg := newDefaultRegistry(t)

	cfg, p, err := reg.Lookup("pika")
	require.NoError(t, err)
	assert.Equal(t, "pika", p.Name())
	assert.Equal(t, 10, cfg.MaxDuration)

	_, _, err = reg.Lookup("unknown-vendor")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrUnsupportedProvider))
	assert.Contains(t, err.Error(), "unknown-vendor")
}

func TestRegistry_Register(t *testing.T) {
	reg := newDefaultRegistry(t)

	assert.Error(t, reg.Register(video.ProviderConfig{Name: "pika"}, stubProvider{name: "pika"}))
	assert.Error(t, reg.Register(video.ProviderConfig{}, stubProvider{}))
	assert.Error(t, reg.Register(video.ProviderConfig{Name: "x"}, nil))
}

func TestProviderConfig_ClampDuration(t *testing.T) {
	cfg := video.ProviderConfig{Name: "pika", MaxDuration: 10}

	assert.Equal(t, 4, cfg.ClampDuration(0))
	assert.Equal(t, 4, cfg.ClampDuration(-3))
	assert.Equal(t, 7, cfg.ClampDuration(7))
	assert.Equal(t, 10, cfg.ClampDuration(30))
}

func TestGenerationError(t *testing.T) {
	cause := errors.New("503 Service Unavailable")
	err := error(video.NewGenerationError("runway", cause))

	assert.ErrorIs(t, err, errs.ErrGeneration)
	assert.True(t, errs.Is(err, errs.ErrGeneration))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "runway")

	var genErr *video.GenerationError
	require.ErrorAs(t, errs.Wrap(err, "generate"), &genErr)
	assert.Equal(t, "runway", genErr.Provider)
}
