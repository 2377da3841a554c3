package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"pro-video-services/internal/domain/video"
	"pro-video-services/internal/pkg/clock"
	"pro-video-services/internal/pkg/errs"
	"pro-video-services/internal/pkg/patch"
)

var ErrPromptRequired = errs.MarkNew(errs.ErrValidation, "prompt is required")

type GenerateOptions struct {
	Provider  string
	Duration  int
	Style     string
	ClientID  string
	ProjectID string
}

type VideoUseCase interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (*video.Result, error)
	ListProviderCosts(ctx context.Context) []video.ProviderCost
}

type VideoOptions struct {
	DefaultProvider string
	// Timeout bounds each vendor call; zero disables the bound.
	Timeout time.Duration
}

type videoUseCaseImpl struct {
	registry *video.Registry
	recorder BillingRecorder
	clock    clock.Clock
	logger   *slog.Logger
	opts     VideoOptions
}

func NewVideoUseCase(
	registry *video.Registry,
	recorder BillingRecorder,
	clock clock.Clock,
	logger *slog.Logger,
	opts VideoOptions,
) VideoUseCase {
	opts.DefaultProvider = patch.CoalesceString(opts.DefaultProvider, video.ProviderStability)
	return &videoUseCaseImpl{
		registry: registry,
		recorder: recorder,
		clock:    clock,
		logger:   logger,
		opts:     opts,
	}
}

func (u *videoUseCaseImpl) Generate(ctx context.Context, prompt string, opts GenerateOptions) (*video.Result, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrPromptRequired
	}

	name := patch.CoalesceString(strings.TrimSpace(opts.Provider), u.opts.DefaultProvider)
	cfg, provider, err := u.registry.Lookup(name)
	if err != nil {
		return nil, err
	}

	req := video.Request{
		Prompt:    prompt,
		Duration:  cfg.ClampDuration(opts.Duration),
		Style:     patch.CoalesceString(strings.TrimSpace(opts.Style), video.DefaultStyle),
		ClientID:  opts.ClientID,
		ProjectID: opts.ProjectID,
	}

	u.logger.Info("generating video",
		slog.String("provider", cfg.Name),
		slog.String("client_id", opts.ClientID),
		slog.Int("duration", req.Duration))
	u.recordBilling(ctx, cfg, opts)

	callCtx := ctx
	if u.opts.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, u.opts.Timeout)
		defer cancel()
	}

	result, err := provider.Submit(callCtx, req)
	if err != nil {
		u.logger.Error("video generation failed",
			slog.String("provider", cfg.Name),
			slog.Any("error", err))
		var genErr *video.GenerationError
		if errors.As(err, &genErr) {
			return nil, err
		}
		return nil, video.NewGenerationError(cfg.Name, err)
	}
	if result == nil {
		return nil, video.NewGenerationError(cfg.Name, errs.New("provider returned no result"))
	}

	result.Provider = cfg.Name
	result.Cost = cfg.CostPerVideo
	return result, nil
}

// recordBilling never fails the generation; recorder errors are only logged.
func (u *videoUseCaseImpl) recordBilling(ctx context.Context, cfg video.ProviderConfig, opts GenerateOptions) {
	if u.recorder == nil {
		return
	}
	entry := video.BillingEntry{
		ClientID:  opts.ClientID,
		ProjectID: opts.ProjectID,
		Provider:  cfg.Name,
		Cost:      cfg.CostPerVideo,
		Timestamp: u.clock.Now(),
		Status:    video.BillingStatusInitiated,
	}
	if err := u.recorder.Record(ctx, entry); err != nil {
		u.logger.Warn("failed to record billing entry",
			slog.String("provider", cfg.Name),
			slog.Any("error", err))
	}
}

func (u *videoUseCaseImpl) ListProviderCosts(_ context.Context) []video.ProviderCost {
	return u.registry.Costs()
}
