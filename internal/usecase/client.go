package usecase

import (
	"context"
	"log/slog"
	"strings"

	"pro-video-services/internal/domain/booking"
	"pro-video-services/internal/domain/client"
	"pro-video-services/internal/infra"
	"pro-video-services/internal/pkg/clock"
	"pro-video-services/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound  = errs.MarkNew(errs.ErrNotFound, "client not found")
	ErrProjectNotFound = errs.MarkNew(errs.ErrNotFound, "project not found")
)

type ClientSummary struct {
	Client        *client.Client
	TotalProjects int
	TotalSpent    float64
	TotalBookings int
}

type ClientDetail struct {
	Client         *client.Client
	Projects       []*client.Project
	Communications []*client.Communication
	TotalSpent     float64
}

type ProjectVideoResult struct {
	Video         client.ProjectVideo
	EstimatedCost float64
}

type ClientUseCase interface {
	ListClients(ctx context.Context) ([]*ClientSummary, error)
	CreateClient(ctx context.Context, profile client.Profile) (*client.Client, error)
	UpdateClient(ctx context.Context, id uuid.UUID, patch client.Patch) (*client.Client, error)
	GetClient(ctx context.Context, id uuid.UUID) (*ClientDetail, error)
	CreateProject(ctx context.Context, clientID uuid.UUID, draft client.ProjectDraft) (*client.Project, error)
	GenerateProjectVideo(ctx context.Context, clientID, projectID uuid.UUID, prompt string, override client.SpecsOverride) (*ProjectVideoResult, error)
	LogCommunication(ctx context.Context, clientID uuid.UUID, draft client.CommunicationDraft) (*client.Communication, error)
	RegisterFromBooking(ctx context.Context, b *booking.Booking) (*client.Client, error)
}

type clientUseCaseImpl struct {
	clients        ClientStore
	projects       ProjectStore
	communications CommunicationStore
	bookings       BookingStore
	videos         VideoUseCase
	clock          clock.Clock
	logger         *slog.Logger
}

func NewClientUseCase(
	clients ClientStore,
	projects ProjectStore,
	communications CommunicationStore,
	bookings BookingStore,
	videos VideoUseCase,
	clock clock.Clock,
	logger *slog.Logger,
) ClientUseCase {
	return &clientUseCaseImpl{
		clients:        clients,
		projects:       projects,
		communications: communications,
		bookings:       bookings,
		videos:         videos,
		clock:          clock,
		logger:         logger,
	}
}

func (u *clientUseCaseImpl) ListClients(ctx context.Context) ([]*ClientSummary, error) {
	all, err := u.clients.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	out := make([]*ClientSummary, 0, len(all))
	for _, c := range all {
		projects, err := u.projects.ListByClient(ctx, c.ID())
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		bookings, err := u.bookings.ListFiltered(ctx, booking.Filter{Email: c.Email()})
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		out = append(out, &ClientSummary{
			Client:        c,
			TotalProjects: len(projects),
			TotalSpent:    totalSpent(projects),
			TotalBookings: len(bookings),
		})
	}
	return out, nil
}

func (u *clientUseCaseImpl) CreateClient(ctx context.Context, profile client.Profile) (*client.Client, error) {
	c, err := client.NewClient(uuid.New(), profile, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if err := u.clients.Append(ctx, c); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c, nil
}

func (u *clientUseCaseImpl) UpdateClient(ctx context.Context, id uuid.UUID, patch client.Patch) (*client.Client, error) {
	now := u.clock.Now()
	c, err := u.clients.UpdateByKey(ctx, id, func(c *client.Client) error {
		return c.Apply(patch, now)
	})
	if err != nil {
		return nil, u.mapClientErr(err)
	}
	return c, nil
}

func (u *clientUseCaseImpl) GetClient(ctx context.Context, id uuid.UUID) (*ClientDetail, error) {
	c, err := u.clients.FindByID(ctx, id)
	if err != nil {
		return nil, u.mapClientErr(err)
	}
	projects, err := u.projects.ListByClient(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	comms, err := u.communications.ListByClient(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &ClientDetail{
		Client:         c,
		Projects:       projects,
		Communications: comms,
		TotalSpent:     totalSpent(projects),
	}, nil
}

func (u *clientUseCaseImpl) CreateProject(ctx context.Context, clientID uuid.UUID, draft client.ProjectDraft) (*client.Project, error) {
	if _, err := u.clients.FindByID(ctx, clientID); err != nil {
		return nil, u.mapClientErr(err)
	}

	now := u.clock.Now()
	p, err := client.NewProject(uuid.New(), clientID, draft, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if err := u.projects.Append(ctx, p); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if _, err := u.clients.UpdateByKey(ctx, clientID, func(c *client.Client) error {
		c.Activate(now)
		return nil
	}); err != nil {
		return nil, u.mapClientErr(err)
	}
	return p, nil
}

func (u *clientUseCaseImpl) GenerateProjectVideo(
	ctx context.Context,
	clientID, projectID uuid.UUID,
	prompt string,
	override client.SpecsOverride,
) (*ProjectVideoResult, error) {
	p, err := u.projects.FindByID(ctx, projectID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if p.ClientID() != clientID {
		return nil, ErrProjectNotFound
	}

	specs := p.VideoSpecs().Merge(override)
	if strings.TrimSpace(prompt) == "" {
		prompt = specs.Prompt
	}

	result, err := u.videos.Generate(ctx, prompt, GenerateOptions{
		Provider:  specs.Provider,
		Duration:  specs.Duration,
		Style:     specs.Style,
		ClientID:  clientID.String(),
		ProjectID: projectID.String(),
	})
	if err != nil {
		return nil, err
	}

	v := client.NewProjectVideo(uuid.New(), strings.TrimSpace(prompt), *result, u.clock.Now())
	if _, err := u.projects.UpdateByKey(ctx, projectID, func(p *client.Project) error {
		p.AddVideo(v)
		return nil
	}); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &ProjectVideoResult{Video: v, EstimatedCost: result.Cost}, nil
}

func (u *clientUseCaseImpl) LogCommunication(ctx context.Context, clientID uuid.UUID, draft client.CommunicationDraft) (*client.Communication, error) {
	now := u.clock.Now()
	comm, err := client.NewCommunication(uuid.New(), clientID, draft, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if _, err := u.clients.UpdateByKey(ctx, clientID, func(c *client.Client) error {
		c.Touch(now)
		return nil
	}); err != nil {
		return nil, u.mapClientErr(err)
	}

	if err := u.communications.Append(ctx, comm); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return comm, nil
}

// RegisterFromBooking creates a lead, or refreshes lastContact when the email is already known.
func (u *clientUseCaseImpl) RegisterFromBooking(ctx context.Context, b *booking.Booking) (*client.Client, error) {
	now := u.clock.Now()

	existing, err := u.clients.FindByEmail(ctx, b.Email())
	switch {
	case err == nil:
		return u.clients.UpdateByKey(ctx, existing.ID(), func(c *client.Client) error {
			c.Touch(now)
			return nil
		})
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	lead := client.NewLeadFromBooking(uuid.New(), b, now)
	if err := u.clients.Append(ctx, lead); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return lead, nil
}

func (u *clientUseCaseImpl) mapClientErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrClientNotFound
	case errs.Is(err, client.ErrNameEmailRequired), errs.Is(err, client.ErrInvalidStatus):
		return errs.Mark(err, errs.ErrValidation)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

func totalSpent(projects []*client.Project) float64 {
	var sum float64
	for _, p := range projects {
		sum += p.TotalCost()
	}
	return sum
}
