//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pro-video-services/internal/domain/client"
	"pro-video-services/internal/domain/video"
	"pro-video-services/internal/infra/memory"
	"pro-video-services/internal/pkg/clock"
	"pro-video-services/internal/pkg/errs"
	"pro-video-services/internal/usecase"
	"pro-video-services/tests/common/builder"
	"pro-video-services/tests/common/testutil"
	usecasemock "pro-video-services/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var clientNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type clientFixture struct {
	clients  *memory.ClientStore
	projects *memory.ProjectStore
	comms    *memory.CommunicationStore
	bookings *memory.BookingStore
	videos   *usecasemock.MockVideoUseCase
	clock    *clock.MockClock
	uc       usecase.ClientUseCase
}

func newClientFixture(ctrl *gomock.Controller) *clientFixture {
	f := &clientFixture{
		clients:  memory.NewClientStore(),
		projects: memory.NewProjectStore(),
		comms:    memory.NewCommunicationStore(),
		bookings: memory.NewBookingStore(),
		videos:   usecasemock.NewMockVideoUseCase(ctrl),
		clock:    clock.NewMockClock(clientNow),
	}
	f.uc = usecase.NewClientUseCase(f.clients, f.projects, f.comms, f.bookings, f.videos, f.clock, testutil.DiscardLogger())
	return f
}

func (f *clientFixture) mustCreateClient(t *testing.T, name, email string) *client.Client {
	t.Helper()
	c, err := f.uc.CreateClient(context.Background(), client.Profile{Name: name, Email: email})
	require.NoError(t, err)
	return c
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestClientUseCase_CreateClient(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		profile    client.Profile
		expectKind error
	}{
		{
			name:    "success: new client starts as a lead",
			profile: client.Profile{Name: "Jane", Email: "jane@example.com", Company: "Acme"},
		},
		{
			name:       "error: name missing",
			profile:    client.Profile{Email: "jane@example.com"},
			expectKind: errs.ErrValidation,
		},
		{
			name:       "error: email missing",
			profile:    client.Profile{Name: "Jane"},
			expectKind: errs.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newClientFixture(ctrl)

			c, err := f.uc.CreateClient(ctx, tc.profile)

			if tc.expectKind != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectKind))
				all, _ := f.clients.List(ctx)
				assert.Empty(t, all)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, client.StatusLead, c.Status())
			assert.Equal(t, clientNow, c.CreatedAt())
			assert.Equal(t, clientNow, c.LastContact())
		})
	}
}

func TestClientUseCase_UpdateClient(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		patch      client.Patch
		unknownID  bool
		expectKind error
		check      func(t *testing.T, c *client.Client)
	}{
		{
			name:  "success: partial update keeps other fields",
			patch: client.Patch{Company: strPtr("Globex"), Status: strPtr("active")},
			check: func(t *testing.T, c *client.Client) {
				assert.Equal(t, "Jane", c.Name())
				assert.Equal(t, "Globex", c.Company())
				assert.Equal(t, client.StatusActive, c.Status())
				require.NotNil(t, c.UpdatedAt())
				assert.Equal(t, clientNow.Add(time.Hour), *c.UpdatedAt())
			},
		},
		{
			name:       "error: invalid status rejected and nothing changes",
			patch:      client.Patch{Company: strPtr("Globex"), Status: strPtr("vip")},
			expectKind: errs.ErrValidation,
		},
		{
			name:       "error: clearing the name",
			patch:      client.Patch{Name: strPtr(" ")},
			expectKind: errs.ErrValidation,
		},
		{
			name:       "error: unknown client",
			patch:      client.Patch{Company: strPtr("Globex")},
			unknownID:  true,
			expectKind: errs.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newClientFixture(ctrl)
			existing := f.mustCreateClient(t, "Jane", "jane@example.com")
			f.clock.Add(time.Hour)

			id := existing.ID()
			if tc.unknownID {
				id = uuid.New()
			}
			updated, err := f.uc.UpdateClient(ctx, id, tc.patch)

			if tc.expectKind != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectKind), "expected kind %v, got %v", tc.expectKind, err)
				stored, findErr := f.clients.FindByID(ctx, existing.ID())
				require.NoError(t, findErr)
				assert.Empty(t, stored.Company())
				assert.Nil(t, stored.UpdatedAt())
				return
			}
			require.NoError(t, err)
			tc.check(t, updated)
		})
	}
}

func TestClientUseCase_ListClients_Aggregates(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newClientFixture(ctrl)

	jane := f.mustCreateClient(t, "Jane", "jane@example.com")
	f.mustCreateClient(t, "Bob", "bob@example.com")

	require.NoError(t, f.bookings.Append(ctx, builder.NewBookingBuilder().WithEmail("JANE@example.com").MustBuildDomain()))
	require.NoError(t, f.bookings.Append(ctx, builder.NewBookingBuilder().WithEmail("jane@example.com").WithSlot("2025-06-03", "10:00").MustBuildDomain()))

	project, err := f.uc.CreateProject(ctx, jane.ID(), client.ProjectDraft{Title: "Launch"})
	require.NoError(t, err)
	_, err = f.uc.CreateProject(ctx, jane.ID(), client.ProjectDraft{Title: "Teaser"})
	require.NoError(t, err)

	f.videos.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(&video.Result{VideoURL: "u", Provider: video.ProviderRunway, Cost: 5.00}, nil)
	_, err = f.uc.GenerateProjectVideo(ctx, jane.ID(), project.ID(), "hero shot", client.SpecsOverride{Provider: strPtr(video.ProviderRunway)})
	require.NoError(t, err)

	summaries, err := f.uc.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "Jane", summaries[0].Client.Name())
	assert.Equal(t, client.StatusActive, summaries[0].Client.Status())
	assert.Equal(t, 2, summaries[0].TotalProjects)
	assert.Equal(t, 2, summaries[0].TotalBookings)
	assert.InDelta(t, 5.00, summaries[0].TotalSpent, 1e-9)

	assert.Equal(t, "Bob", summaries[1].Client.Name())
	assert.Zero(t, summaries[1].TotalProjects)
	assert.Zero(t, summaries[1].TotalBookings)
	assert.Zero(t, summaries[1].TotalSpent)
}

func TestClientUseCase_GetClient(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newClientFixture(ctrl)

	jane := f.mustCreateClient(t, "Jane", "jane@example.com")
	_, err := f.uc.CreateProject(ctx, jane.ID(), client.ProjectDraft{Title: "Launch"})
	require.NoError(t, err)
	_, err = f.uc.LogCommunication(ctx, jane.ID(), client.CommunicationDraft{Type: "call", Subject: "kickoff"})
	require.NoError(t, err)

	t.Run("success: detail bundles projects and communications", func(t *testing.T) {
		detail, err := f.uc.GetClient(ctx, jane.ID())
		require.NoError(t, err)
		assert.Equal(t, jane.ID(), detail.Client.ID())
		assert.Len(t, detail.Projects, 1)
		require.Len(t, detail.Communications, 1)
		assert.Equal(t, client.CommCall, detail.Communications[0].Type())
		assert.Zero(t, detail.TotalSpent)
	})

	t.Run("error: unknown client", func(t *testing.T) {
		_, err := f.uc.GetClient(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestClientUseCase_CreateProject(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newClientFixture(ctrl)
	jane := f.mustCreateClient(t, "Jane", "jane@example.com")

	t.Run("success: defaults applied and client activated", func(t *testing.T) {
		budget := 2500.0
		p, err := f.uc.CreateProject(ctx, jane.ID(), client.ProjectDraft{
			Title:      "Launch",
			Budget:     &budget,
			VideoSpecs: client.VideoSpecs{Style: "documentary"},
		})
		require.NoError(t, err)
		assert.Equal(t, client.ProjectPending, p.Status())
		assert.Equal(t, client.VideoSpecs{Duration: 30, Style: "documentary", Provider: video.ProviderStability}, p.VideoSpecs())
		assert.Empty(t, p.Videos())

		stored, err := f.clients.FindByID(ctx, jane.ID())
		require.NoError(t, err)
		assert.Equal(t, client.StatusActive, stored.Status())
	})

	t.Run("error: title required", func(t *testing.T) {
		_, err := f.uc.CreateProject(ctx, jane.ID(), client.ProjectDraft{})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("error: unknown client", func(t *testing.T) {
		_, err := f.uc.CreateProject(ctx, uuid.New(), client.ProjectDraft{Title: "Launch"})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestClientUseCase_GenerateProjectVideo(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		prompt     string
		override   client.SpecsOverride
		wrongOwner bool
		unknown    bool
		setupMocks func(*usecasemock.MockVideoUseCase)
		expectKind error
		wantVideos int
		wantStatus string
	}{
		{
			name:   "success: project specs flow into the generation",
			prompt: "aerial city",
			setupMocks: func(m *usecasemock.MockVideoUseCase) {
				m.EXPECT().Generate(ctx, "aerial city", gomock.Cond(func(opts usecase.GenerateOptions) bool {
					return opts.Provider == video.ProviderStability && opts.Duration == 30 && opts.Style == video.DefaultStyle
				})).Return(&video.Result{VideoURL: "https://cdn/v.mp4", Provider: video.ProviderStability, Cost: 0.50, Duration: 4}, nil)
			},
			wantVideos: 1,
			wantStatus: "completed",
		},
		{
			name:     "success: override replaces provider and duration",
			prompt:   "aerial city",
			override: client.SpecsOverride{Provider: strPtr(video.ProviderRunway), Duration: intPtr(8)},
			setupMocks: func(m *usecasemock.MockVideoUseCase) {
				m.EXPECT().Generate(ctx, "aerial city", gomock.Cond(func(opts usecase.GenerateOptions) bool {
					return opts.Provider == video.ProviderRunway && opts.Duration == 8
				})).Return(&video.Result{TaskID: "t-1", Status: "processing", Provider: video.ProviderRunway, Cost: 5.00}, nil)
			},
			wantVideos: 1,
			wantStatus: "processing",
		},
		{
			name:       "error: project belongs to another client",
			prompt:     "aerial city",
			wrongOwner: true,
			setupMocks: func(*usecasemock.MockVideoUseCase) {},
			expectKind: errs.ErrNotFound,
		},
		{
			name:       "error: unknown project",
			prompt:     "aerial city",
			unknown:    true,
			setupMocks: func(*usecasemock.MockVideoUseCase) {},
			expectKind: errs.ErrNotFound,
		},
		{
			name:   "error: generation failure records nothing",
			prompt: "aerial city",
			setupMocks: func(m *usecasemock.MockVideoUseCase) {
				m.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
					Return(nil, video.NewGenerationError(video.ProviderStability, errors.New("vendor down")))
			},
			expectKind: errs.ErrGeneration,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newClientFixture(ctrl)
			owner := f.mustCreateClient(t, "Jane", "jane@example.com")
			other := f.mustCreateClient(t, "Bob", "bob@example.com")
			p, err := f.uc.CreateProject(ctx, owner.ID(), client.ProjectDraft{Title: "Launch"})
			require.NoError(t, err)
			tc.setupMocks(f.videos)

			clientID, projectID := owner.ID(), p.ID()
			if tc.wrongOwner {
				clientID = other.ID()
			}
			if tc.unknown {
				projectID = uuid.New()
			}

			got, err := f.uc.GenerateProjectVideo(ctx, clientID, projectID, tc.prompt, tc.override)

			stored, findErr := f.projects.FindByID(ctx, p.ID())
			require.NoError(t, findErr)

			if tc.expectKind != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectKind) || errors.Is(err, tc.expectKind), "expected kind %v, got %v", tc.expectKind, err)
				assert.Empty(t, stored.Videos())
				assert.Equal(t, client.ProjectPending, stored.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.prompt, got.Video.Prompt)
			assert.Equal(t, tc.wantStatus, got.Video.Status)
			assert.Equal(t, got.Video.Result.Cost, got.EstimatedCost)
			assert.Len(t, stored.Videos(), tc.wantVideos)
			assert.Equal(t, client.ProjectInProgress, stored.Status())
		})
	}
}

func TestClientUseCase_LogCommunication(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newClientFixture(ctrl)
	jane := f.mustCreateClient(t, "Jane", "jane@example.com")
	f.clock.Add(48 * time.Hour)

	t.Run("success: empty type defaults to note and lastContact moves", func(t *testing.T) {
		comm, err := f.uc.LogCommunication(ctx, jane.ID(), client.CommunicationDraft{Subject: "left voicemail"})
		require.NoError(t, err)
		assert.Equal(t, client.CommNote, comm.Type())

		stored, err := f.clients.FindByID(ctx, jane.ID())
		require.NoError(t, err)
		assert.Equal(t, clientNow.Add(48*time.Hour), stored.LastContact())
	})

	t.Run("error: invalid type", func(t *testing.T) {
		_, err := f.uc.LogCommunication(ctx, jane.ID(), client.CommunicationDraft{Type: "fax"})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("error: unknown client stores nothing", func(t *testing.T) {
		unknown := uuid.New()
		_, err := f.uc.LogCommunication(ctx, unknown, client.CommunicationDraft{Type: "email"})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))

		comms, err := f.comms.ListByClient(ctx, unknown)
		require.NoError(t, err)
		assert.Empty(t, comms)
	})
}

func TestClientUseCase_RegisterFromBooking(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newClientFixture(ctrl)

	first := builder.NewBookingBuilder().WithName("Jane").WithEmail("jane@example.com").MustBuildDomain()
	lead, err := f.uc.RegisterFromBooking(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, client.StatusLead, lead.Status())
	assert.Equal(t, client.SourceWebsiteBooking, lead.Source())
	require.NotNil(t, lead.BookingID())
	assert.Equal(t, first.ID(), *lead.BookingID())

	f.clock.Add(24 * time.Hour)
	second := builder.NewBookingBuilder().WithName("Jane").WithEmail("Jane@Example.com").WithSlot("2025-06-04", "11:00").MustBuildDomain()
	again, err := f.uc.RegisterFromBooking(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, lead.ID(), again.ID(), "repeat bookings reuse the existing client")
	assert.Equal(t, clientNow.Add(24*time.Hour), again.LastContact())

	all, err := f.clients.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
