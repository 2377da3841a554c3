//go:build unit

package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"pro-video-services/internal/domain/booking"
	"pro-video-services/internal/infra"
	"pro-video-services/internal/infra/memory"
	"pro-video-services/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStore_AppendAndFilter(t *testing.T) {
	ctx := context.Background()
	store := memory.NewBookingStore()

	first := builder.NewBookingBuilder().WithSlot("2025-06-02", "10:00").MustBuildDomain()
	second := builder.NewBookingBuilder().WithSlot("2025-06-02", "09:00").WithEmail("b@x.com").MustBuildDomain()
	other := builder.NewBookingBuilder().WithSlot("2025-06-03", "09:00").AsCancelled().MustBuildDomain()

	for _, b := range []*booking.Booking{first, second, other} {
		require.NoError(t, store.Append(ctx, b))
	}

	t.Run("zero filter returns insertion order", func(t *testing.T) {
		all, err := store.ListFiltered(ctx, booking.Filter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, first.ID(), all[0].ID())
		assert.Equal(t, second.ID(), all[1].ID())
		assert.Equal(t, other.ID(), all[2].ID())
	})

	t.Run("date and active filter", func(t *testing.T) {
		date := other.Date()
		got, err := store.ListFiltered(ctx, booking.Filter{Date: &date, ActiveOnly: true})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("email filter is case-insensitive", func(t *testing.T) {
		got, err := store.ListFiltered(ctx, booking.Filter{Email: "B@X.COM"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, second.ID(), got[0].ID())
	})
}

func TestBookingStore_AppendDuplicateID(t *testing.T) {
	ctx := context.Background()
	store := memory.NewBookingStore()
	b := builder.NewBookingBuilder().MustBuildDomain()

	require.NoError(t, store.Append(ctx, b))
	err := store.Append(ctx, b)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}

func TestBookingStore_ReturnedRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	store := memory.NewBookingStore()
	b := builder.NewBookingBuilder().MustBuildDomain()
	require.NoError(t, store.Append(ctx, b))

	b.Cancel()
	listed, err := store.ListFiltered(ctx, booking.Filter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].IsActive(), "mutating the caller's pointer must not change the stored record")

	listed[0].Cancel()
	again, err := store.ListFiltered(ctx, booking.Filter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, again, 1)
}

func TestBookingStore_UpdateByKey(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		id         func(existing uuid.UUID) uuid.UUID
		fn         func(*booking.Booking) error
		expectKind infra.RepositoryErrorKind
		expectErr  error
		wantActive bool
	}{
		{
			name: "success: cancel persists",
			id:   func(existing uuid.UUID) uuid.UUID { return existing },
			fn: func(b *booking.Booking) error {
				b.Cancel()
				return nil
			},
			wantActive: false,
		},
		{
			name:       "error: unknown id",
			id:         func(uuid.UUID) uuid.UUID { return uuid.New() },
			fn:         func(*booking.Booking) error { return nil },
			expectKind: infra.KindNotFound,
			wantActive: true,
		},
		{
			name: "error: fn failure leaves record unchanged",
			id:   func(existing uuid.UUID) uuid.UUID { return existing },
			fn: func(b *booking.Booking) error {
				b.Cancel()
				return errors.New("boom")
			},
			expectErr:  errors.New("boom"),
			wantActive: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := memory.NewBookingStore()
			b := builder.NewBookingBuilder().MustBuildDomain()
			require.NoError(t, store.Append(ctx, b))

			_, err := store.UpdateByKey(ctx, tc.id(b.ID()), tc.fn)

			switch {
			case tc.expectKind != "":
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
			case tc.expectErr != nil:
				assert.EqualError(t, err, tc.expectErr.Error())
			default:
				require.NoError(t, err)
			}

			stored, err := store.ListFiltered(ctx, booking.Filter{})
			require.NoError(t, err)
			require.Len(t, stored, 1)
			assert.Equal(t, tc.wantActive, stored[0].IsActive())
		})
	}
}

func TestCollection_ConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	store := memory.NewBookingStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Append(ctx, builder.NewBookingBuilder().MustBuildDomain()))
		}()
	}
	wg.Wait()

	all, err := store.ListFiltered(ctx, booking.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
