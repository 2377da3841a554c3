package cache

import (
	"context"
	"log/slog"
	"time"

	"pro-video-services/internal/domain/booking"
	"pro-video-services/internal/infra"
	"pro-video-services/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const slotKeyPrefix = "booking:slot:"

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// RedisSlotLocker serialises bookings of one slot across processes.
type RedisSlotLocker struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisSlotLocker(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *RedisSlotLocker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &RedisSlotLocker{client: client, ttl: ttl, logger: logger}
}

func SlotKey(date booking.Date, slot booking.Slot) string {
	return slotKeyPrefix + date.String() + ":" + slot.String()
}

func (l *RedisSlotLocker) Lock(ctx context.Context, date booking.Date, slot booking.Slot) (func(), error) {
	key := SlotKey(date, slot)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, infra.WrapRepoErr(l.logger, infra.KindUpstream, "failed to acquire slot lock", err)
	}
	if !ok {
		return nil, infra.NewRepoErr(infra.KindLocked, "slot is being booked: "+key)
	}

	release := func() {
		// the caller's context may already be done once the booking is written
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
			l.logger.Warn("failed to release slot lock", slog.String("key", key), slog.Any("error", err))
		}
	}
	return release, nil
}
