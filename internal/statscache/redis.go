package statscache

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-manager/internal/logging"
)

const (
	keyPrefix = "stats:day:"

	// um dia: o valor vira obsoleto quando a data vira de qualquer forma
	defaultTTL = 24 * time.Hour
)

// Redis é o backend compartilhado do cache de contagens diárias.
// Falha de rede degrada para cache miss, nunca para erro do consumidor.
type Redis struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{
		client: client,
		log:    logging.For("statscache"),
	}
}

func (r *Redis) Get(ctx context.Context, date string) (int64, bool) {
	val, err := r.client.Get(ctx, keyPrefix+date).Result()
	if err == redis.Nil {
		return 0, false
	}
	if err != nil {
		r.log.Warn().Err(err).Str("date", date).Msg("cache get failed")
		return 0, false
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return count, true
}

func (r *Redis) Set(ctx context.Context, date string, count int64) {
	if err := r.client.Set(
		ctx,
		keyPrefix+date,
		strconv.FormatInt(count, 10),
		defaultTTL,
	).Err(); err != nil {
		r.log.Warn().Err(err).Str("date", date).Msg("cache set failed")
	}
}

func (r *Redis) Invalidate(ctx context.Context, date string) {
	if err := r.client.Del(ctx, keyPrefix+date).Err(); err != nil {
		r.log.Warn().Err(err).Str("date", date).Msg("cache invalidate failed")
	}
}

var _ DayCounts = (*Redis)(nil)
