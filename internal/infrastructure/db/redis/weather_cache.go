package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskhub/todo-system/internal/core/ports"
)

const weatherTTL = time.Hour

// WeatherCache decorates a WeatherProvider with a day-keyed Redis cache so
// the upstream API is hit at most once per TTL window. Cache failures fall
// through to the source: a cold or unreachable Redis never blocks a todo
// from being created.
// Key format: weather:<yyyy-mm-dd>
type WeatherCache struct {
	client *redis.Client
	source ports.WeatherProvider
	now    func() time.Time
}

// NewWeatherCache creates a WeatherCache wrapping the given Redis client and
// upstream provider.
func NewWeatherCache(client *redis.Client, source ports.WeatherProvider) *WeatherCache {
	return &WeatherCache{client: client, source: source, now: time.Now}
}

func (w *WeatherCache) TodayWeather(ctx context.Context) (string, error) {
	key := w.key()

	if cached, err := w.client.Get(ctx, key).Result(); err == nil && cached != "" {
		return cached, nil
	}

	weather, err := w.source.TodayWeather(ctx)
	if err != nil {
		return "", err
	}

	_ = w.client.Set(ctx, key, weather, weatherTTL).Err()
	return weather, nil
}

func (w *WeatherCache) key() string {
	return fmt.Sprintf("weather:%s", w.now().UTC().Format("2006-01-02"))
}
