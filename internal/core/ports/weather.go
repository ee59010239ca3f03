package ports

import "context"

// WeatherProvider resolves today's weather description, captured once per
// todo at creation time.
type WeatherProvider interface {
	TodayWeather(ctx context.Context) (string, error)
}
