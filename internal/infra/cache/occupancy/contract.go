package occupancy

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Store подмножество команд Redis, нужное кэшу (*redis.Client)
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Provider источник снимка загрузки (клиент сервиса статистики)
type Provider interface {
	GetOccupancy(ctx context.Context) (map[int64]domain.Occupancy, error)
}

// Metrics счетчики попаданий в кэш
type Metrics interface {
	CacheHit(cache string)
	CacheMiss(cache string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
