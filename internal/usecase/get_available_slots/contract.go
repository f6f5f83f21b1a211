package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/catalogservice"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	// List получает записи, пересекающие период (по всем специалистам и услугам)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// RuleRepository интерфейс репозитория правил доступности
type RuleRepository interface {
	ListAll(ctx context.Context) ([]*domain.AvailabilityRule, error)
}

// CatalogServiceClient интерфейс клиента каталога услуг
type CatalogServiceClient interface {
	GetServiceProfessionals(ctx context.Context, serviceID int64) (*catalogservice.ServiceProfessionals, error)
}

// OccupancyProvider источник загрузки специалистов (кэш поверх сервиса статистики)
type OccupancyProvider interface {
	GetOccupancy(ctx context.Context) (map[int64]domain.Occupancy, error)
}

// SlotsObserver метрика количества слотов в ответе
type SlotsObserver interface {
	ObserveSlots(mode string, count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
