package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	catalogClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-AvailabilityService/pkg/tracing"
)

var tracer = tracing.Tracer("usecase/get_available_slots")

// UseCase use case для получения свободных слотов услуги на горизонте в несколько дней
type UseCase struct {
	bookingRepo   BookingRepository
	ruleRepo      RuleRepository
	catalogClient CatalogServiceClient
	occupancy     OccupancyProvider
	observer      SlotsObserver
	timeProvider  TimeProvider
	enumerator    *availability.Enumerator
	cfg           Config
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// observer может быть nil (метрики выключены)
func NewUseCase(
	bookingRepo BookingRepository,
	ruleRepo RuleRepository,
	catalogClient CatalogServiceClient,
	occupancy OccupancyProvider,
	observer SlotsObserver,
	cfg Config,
	logger Logger,
) *UseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = domain.DefaultHorizonDays
	}

	return &UseCase{
		bookingRepo:   bookingRepo,
		ruleRepo:      ruleRepo,
		catalogClient: catalogClient,
		occupancy:     occupancy,
		observer:      observer,
		timeProvider:  &RealTimeProvider{},
		enumerator:    availability.NewEnumerator(cfg.Enumerator),
		cfg:           cfg,
		logger:        logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := tracer.Start(ctx, "GetAvailableSlots")
	defer span.End()

	uc.logger.Info("GetAvailableSlots: service=%d, weekday=%s, period=%q, mode=%q",
		req.ServiceID, req.Weekday, req.Period, req.Mode)

	// 1. Валидация входных данных
	q, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. "Сегодня" и "сейчас" в опорном часовом поясе
	now := uc.timeProvider.Now().In(uc.cfg.Location)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.cfg.Location)
	to := from.AddDate(0, 0, uc.cfg.HorizonDays+1)

	// 3. Параллельно загружаем записи, специалистов услуги, правила и загрузку
	var (
		bookings  []*domain.Booking
		catalog   *catalogClient.ServiceProfessionals
		rules     []*domain.AvailabilityRule
		occupancy map[int64]domain.Occupancy
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		bookings, err = uc.bookingRepo.List(gctx, domain.BookingsFilter{From: from, To: to})
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		catalog, err = uc.catalogClient.GetServiceProfessionals(gctx, req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogClient.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			return fmt.Errorf("%w: failed to get professionals: %v", ErrInternal, err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		rules, err = uc.ruleRepo.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("%w: failed to get availability rules: %v", ErrInternal, err)
		}
		return nil
	})

	g.Go(func() error {
		// Загрузка носит справочный характер: при ошибке отдаем нулевые счетчики
		snapshot, err := uc.occupancy.GetOccupancy(gctx)
		if err != nil {
			uc.logger.Warn("GetAvailableSlots: occupancy unavailable, using zero counters: %v", err)
			snapshot = map[int64]domain.Occupancy{}
		}
		occupancy = snapshot
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, err
		}
		uc.logger.Error("GetAvailableSlots: %v", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	// 4. Перебор слотов
	service, professionals := catalog.ToDomain()
	ruleSet := availability.NewRuleSet(rules)
	if skipped := len(ruleSet.Skipped()); skipped > 0 {
		uc.logger.Warn("GetAvailableSlots: %d invalid availability rules ignored", skipped)
	}

	resolved := uc.enumerator.Enumerate(
		availability.Query{
			ServiceID:   req.ServiceID,
			Weekday:     q.weekday,
			Period:      q.period,
			Mode:        q.mode,
			Now:         now,
			HorizonDays: uc.cfg.HorizonDays,
		},
		availability.Snapshot{
			Rules:         ruleSet,
			Professionals: professionals,
			Bookings:      bookings,
			Occupancy:     occupancy,
			Location:      uc.cfg.Location,
		},
	)

	span.SetAttributes(
		attribute.Int64("service.id", req.ServiceID),
		attribute.Int("professionals.count", len(professionals)),
		attribute.Int("bookings.count", len(bookings)),
		attribute.Int("slots.count", len(resolved)),
	)
	if uc.observer != nil {
		uc.observer.ObserveSlots(string(q.mode), len(resolved))
	}

	uc.logger.Info("GetAvailableSlots: found %d slots for service=%d (%d professionals, %d bookings)",
		len(resolved), req.ServiceID, len(professionals), len(bookings))

	return &Response{
		ServiceID:   req.ServiceID,
		ServiceName: service.Name,
		Weekday:     q.weekday,
		Period:      q.period,
		Mode:        q.mode,
		Slots:       toSlots(resolved, professionals),
	}, nil
}

func toSlots(resolved []domain.ResolvedSlot, professionals []domain.QualifiedProfessional) []Slot {
	names := make(map[int64]string, len(professionals))
	for _, p := range professionals {
		names[p.ProfessionalID] = p.Name
	}

	slots := make([]Slot, 0, len(resolved))
	for _, s := range resolved {
		end, _ := s.StartTime.AddMinutes(s.DurationMinutes)
		slots = append(slots, Slot{
			ProfessionalID:   s.ProfessionalID,
			ProfessionalName: names[s.ProfessionalID],
			Date:             s.Date,
			StartTime:        s.StartTime,
			EndTime:          end,
			DurationMinutes:  s.DurationMinutes,
			Classification:   s.Classification,
			Occupancy:        s.Occupancy,
		})
	}
	return slots
}
