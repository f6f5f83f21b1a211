package verify_agenda

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// UseCase use case для построения сетки агенды специалиста
type UseCase struct {
	bookingRepo BookingRepository
	ruleRepo    RuleRepository
	cfg         Config
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, ruleRepo RuleRepository, cfg Config, logger Logger) *UseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.DayStart == "" {
		cfg.DayStart = types.MustTimeString(domain.DefaultAgendaStart)
	}
	if cfg.DayEnd == "" {
		cfg.DayEnd = types.MustTimeString(domain.DefaultAgendaEnd)
	}

	return &UseCase{
		bookingRepo: bookingRepo,
		ruleRepo:    ruleRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

// Execute строит сетку дня: ocupado для ячеек с записью, иначе классификация правил
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	day, err := validateRequest(req, uc.cfg.Location)
	if err != nil {
		uc.logger.Warn("VerifyAgenda: validation failed: %v", err)
		return nil, err
	}

	// 2. Правила и записи специалиста загружаем параллельно
	var (
		rules    []*domain.AvailabilityRule
		bookings []*domain.Booking
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		rules, err = uc.ruleRepo.ListByProfessional(gctx, req.ProfessionalID)
		if err != nil {
			return fmt.Errorf("%w: failed to get availability rules: %v", ErrInternal, err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		bookings, err = uc.bookingRepo.List(gctx, domain.BookingsFilter{
			ProfessionalID: ptr.Ptr(req.ProfessionalID),
			From:           day,
			To:             day.AddDate(0, 0, 1),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("VerifyAgenda: professional=%d: %v", req.ProfessionalID, err)
		return nil, err
	}

	// 3. Сетка дня
	cells, err := availability.BuildAgenda(
		availability.NewResolver(availability.NewRuleSet(rules)),
		req.ProfessionalID,
		day,
		bookings,
		availability.AgendaOptions{
			DayStart:              uc.cfg.DayStart,
			DayEnd:                uc.cfg.DayEnd,
			StepMinutes:           uc.cfg.StepMinutes,
			DefaultBookingMinutes: uc.cfg.DefaultBookingMinutes,
			Location:              uc.cfg.Location,
		},
	)
	if err != nil {
		if errors.Is(err, availability.ErrOverlappingRules) {
			uc.logger.Warn("VerifyAgenda: professional=%d: %v", req.ProfessionalID, err)
			return nil, fmt.Errorf("%w: %v", ErrRuleConflict, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("VerifyAgenda: professional=%d, date=%s, %d cells, %d bookings",
		req.ProfessionalID, req.Date, len(cells), len(bookings))

	return &Response{
		ProfessionalID: req.ProfessionalID,
		Date:           day,
		Cells:          cells,
	}, nil
}
