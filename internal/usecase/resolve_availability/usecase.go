package resolve_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
)

// UseCase use case для определения классификации времени специалиста
type UseCase struct {
	ruleRepo RuleRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(ruleRepo RuleRepository, logger Logger) *UseCase {
	return &UseCase{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

// Execute возвращает классификацию (disponivel, folga, presencial, online, nao_configurado)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	date, at, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ResolveAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Правила специалиста
	rules, err := uc.ruleRepo.ListByProfessional(ctx, req.ProfessionalID)
	if err != nil {
		uc.logger.Error("ResolveAvailability: failed to get rules for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get availability rules: %v", ErrInternal, err)
	}

	// 3. Разрешение приоритета правил
	class, err := availability.NewResolver(availability.NewRuleSet(rules)).Resolve(req.ProfessionalID, date, at)
	if err != nil {
		if errors.Is(err, availability.ErrOverlappingRules) {
			uc.logger.Warn("ResolveAvailability: professional=%d: %v", req.ProfessionalID, err)
			return nil, fmt.Errorf("%w: %v", ErrRuleConflict, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("ResolveAvailability: professional=%d, %s %s -> %s",
		req.ProfessionalID, req.Date, at, class)

	return &Response{
		ProfessionalID: req.ProfessionalID,
		Date:           date,
		Time:           at,
		Classification: class,
	}, nil
}
