package rules

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	ruleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/availability_rule"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/rules/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Service сервис управления правилами доступности
type Service struct {
	ruleRepo  RuleRepository
	txManager TxManager
	validate  *validator.Validate
	logger    Logger
}

// NewService создает новый экземпляр сервиса правил
func NewService(
	ruleRepo RuleRepository,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		ruleRepo:  ruleRepo,
		txManager: txManager,
		validate:  validator.New(),
		logger:    logger,
	}
}

// Create создает правило доступности
// Проверка пересечений и вставка выполняются в одной SERIALIZABLE транзакции
func (s *Service) Create(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Create: creating rule for professional=%d by user=%d", req.ProfessionalID, req.UserID)

	// 1. Валидируем входные данные
	rule, err := s.toDomainRule(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем пересечения и сохраняем правило
	var created *domain.AvailabilityRule
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		existing, err := s.ruleRepo.ListByProfessional(ctx, rule.ProfessionalID)
		if err != nil {
			return fmt.Errorf("%w: failed to list rules: %w", ErrInternal, err)
		}

		candidates := append(existing, rule)
		for _, overlap := range availability.FindOverlaps(candidates) {
			if overlap.Second == rule {
				return fmt.Errorf("%w: rule id=%d %s-%s", ErrRuleOverlap,
					overlap.First.ID, overlap.First.StartTime, overlap.First.EndTime)
			}
		}

		created, err = s.ruleRepo.Create(ctx, rule)
		if err != nil {
			return fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrRuleOverlap) {
			s.logger.Warn("Create: %v", err)
			return nil, err
		}
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			s.logger.Warn("Create: concurrent rule update for professional=%d: %v", req.ProfessionalID, err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
		}
		s.logger.Error("Create: failed to create rule for professional=%d: %v", req.ProfessionalID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created rule id=%d", created.ID)
	return models.FromDomainRule(created), nil
}

// ListByProfessional возвращает правила специалиста
// Публичный метод - доступен всем
func (s *Service) ListByProfessional(ctx context.Context, professionalID int64) (*models.RuleListResponse, error) {
	s.logger.Info("ListByProfessional: fetching rules for professional=%d", professionalID)

	rules, err := s.ruleRepo.ListByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("ListByProfessional: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: ListByProfessional - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRuleList(rules), nil
}

// Delete удаляет правило
func (s *Service) Delete(ctx context.Context, userID, ruleID int64) error {
	s.logger.Info("Delete: deleting rule id=%d by user=%d", ruleID, userID)

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// 1. Проверяем существование правила
		rule, err := s.ruleRepo.GetByID(ctx, ruleID)
		if err != nil {
			if errors.Is(err, ruleRepo.ErrRuleNotFound) {
				return ErrRuleNotFound
			}
			return fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
		}

		// 2. Удаляем правило
		if err := s.ruleRepo.Delete(ctx, rule.ID); err != nil {
			if errors.Is(err, ruleRepo.ErrRuleNotFound) {
				return ErrRuleNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
		}

		s.logger.Info("Delete: rule id=%d of professional=%d removed", rule.ID, rule.ProfessionalID)
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrRuleNotFound):
			s.logger.Warn("Delete: rule id=%d not found", ruleID)
			return ErrRuleNotFound
		case errors.Is(err, txmanager.ErrSerializationFailure):
			s.logger.Warn("Delete: concurrent rule update for rule id=%d: %v", ruleID, err)
			return fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
		case errors.Is(err, ErrInternal):
			s.logger.Error("Delete: failed to delete rule id=%d: %v", ruleID, err)
			return err
		default:
			s.logger.Error("Delete: failed to delete rule id=%d: %v", ruleID, err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	return nil
}

// toDomainRule валидирует запрос и собирает доменное правило
func (s *Service) toDomainRule(req *models.CreateRuleRequest) (*domain.AvailabilityRule, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	class, err := domain.ParseClassification(req.Classification)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	rule := &domain.AvailabilityRule{
		ProfessionalID: req.ProfessionalID,
		Weekday:        req.Weekday,
		StartTime:      start,
		EndTime:        end,
		Classification: class,
	}

	if req.SpecificDate != nil {
		date, err := time.Parse(domain.DateFormat, *req.SpecificDate)
		if err != nil {
			return nil, fmt.Errorf("%w: specificDate: %v", ErrInvalidInput, err)
		}
		rule.SpecificDate = &date
	}

	if req.Note != nil {
		note := strings.TrimSpace(*req.Note)
		if note != "" {
			rule.Note = &note
		}
	}

	if !rule.IsValid() {
		return nil, fmt.Errorf("%w: rule must have exactly one of weekday/specificDate and startTime before endTime", ErrInvalidInput)
	}

	return rule, nil
}
