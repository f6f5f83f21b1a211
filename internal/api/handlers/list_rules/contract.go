package list_rules

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/rules/models"
)

type RulesService interface {
	ListByProfessional(ctx context.Context, professionalID int64) (*models.RuleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
