package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модели

// CreateRuleRequest запрос на создание правила доступности
// Должен быть задан ровно один из Weekday и SpecificDate
type CreateRuleRequest struct {
	UserID         int64   `json:"-"`
	ProfessionalID int64   `json:"-" validate:"required,gt=0"`
	Weekday        *int    `json:"weekday,omitempty" validate:"omitempty,min=0,max=6"`
	SpecificDate   *string `json:"specificDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime      string  `json:"startTime" validate:"required"`
	EndTime        string  `json:"endTime" validate:"required"`
	Classification string  `json:"classification" validate:"required,oneof=disponivel folga presencial online"`
	Note           *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// Response модели

// RuleResponse ответ с данными правила
type RuleResponse struct {
	ID             int64     `json:"id"`
	ProfessionalID int64     `json:"professionalId"`
	Weekday        *int      `json:"weekday,omitempty"`
	SpecificDate   *string   `json:"specificDate,omitempty"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	Classification string    `json:"classification"`
	Note           *string   `json:"note,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// RuleListResponse ответ со списком правил
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// Методы конвертации

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r *domain.AvailabilityRule) *RuleResponse {
	if r == nil {
		return nil
	}

	resp := &RuleResponse{
		ID:             r.ID,
		ProfessionalID: r.ProfessionalID,
		Weekday:        r.Weekday,
		StartTime:      r.StartTime.String(),
		EndTime:        r.EndTime.String(),
		Classification: string(r.Classification),
		Note:           r.Note,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.SpecificDate != nil {
		date := r.SpecificDate.Format(domain.DateFormat)
		resp.SpecificDate = &date
	}

	return resp
}

// FromDomainRuleList конвертирует список domain моделей в DTO
func FromDomainRuleList(rules []*domain.AvailabilityRule) *RuleListResponse {
	resp := &RuleListResponse{
		Rules: make([]RuleResponse, 0, len(rules)),
	}

	for _, rule := range rules {
		if ruleResp := FromDomainRule(rule); ruleResp != nil {
			resp.Rules = append(resp.Rules, *ruleResp)
		}
	}

	return resp
}
