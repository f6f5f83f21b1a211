package verify_agenda

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	verifyAgenda "github.com/m04kA/SMC-AvailabilityService/internal/usecase/verify_agenda"
)

const (
	msgInvalidProfessionalID = "некорректный ID специалиста"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRuleConflict          = "правила доступности специалиста пересекаются"
)

type Handler struct {
	useCase VerifyAgendaUseCase
	logger  Logger
}

func NewHandler(useCase VerifyAgendaUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/agenda?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/agenda - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /professionals/{id}/agenda - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &verifyAgenda.Request{ProfessionalID: professionalID, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, verifyAgenda.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/agenda - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, verifyAgenda.ErrRuleConflict):
			h.logger.Warn("GET /professionals/{id}/agenda - Rule conflict: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondConflict(w, msgRuleConflict)

		default:
			h.logger.Error("GET /professionals/{id}/agenda - Failed to build agenda: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/agenda - Agenda built: professional_id=%d, date=%s, cells=%d",
		professionalID, date, len(result.Cells))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
