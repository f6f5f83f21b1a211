package resolve_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	resolveAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/resolve_availability"
)

const (
	msgInvalidProfessionalID = "некорректный ID специалиста"
	msgMissingDateTime       = "параметры date и time обязательны"
	msgInvalidDateTime       = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgRuleConflict          = "правила доступности специалиста пересекаются"
)

type Handler struct {
	useCase ResolveAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase ResolveAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/availability
// Query params: date (YYYY-MM-DD), time (HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/availability - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	date := r.URL.Query().Get("date")
	at := r.URL.Query().Get("time")
	if date == "" || at == "" {
		h.logger.Warn("GET /professionals/{id}/availability - Missing date or time")
		handlers.RespondBadRequest(w, msgMissingDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &resolveAvailability.Request{
		ProfessionalID: professionalID,
		Date:           date,
		Time:           at,
	})
	if err != nil {
		switch {
		case errors.Is(err, resolveAvailability.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateTime)

		case errors.Is(err, resolveAvailability.ErrRuleConflict):
			h.logger.Warn("GET /professionals/{id}/availability - Rule conflict: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondConflict(w, msgRuleConflict)

		default:
			h.logger.Error("GET /professionals/{id}/availability - Failed to resolve: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
