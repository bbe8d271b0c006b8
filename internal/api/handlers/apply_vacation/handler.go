package apply_vacation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Jelenicat/abeauty/internal/api/handlers"
	applyVacation "github.com/Jelenicat/abeauty/internal/usecase/apply_vacation"
)

const (
	msgInvalidRequestBody = "neispravno telo zahteva"
	msgInvalidDate        = "neispravan format datuma, očekuje se YYYY-MM-DD"
	msgEmployeeNotFound   = "zaposleni nije pronađen"
	msgRangeTooLong       = "period odmora je predugačak"
)

type Handler struct {
	useCase ApplyVacationUseCase
	logger  Logger
}

func NewHandler(useCase ApplyVacationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/employees/{employeeId}/vacations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID := mux.Vars(r)["employeeId"]

	var req ApplyVacationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /employees/%s/vacations - Invalid request body: %v", employeeID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(employeeID)
	if err != nil {
		h.logger.Warn("POST /employees/%s/vacations - Failed to parse request: %v", employeeID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, applyVacation.ErrEmployeeNotFound):
			h.logger.Warn("POST /employees/%s/vacations - Employee not found", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, applyVacation.ErrRangeTooLong):
			h.logger.Warn("POST /employees/%s/vacations - Range too long: %s..%s",
				employeeID, req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, applyVacation.ErrInvalidInput):
			h.logger.Warn("POST /employees/%s/vacations - Invalid input: %v", employeeID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /employees/%s/vacations - Failed: %v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /employees/%s/vacations - Covered %d days", employeeID, result.DaysCovered)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
