package apply_shift_template

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Jelenicat/abeauty/internal/api/handlers"
	applyShiftTemplate "github.com/Jelenicat/abeauty/internal/usecase/apply_shift_template"
)

const (
	msgInvalidRequestBody = "neispravno telo zahteva"
	msgEmployeeNotFound   = "zaposleni nije pronađen"
)

type Handler struct {
	useCase ApplyShiftTemplateUseCase
	logger  Logger
}

func NewHandler(useCase ApplyShiftTemplateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/employees/{employeeId}/shift-template
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID := mux.Vars(r)["employeeId"]

	var req ApplyTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /employees/%s/shift-template - Invalid request body: %v", employeeID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(employeeID)
	if err != nil {
		h.logger.Warn("POST /employees/%s/shift-template - Failed to parse request: %v", employeeID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, applyShiftTemplate.ErrEmployeeNotFound):
			h.logger.Warn("POST /employees/%s/shift-template - Employee not found", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, applyShiftTemplate.ErrInvalidInput):
			h.logger.Warn("POST /employees/%s/shift-template - Invalid input: %v", employeeID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /employees/%s/shift-template - Failed: %v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /employees/%s/shift-template - Applied to %d days", employeeID, result.DaysApplied)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
