package delete_shift

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Jelenicat/abeauty/internal/api/handlers"
	"github.com/Jelenicat/abeauty/internal/domain"
	"github.com/Jelenicat/abeauty/internal/service/appointments"
)

const (
	msgInvalidDate   = "neispravan format datuma, očekuje se YYYY-MM-DD"
	msgShiftNotFound = "smena nije pronađena"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/employees/{employeeId}/shifts/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeID := vars["employeeId"]
	dateKey := vars["date"]

	if _, err := time.Parse(domain.DateFormat, dateKey); err != nil {
		h.logger.Warn("DELETE /employees/%s/shifts/%s - Invalid date: %v", employeeID, dateKey, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.DeleteShift(r.Context(), employeeID, dateKey); err != nil {
		if errors.Is(err, appointments.ErrShiftNotFound) {
			h.logger.Warn("DELETE /employees/%s/shifts/%s - Not found", employeeID, dateKey)
			handlers.RespondNotFound(w, msgShiftNotFound)
			return
		}
		h.logger.Error("DELETE /employees/%s/shifts/%s - Failed: %v", employeeID, dateKey, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /employees/%s/shifts/%s - Deleted", employeeID, dateKey)
	w.WriteHeader(http.StatusNoContent)
}
