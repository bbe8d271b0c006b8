package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Jelenicat/abeauty/internal/api/handlers"
	"github.com/Jelenicat/abeauty/internal/service/appointments"
)

const (
	msgAppointmentNotFound = "termin nije pronađen"
	msgNotCancellable      = "ovaj termin se ne može otkazati"
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

// Handle PATCH /api/v1/appointments/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["id"]

	result, err := h.service.Cancel(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/%s/cancel - Not found", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrNotCancellable), errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("PATCH /appointments/%s/cancel - Not cancellable", appointmentID)
			handlers.RespondUnprocessable(w, msgNotCancellable)

		default:
			h.logger.Error("PATCH /appointments/%s/cancel - Failed: %v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/%s/cancel - Cancelled", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
