package change_appointment_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Jelenicat/abeauty/internal/api/handlers"
	"github.com/Jelenicat/abeauty/internal/service/appointments"
)

const (
	msgInvalidRequestBody  = "neispravno telo zahteva"
	msgAppointmentNotFound = "termin nije pronađen"
	msgInvalidStatus       = "nepoznat status"
	msgInvalidTransition   = "nedozvoljena promena statusa"
)

// ChangeStatusRequest HTTP request model
type ChangeStatusRequest struct {
	Status string `json:"status"` // booked | confirmed | cancelled | noshow
}

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

// Handle PATCH /api/v1/appointments/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["id"]

	var req ChangeStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/%s/status - Invalid request body: %v", appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ChangeStatus(r.Context(), appointmentID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/%s/status - Not found", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("PATCH /appointments/%s/status - Invalid status %q", appointmentID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrInvalidTransition), errors.Is(err, appointments.ErrNotCancellable):
			h.logger.Warn("PATCH /appointments/%s/status - Invalid transition to %q", appointmentID, req.Status)
			handlers.RespondUnprocessable(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /appointments/%s/status - Failed: %v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/%s/status - Now %s", appointmentID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
