package reschedule_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Jelenicat/abeauty/internal/api/handlers"
	rescheduleAppointment "github.com/Jelenicat/abeauty/internal/usecase/reschedule_appointment"
)

const (
	msgInvalidRequestBody  = "neispravno telo zahteva"
	msgInvalidDateOrTime   = "neispravan format datuma ili vremena, očekuje se YYYY-MM-DD i HH:MM"
	msgAppointmentNotFound = "termin nije pronađen"
	msgAppointmentInactive = "otkazan termin se ne može pomeriti"
	msgSlotTaken           = "izabrani termin je već zauzet"
	msgOutOfSalonHours     = "termin je van radnog vremena salona"
	msgOutsideShift        = "termin je van smene zaposlenog"
	msgInvalidDate         = "datum termina ne može biti u prošlosti"
)

type Handler struct {
	useCase RescheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{id}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["id"]

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/%s/reschedule - Invalid request body: %v", appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID)
	if err != nil {
		h.logger.Warn("PATCH /appointments/%s/reschedule - Failed to parse request: %v", appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/%s/reschedule - Not found", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, rescheduleAppointment.ErrAppointmentInactive):
			h.logger.Warn("PATCH /appointments/%s/reschedule - Appointment inactive", appointmentID)
			handlers.RespondUnprocessable(w, msgAppointmentInactive)

		case errors.Is(err, rescheduleAppointment.ErrSlotTaken):
			h.logger.Warn("PATCH /appointments/%s/reschedule - Slot taken: date=%s, time=%s",
				appointmentID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, rescheduleAppointment.ErrOutOfSalonHours):
			h.logger.Warn("PATCH /appointments/%s/reschedule - Outside salon hours", appointmentID)
			handlers.RespondUnprocessable(w, msgOutOfSalonHours)

		case errors.Is(err, rescheduleAppointment.ErrOutsideShift):
			h.logger.Warn("PATCH /appointments/%s/reschedule - Outside shift", appointmentID)
			handlers.RespondUnprocessable(w, msgOutsideShift)

		case errors.Is(err, rescheduleAppointment.ErrInvalidDate):
			h.logger.Warn("PATCH /appointments/%s/reschedule - Date in the past: date=%s", appointmentID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, rescheduleAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/%s/reschedule - Invalid input: %v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /appointments/%s/reschedule - Failed: %v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/%s/reschedule - Moved to %s %s",
		result.ID, result.DateKey, result.StartTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
