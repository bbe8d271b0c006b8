package create_appointment

import (
	"errors"
	"net/http"

	"github.com/Jelenicat/abeauty/internal/api/handlers"
	createAppointment "github.com/Jelenicat/abeauty/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "neispravno telo zahteva"
	msgInvalidDateOrTime   = "neispravan format datuma ili vremena, očekuje se YYYY-MM-DD i HH:MM"
	msgSlotTaken           = "izabrani termin je već zauzet"
	msgOutOfSalonHours     = "termin je van radnog vremena salona"
	msgOutsideShift        = "termin je van smene zaposlenog"
	msgEmployeeNotFound    = "zaposleni nije pronađen"
	msgServiceNotFound     = "usluga nije pronađena"
	msgEmployeeNotEligible = "zaposleni ne pruža izabranu uslugu"
	msgInvalidDate         = "datum termina ne može biti u prošlosti"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: employee=%s, date=%s, time=%s",
				req.EmployeeID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrOutOfSalonHours):
			h.logger.Warn("POST /appointments - Outside salon hours: employee=%s, date=%s, time=%s",
				req.EmployeeID, req.Date, req.StartTime)
			handlers.RespondUnprocessable(w, msgOutOfSalonHours)

		case errors.Is(err, createAppointment.ErrOutsideShift):
			h.logger.Warn("POST /appointments - Outside shift: employee=%s, date=%s, time=%s",
				req.EmployeeID, req.Date, req.StartTime)
			handlers.RespondUnprocessable(w, msgOutsideShift)

		case errors.Is(err, createAppointment.ErrEmployeeNotFound):
			h.logger.Warn("POST /appointments - Employee not found: employee=%s", req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrEmployeeNotEligible):
			h.logger.Warn("POST /appointments - Employee not eligible: employee=%s, service=%s",
				req.EmployeeID, req.ServiceID)
			handlers.RespondUnprocessable(w, msgEmployeeNotEligible)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Date in the past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: employee=%s, error=%v",
				req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%s, employee=%s, date=%s",
		result.ID, result.EmployeeID, result.DateKey)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
