package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/Jelenicat/abeauty/internal/api/handlers"
	"github.com/Jelenicat/abeauty/internal/domain"
	getAvailableSlots "github.com/Jelenicat/abeauty/internal/usecase/get_available_slots"
)

const (
	msgMissingServiceID    = "parametar serviceId je obavezan"
	msgInvalidDate         = "neispravan format datuma, očekuje se YYYY-MM-DD"
	msgServiceNotFound     = "usluga nije pronađena"
	msgEmployeeNotFound    = "zaposleni nije pronađen"
	msgEmployeeNotEligible = "zaposleni ne pruža izabranu uslugu"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?serviceId=...&date=YYYY-MM-DD&employeeId=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceID := query.Get("serviceId")
	if serviceID == "" {
		h.logger.Warn("GET /availability - Missing serviceId")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date %q: %v", query.Get("date"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	}
	if employeeID := query.Get("employeeId"); employeeID != "" {
		req.EmployeeID = &employeeID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /availability - Service not found: service=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrEmployeeNotFound):
			h.logger.Warn("GET /availability - Employee not found: employee=%v", req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, getAvailableSlots.ErrEmployeeNotEligible):
			h.logger.Warn("GET /availability - Employee not eligible: employee=%v, service=%s",
				req.EmployeeID, serviceID)
			handlers.RespondUnprocessable(w, msgEmployeeNotEligible)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingServiceID)

		default:
			h.logger.Error("GET /availability - Failed: service=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - %d slots for service=%s on %s",
		len(result.Slots), serviceID, result.DateKey)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
