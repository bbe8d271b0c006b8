package get_day_schedule

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Jelenicat/abeauty/internal/api/handlers"
	"github.com/Jelenicat/abeauty/internal/domain"
)

const msgInvalidDate = "neispravan format datuma, očekuje se YYYY-MM-DD"

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

// Handle GET /api/v1/schedule/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateKey := mux.Vars(r)["date"]

	if _, err := time.Parse(domain.DateFormat, dateKey); err != nil {
		h.logger.Warn("GET /schedule/%s - Invalid date: %v", dateKey, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetDaySchedule(r.Context(), dateKey)
	if err != nil {
		h.logger.Error("GET /schedule/%s - Failed: %v", dateKey, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
