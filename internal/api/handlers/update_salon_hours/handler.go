package update_salon_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Jelenicat/abeauty/internal/api/handlers"
	"github.com/Jelenicat/abeauty/internal/service/settings"
)

const (
	msgInvalidRequestBody = "neispravno telo zahteva"
	msgInvalidWeekday     = "neispravan dan u nedelji, očekuje se 0 (nedelja) do 6 (subota)"
	msgInvalidHours       = "neispravno radno vreme"
)

// UpdateHoursRequest HTTP request model
type UpdateHoursRequest struct {
	Open  string `json:"open"`  // "HH:MM"
	Close string `json:"close"` // "HH:MM"
}

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings/hours/{weekday}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	weekdayRaw := mux.Vars(r)["weekday"]

	weekday, err := strconv.Atoi(weekdayRaw)
	if err != nil {
		h.logger.Warn("PUT /settings/hours/%s - Invalid weekday: %v", weekdayRaw, err)
		handlers.RespondBadRequest(w, msgInvalidWeekday)
		return
	}

	var req UpdateHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings/hours/%d - Invalid request body: %v", weekday, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateHours(r.Context(), weekday, req.Open, req.Close)
	if err != nil {
		if errors.Is(err, settings.ErrInvalidInput) {
			h.logger.Warn("PUT /settings/hours/%d - Invalid input: %v", weekday, err)
			handlers.RespondBadRequest(w, msgInvalidHours)
			return
		}
		h.logger.Error("PUT /settings/hours/%d - Failed: %v", weekday, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /settings/hours/%d - Now %s-%s", weekday, result.Open, result.Close)
	handlers.RespondJSON(w, http.StatusOK, result)
}
