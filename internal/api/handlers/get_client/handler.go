package get_client

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Jelenicat/abeauty/internal/api/handlers"
	"github.com/Jelenicat/abeauty/internal/service/reports"
)

const (
	msgInvalidPhone   = "neispravan broj telefona"
	msgClientNotFound = "klijent nije pronađen"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{phone}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := mux.Vars(r)["phone"]

	result, err := h.service.GetClient(r.Context(), phone)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidInput):
			h.logger.Warn("GET /clients/%s - Invalid phone: %v", phone, err)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, reports.ErrClientNotFound):
			h.logger.Warn("GET /clients/%s - Not found", phone)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("GET /clients/%s - Failed: %v", phone, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
