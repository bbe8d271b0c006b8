package list_services

import (
	"errors"
	"net/http"

	"github.com/Jelenicat/abeauty/internal/api/handlers"
	"github.com/Jelenicat/abeauty/internal/service/catalog"
)

const msgCategoryNotFound = "kategorija nije pronađena"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services?categoryId=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var categoryID *string
	if v := r.URL.Query().Get("categoryId"); v != "" {
		categoryID = &v
	}

	result, err := h.service.ListServices(r.Context(), categoryID)
	if err != nil {
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			h.logger.Warn("GET /services - Category %q not found", *categoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)
			return
		}
		h.logger.Error("GET /services - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
