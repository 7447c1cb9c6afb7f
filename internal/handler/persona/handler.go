package persona

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/satriadwi/ruangperan/backend/internal/model/persona"
	"github.com/satriadwi/ruangperan/backend/pkg/utils"
)

// Handler serves the persona catalogue so clients can build their role menu
// instead of hard-coding it.
type Handler struct {
	personas persona.Store
}

// New creates the persona handler.
func New(personas persona.Store) *Handler {
	return &Handler{personas: personas}
}

// RegisterRoutes mounts the persona routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/personas", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.personas.List())
}
