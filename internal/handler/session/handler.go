// Package session exposes the server-held session over HTTP so a thin
// client does not have to carry history itself.
package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/satriadwi/ruangperan/backend/internal/handler/request"
	"github.com/satriadwi/ruangperan/backend/internal/model/persona"
	sessionservice "github.com/satriadwi/ruangperan/backend/internal/service/session"
	"github.com/satriadwi/ruangperan/backend/pkg/utils"
)

// Handler drives the session manager.
type Handler struct {
	svc       *sessionservice.Service
	personas  persona.Store
	maxUpload int64
}

// New creates the session handler.
func New(svc *sessionservice.Service, personas persona.Store, maxUpload int64) *Handler {
	return &Handler{svc: svc, personas: personas, maxUpload: maxUpload}
}

// RegisterRoutes mounts the session routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/session", h.handleState)
	r.Post("/session/persona", h.handleSelect)
	r.Post("/session/turn", h.handleTurn)
	r.Get("/session/transcript", h.handleTranscript)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	active := h.svc.ActivePersona()
	transcript, _ := h.svc.Transcript(active.ID)
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"persona":    active,
		"transcript": transcript,
	})
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		PersonaID string `json:"personaId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, ok := h.personas.FindByID(payload.PersonaID)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "persona not found")
		return
	}

	transcript, changed := h.svc.SelectPersona(payload.PersonaID)
	if !changed {
		// Re-selecting the active persona is a no-op.
		utils.RespondJSON(w, http.StatusOK, map[string]any{"changed": false})
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"changed":    true,
		"persona":    p,
		"transcript": transcript,
	})
}

func (h *Handler) handleTurn(w http.ResponseWriter, r *http.Request) {
	turn, cleanup, err := request.ParseTurn(r, h.maxUpload)
	if err != nil {
		cleanup()
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer cleanup()

	reply, err := h.svc.SubmitTurn(r.Context(), turn.Message, turn.Attachment)
	switch {
	case errors.Is(err, sessionservice.ErrEmptyTurn):
		utils.RespondError(w, http.StatusBadRequest, "Pesan atau file tidak boleh kosong")
		return
	case errors.Is(err, sessionservice.ErrTurnInFlight):
		utils.RespondError(w, http.StatusConflict, "previous turn still in flight")
		return
	case err != nil:
		// The transcript already carries the failure notice.
		utils.RespondErrorDetails(w, http.StatusInternalServerError, "Terjadi kesalahan pada server.", reply.Content)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{"reply": reply})
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("persona")
	if id == "" {
		id = h.svc.ActivePersona().ID
	}

	transcript, ok := h.svc.Transcript(id)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "persona not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"transcript": transcript})
}
