package chat

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/satriadwi/ruangperan/backend/internal/handler/request"
	"github.com/satriadwi/ruangperan/backend/internal/model/chat"
	"github.com/satriadwi/ruangperan/backend/internal/model/persona"
	"github.com/satriadwi/ruangperan/backend/internal/service/gemini"
	"github.com/satriadwi/ruangperan/backend/pkg/utils"
)

// Generator produces a reply for one turn. The server keeps no transcript
// here; the caller supplies the history every call.
type Generator interface {
	Reply(ctx context.Context, personaID, text string, history []chat.Message, att *chat.Attachment) (string, error)
}

// Handler serves the stateless proxy endpoint.
type Handler struct {
	gen       Generator
	maxUpload int64
}

// New creates the chat handler.
func New(gen Generator, maxUpload int64) *Handler {
	return &Handler{gen: gen, maxUpload: maxUpload}
}

// RegisterRoutes mounts the chat endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	turn, cleanup, err := request.ParseTurn(r, h.maxUpload)
	if err != nil {
		cleanup()
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer cleanup()

	role := turn.Role
	if role == "" {
		role = persona.DefaultID
	}

	reply, err := h.gen.Reply(r.Context(), role, turn.Message, turn.History, turn.Attachment)
	if err != nil {
		respondReplyError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// respondReplyError maps the assembler's error taxonomy onto the response
// contract. Bodies stay generic; details carry the short reason only.
func respondReplyError(w http.ResponseWriter, err error) {
	var attErr *gemini.AttachmentError
	var upErr *gemini.UpstreamError

	switch {
	case errors.Is(err, gemini.ErrEmptyRequest):
		utils.RespondError(w, http.StatusBadRequest, "Pesan atau file tidak boleh kosong")
	case errors.As(err, &attErr):
		utils.RespondErrorDetails(w, http.StatusInternalServerError, "Gagal memproses lampiran.", attErr.Error())
	case errors.Is(err, gemini.ErrInvalidUpstreamResponse):
		utils.RespondErrorDetails(w, http.StatusInternalServerError, "Terjadi kesalahan pada server.", "struktur respons API tidak valid")
	case errors.As(err, &upErr):
		utils.RespondErrorDetails(w, http.StatusInternalServerError, "Terjadi kesalahan pada server.", fmt.Sprintf("upstream status %d", upErr.StatusCode))
	default:
		utils.RespondError(w, http.StatusInternalServerError, "Terjadi kesalahan pada server.")
	}
}
