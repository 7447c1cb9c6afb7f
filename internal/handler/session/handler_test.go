package session

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/satriadwi/ruangperan/backend/internal/model/chat"
	"github.com/satriadwi/ruangperan/backend/internal/model/persona"
	sessionservice "github.com/satriadwi/ruangperan/backend/internal/service/session"
)

type fakeReplier struct {
	reply string
	err   error
}

func (f *fakeReplier) Reply(context.Context, string, string, []chat.Message, *chat.Attachment) (string, error) {
	return f.reply, f.err
}

func setupRouter(replier sessionservice.Replier) *chi.Mux {
	store := persona.NewMemoryStore(persona.Seed())
	svc := sessionservice.NewService(store, replier)
	r := chi.NewRouter()
	New(svc, store, 10<<20).RegisterRoutes(r)
	return r
}

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestSessionState(t *testing.T) {
	r := setupRouter(&fakeReplier{})

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Asisten Umum") {
		t.Fatalf("state missing default persona: %s", resp.Body.String())
	}
}

func TestSelectPersona(t *testing.T) {
	r := setupRouter(&fakeReplier{})

	resp := postJSON(t, r, "/session/persona", map[string]string{"personaId": "chef"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"changed":true`) {
		t.Fatalf("expected persona switch: %s", resp.Body.String())
	}

	// Re-selecting the now-active persona is a no-op.
	resp = postJSON(t, r, "/session/persona", map[string]string{"personaId": "chef"})
	if !strings.Contains(resp.Body.String(), `"changed":false`) {
		t.Fatalf("expected no-op: %s", resp.Body.String())
	}
}

func TestSelectUnknownPersona(t *testing.T) {
	r := setupRouter(&fakeReplier{})

	if resp := postJSON(t, r, "/session/persona", map[string]string{"personaId": "astronaut"}); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestSubmitTurn(t *testing.T) {
	r := setupRouter(&fakeReplier{reply: "Halo juga!"})

	resp := postJSON(t, r, "/session/turn", map[string]string{"message": "Hello"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "Halo juga!") {
		t.Fatalf("reply missing: %s", resp.Body.String())
	}
}

func TestSubmitTurnEmpty(t *testing.T) {
	r := setupRouter(&fakeReplier{})

	if resp := postJSON(t, r, "/session/turn", map[string]string{"message": "  "}); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestTranscriptForPersona(t *testing.T) {
	r := setupRouter(&fakeReplier{})

	req := httptest.NewRequest(http.MethodGet, "/session/transcript?persona=chef", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "dapur") {
		t.Fatalf("chef greeting missing: %s", resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/session/transcript?persona=astronaut", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
