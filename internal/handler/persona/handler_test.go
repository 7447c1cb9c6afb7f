package persona

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/satriadwi/ruangperan/backend/internal/model/persona"
)

func TestListPersonas(t *testing.T) {
	r := chi.NewRouter()
	New(persona.NewMemoryStore(persona.Seed())).RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/personas", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var personas []persona.Persona
	if err := json.Unmarshal(resp.Body.Bytes(), &personas); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(personas) != 17 {
		t.Fatalf("persona count: got %d want 17", len(personas))
	}

	// Instruction and redirect text are server-side only.
	var raw []map[string]any
	json.Unmarshal(resp.Body.Bytes(), &raw)
	for _, item := range raw {
		if _, ok := item["Instruction"]; ok {
			t.Fatal("instruction leaked to clients")
		}
	}
}
