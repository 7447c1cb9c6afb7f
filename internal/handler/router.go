package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	chathandler "github.com/satriadwi/ruangperan/backend/internal/handler/chat"
	personahandler "github.com/satriadwi/ruangperan/backend/internal/handler/persona"
	sessionhandler "github.com/satriadwi/ruangperan/backend/internal/handler/session"
	personaModel "github.com/satriadwi/ruangperan/backend/internal/model/persona"
	sessionservice "github.com/satriadwi/ruangperan/backend/internal/service/session"
	"github.com/satriadwi/ruangperan/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(personas personaModel.Store, gen chathandler.Generator, sessionSvc *sessionservice.Service, maxUpload int64) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	chatHandler := chathandler.New(gen, maxUpload)
	personaHandler := personahandler.New(personas)
	sessionHandler := sessionhandler.New(sessionSvc, personas, maxUpload)

	// The reference client posts to /chat at the root.
	chatHandler.RegisterRoutes(r)

	r.Route("/api", func(api chi.Router) {
		api.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		chatHandler.RegisterRoutes(api)
		personaHandler.RegisterRoutes(api)
		sessionHandler.RegisterRoutes(api)
	})

	return r
}
