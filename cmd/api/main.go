package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/satriadwi/ruangperan/backend/internal/config"
	"github.com/satriadwi/ruangperan/backend/internal/handler"
	"github.com/satriadwi/ruangperan/backend/internal/model/persona"
	"github.com/satriadwi/ruangperan/backend/internal/service/extract"
	"github.com/satriadwi/ruangperan/backend/internal/service/gemini"
	"github.com/satriadwi/ruangperan/backend/internal/service/prompt"
	"github.com/satriadwi/ruangperan/backend/internal/service/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	personaStore := persona.NewMemoryStore(persona.Seed())
	composer := prompt.NewComposer(personaStore.List())
	extractor := extract.NewService(cfg.Upload.SpoolDir)

	aiService, err := gemini.NewService(ctx, cfg.AI, composer, extractor)
	if err != nil {
		log.Fatalf("failed to initialize gemini service: %v", err)
	}
	defer aiService.Close()

	sessionService := session.NewService(personaStore, aiService)

	router := handler.NewRouter(personaStore, aiService, sessionService, cfg.Upload.MaxBytes)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Ruang Peran backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
