package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/handler"
	"github.com/passforge/passforge-go/internal/metrics"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/repository"
	"github.com/passforge/passforge-go/internal/service"
	"github.com/passforge/passforge-go/internal/wordsource"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	m := metrics.New()

	// The custom dictionary store is optional; without a DSN the built-in
	// word list stands alone.
	var store wordsource.WordStore
	if cfg.DatabaseDSN != "" {
		db, err := repository.NewDB(cfg.DatabaseDSN)
		if err != nil {
			slog.Warn("database connection failed — custom dictionary disabled", "error", err)
		} else {
			store = repository.NewDictionaryRepository(db)
		}
	}

	words := wordsource.New(wordsource.Config{
		Providers: wordsource.DefaultProviders(cfg.WordsAPIKey),
		Timeout:   cfg.WordTimeout,
		Store:     store,
		Metrics:   m,
	})

	genService := service.NewGeneratorService(words, m)
	genHandler := handler.NewGeneratorHandler(genService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Post("/api/v1/generate", genHandler.HandleGenerate)
	r.Post("/api/v1/generate/cipher", genHandler.HandleGenerateCipher)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
