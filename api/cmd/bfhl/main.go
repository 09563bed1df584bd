package main

import (
	"context"
	"log"
	"os"

	"bfhl-api/api/internal/config"
	"bfhl-api/api/internal/handle"
	"bfhl-api/api/internal/httpserver"
	"bfhl-api/api/internal/llm/gemini"
	"bfhl-api/api/internal/logger"
	"bfhl-api/api/internal/metrics"

	gfshutdown "github.com/gelmium/graceful-shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	if cfg.OfficialEmail == "" {
		lg.Warn("OFFICIAL_EMAIL is empty")
	}
	if cfg.GeminiAPIKey == "" {
		lg.Warn("GEMINI_API_KEY is empty; AI requests will fail")
	}

	ctx := context.Background()
	ai, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		lg.Error("gemini client", "error", err)
		os.Exit(1)
	}

	h := handle.New(cfg, ai, metrics.New(), lg)
	srv := httpserver.New(cfg.Addr(), h.Routes(), lg)

	done, err := srv.Start()
	if err != nil {
		lg.Error("listen", "addr", cfg.Addr(), "error", err)
		os.Exit(1)
	}

	wait := gfshutdown.GracefulShutdown(ctx, cfg.ShutdownTimeout, map[string]gfshutdown.Operation{
		"http": func(ctx context.Context) error {
			lg.Info("shutting down")
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			return ai.Close()
		},
	})

	select {
	case code := <-wait:
		lg.Info("exited", "code", code)
		os.Exit(code)
	case err := <-done:
		if err != nil {
			lg.Error("serve", "error", err)
			os.Exit(1)
		}
		os.Exit(<-wait)
	}
}
