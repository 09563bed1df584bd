package handle

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"bfhl-api/api/internal/config"
	"bfhl-api/api/internal/llm"
	"bfhl-api/api/internal/logger"
	"bfhl-api/api/internal/metrics"
)

type Handle struct {
	cfg *config.Config
	ai  llm.Engine
	met *metrics.Metrics
	log *slog.Logger
}

func New(cfg *config.Config, ai llm.Engine, met *metrics.Metrics, log *slog.Logger) *Handle {
	if log == nil {
		log = logger.Discard()
	}
	if met == nil {
		met = metrics.New()
	}
	return &Handle{
		cfg: cfg,
		ai:  ai,
		met: met,
		log: log,
	}
}

// Routes registers every endpoint of the service on a fresh mux.
func (h *Handle) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.Wrap("/health", h.Health))
	mux.HandleFunc("/bfhl", h.Wrap("/bfhl", h.Bfhl))
	mux.Handle("/metrics", h.met.Handler())
	return mux
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
