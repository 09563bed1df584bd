package handle

import (
	"net/http"
	"time"

	"bfhl-api/api/internal/logger"

	"github.com/google/uuid"
)

const (
	headerRequestID   = "X-Request-ID"
	maxRequestIDBytes = 128
)

// Wrap adds request ids, access logging, metrics and panic recovery to next.
func (h *Handle) Wrap(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rid := r.Header.Get(headerRequestID)
		if rid == "" || len(rid) > maxRequestIDBytes {
			rid = uuid.NewString()
		}
		w.Header().Set(headerRequestID, rid)

		log := h.log.With("request_id", rid)
		r = r.WithContext(logger.WithContext(r.Context(), log))

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("handler panic", "endpoint", endpoint, "panic", rec)
				if !wrapped.wroteHeader {
					h.writeFailure(wrapped, http.StatusBadRequest, msgBadRequest)
				}
			}

			d := time.Since(start)
			h.met.ObserveHTTP(endpoint, r.Method, wrapped.statusCode, d)
			log.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.statusCode,
				"duration", d,
			)
		}()

		next(wrapped, r)
	}
}

// responseWriter captures the status code written by the handler.
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.statusCode = code
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}
