package handle

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"bfhl-api/api/internal/calc"
	"bfhl-api/api/internal/logger"
	"bfhl-api/api/internal/metrics"
	"bfhl-api/api/internal/util"
)

// Recognized request keys.
const (
	KeyFibonacci = "fibonacci"
	KeyPrime     = "prime"
	KeyLCM       = "lcm"
	KeyHCF       = "hcf"
	KeyAI        = "AI"
)

// Bfhl dispatches on the single top-level key of the JSON body.
func (h *Handle) Bfhl(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeFailure(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}
	log := logger.FromContext(r.Context(), h.log)

	key, raw, err := h.decodeRequest(w, r)
	var data any
	if err == nil {
		data, err = h.dispatch(r.Context(), key, raw)
	}

	op := operationLabel(key)
	if err != nil {
		msg, outcome := classify(err)
		h.met.ObserveOperation(op, outcome)
		log.Warn("bfhl rejected", "operation", op, "error", err)
		h.writeFailure(w, http.StatusBadRequest, msg)
		return
	}
	h.met.ObserveOperation(op, metrics.OutcomeSuccess)
	h.writeSuccess(w, data)
}

// decodeRequest returns the only key of the body object and its raw value.
// An empty body counts as an empty object; an array body is keyed by index.
func (h *Handle) decodeRequest(w http.ResponseWriter, r *http.Request) (string, json.RawMessage, error) {
	defer r.Body.Close()

	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes))
	if err != nil {
		return "", nil, failf("read body: %w", err)
	}

	var body map[string]json.RawMessage
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var arr []json.RawMessage
		if err := json.Unmarshal(b, &arr); err != nil {
			return "", nil, failf("body is not a JSON array: %w", err)
		}
		body = make(map[string]json.RawMessage, len(arr))
		for i, v := range arr {
			body[strconv.Itoa(i)] = v
		}
	} else if len(b) > 0 {
		if err := json.Unmarshal(b, &body); err != nil {
			return "", nil, failf("body is not a JSON object: %w", err)
		}
	}
	if len(body) != 1 {
		return "", nil, ErrInvalidRequestShape
	}
	for k, v := range body {
		return k, v, nil
	}
	return "", nil, ErrInvalidRequestShape
}

func (h *Handle) dispatch(ctx context.Context, key string, raw json.RawMessage) (any, error) {
	switch key {
	case KeyFibonacci:
		n, err := decodeInteger(raw)
		if err != nil {
			return nil, failf("fibonacci: %w", err)
		}
		if n > math.MaxInt32 {
			n = math.MaxInt32
		}
		seq, err := calc.Fibonacci(int(n), h.cfg.MaxFibonacciTerms)
		if err != nil {
			return nil, failf("fibonacci: %w", err)
		}
		return seq, nil

	case KeyPrime:
		xs, err := decodeIntegers(raw)
		if err != nil {
			return nil, failf("prime: %w", err)
		}
		return calc.FilterPrimes(xs), nil

	case KeyLCM:
		xs, err := decodeIntegers(raw)
		if err != nil {
			return nil, failf("lcm: %w", err)
		}
		v, err := calc.LCM(xs)
		if err != nil {
			return nil, failf("lcm: %w", err)
		}
		return v, nil

	case KeyHCF:
		xs, err := decodeIntegers(raw)
		if err != nil {
			return nil, failf("hcf: %w", err)
		}
		v, err := calc.HCF(xs)
		if err != nil {
			return nil, failf("hcf: %w", err)
		}
		return v, nil

	case KeyAI:
		prompt, err := decodeString(raw)
		if err != nil {
			return nil, failf("ai: %w", err)
		}
		return h.ask(ctx, prompt)

	default:
		return nil, ErrUnknownOperation
	}
}

func (h *Handle) ask(ctx context.Context, prompt string) (string, error) {
	if h.ai == nil {
		return "", failf("ai: no engine configured")
	}

	start := time.Now()
	text, err := h.ai.Ask(ctx, prompt)
	if err != nil {
		h.met.ObserveAI(metrics.OutcomeFailure, time.Since(start))
		return "", failf("ai %s: %w", h.ai.Name(), err)
	}
	h.met.ObserveAI(metrics.OutcomeSuccess, time.Since(start))
	return util.FirstToken(text), nil
}

// operationLabel keeps the metrics label set closed.
func operationLabel(key string) string {
	switch key {
	case KeyFibonacci, KeyPrime, KeyLCM, KeyHCF, KeyAI:
		return key
	case "":
		return "none"
	default:
		return "unknown"
	}
}
