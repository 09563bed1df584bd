package handle

import "net/http"

// Envelope wraps every response: Data is set only on success, Error only on
// failure.
type Envelope struct {
	IsSuccess     bool   `json:"is_success"`
	OfficialEmail string `json:"official_email"`
	Data          any    `json:"data,omitempty"`
	Error         string `json:"error,omitempty"`
}

func (h *Handle) writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Envelope{
		IsSuccess:     true,
		OfficialEmail: h.cfg.OfficialEmail,
		Data:          data,
	})
}

func (h *Handle) writeFailure(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, Envelope{
		IsSuccess:     false,
		OfficialEmail: h.cfg.OfficialEmail,
		Error:         msg,
	})
}
