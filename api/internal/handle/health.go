package handle

import "net/http"

// Health reports liveness with the configured operator email and no data.
func (h *Handle) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		h.writeFailure(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}
	h.writeSuccess(w, nil)
}
