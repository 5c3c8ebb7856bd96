package http

import (
	"net/http"
)

// getServerVersion answers GET /api/version/ with the configured version in
// plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(serverVersion))
}
