package api

import (
	"net/http"
	"strings"

	"registration-api/internal/utils"
)

// RequireJSON rejects mutating requests whose body is not declared as
// JSON, matching the site's original contract.
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := strings.TrimSpace(strings.Split(r.Header.Get("Content-Type"), ";")[0])
		if contentType != "application/json" {
			utils.WriteEnvelope(w, http.StatusBadRequest, "Error: Data must be sent as JSON.", struct{}{})
			return
		}
		next.ServeHTTP(w, r)
	})
}
