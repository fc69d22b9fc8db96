package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

// maxRequestBody bounds what a mutating request may send. Order patches and
// intake payloads are far below it.
const maxRequestBody = 1 << 20

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := AuditLogEntry{
			Timestamp: time.Now(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   "unknown",
			User:      s.sessionUser(r),
			OrderCode: mux.Vars(r)["code"],
		}
		if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
			entry.Handler = route.GetName()
		}

		mutating := r.Method != http.MethodGet
		if mutating && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		}
		if mutating && r.Body != nil && isJSON(r.Header.Get("Content-Type")) && entry.Handler != "handleLogin" {
			requestBody, err := io.ReadAll(r.Body)
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
				entry.StatusCode = http.StatusRequestEntityTooLarge
				s.AuditManager.LogEntry(r.Context(), entry)
				return
			}
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)
		}

		if mutating && entry.OrderCode != "" {
			if o, err := s.storage.GetOrder(r.Context(), entry.OrderCode); err == nil {
				entry.OldStatus = o.Status.String()
			}
		}

		rec := newAuditRecorder(w)
		next.ServeHTTP(rec, r)

		entry.StatusCode = rec.status
		entry.Response = strings.TrimSpace(rec.body.String())
		if entry.OldStatus != "" {
			entry.NewStatus = entry.OldStatus
			if rec.status >= 200 && rec.status < 300 {
				entry.NewStatus = responseStatus(rec.body.Bytes(), entry.OldStatus)
			}
		}

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

// responseStatus reads the order status the handler answered with. The
// handler ran the mutation under the collection lock, so its answer is the
// state that change produced.
func responseStatus(body []byte, fallback string) string {
	var resp struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || resp.Status == "" {
		return fallback
	}
	return resp.Status
}

func isJSON(contentType string) bool {
	return strings.HasPrefix(contentType, "application/json")
}
