package server

import (
	"bytes"
	"net/http"
)

// auditRecorder passes the response through while keeping the status code
// and, for JSON responses, a copy of the body.
type auditRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func newAuditRecorder(w http.ResponseWriter) *auditRecorder {
	return &auditRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *auditRecorder) WriteHeader(status int) {
	if r.wroteHeader {
		return
	}
	r.wroteHeader = true
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *auditRecorder) Write(b []byte) (int, error) {
	r.WriteHeader(http.StatusOK)
	if isJSON(r.Header().Get("Content-Type")) {
		r.body.Write(b)
	}
	return r.ResponseWriter.Write(b)
}
