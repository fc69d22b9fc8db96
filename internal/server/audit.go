package server

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type AuditLogEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	Handler    string    `json:"handler"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	User       string    `json:"user,omitempty"`
	OrderCode  string    `json:"order_code,omitempty"`
	OldStatus  string    `json:"old_status,omitempty"`
	NewStatus  string    `json:"new_status,omitempty"`
	Request    string    `json:"request,omitempty"`
	Response   string    `json:"response,omitempty"`
}

func (e AuditLogEntry) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddTime("timestamp", e.Timestamp)
	enc.AddString("handler", e.Handler)
	enc.AddString("method", e.Method)
	enc.AddString("path", e.Path)
	enc.AddInt("status_code", e.StatusCode)
	if e.User != "" {
		enc.AddString("user", e.User)
	}
	if e.OrderCode != "" {
		enc.AddString("order_code", e.OrderCode)
	}
	if e.OldStatus != "" || e.NewStatus != "" {
		enc.AddString("old_status", e.OldStatus)
		enc.AddString("new_status", e.NewStatus)
	}
	if e.Request != "" {
		enc.AddString("request", e.Request)
	}
	if e.Response != "" {
		enc.AddString("response", e.Response)
	}
	return nil
}

var _ zapcore.ObjectMarshaler = AuditLogEntry{}

func auditField(e AuditLogEntry) zap.Field {
	return zap.Object("entry", e)
}
