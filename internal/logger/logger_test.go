package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{level: "debug", want: zapcore.DebugLevel},
		{level: "warn", want: zapcore.WarnLevel},
		{level: "loud", want: zapcore.InfoLevel},
		{level: "", want: zapcore.InfoLevel},
	}
	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			l := New(tc.level, "console")
			assert.True(t, l.Core().Enabled(tc.want))
			assert.False(t, l.Core().Enabled(tc.want-1))
			assert.Same(t, l, zap.L())
		})
	}
}

func TestEncoder_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := zap.New(zapcore.NewCore(encoder(FormatJSON), zapcore.AddSync(&buf), zapcore.InfoLevel))

	l.Info("order confirmed", zap.String("order_code", "A1"))
	require.NoError(t, l.Sync())

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "order confirmed", line["msg"])
	assert.Equal(t, "A1", line["order_code"])
	assert.Equal(t, "info", line["level"])
}
