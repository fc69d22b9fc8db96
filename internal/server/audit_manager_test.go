package server

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAuditManager_FlushesOnShutdown(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := NewAuditManager(AuditConfig{Workers: 2, BatchSize: 10, FlushTimeout: time.Hour}, zap.New(core))
	m.Start(context.Background())

	for i := 0; i < 3; i++ {
		m.LogEntry(context.Background(), AuditLogEntry{Handler: "handleScan", OrderCode: fmt.Sprintf("A%d", i)})
	}
	m.Shutdown(context.Background())

	assert.Len(t, logs.FilterMessage("audit").All(), 3, "partial batch is written on shutdown")
	assert.Zero(t, m.Pending())
}

func TestAuditManager_FlushesOnTimeout(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := NewAuditManager(AuditConfig{Workers: 1, BatchSize: 10, FlushTimeout: 20 * time.Millisecond}, zap.New(core))
	m.Start(context.Background())
	t.Cleanup(func() { m.Shutdown(context.Background()) })

	m.LogEntry(context.Background(), AuditLogEntry{Handler: "handleShip", OrderCode: "A1"})

	require.Eventually(t, func() bool {
		return logs.FilterMessage("audit").Len() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestAuditManager_LogsDirectlyAfterShutdown(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := NewAuditManager(AuditConfig{Workers: 1, BatchSize: 1, FlushTimeout: time.Millisecond, BufferSize: 1}, zap.New(core))
	m.Start(context.Background())
	m.Shutdown(context.Background())

	m.LogEntry(context.Background(), AuditLogEntry{Handler: "handleReject", OrderCode: "A1"})
	m.LogEntry(context.Background(), AuditLogEntry{Handler: "handleReject", OrderCode: "A2"})

	direct := logs.FilterMessage("audit").FilterField(zap.String("source", "direct")).All()
	assert.NotEmpty(t, direct)
}
