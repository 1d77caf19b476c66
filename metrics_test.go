package facet

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}

	mc.RecordRefresh(0, 10*time.Millisecond, nil)
	mc.RecordRefresh(2, 30*time.Millisecond, errors.New("boom"))
	mc.RecordSelection(3)
	mc.RecordAccept(true)
	mc.RecordAccept(false)
	mc.RecordAccept(false)

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.RefreshCount)
	assert.Equal(t, int64(1), stats.RefreshErrors)
	assert.Equal(t, int64(1), stats.PartialRefreshes)
	assert.Equal(t, (20 * time.Millisecond).Nanoseconds(), stats.RefreshAvgNanos)
	assert.Equal(t, int64(1), stats.SelectionCount)
	assert.Equal(t, int64(3), stats.ActiveFields)
	assert.Equal(t, int64(1), stats.AcceptCount)
	assert.Equal(t, int64(2), stats.RejectCount)
}

func TestEngine_Metrics(t *testing.T) {
	mc := &BasicMetricsCollector{}
	f := newFixture()
	e := New(f.tree, WithMetricsCollector(mc))

	require.NoError(t, e.Refresh())
	require.NoError(t, e.Select(val(status, "open")))
	require.NoError(t, e.Refresh(priority))
	e.Accepts(f.alpha)
	e.Accepts(f.gam)

	stats := mc.GetStats()
	assert.Equal(t, int64(3), stats.RefreshCount)
	assert.Equal(t, int64(1), stats.PartialRefreshes)
	assert.Equal(t, int64(1), stats.SelectionCount)
	assert.Equal(t, int64(1), stats.ActiveFields)
	assert.Equal(t, int64(1), stats.AcceptCount)
	assert.Equal(t, int64(1), stats.RejectCount)

	// nil falls back to the no-op collector
	e = New(f.tree, WithMetricsCollector(nil))
	require.NoError(t, e.Refresh())
}

func TestEngine_Logger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	f := newFixture()
	e := New(f.tree, WithLogger(l))
	require.NoError(t, e.Refresh())
	require.NoError(t, e.Select(val(status, "open")))

	out := buf.String()
	assert.Contains(t, out, `"msg":"refresh completed"`)
	assert.Contains(t, out, `"msg":"filter changed"`)
	assert.Contains(t, out, `"item":"display.status.open"`)
	assert.Contains(t, out, `"active_fields":1`)
}

func TestLogger_LogRefreshError(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, nil))

	l.LogRefresh(0, time.Second, nil)
	assert.Empty(t, buf.String(), "success is logged at debug level")

	l.WithField("display.status").LogRefresh(1, time.Second, errors.New("boom"))
	assert.Contains(t, buf.String(), "refresh failed")
	assert.Contains(t, buf.String(), "field=display.status")
	assert.Contains(t, buf.String(), "error=boom")

	assert.NotNil(t, NoopLogger())
}
