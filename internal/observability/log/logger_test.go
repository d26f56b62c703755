package log

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zeusync/geometry/pkg/geometry"
)

func newObserved(level Level) (*Logger, *observer.ObservedLogs) {
	atomicLevel := zap.NewAtomicLevelAt(toZapLevel(level))
	core, logs := observer.New(atomicLevel)
	return &Logger{zapLogger: zap.New(core), zapLevel: atomicLevel}, logs
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, logs := newObserved(LevelInfo)

	logger.Debug("hidden")
	logger.Info("shown")
	logger.Warn("warned")
	logger.Error("failed")
	assert.Equal(t, 3, logs.Len())

	logger.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, logger.GetLevel())
	logger.Debug("now visible")
	assert.Equal(t, 4, logs.Len())

	logger.SetLevel(LevelError)
	logger.Log(LevelWarn, "dropped")
	assert.Equal(t, 4, logs.Len())
}

func TestLogger_Fields(t *testing.T) {
	logger, logs := newObserved(LevelDebug)

	boom := errors.New("boom")
	logger.Info("fields",
		Bool("ok", true),
		Duration("took", time.Second),
		Float64("radius", 2.5),
		Int("sides", 6),
		String("name", "hex"),
		Stringer("center", geometry.Vec(1, 2)),
		Error(boom),
		Any("extra", []int{1}),
	)

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, true, ctx["ok"])
	assert.Equal(t, time.Second, ctx["took"])
	assert.Equal(t, 2.5, ctx["radius"])
	assert.Equal(t, int64(6), ctx["sides"])
	assert.Equal(t, "hex", ctx["name"])
	assert.Equal(t, "<1.000000, 2.000000>", ctx["center"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestLogger_With(t *testing.T) {
	logger, logs := newObserved(LevelInfo)

	child := logger.With(String("component", "scene"))
	child.Info("hello")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "scene", logs.All()[0].ContextMap()["component"])
	assert.Equal(t, zapcore.InfoLevel, logs.All()[0].Level)
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	assert.NotPanics(t, func() {
		logger.Info("discarded", String("k", "v"))
		logger.WithContext(t.Context()).Error("discarded")
	})
	assert.Equal(t, LevelInfo, logger.GetLevel())
}

func TestProvide(t *testing.T) {
	first := Provide()
	require.NotNil(t, first)
	assert.Same(t, first, Provide())
}
