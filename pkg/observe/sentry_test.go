package observe

import (
	"bytes"
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"weather-screen/pkg/logger"
)

func newTestHook(events *[]*sentry.Event) *SentryHook {
	return &SentryHook{
		appZone: "test",
		appName: "weather-screen",
		capture: func(e *sentry.Event) { *events = append(*events, e) },
	}
}

func TestSentryHook_ForwardsErrors(t *testing.T) {
	var events []*sentry.Event
	hook := newTestHook(&events)

	var buf bytes.Buffer
	l := logger.New("weather-screen", logger.Options{Env: "test"}, &buf, hook)

	l.Info("ignored")
	l.Warning("ignored too")
	l.Error(errors.New("forecast fetch failed"), map[string]any{"city": "London"})

	require.Len(t, events, 1)
	assert.Equal(t, "forecast fetch failed", events[0].Message)
	assert.Equal(t, sentry.LevelError, events[0].Level)
	assert.Equal(t, "test", events[0].Environment)
	assert.Equal(t, "forecast fetch failed", events[0].Extra["Error"])
	require.Len(t, events[0].Exception, 1)
}

func TestSentryHook_IgnoresGarbage(t *testing.T) {
	var events []*sentry.Event
	hook := newTestHook(&events)

	n, err := hook.Write([]byte("not json"))
	assert.NoError(t, err)
	assert.Equal(t, len("not json"), n)

	_, err = hook.Write([]byte(`{"level":"loud","msg":"x"}`))
	assert.NoError(t, err)

	assert.Empty(t, events)
}

func TestSentryHook_MapLevel(t *testing.T) {
	hook := &SentryHook{}
	assert.Equal(t, sentry.LevelWarning, hook.mapLevel(zapcore.WarnLevel))
	assert.Equal(t, sentry.LevelFatal, hook.mapLevel(zapcore.FatalLevel))
	assert.Equal(t, sentry.LevelDebug, hook.mapLevel(zapcore.DebugLevel))
	assert.Equal(t, sentry.LevelDebug, hook.mapLevel(zapcore.InvalidLevel))
}
