package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsJSON(t *testing.T) {
	require.True(t, isJSON([]byte(`{"level":"info","message":"ok"}`)))
	require.True(t, isJSON([]byte(`"bare string"`)))
	require.False(t, isJSON([]byte("panic: runtime error")))
	require.False(t, isJSON([]byte("")))
}

func TestHandleLogLineCollectsPanicTrace(t *testing.T) {
	aptLogger := NewLogger("Test Logs wrapper")
	builder := strings.Builder{}

	foundPanic := handleLogLine([]byte(`{"level":"info"}`), false, &builder, aptLogger)
	require.False(t, foundPanic)
	require.Empty(t, builder.String())

	foundPanic = handleLogLine([]byte("panic: runtime error: index out of range"), foundPanic, &builder, aptLogger)
	require.True(t, foundPanic)

	foundPanic = handleLogLine([]byte("goroutine 1 [running]:"), foundPanic, &builder, aptLogger)
	require.True(t, foundPanic)
	require.Equal(t,
		"panic: runtime error: index out of range\ngoroutine 1 [running]:\n",
		builder.String())
}

func TestHandleLogLineSkipsEmptyLines(t *testing.T) {
	aptLogger := NewLogger("Test Logs wrapper")
	builder := strings.Builder{}

	foundPanic := handleLogLine(nil, true, &builder, aptLogger)
	require.True(t, foundPanic)
	require.Empty(t, builder.String())
}
