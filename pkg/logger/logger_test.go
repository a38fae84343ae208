package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleHandler_Enabled(t *testing.T) {
	h := New(nil, slog.LevelInfo)
	ctx := context.Background()

	assert.False(t, h.Enabled(ctx, slog.LevelDebug))
	assert.True(t, h.Enabled(ctx, slog.LevelInfo))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))
	assert.True(t, h.Enabled(ctx, slog.LevelError))
}

func TestSimpleHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := New(&buf, slog.LevelInfo)
	ctx := context.Background()

	// Use a fixed time for reproducible output
	fixedTime := time.Date(2023, 10, 27, 10, 0, 0, 0, time.UTC)

	r := slog.NewRecord(fixedTime, slog.LevelInfo, "colorized column", 0)
	r.AddAttrs(slog.String("column", "n_covid_occ"), slog.Int("cells", 42))

	err := h.Handle(ctx, r)
	assert.NoError(t, err)

	expected := "2023-10-27 10:00:00 [INFO] colorized column column=n_covid_occ cells=42\n"
	assert.Equal(t, expected, buf.String())
}

func TestSimpleHandler_ZeroValue(t *testing.T) {
	var buf bytes.Buffer
	h := &SimpleHandler{Output: &buf, Level: slog.LevelDebug}

	r := slog.NewRecord(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), slog.LevelDebug, "ok", 0)
	require.NoError(t, h.Handle(context.Background(), r))
	assert.Equal(t, "2023-01-01 00:00:00 [DEBUG] ok\n", buf.String())
}

func TestSimpleHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := New(&buf, slog.LevelInfo)
	newH := h.WithAttrs([]slog.Attr{slog.String("theme", "default")})
	assert.NotSame(t, h, newH)
	assert.Same(t, h, h.WithAttrs(nil))

	r := slog.NewRecord(time.Date(2023, 10, 27, 10, 0, 0, 0, time.UTC), slog.LevelWarn, "skipped", 0)
	r.AddAttrs(slog.String("column", "x"))
	require.NoError(t, newH.Handle(context.Background(), r))
	assert.Equal(t, "2023-10-27 10:00:00 [WARN] skipped theme=default column=x\n", buf.String())

	// the parent handler is not affected
	buf.Reset()
	require.NoError(t, h.Handle(context.Background(), r))
	assert.Equal(t, "2023-10-27 10:00:00 [WARN] skipped column=x\n", buf.String())
}

func TestSimpleHandler_WithGroup(t *testing.T) {
	h := New(nil, slog.LevelInfo)
	newH := h.WithGroup("group")
	assert.Equal(t, h, newH, "WithGroup should currently be a no-op returning the same handler")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
