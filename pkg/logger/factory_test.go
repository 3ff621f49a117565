package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fakeua/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))

		log.Info("hello", slog.String("k", "v"))

		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "k=v")
	})

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatJSON))

		log.Info("hello")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "hello", record["msg"])
	})

	t.Run("level filters records", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

		log.Info("dropped")
		log.Warn("kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("static attrs on every record", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "fakeua")),
		)

		log.Info("hello")
		assert.Contains(t, buf.String(), "service=fakeua")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat(logger.Format("yaml")))
		})
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, logger.ParseLevel(tc.in))
		})
	}
}

func TestAttrs(t *testing.T) {
	t.Run("error attr", func(t *testing.T) {
		attr := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)
	})

	t.Run("nil error is empty", func(t *testing.T) {
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})

	t.Run("browser attr", func(t *testing.T) {
		attr := logger.Browser("chrome")
		assert.Equal(t, "browser", attr.Key)
		assert.Equal(t, "chrome", attr.Value.String())
	})

	t.Run("empty browser is empty attr", func(t *testing.T) {
		assert.Equal(t, slog.Attr{}, logger.Browser(""))
	})

	t.Run("cache path attr", func(t *testing.T) {
		attr := logger.CachePath("/tmp/fake_useragent.json")
		assert.Equal(t, "cache_path", attr.Key)
	})
}
