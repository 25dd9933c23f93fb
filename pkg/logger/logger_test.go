package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrig/fsmkit/pkg/logger"
)

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("group", func(t *testing.T) {
		t.Parallel()

		attr := logger.Group("transition", slog.String("from", "idle"), slog.String("to", "running"))
		require.Equal(t, "transition", attr.Key)
		require.Equal(t, slog.KindGroup, attr.Value.Kind())
		require.Len(t, attr.Value.Group(), 2)
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())

		assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	})

	t.Run("transition attrs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "event", logger.EventName("go").Key)
		assert.Equal(t, "go", logger.EventName("go").Value.String())
		assert.Equal(t, "idle", logger.FromState("idle").Value.String())
		assert.Equal(t, "running", logger.ToState("running").Value.String())
		assert.Equal(t, "idle -> running", logger.Transition("idle -> running").Value.String())
		assert.True(t, logger.MachineID(nil).Equal(slog.Attr{}))
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json format with static attrs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "fsmkit")),
		)
		log.Info("hello", logger.EventName("go"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "hello", record["msg"])
		assert.Equal(t, "fsmkit", record["service"])
		assert.Equal(t, "go", record["event"])
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithLevel(slog.LevelWarn),
		)
		log.Info("dropped")
		assert.Zero(t, buf.Len())

		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			logger.New(logger.WithFormat("xml"))
		})
	})
}
