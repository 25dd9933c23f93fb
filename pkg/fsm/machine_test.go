package fsm_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrig/fsmkit/pkg/fsm"
)

func TestStateMachine(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("construction", func(t *testing.T) {
		t.Parallel()

		_, err := fsm.NewStateMachine(nil)
		require.ErrorIs(t, err, fsm.ErrNilState)

		a := newMachine(t, idle)
		b := newMachine(t, idle)
		assert.Equal(t, idle, a.Current())
		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("fire by event name", func(t *testing.T) {
		t.Parallel()

		m := newMachine(t, idle)
		ev, err := m.AddEvent(fsm.WithName("start"))
		require.NoError(t, err)
		require.NoError(t, ev.Add(mustTransition(t, m, idle, running)))

		require.NoError(t, m.Fire(ctx, "start"))
		assert.Equal(t, running, m.Current())

		err = m.Fire(ctx, "missing")
		require.ErrorIs(t, err, fsm.ErrUnknownEvent)
	})

	t.Run("duplicate event names rejected", func(t *testing.T) {
		t.Parallel()

		m := newMachine(t, idle)
		_, err := m.AddEvent(fsm.WithName("start"))
		require.NoError(t, err)
		_, err = m.AddEvent(fsm.WithName("start"))
		require.ErrorIs(t, err, fsm.ErrDuplicateEvent)
	})

	t.Run("event lookup", func(t *testing.T) {
		t.Parallel()

		m := newMachine(t, idle)
		ev, err := m.AddEvent(fsm.WithName("start"))
		require.NoError(t, err)

		got, ok := m.Event("start")
		require.True(t, ok)
		assert.Same(t, ev, got)

		_, ok = m.Event("missing")
		assert.False(t, ok)
	})

	t.Run("can fire respects state and guard", func(t *testing.T) {
		t.Parallel()

		m := newMachine(t, idle)
		ev, err := m.AddEvent(fsm.WithName("start"))
		require.NoError(t, err)

		accepts42 := func(ctx context.Context, args ...any) bool {
			return len(args) == 1 && args[0] == 42
		}
		require.NoError(t, ev.Add(mustTransition(t, m, idle, running, fsm.WithGuard(accepts42))))

		assert.True(t, m.CanFire(ctx, "start", 42))
		assert.False(t, m.CanFire(ctx, "start", 7))
		assert.False(t, m.CanFire(ctx, "missing", 42))

		require.NoError(t, m.Fire(ctx, "start", 42))
		assert.Equal(t, running, m.Current())
		assert.False(t, m.CanFire(ctx, "start", 42))
	})

	t.Run("reset restores initial state without hooks", func(t *testing.T) {
		t.Parallel()

		var hooks int
		m := newMachine(t, idle,
			fsm.WithAfterTransition(func(ctx context.Context, from, to fsm.State, event string, args []any) {
				hooks++
			}),
		)
		ev, err := m.AddEvent(fsm.WithName("start"))
		require.NoError(t, err)
		require.NoError(t, ev.Add(mustTransition(t, m, idle, running)))

		require.NoError(t, m.Fire(ctx, "start"))
		require.Equal(t, running, m.Current())
		require.Equal(t, 1, hooks)

		m.Reset()
		assert.Equal(t, idle, m.Current())
		assert.Equal(t, 1, hooks)
	})

	t.Run("hooks receive trigger details in order", func(t *testing.T) {
		t.Parallel()

		var order []string
		m := newMachine(t, idle,
			fsm.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
			fsm.WithBeforeTransition(func(ctx context.Context, from, to fsm.State, event string, args []any) {
				order = append(order, "before")
				assert.Equal(t, "start", event)
				assert.Equal(t, idle, from)
				assert.Equal(t, running, to)
				assert.Equal(t, []any{"payload"}, args)
			}),
			fsm.WithAfterTransition(func(ctx context.Context, from, to fsm.State, event string, args []any) {
				order = append(order, "after")
			}),
		)
		ev, err := m.AddEvent(fsm.WithName("start"))
		require.NoError(t, err)
		require.NoError(t, ev.Add(mustTransition(t, m, idle, running)))

		var applied fsm.Transition
		require.NoError(t, ev.CallWithCallback(ctx, func(_ context.Context, tr fsm.Transition) {
			order = append(order, "callback")
			applied = tr
		}, "payload"))

		assert.Equal(t, []string{"before", "after", "callback"}, order)
		require.NotNil(t, applied)
		assert.Equal(t, "idle -> running", applied.String())
	})
}

func TestNewTransitionValidation(t *testing.T) {
	t.Parallel()

	m := newMachine(t, idle)

	_, err := fsm.NewTransition(nil, idle, running)
	require.ErrorIs(t, err, fsm.ErrInvalidTransition)

	_, err = fsm.NewTransition(m, nil, running)
	require.ErrorIs(t, err, fsm.ErrInvalidTransition)

	_, err = fsm.NewTransition(m, idle, nil)
	require.ErrorIs(t, err, fsm.ErrInvalidTransition)
}
