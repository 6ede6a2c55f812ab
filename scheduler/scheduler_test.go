package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStartStop(t *testing.T) {
	t.Run("start is idempotent", func(t *testing.T) {
		s := New(zap.NewNop())
		var runs atomic.Int64
		s.Register("count", 10*time.Millisecond, JobFunc(func(context.Context) error {
			runs.Add(1)
			return nil
		}))

		s.Start()
		s.Start() // second call must not double the goroutines
		require.True(t, s.Running())

		require.Eventually(t, func() bool { return runs.Load() >= 2 },
			time.Second, 5*time.Millisecond)
		s.Stop()

		settled := runs.Load()
		time.Sleep(50 * time.Millisecond)
		require.Equal(t, settled, runs.Load(), "job ran after Stop returned")
	})

	t.Run("stop waits for the in-flight tick", func(t *testing.T) {
		s := New(zap.NewNop())
		release := make(chan struct{})
		var finished atomic.Bool
		s.Register("slow", 5*time.Millisecond, JobFunc(func(context.Context) error {
			<-release
			finished.Store(true)
			return nil
		}))

		s.Start()
		time.Sleep(20 * time.Millisecond) // let the first tick start
		go func() {
			time.Sleep(20 * time.Millisecond)
			close(release)
		}()
		s.Stop()
		require.True(t, finished.Load(), "Stop returned before the tick finished")
	})

	t.Run("stop on a stopped scheduler is a no-op", func(t *testing.T) {
		s := New(zap.NewNop())
		s.Stop()
		s.Start()
		s.Stop()
		s.Stop()
		require.False(t, s.Running())
	})
}

func TestSingleFlight(t *testing.T) {
	s := New(zap.NewNop())
	var active, maxActive atomic.Int64
	s.Register("overlap", 5*time.Millisecond, JobFunc(func(context.Context) error {
		n := active.Add(1)
		for {
			m := maxActive.Load()
			if n <= m || maxActive.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(30 * time.Millisecond) // several intervals long
		active.Add(-1)
		return nil
	}))

	s.Start()
	time.Sleep(150 * time.Millisecond)
	s.Stop()

	require.Equal(t, int64(1), maxActive.Load(), "ticks overlapped")
}

func TestStatus(t *testing.T) {
	s := New(zap.NewNop())
	s.Register("a", time.Hour, JobFunc(func(context.Context) error { return nil }))
	s.Register("b", 30*time.Minute, JobFunc(func(context.Context) error { return nil }))

	st := s.Status()
	require.False(t, st.Running)
	require.Len(t, st.Jobs, 2)
	require.Equal(t, "a", st.Jobs[0].Name)
	require.Equal(t, time.Hour.String(), st.Jobs[0].Interval)
	require.True(t, st.Jobs[0].LastRun.IsZero())

	s.Start()
	st = s.Status()
	require.True(t, st.Running)
	require.False(t, st.StartedAt.IsZero())
	s.Stop()
}
