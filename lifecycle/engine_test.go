package lifecycle

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/agentcircle/agentcircle/core"
	"github.com/agentcircle/agentcircle/events"
	"github.com/agentcircle/agentcircle/storage"
)

// zeroSource makes every Intn draw return 0, so IntBetween always lands
// on the low end of its range.
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64)   {}

func newTestEngine(t *testing.T, store storage.Store, src rand.Source) *Engine {
	t.Helper()
	return NewEngine(store, rand.New(src), events.NopPublisher{}, zap.NewNop())
}

func newMemStore(t *testing.T) *storage.BadgerStore {
	t.Helper()
	store, err := storage.NewBadgerStore(storage.BadgerConfig{InMemory: true, DisableLogging: true})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAdvance(t *testing.T) {
	t.Run("health hitting zero kills the agent and skips mood", func(t *testing.T) {
		// Minimum draw in the 40-60 band is -3, which takes health 3 to 0.
		eng := newTestEngine(t, nil, zeroSource{})
		agent := core.Agent{
			ID:          "a1",
			Age:         50,
			Health:      3,
			Personality: core.Personality{Neuroticism: 80},
			IsAlive:     true,
		}

		out := eng.Advance(agent)
		require.True(t, out.Died)
		require.Equal(t, 51, out.Age)
		require.Equal(t, 0, out.Health)
		require.Empty(t, out.Mood)
	})

	t.Run("crossing the age ceiling is fatal regardless of health", func(t *testing.T) {
		eng := newTestEngine(t, nil, rand.NewSource(1))
		out := eng.Advance(core.Agent{ID: "a2", Age: 100, Health: 95, IsAlive: true})
		require.True(t, out.Died)
		require.Equal(t, 101, out.Age)
	})

	t.Run("surviving tick ages by one and sets a mood", func(t *testing.T) {
		eng := newTestEngine(t, nil, rand.NewSource(2))
		out := eng.Advance(core.Agent{ID: "a3", Age: 30, Health: 90, IsAlive: true})
		require.False(t, out.Died)
		require.Equal(t, 31, out.Age)
		require.Contains(t, core.Moods, out.Mood)
	})

	t.Run("health stays clamped to the valid range", func(t *testing.T) {
		eng := newTestEngine(t, nil, rand.NewSource(3))
		ages := []int{10, 41, 61, 95}
		for _, age := range ages {
			for _, health := range []int{0, 1, 50, 99, 100} {
				out := eng.Advance(core.Agent{Age: age, Health: health, IsAlive: true})
				require.GreaterOrEqual(t, out.Health, 0, "age %d health %d", age, health)
				require.LessOrEqual(t, out.Health, 100, "age %d health %d", age, health)
			}
		}
	})
}

func TestRun(t *testing.T) {
	t.Run("death is persisted with a death date", func(t *testing.T) {
		store := newMemStore(t)
		ctx := context.Background()
		require.NoError(t, store.CreateAgent(ctx, core.Agent{
			ID: "frail", Name: "frail", Age: 50, Health: 3, IsAlive: true,
		}))
		require.NoError(t, store.CreateAgent(ctx, core.Agent{
			ID: "hale", Name: "hale", Age: 20, Health: 100, IsAlive: true,
		}))

		eng := newTestEngine(t, store, zeroSource{})
		require.NoError(t, eng.Run(ctx))

		frail, err := store.GetAgent(ctx, "frail")
		require.NoError(t, err)
		require.False(t, frail.IsAlive)
		require.NotNil(t, frail.DeathDate)
		require.Equal(t, 51, frail.Age)
		require.Equal(t, 0, frail.Health)

		// The minimum young-band draw is -2, survivable at full health.
		hale, err := store.GetAgent(ctx, "hale")
		require.NoError(t, err)
		require.True(t, hale.IsAlive)
		require.Equal(t, 21, hale.Age)
		require.Equal(t, 98, hale.Health)
	})

	t.Run("dead agents are not ticked", func(t *testing.T) {
		store := newMemStore(t)
		ctx := context.Background()
		require.NoError(t, store.CreateAgent(ctx, core.Agent{
			ID: "gone", Name: "gone", Age: 40, Health: 0, IsAlive: false,
		}))

		eng := newTestEngine(t, store, rand.NewSource(4))
		require.NoError(t, eng.Run(ctx))

		gone, err := store.GetAgent(ctx, "gone")
		require.NoError(t, err)
		require.Equal(t, 40, gone.Age, "dead agent must not age")
	})
}
