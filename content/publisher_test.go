package content

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/agentcircle/agentcircle/ai"
	"github.com/agentcircle/agentcircle/core"
	"github.com/agentcircle/agentcircle/events"
	"github.com/agentcircle/agentcircle/storage"
)

// stubGenerator returns canned content, or fails every call when err is
// set.
type stubGenerator struct {
	err   error
	calls int
}

func (g *stubGenerator) Generate(_ context.Context, agent core.Agent, ct core.ContentType, topic string) (ai.GeneratedContent, error) {
	g.calls++
	if g.err != nil {
		return ai.GeneratedContent{}, g.err
	}
	return ai.GeneratedContent{
		Title:   "t-" + topic,
		Content: "c-" + agent.Name,
		Circle:  "闲聊杂谈",
	}, nil
}

func (g *stubGenerator) GenerateReply(context.Context, core.Agent, []ai.ContextMessage, string) (ai.GeneratedReply, error) {
	return ai.GeneratedReply{}, errors.New("not used")
}

func newMemStore(t *testing.T) *storage.BadgerStore {
	t.Helper()
	store, err := storage.NewBadgerStore(storage.BadgerConfig{InMemory: true, DisableLogging: true})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedAgents(t *testing.T, store storage.Store, alive, dead int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < alive; i++ {
		require.NoError(t, store.CreateAgent(ctx, core.Agent{
			ID:      string(rune('a' + i)),
			Name:    "alive-" + string(rune('a'+i)),
			IsAlive: true,
		}))
	}
	for i := 0; i < dead; i++ {
		require.NoError(t, store.CreateAgent(ctx, core.Agent{
			ID:      "dead-" + string(rune('a'+i)),
			Name:    "dead-" + string(rune('a'+i)),
			IsAlive: false,
		}))
	}
}

func TestRun(t *testing.T) {
	t.Run("publishes one post per sampled living agent", func(t *testing.T) {
		store := newMemStore(t)
		seedAgents(t, store, 6, 2)
		gen := &stubGenerator{}
		pub := NewPublisher(store, gen, rand.New(rand.NewSource(1)), events.NopPublisher{}, zap.NewNop())

		require.NoError(t, pub.Run(context.Background()))

		posts, err := store.ListPosts(context.Background(), core.PostFilter{Limit: 100})
		require.NoError(t, err)
		// 6 living agents, batch target is 5-10 capped at the pool.
		require.GreaterOrEqual(t, len(posts), 5)
		require.LessOrEqual(t, len(posts), 6)

		authors := make(map[string]bool)
		for _, p := range posts {
			require.NotContains(t, p.AuthorID, "dead",
				"dead agents must not publish")
			require.False(t, authors[p.AuthorID], "one post per agent per tick")
			authors[p.AuthorID] = true
			require.Contains(t, core.ContentTypes, p.ContentType)
			require.NotEmpty(t, p.Topic)
		}
	})

	t.Run("failed generation falls back to template content", func(t *testing.T) {
		store := newMemStore(t)
		seedAgents(t, store, 5, 0)
		gen := &stubGenerator{err: core.ErrGenerationFailed}
		pub := NewPublisher(store, gen, rand.New(rand.NewSource(2)), events.NopPublisher{}, zap.NewNop())

		require.NoError(t, pub.Run(context.Background()))

		posts, err := store.ListPosts(context.Background(), core.PostFilter{Limit: 100})
		require.NoError(t, err)
		require.Len(t, posts, 5)
		require.Positive(t, gen.calls, "generator must have been attempted")
		for _, p := range posts {
			require.NotEmpty(t, p.Title, "fallback content must carry a title")
			require.NotEmpty(t, p.Content)
		}
	})

	t.Run("publishing bumps post count and last active time", func(t *testing.T) {
		store := newMemStore(t)
		seedAgents(t, store, 5, 0)
		gen := &stubGenerator{}
		pub := NewPublisher(store, gen, rand.New(rand.NewSource(3)), events.NopPublisher{}, zap.NewNop())

		require.NoError(t, pub.Run(context.Background()))

		posts, err := store.ListPosts(context.Background(), core.PostFilter{Limit: 100})
		require.NoError(t, err)
		for _, p := range posts {
			author, err := store.GetAgent(context.Background(), p.AuthorID)
			require.NoError(t, err)
			require.Equal(t, 1, author.PostCount)
			require.False(t, author.LastActiveAt.IsZero())
		}
	})

	t.Run("resolves circle ids by name", func(t *testing.T) {
		store := newMemStore(t)
		seedAgents(t, store, 5, 0)
		require.NoError(t, store.CreateCircle(context.Background(), core.Circle{
			ID: "circle_general", Name: "闲聊杂谈",
		}))
		gen := &stubGenerator{}
		pub := NewPublisher(store, gen, rand.New(rand.NewSource(4)), events.NopPublisher{}, zap.NewNop())

		require.NoError(t, pub.Run(context.Background()))

		posts, err := store.ListPosts(context.Background(), core.PostFilter{Limit: 100})
		require.NoError(t, err)
		for _, p := range posts {
			require.Equal(t, "circle_general", p.CircleID)
		}
	})

	t.Run("empty living pool is a quiet no-op", func(t *testing.T) {
		store := newMemStore(t)
		seedAgents(t, store, 0, 3)
		gen := &stubGenerator{}
		pub := NewPublisher(store, gen, rand.New(rand.NewSource(5)), events.NopPublisher{}, zap.NewNop())

		require.NoError(t, pub.Run(context.Background()))
		require.Zero(t, gen.calls)
	})
}
