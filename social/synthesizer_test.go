package social

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/agentcircle/agentcircle/core"
	"github.com/agentcircle/agentcircle/events"
	"github.com/agentcircle/agentcircle/storage"
)

func newMemStore(t *testing.T) *storage.BadgerStore {
	t.Helper()
	store, err := storage.NewBadgerStore(storage.BadgerConfig{InMemory: true, DisableLogging: true})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestSynthesizer(store storage.Store, seed int64) *Synthesizer {
	return NewSynthesizer(store, rand.New(rand.NewSource(seed)), events.NopPublisher{}, zap.NewNop())
}

func createPost(t *testing.T, store storage.Store, id, authorID string) {
	t.Helper()
	require.NoError(t, store.CreatePost(context.Background(), core.Post{
		ID:       id,
		AuthorID: authorID,
		Title:    "title-" + id,
		Content:  "content-" + id,
	}))
}

func TestRun(t *testing.T) {
	t.Run("reaction counts stay in bounds", func(t *testing.T) {
		store := newMemStore(t)
		ctx := context.Background()

		// Author is dead so it never appears in the actor pool and the
		// single post receives the full sampled range.
		require.NoError(t, store.CreateAgent(ctx, core.Agent{ID: "author", Name: "author", IsAlive: false}))
		for i := 0; i < 20; i++ {
			id := fmt.Sprintf("actor%02d", i)
			require.NoError(t, store.CreateAgent(ctx, core.Agent{ID: id, Name: id, IsAlive: true}))
		}
		createPost(t, store, "p1", "author")

		require.NoError(t, newTestSynthesizer(store, 1).Run(ctx))

		posts, err := store.ListPosts(ctx, core.PostFilter{Limit: 10})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		require.GreaterOrEqual(t, posts[0].LikeCount, 3)
		require.LessOrEqual(t, posts[0].LikeCount, 8)
		require.GreaterOrEqual(t, posts[0].CommentCount, 1)
		require.LessOrEqual(t, posts[0].CommentCount, 3)
	})

	t.Run("an agent never reacts to its own post", func(t *testing.T) {
		store := newMemStore(t)
		ctx := context.Background()

		// The sole living agent is also the author of every post, so no
		// reaction may be recorded.
		require.NoError(t, store.CreateAgent(ctx, core.Agent{ID: "solo", Name: "solo", IsAlive: true}))
		for i := 0; i < 5; i++ {
			createPost(t, store, fmt.Sprintf("p%d", i), "solo")
		}

		require.NoError(t, newTestSynthesizer(store, 2).Run(ctx))

		posts, err := store.ListPosts(ctx, core.PostFilter{Limit: 10})
		require.NoError(t, err)
		for _, p := range posts {
			require.Zero(t, p.LikeCount, "self-like on %s", p.ID)
			require.Zero(t, p.CommentCount, "self-comment on %s", p.ID)
		}
	})

	t.Run("dead agents never react", func(t *testing.T) {
		store := newMemStore(t)
		ctx := context.Background()

		require.NoError(t, store.CreateAgent(ctx, core.Agent{ID: "author", Name: "author", IsAlive: true}))
		require.NoError(t, store.CreateAgent(ctx, core.Agent{ID: "ghost", Name: "ghost", IsAlive: false}))
		createPost(t, store, "p1", "author")

		require.NoError(t, newTestSynthesizer(store, 3).Run(ctx))

		posts, err := store.ListPosts(ctx, core.PostFilter{Limit: 10})
		require.NoError(t, err)
		require.Zero(t, posts[0].LikeCount)
		require.Zero(t, posts[0].CommentCount)
	})

	t.Run("no posts is a quiet no-op", func(t *testing.T) {
		store := newMemStore(t)
		require.NoError(t, store.CreateAgent(context.Background(),
			core.Agent{ID: "a", Name: "a", IsAlive: true}))
		require.NoError(t, newTestSynthesizer(store, 4).Run(context.Background()))
	})
}
