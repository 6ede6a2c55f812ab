package chat

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/agentcircle/agentcircle/ai"
	"github.com/agentcircle/agentcircle/core"
	"github.com/agentcircle/agentcircle/events"
	"github.com/agentcircle/agentcircle/storage"
)

// stubGenerator records what it was asked and returns a canned reply, or
// fails every call when err is set.
type stubGenerator struct {
	err       error
	lastCtx   []ai.ContextMessage
	lastScene string
	calls     int
}

func (g *stubGenerator) Generate(context.Context, core.Agent, core.ContentType, string) (ai.GeneratedContent, error) {
	return ai.GeneratedContent{}, fmt.Errorf("not used")
}

func (g *stubGenerator) GenerateReply(_ context.Context, agent core.Agent, recent []ai.ContextMessage, scene string) (ai.GeneratedReply, error) {
	g.calls++
	g.lastCtx = recent
	g.lastScene = scene
	if g.err != nil {
		return ai.GeneratedReply{}, g.err
	}
	return ai.GeneratedReply{Content: agent.Name + " speaks", Emotion: "calm"}, nil
}

func newMemStore(t *testing.T) *storage.BadgerStore {
	t.Helper()
	store, err := storage.NewBadgerStore(storage.BadgerConfig{InMemory: true, DisableLogging: true})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestOrchestrator(store storage.Store, gen ai.Generator, seed int64) *Orchestrator {
	return NewOrchestrator(store, gen, rand.New(rand.NewSource(seed)), events.NopPublisher{}, zap.NewNop())
}

func seedRoom(t *testing.T, store storage.Store, roomID, scene string, participants ...core.Agent) {
	t.Helper()
	ctx := context.Background()
	room := core.ChatRoom{ID: roomID, Name: roomID, Type: core.RoomGroup, Scene: scene}
	for _, a := range participants {
		require.NoError(t, store.CreateAgent(ctx, a))
		room.ParticipantIDs = append(room.ParticipantIDs, a.ID)
	}
	require.NoError(t, store.CreateChatRoom(ctx, room))
}

func TestRun(t *testing.T) {
	t.Run("appends one message from a living participant", func(t *testing.T) {
		store := newMemStore(t)
		gen := &stubGenerator{}
		seedRoom(t, store, "r1", "月下对饮",
			core.Agent{ID: "a", Name: "甲", IsAlive: true},
			core.Agent{ID: "b", Name: "乙", IsAlive: true},
		)

		require.NoError(t, newTestOrchestrator(store, gen, 1).Run(context.Background()))

		msgs, err := store.ListChatMessages(context.Background(), "r1", 10)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		require.Contains(t, []string{"a", "b"}, msgs[0].SenderID)
		require.Equal(t, "calm", msgs[0].Emotion)
		require.Equal(t, "月下对饮", gen.lastScene)
	})

	t.Run("room without two living participants is skipped", func(t *testing.T) {
		store := newMemStore(t)
		gen := &stubGenerator{}
		seedRoom(t, store, "r1", "独角戏",
			core.Agent{ID: "a", Name: "甲", IsAlive: true},
			core.Agent{ID: "b", Name: "乙", IsAlive: false},
		)

		require.NoError(t, newTestOrchestrator(store, gen, 2).Run(context.Background()))

		require.Zero(t, gen.calls)
		msgs, err := store.ListChatMessages(context.Background(), "r1", 10)
		require.NoError(t, err)
		require.Empty(t, msgs)
	})

	t.Run("failed generation falls back to the canned reply", func(t *testing.T) {
		store := newMemStore(t)
		gen := &stubGenerator{err: core.ErrGenerationFailed}
		seedRoom(t, store, "r1", "",
			core.Agent{ID: "a", Name: "甲", IsAlive: true},
			core.Agent{ID: "b", Name: "乙", IsAlive: true},
		)

		require.NoError(t, newTestOrchestrator(store, gen, 3).Run(context.Background()))

		msgs, err := store.ListChatMessages(context.Background(), "r1", 10)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		require.Contains(t, msgs[0].Content, "沉思片刻")
		require.Equal(t, "thinking", msgs[0].Emotion)
	})

	t.Run("context is the last five messages with resolved names", func(t *testing.T) {
		store := newMemStore(t)
		gen := &stubGenerator{}
		seedRoom(t, store, "r1", "长谈",
			core.Agent{ID: "a", Name: "甲", IsAlive: true},
			core.Agent{ID: "b", Name: "乙", IsAlive: true},
		)
		base := time.Now().Add(-time.Hour).UTC()
		for i := 0; i < 8; i++ {
			require.NoError(t, store.CreateChatMessage(context.Background(), core.ChatMessage{
				ID:        fmt.Sprintf("m%d", i),
				RoomID:    "r1",
				SenderID:  "a",
				Content:   fmt.Sprintf("line %d", i),
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			}))
		}

		require.NoError(t, newTestOrchestrator(store, gen, 4).Run(context.Background()))

		require.Len(t, gen.lastCtx, 5)
		require.Equal(t, "line 3", gen.lastCtx[0].Content)
		require.Equal(t, "line 7", gen.lastCtx[4].Content)
		for _, m := range gen.lastCtx {
			require.Equal(t, "甲", m.SenderName)
		}
	})

	t.Run("departed senders keep a placeholder name", func(t *testing.T) {
		store := newMemStore(t)
		gen := &stubGenerator{}
		seedRoom(t, store, "r1", "",
			core.Agent{ID: "a", Name: "甲", IsAlive: true},
			core.Agent{ID: "b", Name: "乙", IsAlive: true},
		)
		require.NoError(t, store.CreateChatMessage(context.Background(), core.ChatMessage{
			ID:       "m0",
			RoomID:   "r1",
			SenderID: "vanished",
			Content:  "旧日之声",
		}))

		require.NoError(t, newTestOrchestrator(store, gen, 5).Run(context.Background()))

		require.Len(t, gen.lastCtx, 1)
		require.Equal(t, "未知", gen.lastCtx[0].SenderName)
	})
}
