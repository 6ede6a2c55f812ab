// Package chat implements the periodic chat-activity job: each room with
// enough living participants gets one new in-character message.
package chat

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agentcircle/agentcircle/ai"
	"github.com/agentcircle/agentcircle/core"
	"github.com/agentcircle/agentcircle/events"
	"github.com/agentcircle/agentcircle/persona"
	"github.com/agentcircle/agentcircle/storage"
)

const (
	roomLimit      = 20
	historyLimit   = 10
	contextWindow  = 5
	defaultScene   = "一般对话"
	unknownSpeaker = "未知"
)

// Orchestrator runs one chat-activity tick at a time.
type Orchestrator struct {
	store storage.Store
	gen   ai.Generator
	sel   *persona.Selector
	pub   events.Publisher
	log   *zap.Logger
	now   func() time.Time
}

func NewOrchestrator(store storage.Store, gen ai.Generator, rng *rand.Rand, pub events.Publisher, log *zap.Logger) *Orchestrator {
	return &Orchestrator{
		store: store,
		gen:   gen,
		sel:   persona.NewSelector(rng),
		pub:   pub,
		log:   log,
		now:   time.Now,
	}
}

// Run visits every active room and appends one message where at least two
// living participants remain. A failure in one room never blocks the rest.
func (o *Orchestrator) Run(ctx context.Context) error {
	rooms, err := o.store.ListChatRooms(ctx, core.RoomFilter{Limit: roomLimit})
	if err != nil {
		return err
	}

	var spoke int
	col := &core.ErrorCollector{}
	for _, room := range rooms {
		ok, err := o.speakInRoom(ctx, room)
		if err != nil {
			col.Add(room.ID, err)
			continue
		}
		if ok {
			spoke++
		}
	}

	o.log.Info("chat tick complete",
		zap.Int("rooms", len(rooms)),
		zap.Int("messages", spoke),
		zap.Int("failures", col.Len()))
	return col.Err()
}

// speakInRoom generates one message in the room. Returns false without
// error when the room is skipped for lacking living participants.
func (o *Orchestrator) speakInRoom(ctx context.Context, room core.ChatRoom) (bool, error) {
	alive, err := o.livingParticipants(ctx, room)
	if err != nil {
		return false, err
	}
	if len(alive) < 2 {
		return false, nil
	}

	speaker, ok := o.sel.ChooseSpeaker(alive)
	if !ok {
		return false, nil
	}

	history, err := o.store.ListChatMessages(ctx, room.ID, historyLimit)
	if err != nil {
		return false, err
	}
	recent := o.resolveContext(ctx, history)

	scene := room.Scene
	if scene == "" {
		scene = defaultScene
	}
	reply, err := o.gen.GenerateReply(ctx, speaker, recent, scene)
	if err != nil {
		o.log.Warn("reply generation failed, using fallback",
			zap.String("room_id", room.ID),
			zap.String("agent_id", speaker.ID),
			zap.String("error_kind", core.Kind(err)))
		reply = ai.FallbackReply(speaker)
	}

	msg := core.ChatMessage{
		ID:        uuid.NewString(),
		RoomID:    room.ID,
		SenderID:  speaker.ID,
		Content:   reply.Content,
		Type:      "text",
		Emotion:   reply.Emotion,
		CreatedAt: o.now().UTC(),
	}
	if err := o.store.CreateChatMessage(ctx, msg); err != nil {
		return false, err
	}

	o.pub.Publish(ctx, events.ChatMessage, events.ChatMessageEvent{
		MessageID: msg.ID,
		RoomID:    room.ID,
		SenderID:  speaker.ID,
		Emotion:   msg.Emotion,
		CreatedAt: msg.CreatedAt,
	})
	o.log.Info("chat message sent",
		zap.String("room_id", room.ID),
		zap.String("room", room.Name),
		zap.String("agent_id", speaker.ID),
		zap.String("name", speaker.Name))
	return true, nil
}

// livingParticipants resolves the room's participant ids to living agents.
// Missing agents are treated as departed, not as errors.
func (o *Orchestrator) livingParticipants(ctx context.Context, room core.ChatRoom) ([]core.Agent, error) {
	alive := make([]core.Agent, 0, len(room.ParticipantIDs))
	for _, id := range room.ParticipantIDs {
		agent, err := o.store.GetAgent(ctx, id)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if agent.IsAlive {
			alive = append(alive, agent)
		}
	}
	return alive, nil
}

// resolveContext turns the tail of the room history into named context
// lines for the model. Senders that no longer resolve keep a placeholder
// name so the transcript stays coherent.
func (o *Orchestrator) resolveContext(ctx context.Context, history []core.ChatMessage) []ai.ContextMessage {
	if len(history) > contextWindow {
		history = history[len(history)-contextWindow:]
	}
	names := make(map[string]string)
	out := make([]ai.ContextMessage, 0, len(history))
	for _, m := range history {
		name, ok := names[m.SenderID]
		if !ok {
			if agent, err := o.store.GetAgent(ctx, m.SenderID); err == nil {
				name = agent.Name
			} else {
				name = unknownSpeaker
			}
			names[m.SenderID] = name
		}
		out = append(out, ai.ContextMessage{SenderName: name, Content: m.Content})
	}
	return out
}
