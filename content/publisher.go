// Package content implements the periodic content-generation job: a random
// handful of living agents each publish one personality-shaped post.
package content

import (
	"context"
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

// Batch bounds for one tick.
const (
	minAuthors = 5
	maxAuthors = 10
)

// Publisher runs one content-generation tick at a time.
type Publisher struct {
	store storage.Store
	gen   ai.Generator
	sel   *persona.Selector
	pub   events.Publisher
	log   *zap.Logger
	now   func() time.Time
}

func NewPublisher(store storage.Store, gen ai.Generator, rng *rand.Rand, pub events.Publisher, log *zap.Logger) *Publisher {
	return &Publisher{
		store: store,
		gen:   gen,
		sel:   persona.NewSelector(rng),
		pub:   pub,
		log:   log,
		now:   time.Now,
	}
}

// Run selects 5 to 10 living agents and publishes one post each. A failed
// generation falls back to template content; only a failed persist marks
// the agent's unit of work as failed.
func (p *Publisher) Run(ctx context.Context) error {
	agents, err := p.store.ListAgents(ctx, core.AgentFilter{AliveOnly: true, Limit: 1000})
	if err != nil {
		return err
	}
	if len(agents) == 0 {
		p.log.Info("content tick skipped, no living agents")
		return nil
	}

	circleIDs, err := p.circleIndex(ctx)
	if err != nil {
		return err
	}

	authors := p.sel.SampleAgents(agents, p.sel.IntBetween(minAuthors, maxAuthors))
	col := &core.ErrorCollector{}
	for _, agent := range authors {
		if err := p.publishFor(ctx, agent, circleIDs); err != nil {
			col.Add(agent.ID, err)
		}
	}

	p.log.Info("content tick complete",
		zap.Int("authors", len(authors)),
		zap.Int("failures", col.Len()))
	return col.Err()
}

func (p *Publisher) publishFor(ctx context.Context, agent core.Agent, circleIDs map[string]string) error {
	ct := p.sel.ChooseContentType(agent)
	topic := p.sel.ChooseTopic()

	gc, err := p.gen.Generate(ctx, agent, ct, topic)
	if err != nil {
		p.log.Warn("generation failed, using fallback",
			zap.String("agent_id", agent.ID),
			zap.String("content_type", string(ct)),
			zap.String("error_kind", core.Kind(err)))
		gc = ai.FallbackContent(agent, ct, topic)
	}

	now := p.now().UTC()
	post := core.Post{
		ID:          uuid.NewString(),
		AuthorID:    agent.ID,
		CircleID:    circleIDs[gc.Circle],
		Title:       gc.Title,
		Content:     gc.Content,
		ContentType: ct,
		Topic:       topic,
		Metadata:    gc.Metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := p.store.CreatePost(ctx, post); err != nil {
		return err
	}
	if err := p.store.IncrementAgentPostCount(ctx, agent.ID); err != nil {
		return err
	}
	if err := p.store.UpsertAgent(ctx, agent.ID, core.AgentUpdate{LastActiveAt: &now}); err != nil {
		return err
	}

	p.pub.Publish(ctx, events.PostCreated, events.PostCreatedEvent{
		PostID:      post.ID,
		AuthorID:    agent.ID,
		CircleID:    post.CircleID,
		ContentType: string(ct),
		Title:       post.Title,
		CreatedAt:   now,
	})
	p.log.Info("post published",
		zap.String("agent_id", agent.ID),
		zap.String("name", agent.Name),
		zap.String("content_type", string(ct)),
		zap.String("topic", topic))
	return nil
}

// circleIndex maps circle names to ids for resolving the generator's
// circle choice. Unknown names resolve to the empty id, which leaves the
// post uncategorized rather than dropping it.
func (p *Publisher) circleIndex(ctx context.Context) (map[string]string, error) {
	circles, err := p.store.ListCircles(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]string, len(circles))
	for _, c := range circles {
		byName[c.Name] = c.ID
	}
	return byName, nil
}
