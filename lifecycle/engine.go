// Package lifecycle advances agents through accelerated aging. One tick is
// one simulated year.
package lifecycle

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/agentcircle/agentcircle/core"
	"github.com/agentcircle/agentcircle/events"
	"github.com/agentcircle/agentcircle/persona"
	"github.com/agentcircle/agentcircle/storage"
)

const maxAge = 100

// Outcome describes what a single tick did to one agent.
type Outcome struct {
	AgentID string
	Age     int
	Health  int
	Mood    core.Mood
	Died    bool
}

// Engine applies one lifecycle tick per agent. All randomness flows
// through the injected source so ticks are reproducible in tests.
type Engine struct {
	store storage.Store
	sel   *persona.Selector
	rng   *rand.Rand
	pub   events.Publisher
	log   *zap.Logger
	now   func() time.Time
}

func NewEngine(store storage.Store, rng *rand.Rand, pub events.Publisher, log *zap.Logger) *Engine {
	return &Engine{
		store: store,
		sel:   persona.NewSelector(rng),
		rng:   rng,
		pub:   pub,
		log:   log,
		now:   time.Now,
	}
}

// Advance computes one tick for a single agent. It is pure aside from the
// injected randomness: no store or clock access.
func (e *Engine) Advance(agent core.Agent) Outcome {
	out := Outcome{AgentID: agent.ID}
	out.Age = agent.Age + 1
	out.Health = clampHealth(agent.Health + e.healthDelta(out.Age))

	if out.Health == 0 || out.Age > maxAge {
		out.Died = true
		return out
	}
	out.Mood = e.sel.ChooseMood(agent.Personality)
	return out
}

// healthDelta draws the tick's health change from the band matching the
// agent's new age.
func (e *Engine) healthDelta(age int) int {
	switch {
	case age > 60:
		return e.sel.IntBetween(-5, 2)
	case age > 40:
		return e.sel.IntBetween(-3, 3)
	default:
		return e.sel.IntBetween(-2, 5)
	}
}

func clampHealth(h int) int {
	if h < 0 {
		return 0
	}
	if h > 100 {
		return 100
	}
	return h
}

// Run ticks every living agent once and persists the results. A failed
// persist for one agent never blocks the rest; failures come back through
// the collector.
func (e *Engine) Run(ctx context.Context) error {
	agents, err := e.store.ListAgents(ctx, core.AgentFilter{AliveOnly: true, Limit: 1000})
	if err != nil {
		return err
	}

	now := e.now().UTC()
	var deaths int
	col := &core.ErrorCollector{}
	for _, agent := range agents {
		out := e.Advance(agent)

		upd := core.AgentUpdate{Age: &out.Age, Health: &out.Health}
		if out.Died {
			alive := false
			death := now
			upd.IsAlive = &alive
			upd.DeathDate = &death
		} else {
			mood := out.Mood
			upd.Mood = &mood
		}

		if err := e.store.UpsertAgent(ctx, agent.ID, upd); err != nil {
			col.Add(agent.ID, err)
			continue
		}
		if out.Died {
			deaths++
			e.log.Info("agent died",
				zap.String("agent_id", agent.ID),
				zap.String("name", agent.Name),
				zap.Int("age", out.Age))
			e.pub.Publish(ctx, events.AgentDied, events.AgentDiedEvent{
				AgentID: agent.ID,
				Name:    agent.Name,
				Age:     out.Age,
				DiedAt:  now,
			})
		}
	}

	e.log.Info("lifecycle tick complete",
		zap.Int("agents", len(agents)),
		zap.Int("deaths", deaths),
		zap.Int("failures", col.Len()))
	return col.Err()
}
