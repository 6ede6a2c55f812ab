// Command seed loads the fixture personas, circles, chat rooms and
// relationships into the store. Safe to rerun: existing entities keep
// their ids and are overwritten.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/agentcircle/agentcircle/config"
	"github.com/agentcircle/agentcircle/core"
	"github.com/agentcircle/agentcircle/storage"
)

var seedModels = []string{"gpt-4o-mini", "gpt-4o"}

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.Load()
	ctx := context.Background()

	local, err := storage.NewBadgerStore(storage.DefaultBadgerConfig(cfg.DataDir))
	if err != nil {
		log.Fatal("open local store", zap.Error(err))
	}

	var remote storage.Store
	if cfg.DatabaseURL != "" {
		pg, err := storage.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Warn("remote store unreachable, seeding local only", zap.Error(err))
		} else {
			remote = pg
		}
	}

	store := storage.NewDualStore(remote, local, log)
	defer store.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := seed(ctx, store, rng, log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
	log.Info("seed complete")
}

func seed(ctx context.Context, store storage.Store, rng *rand.Rand, log *zap.Logger) error {
	now := time.Now().UTC()

	for _, c := range seedCircles {
		circle := core.Circle{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Category:    c.Category,
			CreatedAt:   now,
		}
		if err := store.CreateCircle(ctx, circle); err != nil {
			return fmt.Errorf("circle %s: %w", c.Name, err)
		}
	}
	log.Info("seeded circles", zap.Int("count", len(seedCircles)))

	idsByName := make(map[string]string)
	for i, p := range historicalFigures {
		agent := buildAgent(fmt.Sprintf("agent_hist_%03d", i), p, rng, now)
		agent.Camp = core.CampHistory
		agent.IsHistorical = true
		agent.Age = 25 + rng.Intn(36)   // 25..60
		agent.Health = 70 + rng.Intn(31) // 70..100
		if err := store.CreateAgent(ctx, agent); err != nil {
			return fmt.Errorf("agent %s: %w", p.Name, err)
		}
		idsByName[p.Name] = agent.ID
	}
	for i, p := range fictionalCharacters {
		agent := buildAgent(fmt.Sprintf("agent_fict_%03d", i), p, rng, now)
		agent.Age = 18 + rng.Intn(23)   // 18..40
		agent.Health = 80 + rng.Intn(21) // 80..100
		if err := store.CreateAgent(ctx, agent); err != nil {
			return fmt.Errorf("agent %s: %w", p.Name, err)
		}
		idsByName[p.Name] = agent.ID
	}
	log.Info("seeded agents",
		zap.Int("historical", len(historicalFigures)),
		zap.Int("fictional", len(fictionalCharacters)))

	for _, r := range seedRooms {
		room := core.ChatRoom{
			ID:        r.ID,
			Name:      r.Name,
			Type:      core.RoomGroup,
			Scene:     r.Scene,
			CreatedAt: now,
		}
		for _, name := range r.Participants {
			id, ok := idsByName[name]
			if !ok {
				return fmt.Errorf("room %s references unknown agent %s", r.Name, name)
			}
			room.ParticipantIDs = append(room.ParticipantIDs, id)
		}
		if err := store.CreateChatRoom(ctx, room); err != nil {
			return fmt.Errorf("room %s: %w", r.Name, err)
		}
	}
	log.Info("seeded rooms", zap.Int("count", len(seedRooms)))

	for _, rel := range seedRelationships {
		from, ok := idsByName[rel.From]
		if !ok {
			return fmt.Errorf("relationship references unknown agent %s", rel.From)
		}
		to, ok := idsByName[rel.To]
		if !ok {
			return fmt.Errorf("relationship references unknown agent %s", rel.To)
		}
		err := store.CreateRelationship(ctx, core.Relationship{
			AgentID:   from,
			RelatedID: to,
			Type:      rel.Type,
			Strength:  rel.Strength,
		})
		if err != nil {
			return fmt.Errorf("relationship %s->%s: %w", rel.From, rel.To, err)
		}
	}
	log.Info("seeded relationships", zap.Int("count", len(seedRelationships)))
	return nil
}

func buildAgent(id string, p seedPersona, rng *rand.Rand, now time.Time) core.Agent {
	return core.Agent{
		ID:          id,
		Name:        p.Name,
		Title:       p.Title,
		Description: p.Description,
		Source:      p.Source,
		Camp:        p.Camp,
		Personality: p.Personality,
		Mood:        core.MoodNeutral,
		IsAlive:     true,
		BirthDate:   now,
		Model:       seedModels[rng.Intn(len(seedModels))],
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
