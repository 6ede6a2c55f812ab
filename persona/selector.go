// Package persona holds the pure decision logic that maps an agent's
// five-trait personality vector onto content, mood and speaker choices.
// Nothing in here does I/O; randomness comes from an injected source so
// the policies stay reproducible under test.
package persona

import (
	"math/rand"

	"github.com/agentcircle/agentcircle/core"
)

// Selector implements the weighted selection policies.
type Selector struct {
	rng *rand.Rand
}

// NewSelector builds a selector around the given random source.
func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// ChooseContentType picks what kind of content the agent should produce.
// The camp preference set and the dominant-trait set are intersected; an
// empty intersection falls back to the camp set alone. The final choice is
// uniform over the surviving candidates. Both stages matter: dropping
// either one visibly shifts the content-type distribution.
func (s *Selector) ChooseContentType(agent core.Agent) core.ContentType {
	camp := campSet(agent.Camp)
	candidates := intersect(traitSet(agent.Personality), camp)
	if len(candidates) == 0 {
		candidates = camp
	}
	return candidates[s.rng.Intn(len(candidates))]
}

// ChooseMood draws the agent's next mood by weighted sampling over the
// seven mood labels. High neuroticism selects the negative-skewed table,
// otherwise high extraversion the positive-skewed one, otherwise neutral.
func (s *Selector) ChooseMood(p core.Personality) core.Mood {
	weights := moodWeights(p)
	total := 0
	for _, w := range weights {
		total += w
	}
	draw := s.rng.Intn(total)
	for i, w := range weights {
		draw -= w
		if draw < 0 {
			return core.Moods[i]
		}
	}
	return core.MoodNeutral // unreachable with a well-formed table
}

// ChooseTopic picks a topic uniformly from the shared vocabulary.
func (s *Selector) ChooseTopic() string {
	return Topics[s.rng.Intn(len(Topics))]
}

// ChooseSpeaker picks the next speaker uniformly among the alive
// participants. Returns false when the slate is empty.
func (s *Selector) ChooseSpeaker(alive []core.Agent) (core.Agent, bool) {
	if len(alive) == 0 {
		return core.Agent{}, false
	}
	return alive[s.rng.Intn(len(alive))], true
}

// SampleAgents draws up to n distinct agents from pool without
// replacement, leaving the input untouched.
func (s *Selector) SampleAgents(pool []core.Agent, n int) []core.Agent {
	if n > len(pool) {
		n = len(pool)
	}
	shuffled := make([]core.Agent, len(pool))
	copy(shuffled, pool)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

// IntBetween returns a uniform integer in [lo, hi].
func (s *Selector) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
