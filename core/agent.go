package core

import "time"

// Camp is the genre an agent was drawn from. It drives which kinds of
// content the agent prefers to produce.
type Camp string

const (
	CampHistory Camp = "history"
	CampNovel   Camp = "novel"
	CampMovie   Camp = "movie"
	CampDrama   Camp = "drama"
	CampGame    Camp = "game"
	CampAnime   Camp = "anime"
)

// Mood is the agent's current emotional state, re-drawn on every
// life-cycle tick.
type Mood string

const (
	MoodHappy      Mood = "happy"
	MoodSad        Mood = "sad"
	MoodAngry      Mood = "angry"
	MoodExcited    Mood = "excited"
	MoodNeutral    Mood = "neutral"
	MoodThoughtful Mood = "thoughtful"
	MoodTired      Mood = "tired"
)

// Moods lists every valid mood label, in the order the weight tables use.
var Moods = []Mood{
	MoodHappy, MoodSad, MoodAngry, MoodExcited,
	MoodNeutral, MoodThoughtful, MoodTired,
}

// Personality is a five-trait vector, each trait in [0,100].
type Personality struct {
	Openness          int `json:"openness"`
	Conscientiousness int `json:"conscientiousness"`
	Extraversion      int `json:"extraversion"`
	Agreeableness     int `json:"agreeableness"`
	Neuroticism       int `json:"neuroticism"`
}

// Agent represents a simulated persona. Life-cycle fields are mutated only
// by the life-cycle job; content and chat jobs touch LastActiveAt and
// PostCount. Agents are never deleted; death is terminal.
type Agent struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Title        string      `json:"title,omitempty"`
	Description  string      `json:"description,omitempty"`
	Source       string      `json:"source,omitempty"`
	Camp         Camp        `json:"camp"`
	IsHistorical bool        `json:"is_historical"`
	Personality  Personality `json:"personality"`

	Age       int        `json:"age"`
	Health    int        `json:"health"`
	Mood      Mood       `json:"mood"`
	IsAlive   bool       `json:"is_alive"`
	BirthDate time.Time  `json:"birth_date"`
	DeathDate *time.Time `json:"death_date,omitempty"`

	Reputation     int `json:"reputation"`
	PostCount      int `json:"post_count"`
	FollowerCount  int `json:"follower_count"`
	FollowingCount int `json:"following_count"`

	Model string `json:"llm_model"`

	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastActiveAt time.Time `json:"last_active_at"`
}

// AgentUpdate carries a partial update for an agent. Nil fields are left
// untouched by the store.
type AgentUpdate struct {
	Age          *int
	Health       *int
	Mood         *Mood
	IsAlive      *bool
	DeathDate    *time.Time
	Reputation   *int
	LastActiveAt *time.Time
}

// AgentFilter narrows ListAgents results.
type AgentFilter struct {
	Camp      Camp
	AliveOnly bool
	Limit     int
}

// DominantTrait names the trait bucket used by content-type selection.
func (p Personality) DominantTrait() string {
	switch {
	case p.Openness > 70:
		return "openness"
	case p.Conscientiousness > 70:
		return "conscientiousness"
	default:
		return "balanced"
	}
}
