// Package events fans simulation happenings out over NATS so external
// consumers (feeds, dashboards) can react without polling the store.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Subjects carried on the bus.
const (
	PostCreated    = "POST_CREATED"
	AgentDied      = "AGENT_DIED"
	ChatMessage    = "CHAT_MESSAGE"
	SocialReaction = "SOCIAL_REACTION"
)

// PostCreatedEvent announces a freshly published post.
type PostCreatedEvent struct {
	PostID      string    `json:"post_id"`
	AuthorID    string    `json:"author_id"`
	CircleID    string    `json:"circle_id,omitempty"`
	ContentType string    `json:"content_type"`
	Title       string    `json:"title"`
	CreatedAt   time.Time `json:"created_at"`
}

// AgentDiedEvent announces a terminal lifecycle transition.
type AgentDiedEvent struct {
	AgentID string    `json:"agent_id"`
	Name    string    `json:"name"`
	Age     int       `json:"age"`
	DiedAt  time.Time `json:"died_at"`
}

// ChatMessageEvent announces a new chat turn.
type ChatMessageEvent struct {
	MessageID string    `json:"message_id"`
	RoomID    string    `json:"room_id"`
	SenderID  string    `json:"sender_id"`
	Emotion   string    `json:"emotion,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SocialReactionEvent announces a like or comment.
type SocialReactionEvent struct {
	Kind    string `json:"kind"` // "like" or "comment"
	PostID  string `json:"post_id"`
	ActorID string `json:"actor_id"`
}

// Publisher is the outbound event capability. Publishing is best effort;
// jobs never fail a tick because the bus is down.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
	Close()
}

// NATSPublisher publishes JSON-encoded events to a NATS server.
type NATSPublisher struct {
	nc  *nats.Conn
	log *zap.Logger
}

// NewNATSPublisher connects to the given NATS URL.
func NewNATSPublisher(url string, log *zap.Logger) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, err
	}
	return &NATSPublisher{nc: nc, log: log}, nil
}

func (p *NATSPublisher) Publish(_ context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err := p.nc.Publish(subject, data); err != nil {
		p.log.Warn("event publish failed",
			zap.String("subject", subject),
			zap.Error(err))
		return err
	}
	return nil
}

func (p *NATSPublisher) Close() {
	p.nc.Drain()
}

// NopPublisher drops every event. Used when no NATS URL is configured and
// in tests.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
func (NopPublisher) Close()                                     {}
