package core

import "time"

// RoomType distinguishes private two-party rooms from group rooms.
type RoomType string

const (
	RoomPrivate RoomType = "private"
	RoomGroup   RoomType = "group"
)

// ChatRoom is a shared conversation space. ParticipantIDs keeps the join
// order; dead participants stay listed but are filtered out before any
// speaker selection.
type ChatRoom struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Type           RoomType   `json:"type"`
	Scene          string     `json:"scene,omitempty"`
	ParticipantIDs []string   `json:"participant_ids"`
	CreatedAt      time.Time  `json:"created_at"`
	LastMessageAt  *time.Time `json:"last_message_at,omitempty"`
}

// ChatMessage is a single turn in a room, strictly ordered by CreatedAt
// within that room.
type ChatMessage struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"room_id"`
	SenderID  string    `json:"sender_id"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	Emotion   string    `json:"emotion,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RoomFilter narrows ListChatRooms results.
type RoomFilter struct {
	Type  RoomType
	Limit int
}

// RelationType labels an agent-to-agent edge.
type RelationType string

const (
	RelationFriend RelationType = "friend"
	RelationEnemy  RelationType = "enemy"
	RelationFamily RelationType = "family"
	RelationMentor RelationType = "mentor"
)

// Relationship is a directed edge between two agents with a strength in
// [0,100]. Not touched by the scheduler jobs.
type Relationship struct {
	AgentID   string       `json:"agent_id"`
	RelatedID string       `json:"related_id"`
	Type      RelationType `json:"type"`
	Strength  int          `json:"strength"`
}
