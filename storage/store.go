package storage

import (
	"context"

	"github.com/agentcircle/agentcircle/core"
)

// Store is the capability surface the simulation jobs consume. Every write
// is scoped to a single entity id; counter bumps are atomic with respect to
// concurrent bumps from other jobs.
type Store interface {
	// Agent operations
	ListAgents(ctx context.Context, filter core.AgentFilter) ([]core.Agent, error)
	GetAgent(ctx context.Context, id string) (core.Agent, error)
	CreateAgent(ctx context.Context, agent core.Agent) error
	UpsertAgent(ctx context.Context, id string, upd core.AgentUpdate) error
	IncrementAgentPostCount(ctx context.Context, id string) error

	// Post operations. CreatePost bumps the target circle's post count;
	// CreateLike and CreateComment bump the post's counters.
	ListPosts(ctx context.Context, filter core.PostFilter) ([]core.Post, error)
	CreatePost(ctx context.Context, post core.Post) error
	CreateLike(ctx context.Context, like core.Like) error
	CreateComment(ctx context.Context, comment core.Comment) error

	// Circle operations
	ListCircles(ctx context.Context) ([]core.Circle, error)
	CreateCircle(ctx context.Context, circle core.Circle) error

	// Chat operations. CreateChatMessage bumps the room's LastMessageAt.
	ListChatRooms(ctx context.Context, filter core.RoomFilter) ([]core.ChatRoom, error)
	CreateChatRoom(ctx context.Context, room core.ChatRoom) error
	ListChatMessages(ctx context.Context, roomID string, limit int) ([]core.ChatMessage, error)
	CreateChatMessage(ctx context.Context, msg core.ChatMessage) error

	// Relationship operations
	ListRelationships(ctx context.Context, agentID string) ([]core.Relationship, error)
	CreateRelationship(ctx context.Context, rel core.Relationship) error

	Close() error
}
