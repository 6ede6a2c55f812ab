package storage

import (
	"context"

	"go.uber.org/zap"

	"github.com/agentcircle/agentcircle/core"
)

// DualStore fans every write out to the remote primary and the local
// fallback store. A remote failure is logged and swallowed; the write is
// still applied locally and reported as success to the caller. Reads are
// always served from the local store so a dead remote never stalls a job.
//
// Remote may be nil, in which case the adapter degrades to local-only.
type DualStore struct {
	remote Store
	local  Store
	log    *zap.Logger
}

// NewDualStore wires the consistency adapter. local must not be nil.
func NewDualStore(remote, local Store, log *zap.Logger) *DualStore {
	return &DualStore{remote: remote, local: local, log: log}
}

func (d *DualStore) writeBoth(ctx context.Context, op, entityID string,
	remoteWrite, localWrite func(Store) error) error {

	if d.remote != nil {
		if err := remoteWrite(d.remote); err != nil {
			d.log.Warn("remote write failed, keeping local copy",
				zap.String("op", op),
				zap.String("entity_id", entityID),
				zap.String("error_kind", core.Kind(err)),
				zap.Error(err))
		}
	}
	return localWrite(d.local)
}

// ==================== Agent operations ====================

func (d *DualStore) ListAgents(ctx context.Context, filter core.AgentFilter) ([]core.Agent, error) {
	return d.local.ListAgents(ctx, filter)
}

func (d *DualStore) GetAgent(ctx context.Context, id string) (core.Agent, error) {
	return d.local.GetAgent(ctx, id)
}

func (d *DualStore) CreateAgent(ctx context.Context, agent core.Agent) error {
	return d.writeBoth(ctx, "create_agent", agent.ID,
		func(s Store) error { return s.CreateAgent(ctx, agent) },
		func(s Store) error { return s.CreateAgent(ctx, agent) })
}

func (d *DualStore) UpsertAgent(ctx context.Context, id string, upd core.AgentUpdate) error {
	return d.writeBoth(ctx, "upsert_agent", id,
		func(s Store) error { return s.UpsertAgent(ctx, id, upd) },
		func(s Store) error { return s.UpsertAgent(ctx, id, upd) })
}

func (d *DualStore) IncrementAgentPostCount(ctx context.Context, id string) error {
	return d.writeBoth(ctx, "increment_post_count", id,
		func(s Store) error { return s.IncrementAgentPostCount(ctx, id) },
		func(s Store) error { return s.IncrementAgentPostCount(ctx, id) })
}

// ==================== Post operations ====================

func (d *DualStore) ListPosts(ctx context.Context, filter core.PostFilter) ([]core.Post, error) {
	return d.local.ListPosts(ctx, filter)
}

func (d *DualStore) CreatePost(ctx context.Context, post core.Post) error {
	return d.writeBoth(ctx, "create_post", post.ID,
		func(s Store) error { return s.CreatePost(ctx, post) },
		func(s Store) error { return s.CreatePost(ctx, post) })
}

func (d *DualStore) CreateLike(ctx context.Context, like core.Like) error {
	return d.writeBoth(ctx, "create_like", like.ID,
		func(s Store) error { return s.CreateLike(ctx, like) },
		func(s Store) error { return s.CreateLike(ctx, like) })
}

func (d *DualStore) CreateComment(ctx context.Context, comment core.Comment) error {
	return d.writeBoth(ctx, "create_comment", comment.ID,
		func(s Store) error { return s.CreateComment(ctx, comment) },
		func(s Store) error { return s.CreateComment(ctx, comment) })
}

// ==================== Circle operations ====================

func (d *DualStore) ListCircles(ctx context.Context) ([]core.Circle, error) {
	return d.local.ListCircles(ctx)
}

func (d *DualStore) CreateCircle(ctx context.Context, circle core.Circle) error {
	return d.writeBoth(ctx, "create_circle", circle.ID,
		func(s Store) error { return s.CreateCircle(ctx, circle) },
		func(s Store) error { return s.CreateCircle(ctx, circle) })
}

// ==================== Chat operations ====================

func (d *DualStore) ListChatRooms(ctx context.Context, filter core.RoomFilter) ([]core.ChatRoom, error) {
	return d.local.ListChatRooms(ctx, filter)
}

func (d *DualStore) CreateChatRoom(ctx context.Context, room core.ChatRoom) error {
	return d.writeBoth(ctx, "create_chat_room", room.ID,
		func(s Store) error { return s.CreateChatRoom(ctx, room) },
		func(s Store) error { return s.CreateChatRoom(ctx, room) })
}

func (d *DualStore) ListChatMessages(ctx context.Context, roomID string, limit int) ([]core.ChatMessage, error) {
	return d.local.ListChatMessages(ctx, roomID, limit)
}

func (d *DualStore) CreateChatMessage(ctx context.Context, msg core.ChatMessage) error {
	return d.writeBoth(ctx, "create_chat_message", msg.ID,
		func(s Store) error { return s.CreateChatMessage(ctx, msg) },
		func(s Store) error { return s.CreateChatMessage(ctx, msg) })
}

// ==================== Relationship operations ====================

func (d *DualStore) ListRelationships(ctx context.Context, agentID string) ([]core.Relationship, error) {
	return d.local.ListRelationships(ctx, agentID)
}

func (d *DualStore) CreateRelationship(ctx context.Context, rel core.Relationship) error {
	return d.writeBoth(ctx, "create_relationship", rel.AgentID,
		func(s Store) error { return s.CreateRelationship(ctx, rel) },
		func(s Store) error { return s.CreateRelationship(ctx, rel) })
}

func (d *DualStore) Close() error {
	var firstErr error
	if d.remote != nil {
		firstErr = d.remote.Close()
	}
	if err := d.local.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// SyncFromRemote hydrates the local store from the remote primary so local
// reads are warm after a restart. Per-entity failures are collected, not
// fatal; a nil remote is a no-op.
func (d *DualStore) SyncFromRemote(ctx context.Context) error {
	if d.remote == nil {
		return nil
	}

	var collector core.ErrorCollector

	agents, err := d.remote.ListAgents(ctx, core.AgentFilter{})
	if err != nil {
		return err
	}
	for _, a := range agents {
		collector.Add(a.ID, d.local.CreateAgent(ctx, a))
	}

	rooms, err := d.remote.ListChatRooms(ctx, core.RoomFilter{})
	if err != nil {
		return err
	}
	for _, r := range rooms {
		collector.Add(r.ID, d.local.CreateChatRoom(ctx, r))
	}

	posts, err := d.remote.ListPosts(ctx, core.PostFilter{Limit: 500})
	if err != nil {
		return err
	}
	for _, p := range posts {
		collector.Add(p.ID, d.local.CreatePost(ctx, p))
	}

	// Circles last so the remote post counts overwrite any bumps made by
	// the post sync above.
	circles, err := d.remote.ListCircles(ctx)
	if err != nil {
		return err
	}
	for _, c := range circles {
		collector.Add(c.ID, d.local.CreateCircle(ctx, c))
	}

	d.log.Info("synced local store from remote",
		zap.Int("agents", len(agents)),
		zap.Int("circles", len(circles)),
		zap.Int("rooms", len(rooms)),
		zap.Int("posts", len(posts)),
		zap.Int("errors", collector.Len()))
	return collector.Err()
}
