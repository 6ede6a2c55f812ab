package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v3"

	"github.com/agentcircle/agentcircle/core"
)

// Key layout. Chat message keys embed the creation timestamp so a prefix
// scan yields the room's log in chronological order.
const (
	prefixAgent   = "agent:"
	prefixPost    = "post:"
	prefixLike    = "like:"
	prefixComment = "comment:"
	prefixCircle  = "circle:"
	prefixRoom    = "room:"
	prefixMsg     = "msg:"
	prefixRel     = "rel:"
)

// BadgerConfig configures the local fallback store.
type BadgerConfig struct {
	DataDir        string
	InMemory       bool
	SyncWrites     bool
	DisableLogging bool
}

// DefaultBadgerConfig returns the configuration used by the runtime.
func DefaultBadgerConfig(dataDir string) BadgerConfig {
	return BadgerConfig{
		DataDir:        dataDir,
		InMemory:       false,
		SyncWrites:     true,
		DisableLogging: true,
	}
}

// BadgerStore is the local fallback store backed by BadgerDB. The mutex
// serializes read-modify-write sequences so counter bumps stay atomic
// across jobs sharing the instance.
type BadgerStore struct {
	db *badger.DB
	mu sync.Mutex
}

// NewBadgerStore opens (or creates) the local store.
func NewBadgerStore(cfg BadgerConfig) (*BadgerStore, error) {
	opts := badger.DefaultOptions(filepath.Join(cfg.DataDir, "badgerdb"))
	opts.InMemory = cfg.InMemory
	if cfg.InMemory {
		opts.Dir = ""
		opts.ValueDir = ""
	}
	opts.SyncWrites = cfg.SyncWrites
	if cfg.DisableLogging {
		opts.Logger = nil
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// putObject serializes and stores an object under key.
func (s *BadgerStore) putObject(key string, obj interface{}) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", core.ErrInvalidRecord, key, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// getObject retrieves and deserializes the object under key.
func (s *BadgerStore) getObject(key string, obj interface{}) error {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return core.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, obj)
		})
	})
	if err != nil {
		if err == core.ErrNotFound {
			return fmt.Errorf("%w: %s", core.ErrNotFound, key)
		}
		return err
	}
	return nil
}

// forEachPrefix walks every value stored under prefix.
func (s *BadgerStore) forEachPrefix(prefix string, fn func(key string, val []byte) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())
			if err := item.Value(func(v []byte) error {
				valCopy := append([]byte{}, v...)
				return fn(key, valCopy)
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

// ==================== Agent operations ====================

func (s *BadgerStore) ListAgents(ctx context.Context, filter core.AgentFilter) ([]core.Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var agents []core.Agent
	err := s.forEachPrefix(prefixAgent, func(_ string, val []byte) error {
		var a core.Agent
		if err := json.Unmarshal(val, &a); err != nil {
			return nil // skip invalid entries
		}
		if filter.Camp != "" && a.Camp != filter.Camp {
			return nil
		}
		if filter.AliveOnly && !a.IsAlive {
			return nil
		}
		agents = append(agents, a)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}

	sort.Slice(agents, func(i, j int) bool { return agents[i].ID < agents[j].ID })
	if filter.Limit > 0 && len(agents) > filter.Limit {
		agents = agents[:filter.Limit]
	}
	return agents, nil
}

func (s *BadgerStore) GetAgent(ctx context.Context, id string) (core.Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var a core.Agent
	if err := s.getObject(prefixAgent+id, &a); err != nil {
		return core.Agent{}, err
	}
	return a, nil
}

func (s *BadgerStore) CreateAgent(ctx context.Context, agent core.Agent) error {
	if agent.ID == "" || agent.Name == "" {
		return fmt.Errorf("%w: agent requires id and name", core.ErrInvalidRecord)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putObject(prefixAgent+agent.ID, agent)
}

func (s *BadgerStore) UpsertAgent(ctx context.Context, id string, upd core.AgentUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var a core.Agent
	if err := s.getObject(prefixAgent+id, &a); err != nil {
		return err
	}
	applyAgentUpdate(&a, upd)
	a.UpdatedAt = time.Now().UTC()
	return s.putObject(prefixAgent+id, a)
}

func (s *BadgerStore) IncrementAgentPostCount(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var a core.Agent
	if err := s.getObject(prefixAgent+id, &a); err != nil {
		return err
	}
	a.PostCount++
	a.UpdatedAt = time.Now().UTC()
	return s.putObject(prefixAgent+id, a)
}

// ==================== Post operations ====================

func (s *BadgerStore) ListPosts(ctx context.Context, filter core.PostFilter) ([]core.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var posts []core.Post
	err := s.forEachPrefix(prefixPost, func(_ string, val []byte) error {
		var p core.Post
		if err := json.Unmarshal(val, &p); err != nil {
			return nil
		}
		if p.IsDeleted {
			return nil
		}
		if filter.CircleID != "" && p.CircleID != filter.CircleID {
			return nil
		}
		if filter.AuthorID != "" && p.AuthorID != filter.AuthorID {
			return nil
		}
		posts = append(posts, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	if filter.Order == core.OrderMostLike {
		sort.Slice(posts, func(i, j int) bool { return posts[i].LikeCount > posts[j].LikeCount })
	} else {
		sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	}
	if filter.Limit > 0 && len(posts) > filter.Limit {
		posts = posts[:filter.Limit]
	}
	return posts, nil
}

func (s *BadgerStore) CreatePost(ctx context.Context, post core.Post) error {
	if post.ID == "" || post.AuthorID == "" || post.Title == "" || post.Content == "" {
		return fmt.Errorf("%w: post requires id, author, title and content", core.ErrInvalidRecord)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.putObject(prefixPost+post.ID, post); err != nil {
		return err
	}
	if post.CircleID != "" {
		var c core.Circle
		if err := s.getObject(prefixCircle+post.CircleID, &c); err == nil {
			c.PostCount++
			if err := s.putObject(prefixCircle+post.CircleID, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *BadgerStore) CreateLike(ctx context.Context, like core.Like) error {
	if like.ID == "" || like.PostID == "" || like.ActorID == "" {
		return fmt.Errorf("%w: like requires id, post and actor", core.ErrInvalidRecord)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var p core.Post
	if err := s.getObject(prefixPost+like.PostID, &p); err != nil {
		return err
	}
	if err := s.putObject(prefixLike+like.PostID+":"+like.ID, like); err != nil {
		return err
	}
	p.LikeCount++
	return s.putObject(prefixPost+p.ID, p)
}

func (s *BadgerStore) CreateComment(ctx context.Context, comment core.Comment) error {
	if comment.ID == "" || comment.PostID == "" || comment.AuthorID == "" || comment.Content == "" {
		return fmt.Errorf("%w: comment requires id, post, author and content", core.ErrInvalidRecord)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var p core.Post
	if err := s.getObject(prefixPost+comment.PostID, &p); err != nil {
		return err
	}
	if err := s.putObject(prefixComment+comment.PostID+":"+comment.ID, comment); err != nil {
		return err
	}
	p.CommentCount++
	return s.putObject(prefixPost+p.ID, p)
}

// ==================== Circle operations ====================

func (s *BadgerStore) ListCircles(ctx context.Context) ([]core.Circle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var circles []core.Circle
	err := s.forEachPrefix(prefixCircle, func(_ string, val []byte) error {
		var c core.Circle
		if err := json.Unmarshal(val, &c); err != nil {
			return nil
		}
		circles = append(circles, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list circles: %w", err)
	}
	sort.Slice(circles, func(i, j int) bool { return circles[i].PostCount > circles[j].PostCount })
	return circles, nil
}

func (s *BadgerStore) CreateCircle(ctx context.Context, circle core.Circle) error {
	if circle.ID == "" || circle.Name == "" {
		return fmt.Errorf("%w: circle requires id and name", core.ErrInvalidRecord)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putObject(prefixCircle+circle.ID, circle)
}

// ==================== Chat operations ====================

func (s *BadgerStore) ListChatRooms(ctx context.Context, filter core.RoomFilter) ([]core.ChatRoom, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rooms []core.ChatRoom
	err := s.forEachPrefix(prefixRoom, func(_ string, val []byte) error {
		var r core.ChatRoom
		if err := json.Unmarshal(val, &r); err != nil {
			return nil
		}
		if filter.Type != "" && r.Type != filter.Type {
			return nil
		}
		rooms = append(rooms, r)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list chat rooms: %w", err)
	}

	sort.Slice(rooms, func(i, j int) bool {
		ti, tj := rooms[i].CreatedAt, rooms[j].CreatedAt
		if rooms[i].LastMessageAt != nil {
			ti = *rooms[i].LastMessageAt
		}
		if rooms[j].LastMessageAt != nil {
			tj = *rooms[j].LastMessageAt
		}
		return ti.After(tj)
	})
	if filter.Limit > 0 && len(rooms) > filter.Limit {
		rooms = rooms[:filter.Limit]
	}
	return rooms, nil
}

func (s *BadgerStore) CreateChatRoom(ctx context.Context, room core.ChatRoom) error {
	if room.ID == "" || room.Name == "" {
		return fmt.Errorf("%w: room requires id and name", core.ErrInvalidRecord)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putObject(prefixRoom+room.ID, room)
}

func (s *BadgerStore) ListChatMessages(ctx context.Context, roomID string, limit int) ([]core.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Message keys sort chronologically, so the prefix scan is already
	// in room order.
	var msgs []core.ChatMessage
	err := s.forEachPrefix(prefixMsg+roomID+":", func(_ string, val []byte) error {
		var m core.ChatMessage
		if err := json.Unmarshal(val, &m); err != nil {
			return nil
		}
		msgs = append(msgs, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return msgs, nil
}

func (s *BadgerStore) CreateChatMessage(ctx context.Context, msg core.ChatMessage) error {
	if msg.ID == "" || msg.RoomID == "" || msg.SenderID == "" || msg.Content == "" {
		return fmt.Errorf("%w: message requires id, room, sender and content", core.ErrInvalidRecord)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var room core.ChatRoom
	if err := s.getObject(prefixRoom+msg.RoomID, &room); err != nil {
		return err
	}

	key := fmt.Sprintf("%s%s:%s:%s", prefixMsg, msg.RoomID,
		msg.CreatedAt.UTC().Format("20060102T150405.000000000"), msg.ID)
	if err := s.putObject(key, msg); err != nil {
		return err
	}

	at := msg.CreatedAt
	room.LastMessageAt = &at
	return s.putObject(prefixRoom+room.ID, room)
}

// ==================== Relationship operations ====================

func (s *BadgerStore) ListRelationships(ctx context.Context, agentID string) ([]core.Relationship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rels []core.Relationship
	err := s.forEachPrefix(prefixRel+agentID+":", func(_ string, val []byte) error {
		var r core.Relationship
		if err := json.Unmarshal(val, &r); err != nil {
			return nil
		}
		rels = append(rels, r)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list relationships: %w", err)
	}
	return rels, nil
}

func (s *BadgerStore) CreateRelationship(ctx context.Context, rel core.Relationship) error {
	if rel.AgentID == "" || rel.RelatedID == "" {
		return fmt.Errorf("%w: relationship requires both agent ids", core.ErrInvalidRecord)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putObject(prefixRel+rel.AgentID+":"+rel.RelatedID, rel)
}

// applyAgentUpdate copies the non-nil fields of upd onto a.
func applyAgentUpdate(a *core.Agent, upd core.AgentUpdate) {
	if upd.Age != nil {
		a.Age = *upd.Age
	}
	if upd.Health != nil {
		a.Health = *upd.Health
	}
	if upd.Mood != nil {
		a.Mood = *upd.Mood
	}
	if upd.IsAlive != nil {
		a.IsAlive = *upd.IsAlive
	}
	if upd.DeathDate != nil {
		a.DeathDate = upd.DeathDate
	}
	if upd.Reputation != nil {
		a.Reputation = *upd.Reputation
	}
	if upd.LastActiveAt != nil {
		a.LastActiveAt = *upd.LastActiveAt
	}
}
