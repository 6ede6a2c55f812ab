package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agentcircle/agentcircle/core"
)

// PostgresStore is the remote primary store. Counter bumps are single
// UPDATE statements so they stay atomic under concurrent jobs.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to the remote store and bootstraps the schema.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStoreUnavailable, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %v", core.ErrStoreUnavailable, err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	for _, ddl := range schemaDDL {
		if _, err := s.pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("%w: schema bootstrap: %v", core.ErrStoreUnavailable, err)
		}
	}
	return nil
}

func remoteErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return core.ErrNotFound
	}
	return fmt.Errorf("%w: %v", core.ErrStoreUnavailable, err)
}

// ==================== Agent operations ====================

const agentColumns = `id, name, title, description, source, camp, is_historical,
	openness, conscientiousness, extraversion, agreeableness, neuroticism,
	age, health, mood, is_alive, birth_date, death_date,
	reputation, post_count, follower_count, following_count, llm_model,
	created_at, updated_at, last_active_at`

func scanAgent(row pgx.Row) (core.Agent, error) {
	var a core.Agent
	err := row.Scan(&a.ID, &a.Name, &a.Title, &a.Description, &a.Source, &a.Camp, &a.IsHistorical,
		&a.Personality.Openness, &a.Personality.Conscientiousness, &a.Personality.Extraversion,
		&a.Personality.Agreeableness, &a.Personality.Neuroticism,
		&a.Age, &a.Health, &a.Mood, &a.IsAlive, &a.BirthDate, &a.DeathDate,
		&a.Reputation, &a.PostCount, &a.FollowerCount, &a.FollowingCount, &a.Model,
		&a.CreatedAt, &a.UpdatedAt, &a.LastActiveAt)
	return a, err
}

func (s *PostgresStore) ListAgents(ctx context.Context, filter core.AgentFilter) ([]core.Agent, error) {
	query := `SELECT ` + agentColumns + ` FROM agents WHERE 1=1`
	args := []interface{}{}
	if filter.Camp != "" {
		args = append(args, filter.Camp)
		query += fmt.Sprintf(" AND camp = $%d", len(args))
	}
	if filter.AliveOnly {
		query += " AND is_alive"
	}
	query += " ORDER BY id"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, remoteErr(err)
	}
	defer rows.Close()

	var agents []core.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, remoteErr(err)
		}
		agents = append(agents, a)
	}
	return agents, remoteErr(rows.Err())
}

func (s *PostgresStore) GetAgent(ctx context.Context, id string) (core.Agent, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+agentColumns+` FROM agents WHERE id = $1`, id)
	a, err := scanAgent(row)
	if err != nil {
		return core.Agent{}, remoteErr(err)
	}
	return a, nil
}

func (s *PostgresStore) CreateAgent(ctx context.Context, a core.Agent) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO agents (`+agentColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26)
		ON CONFLICT (id) DO NOTHING`,
		a.ID, a.Name, a.Title, a.Description, a.Source, a.Camp, a.IsHistorical,
		a.Personality.Openness, a.Personality.Conscientiousness, a.Personality.Extraversion,
		a.Personality.Agreeableness, a.Personality.Neuroticism,
		a.Age, a.Health, a.Mood, a.IsAlive, a.BirthDate, a.DeathDate,
		a.Reputation, a.PostCount, a.FollowerCount, a.FollowingCount, a.Model,
		a.CreatedAt, a.UpdatedAt, a.LastActiveAt)
	return remoteErr(err)
}

func (s *PostgresStore) UpsertAgent(ctx context.Context, id string, upd core.AgentUpdate) error {
	query := "UPDATE agents SET updated_at = now()"
	args := []interface{}{}
	add := func(col string, v interface{}) {
		args = append(args, v)
		query += fmt.Sprintf(", %s = $%d", col, len(args))
	}
	if upd.Age != nil {
		add("age", *upd.Age)
	}
	if upd.Health != nil {
		add("health", *upd.Health)
	}
	if upd.Mood != nil {
		add("mood", *upd.Mood)
	}
	if upd.IsAlive != nil {
		add("is_alive", *upd.IsAlive)
	}
	if upd.DeathDate != nil {
		add("death_date", *upd.DeathDate)
	}
	if upd.Reputation != nil {
		add("reputation", *upd.Reputation)
	}
	if upd.LastActiveAt != nil {
		add("last_active_at", *upd.LastActiveAt)
	}
	args = append(args, id)
	query += fmt.Sprintf(" WHERE id = $%d", len(args))

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return remoteErr(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: agent %s", core.ErrNotFound, id)
	}
	return nil
}

func (s *PostgresStore) IncrementAgentPostCount(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE agents SET post_count = post_count + 1, updated_at = now() WHERE id = $1`, id)
	return remoteErr(err)
}

// ==================== Post operations ====================

const postColumns = `id, author_id, circle_id, title, content, content_type, topic, metadata,
	like_count, comment_count, view_count, is_pinned, is_deleted, created_at, updated_at`

func (s *PostgresStore) ListPosts(ctx context.Context, filter core.PostFilter) ([]core.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE NOT is_deleted`
	args := []interface{}{}
	if filter.CircleID != "" {
		args = append(args, filter.CircleID)
		query += fmt.Sprintf(" AND circle_id = $%d", len(args))
	}
	if filter.AuthorID != "" {
		args = append(args, filter.AuthorID)
		query += fmt.Sprintf(" AND author_id = $%d", len(args))
	}
	if filter.Order == core.OrderMostLike {
		query += " ORDER BY like_count DESC"
	} else {
		query += " ORDER BY created_at DESC"
	}
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, remoteErr(err)
	}
	defer rows.Close()

	var posts []core.Post
	for rows.Next() {
		var p core.Post
		var circleID *string
		var meta []byte
		if err := rows.Scan(&p.ID, &p.AuthorID, &circleID, &p.Title, &p.Content, &p.ContentType,
			&p.Topic, &meta, &p.LikeCount, &p.CommentCount, &p.ViewCount,
			&p.IsPinned, &p.IsDeleted, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, remoteErr(err)
		}
		if circleID != nil {
			p.CircleID = *circleID
		}
		if len(meta) > 0 {
			_ = json.Unmarshal(meta, &p.Metadata)
		}
		posts = append(posts, p)
	}
	return posts, remoteErr(rows.Err())
}

func (s *PostgresStore) CreatePost(ctx context.Context, p core.Post) error {
	meta, err := json.Marshal(p.Metadata)
	if err != nil {
		return fmt.Errorf("%w: post metadata: %v", core.ErrInvalidRecord, err)
	}
	var circleID *string
	if p.CircleID != "" {
		circleID = &p.CircleID
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return remoteErr(err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		INSERT INTO posts (`+postColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		p.ID, p.AuthorID, circleID, p.Title, p.Content, p.ContentType, p.Topic, meta,
		p.LikeCount, p.CommentCount, p.ViewCount, p.IsPinned, p.IsDeleted,
		p.CreatedAt, p.UpdatedAt); err != nil {
		return remoteErr(err)
	}
	if circleID != nil {
		if _, err := tx.Exec(ctx,
			`UPDATE circles SET post_count = post_count + 1 WHERE id = $1`, *circleID); err != nil {
			return remoteErr(err)
		}
	}
	return remoteErr(tx.Commit(ctx))
}

func (s *PostgresStore) CreateLike(ctx context.Context, like core.Like) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return remoteErr(err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO likes (id, post_id, actor_id, created_at) VALUES ($1,$2,$3,$4)`,
		like.ID, like.PostID, like.ActorID, like.CreatedAt); err != nil {
		return remoteErr(err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE posts SET like_count = like_count + 1 WHERE id = $1`, like.PostID); err != nil {
		return remoteErr(err)
	}
	return remoteErr(tx.Commit(ctx))
}

func (s *PostgresStore) CreateComment(ctx context.Context, c core.Comment) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return remoteErr(err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO comments (id, post_id, author_id, content, like_count, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		c.ID, c.PostID, c.AuthorID, c.Content, c.LikeCount, c.CreatedAt); err != nil {
		return remoteErr(err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE posts SET comment_count = comment_count + 1 WHERE id = $1`, c.PostID); err != nil {
		return remoteErr(err)
	}
	return remoteErr(tx.Commit(ctx))
}

// ==================== Circle operations ====================

func (s *PostgresStore) ListCircles(ctx context.Context) ([]core.Circle, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, description, category, post_count, created_at
		FROM circles ORDER BY post_count DESC`)
	if err != nil {
		return nil, remoteErr(err)
	}
	defer rows.Close()

	var circles []core.Circle
	for rows.Next() {
		var c core.Circle
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Category, &c.PostCount, &c.CreatedAt); err != nil {
			return nil, remoteErr(err)
		}
		circles = append(circles, c)
	}
	return circles, remoteErr(rows.Err())
}

func (s *PostgresStore) CreateCircle(ctx context.Context, c core.Circle) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO circles (id, name, description, category, post_count, created_at)
		VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (id) DO NOTHING`,
		c.ID, c.Name, c.Description, c.Category, c.PostCount, c.CreatedAt)
	return remoteErr(err)
}

// ==================== Chat operations ====================

func (s *PostgresStore) ListChatRooms(ctx context.Context, filter core.RoomFilter) ([]core.ChatRoom, error) {
	query := `SELECT id, name, type, scene, participant_ids, created_at, last_message_at
		FROM chat_rooms WHERE 1=1`
	args := []interface{}{}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	query += " ORDER BY last_message_at DESC NULLS LAST"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, remoteErr(err)
	}
	defer rows.Close()

	var rooms []core.ChatRoom
	for rows.Next() {
		var r core.ChatRoom
		var participants []byte
		if err := rows.Scan(&r.ID, &r.Name, &r.Type, &r.Scene, &participants,
			&r.CreatedAt, &r.LastMessageAt); err != nil {
			return nil, remoteErr(err)
		}
		if len(participants) > 0 {
			_ = json.Unmarshal(participants, &r.ParticipantIDs)
		}
		rooms = append(rooms, r)
	}
	return rooms, remoteErr(rows.Err())
}

func (s *PostgresStore) CreateChatRoom(ctx context.Context, r core.ChatRoom) error {
	participants, err := json.Marshal(r.ParticipantIDs)
	if err != nil {
		return fmt.Errorf("%w: room participants: %v", core.ErrInvalidRecord, err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO chat_rooms (id, name, type, scene, participant_ids, created_at, last_message_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT (id) DO NOTHING`,
		r.ID, r.Name, r.Type, r.Scene, participants, r.CreatedAt, r.LastMessageAt)
	return remoteErr(err)
}

func (s *PostgresStore) ListChatMessages(ctx context.Context, roomID string, limit int) ([]core.ChatMessage, error) {
	query := `SELECT id, room_id, sender_id, content, type, emotion, created_at
		FROM (
			SELECT id, room_id, sender_id, content, type, emotion, created_at
			FROM chat_messages WHERE room_id = $1 ORDER BY created_at DESC LIMIT $2
		) latest ORDER BY created_at`
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx, query, roomID, limit)
	if err != nil {
		return nil, remoteErr(err)
	}
	defer rows.Close()

	var msgs []core.ChatMessage
	for rows.Next() {
		var m core.ChatMessage
		if err := rows.Scan(&m.ID, &m.RoomID, &m.SenderID, &m.Content, &m.Type, &m.Emotion, &m.CreatedAt); err != nil {
			return nil, remoteErr(err)
		}
		msgs = append(msgs, m)
	}
	return msgs, remoteErr(rows.Err())
}

func (s *PostgresStore) CreateChatMessage(ctx context.Context, m core.ChatMessage) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return remoteErr(err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		INSERT INTO chat_messages (id, room_id, sender_id, content, type, emotion, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		m.ID, m.RoomID, m.SenderID, m.Content, m.Type, m.Emotion, m.CreatedAt); err != nil {
		return remoteErr(err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE chat_rooms SET last_message_at = $1 WHERE id = $2`, m.CreatedAt, m.RoomID); err != nil {
		return remoteErr(err)
	}
	return remoteErr(tx.Commit(ctx))
}

// ==================== Relationship operations ====================

func (s *PostgresStore) ListRelationships(ctx context.Context, agentID string) ([]core.Relationship, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT agent_id, related_id, type, strength
		FROM relationships WHERE agent_id = $1`, agentID)
	if err != nil {
		return nil, remoteErr(err)
	}
	defer rows.Close()

	var rels []core.Relationship
	for rows.Next() {
		var r core.Relationship
		if err := rows.Scan(&r.AgentID, &r.RelatedID, &r.Type, &r.Strength); err != nil {
			return nil, remoteErr(err)
		}
		rels = append(rels, r)
	}
	return rels, remoteErr(rows.Err())
}

func (s *PostgresStore) CreateRelationship(ctx context.Context, r core.Relationship) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO relationships (agent_id, related_id, type, strength)
		VALUES ($1,$2,$3,$4) ON CONFLICT (agent_id, related_id) DO UPDATE
		SET type = EXCLUDED.type, strength = EXCLUDED.strength`,
		r.AgentID, r.RelatedID, r.Type, r.Strength)
	return remoteErr(err)
}

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS agents (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT '',
		camp TEXT NOT NULL,
		is_historical BOOLEAN NOT NULL DEFAULT FALSE,
		openness INT NOT NULL DEFAULT 50,
		conscientiousness INT NOT NULL DEFAULT 50,
		extraversion INT NOT NULL DEFAULT 50,
		agreeableness INT NOT NULL DEFAULT 50,
		neuroticism INT NOT NULL DEFAULT 50,
		age INT NOT NULL DEFAULT 25,
		health INT NOT NULL DEFAULT 100,
		mood TEXT NOT NULL DEFAULT 'neutral',
		is_alive BOOLEAN NOT NULL DEFAULT TRUE,
		birth_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		death_date TIMESTAMPTZ,
		reputation INT NOT NULL DEFAULT 0,
		post_count INT NOT NULL DEFAULT 0,
		follower_count INT NOT NULL DEFAULT 0,
		following_count INT NOT NULL DEFAULT 0,
		llm_model TEXT NOT NULL DEFAULT 'gpt-4o-mini',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		last_active_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS circles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		post_count INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id TEXT PRIMARY KEY,
		author_id TEXT NOT NULL REFERENCES agents(id),
		circle_id TEXT REFERENCES circles(id),
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		content_type TEXT NOT NULL DEFAULT 'text',
		topic TEXT NOT NULL DEFAULT '',
		metadata JSONB NOT NULL DEFAULT '{}',
		like_count INT NOT NULL DEFAULT 0,
		comment_count INT NOT NULL DEFAULT 0,
		view_count INT NOT NULL DEFAULT 0,
		is_pinned BOOLEAN NOT NULL DEFAULT FALSE,
		is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS likes (
		id TEXT PRIMARY KEY,
		post_id TEXT NOT NULL REFERENCES posts(id),
		actor_id TEXT NOT NULL REFERENCES agents(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id TEXT PRIMARY KEY,
		post_id TEXT NOT NULL REFERENCES posts(id),
		author_id TEXT NOT NULL REFERENCES agents(id),
		content TEXT NOT NULL,
		like_count INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS chat_rooms (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'group',
		scene TEXT NOT NULL DEFAULT '',
		participant_ids JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		last_message_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS chat_messages (
		id TEXT PRIMARY KEY,
		room_id TEXT NOT NULL REFERENCES chat_rooms(id),
		sender_id TEXT NOT NULL REFERENCES agents(id),
		content TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'text',
		emotion TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS relationships (
		agent_id TEXT NOT NULL REFERENCES agents(id),
		related_id TEXT NOT NULL REFERENCES agents(id),
		type TEXT NOT NULL DEFAULT 'friend',
		strength INT NOT NULL DEFAULT 50,
		PRIMARY KEY (agent_id, related_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_messages_room ON chat_messages (room_id, created_at)`,
}
