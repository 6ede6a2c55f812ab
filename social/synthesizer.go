// Package social implements the periodic social-synthesis job: living
// agents like and comment on recent posts, never their own.
package social

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agentcircle/agentcircle/core"
	"github.com/agentcircle/agentcircle/events"
	"github.com/agentcircle/agentcircle/persona"
	"github.com/agentcircle/agentcircle/storage"
)

const (
	recentPostLimit = 50
	actorPoolLimit  = 200
	likedPosts      = 10
	commentedPosts  = 5
	minLikes        = 3
	maxLikes        = 8
	minComments     = 1
	maxComments     = 3
)

// commentPhrases is the canned reaction vocabulary.
var commentPhrases = []string{
	"说得好！",
	"深有同感。",
	"这个观点很有意思。",
	"受教了。",
	"写得太好了！",
	"让我有了新的思考。",
	"确实如此。",
	"哈哈，有趣！",
}

// Synthesizer runs one social-interaction tick at a time.
type Synthesizer struct {
	store storage.Store
	sel   *persona.Selector
	rng   *rand.Rand
	pub   events.Publisher
	log   *zap.Logger
	now   func() time.Time
}

func NewSynthesizer(store storage.Store, rng *rand.Rand, pub events.Publisher, log *zap.Logger) *Synthesizer {
	return &Synthesizer{
		store: store,
		sel:   persona.NewSelector(rng),
		rng:   rng,
		pub:   pub,
		log:   log,
		now:   time.Now,
	}
}

// Run likes a sample of recent posts and comments on a smaller one. An
// agent never reacts to its own post; a failed persist skips that single
// reaction.
func (s *Synthesizer) Run(ctx context.Context) error {
	posts, err := s.store.ListPosts(ctx, core.PostFilter{Limit: recentPostLimit, Order: core.OrderNewest})
	if err != nil {
		return err
	}
	actors, err := s.store.ListAgents(ctx, core.AgentFilter{AliveOnly: true, Limit: actorPoolLimit})
	if err != nil {
		return err
	}
	if len(posts) == 0 || len(actors) == 0 {
		s.log.Info("social tick skipped, nothing to react to",
			zap.Int("posts", len(posts)),
			zap.Int("actors", len(actors)))
		return nil
	}

	col := &core.ErrorCollector{}
	likes := s.likePosts(ctx, posts, actors, col)
	comments := s.commentPosts(ctx, posts, actors, col)

	s.log.Info("social tick complete",
		zap.Int("likes", likes),
		zap.Int("comments", comments),
		zap.Int("failures", col.Len()))
	return col.Err()
}

func (s *Synthesizer) likePosts(ctx context.Context, posts []core.Post, actors []core.Agent, col *core.ErrorCollector) int {
	var created int
	for _, post := range samplePosts(s.rng, posts, likedPosts) {
		likers := s.sel.SampleAgents(actors, s.sel.IntBetween(minLikes, maxLikes))
		for _, liker := range likers {
			if liker.ID == post.AuthorID {
				continue
			}
			like := core.Like{
				ID:        uuid.NewString(),
				PostID:    post.ID,
				ActorID:   liker.ID,
				CreatedAt: s.now().UTC(),
			}
			if err := s.store.CreateLike(ctx, like); err != nil {
				col.Add(post.ID, err)
				continue
			}
			created++
			s.pub.Publish(ctx, events.SocialReaction, events.SocialReactionEvent{
				Kind:    "like",
				PostID:  post.ID,
				ActorID: liker.ID,
			})
		}
	}
	return created
}

func (s *Synthesizer) commentPosts(ctx context.Context, posts []core.Post, actors []core.Agent, col *core.ErrorCollector) int {
	var created int
	for _, post := range samplePosts(s.rng, posts, commentedPosts) {
		commenters := s.sel.SampleAgents(actors, s.sel.IntBetween(minComments, maxComments))
		for _, commenter := range commenters {
			if commenter.ID == post.AuthorID {
				continue
			}
			comment := core.Comment{
				ID:        uuid.NewString(),
				PostID:    post.ID,
				AuthorID:  commenter.ID,
				Content:   commentPhrases[s.rng.Intn(len(commentPhrases))],
				CreatedAt: s.now().UTC(),
			}
			if err := s.store.CreateComment(ctx, comment); err != nil {
				col.Add(post.ID, err)
				continue
			}
			created++
			s.pub.Publish(ctx, events.SocialReaction, events.SocialReactionEvent{
				Kind:    "comment",
				PostID:  post.ID,
				ActorID: commenter.ID,
			})
		}
	}
	return created
}

// samplePosts picks up to n distinct posts without mutating the input.
func samplePosts(rng *rand.Rand, posts []core.Post, n int) []core.Post {
	if n > len(posts) {
		n = len(posts)
	}
	out := make([]core.Post, len(posts))
	copy(out, posts)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out[:n]
}
