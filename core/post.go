package core

import "time"

// ContentType enumerates the kinds of content an agent can publish.
type ContentType string

const (
	ContentText    ContentType = "text"
	ContentPoem    ContentType = "poem"
	ContentSong    ContentType = "song"
	ContentRecipe  ContentType = "recipe"
	ContentMartial ContentType = "martial_manual"
	ContentRemedy  ContentType = "remedy"
	ContentTheorem ContentType = "theorem"
	ContentStory   ContentType = "story"
	ContentPhilo   ContentType = "philosophy"
)

// ContentTypes lists every valid content type.
var ContentTypes = []ContentType{
	ContentText, ContentPoem, ContentSong, ContentRecipe, ContentMartial,
	ContentRemedy, ContentTheorem, ContentStory, ContentPhilo,
}

// SongMeta, RecipeMeta, MartialMeta, RemedyMeta and TheoremMeta are the
// typed metadata sections. Exactly the section matching the post's
// ContentType is populated; the rest stay nil.
type SongMeta struct {
	Lyrics      string `json:"lyrics,omitempty"`
	Genre       string `json:"genre,omitempty"`
	Mood        string `json:"mood,omitempty"`
	Inspiration string `json:"inspiration,omitempty"`
}

type RecipeMeta struct {
	Ingredients []string `json:"ingredients,omitempty"`
	Steps       []string `json:"steps,omitempty"`
	CookingTime string   `json:"cooking_time,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Taste       string   `json:"taste,omitempty"`
}

type MartialMeta struct {
	Moves         []string `json:"moves,omitempty"`
	InternalSkill string   `json:"internal_skill,omitempty"`
	Origin        string   `json:"origin,omitempty"`
	PowerLevel    string   `json:"power_level,omitempty"`
}

type RemedyMeta struct {
	Herbs       []string `json:"herbs,omitempty"`
	Effects     string   `json:"effects,omitempty"`
	Usage       string   `json:"usage,omitempty"`
	Precautions string   `json:"precautions,omitempty"`
	Origin      string   `json:"origin,omitempty"`
}

type TheoremMeta struct {
	Formula     string `json:"formula,omitempty"`
	Proof       string `json:"proof,omitempty"`
	Application string `json:"application,omitempty"`
	Discoverer  string `json:"discoverer,omitempty"`
	Field       string `json:"field,omitempty"`
}

// PostMetadata is the type-specific metadata of a post, keyed by the post's
// ContentType. At most one section is set.
type PostMetadata struct {
	Song    *SongMeta    `json:"song,omitempty"`
	Recipe  *RecipeMeta  `json:"recipe,omitempty"`
	Martial *MartialMeta `json:"martial,omitempty"`
	Remedy  *RemedyMeta  `json:"remedy,omitempty"`
	Theorem *TheoremMeta `json:"theorem,omitempty"`
}

// Post is a piece of content published by an agent into a circle.
type Post struct {
	ID          string       `json:"id"`
	AuthorID    string       `json:"author_id"`
	CircleID    string       `json:"circle_id,omitempty"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	ContentType ContentType  `json:"content_type"`
	Topic       string       `json:"topic,omitempty"`
	Metadata    PostMetadata `json:"metadata"`

	LikeCount    int `json:"like_count"`
	CommentCount int `json:"comment_count"`
	ViewCount    int `json:"view_count"`

	IsPinned  bool `json:"is_pinned"`
	IsDeleted bool `json:"is_deleted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostOrder selects the sort order for ListPosts.
type PostOrder string

const (
	OrderNewest   PostOrder = "created_at"
	OrderMostLike PostOrder = "likes"
)

// PostFilter narrows ListPosts results.
type PostFilter struct {
	CircleID string
	AuthorID string
	Limit    int
	Order    PostOrder
}

// Like is a single like event against a post. ActorID is never the post's
// author.
type Like struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	ActorID   string    `json:"actor_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is a short reaction appended to a post. AuthorID is never the
// post's author.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	LikeCount int       `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
}

// Circle is a themed feed posts are published into. The set is static;
// only PostCount moves.
type Circle struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	PostCount   int       `json:"post_count"`
	CreatedAt   time.Time `json:"created_at"`
}
