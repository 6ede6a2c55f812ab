package ai

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentcircle/agentcircle/core"
)

func TestFallbackContent(t *testing.T) {
	agent := core.Agent{Name: "李白"}

	t.Run("every content type yields usable content", func(t *testing.T) {
		for _, ct := range core.ContentTypes {
			got := FallbackContent(agent, ct, "月")
			require.NotEmpty(t, got.Title, "content type %s", ct)
			require.NotEmpty(t, got.Content, "content type %s", ct)
			require.NotEmpty(t, got.Circle, "content type %s", ct)
		}
	})

	t.Run("output is deterministic", func(t *testing.T) {
		a := FallbackContent(agent, core.ContentPoem, "海")
		b := FallbackContent(agent, core.ContentPoem, "海")
		require.Equal(t, a, b)
	})

	t.Run("poem template embeds agent name and topic", func(t *testing.T) {
		got := FallbackContent(agent, core.ContentPoem, "海")
		require.Equal(t, "海吟", got.Title)
		require.Contains(t, got.Content, "李白")
		require.Contains(t, got.Content, "海")
		require.Equal(t, "诗词文学", got.Circle)
	})

	t.Run("typed metadata matches the content type", func(t *testing.T) {
		song := FallbackContent(agent, core.ContentSong, "月")
		require.NotNil(t, song.Metadata.Song)
		require.Nil(t, song.Metadata.Recipe)

		theorem := FallbackContent(agent, core.ContentTheorem, "时间")
		require.NotNil(t, theorem.Metadata.Theorem)
		require.Equal(t, "李白", theorem.Metadata.Theorem.Discoverer)
	})

	t.Run("nameless agent gets a placeholder", func(t *testing.T) {
		got := FallbackContent(core.Agent{}, core.ContentText, "人生")
		require.Contains(t, got.Content, "未知")
	})
}

func TestFallbackReply(t *testing.T) {
	reply := FallbackReply(core.Agent{Name: "杜甫"})
	require.Equal(t, "杜甫沉思片刻，缓缓开口...", reply.Content)
	require.Equal(t, "thinking", reply.Emotion)

	anon := FallbackReply(core.Agent{})
	require.Equal(t, "我沉思片刻，缓缓开口...", anon.Content)
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"title":"x"}`, `{"title":"x"}`},
		{"json fence", "```json\n{\"title\":\"x\"}\n```", `{"title":"x"}`},
		{"plain fence", "```\n{\"title\":\"x\"}\n```", `{"title":"x"}`},
		{"fence with prose", "Here you go:\n```json\n{\"a\":1}\n```\nEnjoy!", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, extractJSON(tc.in))
		})
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	t.Run("trait blurbs follow the vector", func(t *testing.T) {
		p := buildSystemPrompt(core.Agent{
			Name:        "孔子",
			Title:       "至圣先师",
			Personality: core.Personality{Openness: 85, Conscientiousness: 95, Extraversion: 30},
		})
		require.Contains(t, p, "你是孔子，至圣先师。")
		require.Contains(t, p, "富有创造力和好奇心")
		require.Contains(t, p, "认真负责、有条理")
		require.Contains(t, p, "内向沉稳、喜欢独处")
	})

	t.Run("flat vector reads as calm", func(t *testing.T) {
		p := buildSystemPrompt(core.Agent{Name: "某人", Personality: core.Personality{
			Openness: 50, Conscientiousness: 50, Extraversion: 50, Agreeableness: 50, Neuroticism: 50,
		}})
		require.Contains(t, p, "性格平和")
	})
}

func TestCirclesFor(t *testing.T) {
	require.Equal(t, []string{"诗词文学", "古风雅集"}, circlesFor(core.ContentPoem))
	require.Equal(t, []string{DefaultCircle}, circlesFor(core.ContentType("unknown")))
}
