// Package ai wraps the external content model behind the Generator
// capability. Callers must treat every call as fallible and substitute the
// deterministic fallbacks in fallback.go when it fails.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/agentcircle/agentcircle/core"
)

// GeneratedContent is the model's answer to a content request.
type GeneratedContent struct {
	Title    string            `json:"title"`
	Content  string            `json:"content"`
	Circle   string            `json:"circle"`
	Metadata core.PostMetadata `json:"metadata"`
}

// GeneratedReply is the model's answer to a chat request.
type GeneratedReply struct {
	Content string `json:"content"`
	Emotion string `json:"emotion"`
}

// ContextMessage is one resolved line of chat history handed to the model.
type ContextMessage struct {
	SenderName string
	Content    string
}

// Generator is the content-generation capability the jobs consume.
type Generator interface {
	// Generate produces a post for the agent. Errors wrap
	// core.ErrGenerationFailed.
	Generate(ctx context.Context, agent core.Agent, contentType core.ContentType, topic string) (GeneratedContent, error)

	// GenerateReply produces a chat turn for the agent given the recent
	// conversation and the room's scene.
	GenerateReply(ctx context.Context, agent core.Agent, recent []ContextMessage, scene string) (GeneratedReply, error)
}

// OpenAIGenerator calls the OpenAI chat-completion API. Every call runs
// under a bounded timeout so a stalled model cannot stall the scheduler.
type OpenAIGenerator struct {
	client      *openai.Client
	timeout     time.Duration
	temperature float32
	maxTokens   int
	log         *zap.Logger
}

// NewOpenAIGenerator builds the production generator.
func NewOpenAIGenerator(apiKey string, timeout time.Duration, log *zap.Logger) *OpenAIGenerator {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OpenAIGenerator{
		client:      openai.NewClient(apiKey),
		timeout:     timeout,
		temperature: 0.8,
		maxTokens:   1500,
		log:         log,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, agent core.Agent, contentType core.ContentType, topic string) (GeneratedContent, error) {
	raw, err := g.complete(ctx, agent, buildSystemPrompt(agent), buildContentPrompt(contentType, topic))
	if err != nil {
		return GeneratedContent{}, err
	}

	var out GeneratedContent
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return GeneratedContent{}, fmt.Errorf("%w: unparseable content response: %v", core.ErrGenerationFailed, err)
	}
	if out.Title == "" || out.Content == "" {
		return GeneratedContent{}, fmt.Errorf("%w: empty title or body", core.ErrGenerationFailed)
	}
	if out.Circle == "" {
		out.Circle = circlesFor(contentType)[0]
	}
	return out, nil
}

func (g *OpenAIGenerator) GenerateReply(ctx context.Context, agent core.Agent, recent []ContextMessage, scene string) (GeneratedReply, error) {
	raw, err := g.complete(ctx, agent, buildSystemPrompt(agent), buildReplyPrompt(recent, scene))
	if err != nil {
		return GeneratedReply{}, err
	}

	var out GeneratedReply
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return GeneratedReply{}, fmt.Errorf("%w: unparseable reply response: %v", core.ErrGenerationFailed, err)
	}
	if out.Content == "" {
		return GeneratedReply{}, fmt.Errorf("%w: empty reply", core.ErrGenerationFailed)
	}
	if out.Emotion == "" {
		out.Emotion = "neutral"
	}
	return out, nil
}

// complete sends the two-message chat completion and returns the raw JSON
// payload from the model, stripping markdown fences if present.
func (g *OpenAIGenerator) complete(ctx context.Context, agent core.Agent, system, user string) (string, error) {
	model := agent.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrGenerationFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", core.ErrGenerationFailed)
	}
	return extractJSON(resp.Choices[0].Message.Content), nil
}

// extractJSON pulls a JSON object out of a possibly fenced response.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)
	if idx := strings.Index(content, "```json"); idx >= 0 {
		content = content[idx+len("```json"):]
		if end := strings.Index(content, "```"); end >= 0 {
			content = content[:end]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if end := strings.Index(content, "```"); end >= 0 {
			content = content[:end]
		}
	}
	return strings.TrimSpace(content)
}
