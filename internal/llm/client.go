// Package llm provides the completion service client used by every workflow.
// All provider failures surface as *CompletionError so callers can apply
// their degrade policy uniformly.
package llm

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/jobseeker-agent/internal/types"
)

// Request describes a single completion.
type Request struct {
	// Prompt is the user-visible prompt text. Ignored by Continue, which
	// sends a transcript instead.
	Prompt string
	// System is an optional system instruction.
	System string
	// MaxTokens bounds the generated output. Zero means DefaultMaxTokens.
	MaxTokens int
	// Temperature controls sampling; zero keeps the provider default.
	Temperature float32
	// Tier selects the model; the zero value maps to TierStandard.
	Tier ModelTier
}

// Client issues completions against an LLM provider.
type Client interface {
	// Complete issues one stateless completion.
	Complete(ctx context.Context, req Request) (string, error)
	// Continue sends a full conversation transcript and returns the next
	// assistant turn. The last transcript entry must be a user turn.
	Continue(ctx context.Context, transcript []types.Turn, req Request) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a client for the configured provider. Only Gemini is
// implemented today; unknown providers fall back to it.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	return NewGeminiClient(ctx, config, apiKey)
}

// GeminiClient implements Client on Google Gemini.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, &CompletionError{Message: "API key is required"}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &CompletionError{Message: "failed to create Gemini client", Cause: err}
	}

	return &GeminiClient{client: client, config: config}, nil
}

// Complete issues one stateless completion.
func (c *GeminiClient) Complete(ctx context.Context, req Request) (string, error) {
	model, err := c.model(req)
	if err != nil {
		return "", err
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", &CompletionError{Message: "completion failed", Cause: err}
	}

	return extractText(resp)
}

// Continue replays the transcript as chat history and sends the final user
// turn for a new assistant reply.
func (c *GeminiClient) Continue(ctx context.Context, transcript []types.Turn, req Request) (string, error) {
	if len(transcript) == 0 {
		return "", &CompletionError{Message: "transcript is empty"}
	}
	last := transcript[len(transcript)-1]
	if last.Role != types.RoleUser {
		return "", &CompletionError{Message: "transcript must end with a user turn"}
	}

	model, err := c.model(req)
	if err != nil {
		return "", err
	}

	session := model.StartChat()
	for _, turn := range transcript[:len(transcript)-1] {
		session.History = append(session.History, &genai.Content{
			Role:  geminiRole(turn.Role),
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(last.Text))
	if err != nil {
		return "", &CompletionError{Message: "conversation completion failed", Cause: err}
	}

	return extractText(resp)
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// model builds a configured generative model for one request.
func (c *GeminiClient) model(req Request) (*genai.GenerativeModel, error) {
	tier := req.Tier
	if tier == "" {
		tier = TierStandard
	}
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return nil, &CompletionError{Message: "no model configured for tier " + string(tier)}
	}

	model := c.client.GenerativeModel(modelName)
	if req.Temperature > 0 {
		model.SetTemperature(req.Temperature)
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	model.SetMaxOutputTokens(int32(maxTokens))
	if req.System != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.System)},
		}
	}
	return model, nil
}

// geminiRole maps transcript roles onto the provider's role names.
func geminiRole(role types.Role) string {
	if role == types.RoleAssistant {
		return "model"
	}
	return "user"
}

// extractText concatenates the text parts of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &CompletionError{Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &CompletionError{Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", &CompletionError{Message: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}
