package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"github.com/auralabs/aura/internal/infrastructure/llm"
)

// ErrNoPayload means the model reply carried no decodable intent object.
// Malformed embedded JSON is treated identically: fail closed.
var ErrNoPayload = errors.New("no intent payload in model output")

// Payload is the intent object the model embeds in its reply
type Payload struct {
	Type      Intent `json:"type"`
	UserInput string `json:"userInput"`
	Response  string `json:"response"`
}

// Classifier turns a natural-language command into an intent payload
type Classifier interface {
	Classify(ctx context.Context, command, assistantName, userName string) (*Payload, error)
}

// LLMClassifier submits one synchronous classification turn to the
// generative-language endpoint. No retries, no backoff, no caching.
type LLMClassifier struct {
	llm *llm.Service
}

func NewClassifier(llmService *llm.Service) (*LLMClassifier, error) {
	if llmService == nil {
		return nil, fmt.Errorf("model service is required")
	}
	return &LLMClassifier{llm: llmService}, nil
}

func (c *LLMClassifier) Classify(ctx context.Context, command, assistantName, userName string) (*Payload, error) {
	prompt := BuildPrompt(assistantName, userName, command)

	resp, err := c.llm.GetClient().CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.llm.Model(),
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("Model call failed")
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		log.Warn().Msg("Model returned no choices")
		return nil, ErrNoPayload
	}

	return ExtractPayload(resp.Choices[0].Message.Content)
}

// ExtractPayload finds the first decodable JSON object embedded in free-form
// model output. Scanning with a real decoder handles nested braces inside
// string values, which a greedy brace regex cannot.
func ExtractPayload(text string) (*Payload, error) {
	for i := strings.IndexByte(text, '{'); i >= 0; {
		dec := json.NewDecoder(strings.NewReader(text[i:]))
		var p Payload
		if err := dec.Decode(&p); err == nil {
			return &p, nil
		}

		next := strings.IndexByte(text[i+1:], '{')
		if next < 0 {
			break
		}
		i += 1 + next
	}

	log.Warn().Str("output", text).Msg("Model output carried no decodable intent object")
	return nil, ErrNoPayload
}
