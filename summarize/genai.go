package summarize

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/convoctx/convoctx/types"
)

// GenAI is a Summarizer backed by the Gemini API. It satisfies the same
// capability contract as Anthropic, so either backend can be injected.
type GenAI struct {
	client *genai.Client
	model  string
}

// NewGenAI creates a Gemini-backed summarizer for the given model.
func NewGenAI(client *genai.Client, model string) *GenAI {
	return &GenAI{
		client: client,
		model:  model,
	}
}

// Summarize implements Summarizer.
func (s *GenAI) Summarize(ctx context.Context, messages []types.Message) (string, error) {
	var system []string
	var contents []*genai.Content

	for _, msg := range messages {
		switch msg.Role {
		case types.RoleSystem:
			system = append(system, msg.Content)
		case types.RoleAssistant:
			contents = append(contents, &genai.Content{
				Role:  genai.RoleModel,
				Parts: []*genai.Part{{Text: msg.Content}},
			})
		default:
			contents = append(contents, &genai.Content{
				Role:  genai.RoleUser,
				Parts: []*genai.Part{{Text: msg.Content}},
			})
		}
	}

	if len(contents) == 0 {
		return "", fmt.Errorf("%w: no conversational messages to summarize", ErrSummarizationFailed)
	}

	config := &genai.GenerateContentConfig{}
	if len(system) > 0 {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: strings.Join(system, "\n")}},
		}
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummarizationFailed, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty response from summarizer", ErrSummarizationFailed)
	}

	return text, nil
}
