package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/convoctx/convoctx/types"
)

// DefaultAnthropicMaxTokens is the response token limit used when the caller
// passes a non-positive value to NewAnthropic.
const DefaultAnthropicMaxTokens = 1024

// Anthropic is a Summarizer backed by Claude's streaming messages API.
type Anthropic struct {
	client    *anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropic creates an Anthropic summarizer for the given model.
// maxTokens bounds the summary length; values <= 0 fall back to
// DefaultAnthropicMaxTokens.
func NewAnthropic(client *anthropic.Client, model string, maxTokens int64) *Anthropic {
	if maxTokens <= 0 {
		maxTokens = DefaultAnthropicMaxTokens
	}
	return &Anthropic{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
	}
}

// Summarize implements Summarizer. System-role messages become the request's
// system blocks; everything else is sent as conversational turns.
func (s *Anthropic) Summarize(ctx context.Context, messages []types.Message) (string, error) {
	system, turns := splitForAnthropic(messages)
	if len(turns) == 0 {
		return "", fmt.Errorf("%w: no conversational messages to summarize", ErrSummarizationFailed)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: s.maxTokens,
		Messages:  turns,
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	stream := s.client.Messages.NewStreaming(ctx, params)

	// Accumulate the streamed response
	message := anthropic.Message{}
	for stream.Next() {
		event := stream.Current()
		if err := message.Accumulate(event); err != nil {
			return "", fmt.Errorf("%w: failed to accumulate stream: %v", ErrSummarizationFailed, err)
		}
	}

	if err := stream.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummarizationFailed, err)
	}

	var summary strings.Builder
	for _, block := range message.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			summary.WriteString(text.Text)
		}
	}

	if summary.Len() == 0 {
		return "", fmt.Errorf("%w: empty response from summarizer", ErrSummarizationFailed)
	}

	return summary.String(), nil
}

// splitForAnthropic separates system instructions from conversational turns.
// Function results are presented as user turns since the API has no dedicated
// role for them.
func splitForAnthropic(messages []types.Message) (string, []anthropic.MessageParam) {
	var system []string
	var turns []anthropic.MessageParam

	for _, msg := range messages {
		switch msg.Role {
		case types.RoleSystem:
			system = append(system, msg.Content)
		case types.RoleAssistant:
			turns = append(turns, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			turns = append(turns, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}

	return strings.Join(system, "\n"), turns
}
