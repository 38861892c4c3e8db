package summarize

import (
	"strings"

	"github.com/convoctx/convoctx/types"
)

// DefaultPrompt is the instruction used for summarization when the caller does
// not supply one.
const DefaultPrompt = "Summarize the following conversation concisely, capturing the key points, " +
	"decisions, and information shared. Keep any critical details that would be " +
	"necessary for understanding the rest of the conversation."

// BuildTranscript renders every message as a single "<role>: <content>" line,
// joined with newlines, forming the transcript handed to the summarizer.
func BuildTranscript(messages []types.Message) string {
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		lines = append(lines, msg.RenderLine())
	}
	return strings.Join(lines, "\n")
}

// BuildRequest constructs the two-message summarization request: a system
// instruction carrying the prompt, and a user message carrying the transcript
// of the messages to be summarized.
func BuildRequest(prompt string, messages []types.Message) []types.Message {
	return []types.Message{
		{Role: types.RoleSystem, Content: prompt},
		{Role: types.RoleUser, Content: BuildTranscript(messages), Source: "system"},
	}
}
