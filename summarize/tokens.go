package summarize

import "github.com/convoctx/convoctx/types"

// ApproximateTokens provides fast token estimation without an API call.
// Models tokenize roughly 3.5 characters per token for English text.
func ApproximateTokens(content string) int {
	return len(content) * 10 / 35
}

// ApproximateMessageTokens estimates total tokens across messages, including a
// small per-message overhead for role framing.
func ApproximateMessageTokens(messages []types.Message) int {
	total := 0
	for _, msg := range messages {
		total += ApproximateTokens(msg.Content) + 4
	}
	return total
}
