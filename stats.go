package convoctx

import "github.com/convoctx/convoctx/summarize"

// Stats contains statistics about a context's current state.
type Stats struct {
	// RecentMessages is the number of messages in the recent segment.
	RecentMessages int

	// OldMessages is the number of messages in the old segment.
	OldMessages int

	// TotalMessages is the number of messages Messages() would return.
	TotalMessages int

	// RecentCapacity and OldCapacity echo the configured bounds.
	RecentCapacity int
	OldCapacity    int

	// SummaryMessages is the count of synthetic messages currently held,
	// from summarization, placeholders, or degradation markers.
	SummaryMessages int

	// Degradations is the number of times summarization failed and the old
	// segment was truncated instead.
	Degradations int

	// ApproxTokens is a character-based token estimate across all retained
	// messages. No API call is made.
	ApproxTokens int
}

// Stats returns statistics about the context's current state.
func (c *Context) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	summaries := 0
	for _, msg := range c.old {
		if msg.IsSummary {
			summaries++
		}
	}
	for _, msg := range c.recent {
		if msg.IsSummary {
			summaries++
		}
	}

	return Stats{
		RecentMessages:  len(c.recent),
		OldMessages:     len(c.old),
		TotalMessages:   len(c.old) + len(c.recent),
		RecentCapacity:  c.config.RecentCapacity,
		OldCapacity:     c.config.OldCapacity,
		SummaryMessages: summaries,
		Degradations:    c.degradations,
		ApproxTokens:    summarize.ApproximateMessageTokens(c.old) + summarize.ApproximateMessageTokens(c.recent),
	}
}
