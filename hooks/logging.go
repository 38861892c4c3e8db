package hooks

import (
	"context"
	"log"

	"github.com/convoctx/convoctx/types"
)

// LoggingHooks provides built-in logging hooks for observability
type LoggingHooks struct {
	logger *log.Logger
}

// NewLoggingHooks creates logging hooks with the provided logger
func NewLoggingHooks(logger *log.Logger) *LoggingHooks {
	return &LoggingHooks{logger: logger}
}

// DefaultLoggingHooks creates logging hooks with default logger
func DefaultLoggingHooks() *LoggingHooks {
	return &LoggingHooks{logger: log.Default()}
}

// Evict logs messages moving from the recent segment to the old segment
func (h *LoggingHooks) Evict(ctx context.Context, evicted []types.Message) error {
	h.logger.Printf("[ConvoCtx] Evicted %d messages from recent to old segment", len(evicted))
	return nil
}

// BeforeSummarize logs before the old segment is summarized
func (h *LoggingHooks) BeforeSummarize(ctx context.Context, messages []types.Message) error {
	h.logger.Printf("[ConvoCtx] Summarizing %d old messages", len(messages))
	return nil
}

// AfterSummarize logs after a successful summarization
func (h *LoggingHooks) AfterSummarize(ctx context.Context, event SummaryEvent) error {
	preview := event.Summary
	if len(preview) > 100 {
		preview = preview[:100] + "..."
	}
	h.logger.Printf("[ConvoCtx] Summarized %d messages in %s: %s",
		event.MessagesReplaced, event.Duration, preview)
	return nil
}

// Degrade logs a truncation of the old segment
func (h *LoggingHooks) Degrade(ctx context.Context, event DegradeEvent) error {
	if event.Cause != nil {
		h.logger.Printf("[ConvoCtx] Summarization failed, dropped %d messages: %v",
			event.MessagesDropped, event.Cause)
	} else {
		h.logger.Printf("[ConvoCtx] No summarizer configured, dropped %d oldest messages",
			event.MessagesDropped)
	}
	return nil
}

// RegisterAll registers all logging hooks with the given registry
func (h *LoggingHooks) RegisterAll(registry *Registry) {
	registry.OnEvict(h.Evict)
	registry.OnBeforeSummarize(h.BeforeSummarize)
	registry.OnAfterSummarize(h.AfterSummarize)
	registry.OnDegrade(h.Degrade)
}
