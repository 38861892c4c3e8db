package convoctx

import (
	"fmt"

	"github.com/convoctx/convoctx/hooks"
	"github.com/convoctx/convoctx/summarize"
	"github.com/convoctx/convoctx/types"
)

// DefaultSummarizePrompt is the summarization instruction used when no custom
// prompt is configured.
const DefaultSummarizePrompt = summarize.DefaultPrompt

// Config holds the full configuration of a Context. New assembles it from the
// required capacities and functional options.
type Config struct {
	// RecentCapacity bounds the recent segment. Must be positive.
	RecentCapacity int

	// OldCapacity bounds the old segment. Must be positive.
	OldCapacity int

	// SummarizePrompt is the instruction sent to the summarizer.
	// Default: DefaultSummarizePrompt.
	SummarizePrompt string

	// Summarizer collapses the old segment into a single text when it
	// overflows. When nil, overflow truncates the oldest messages instead.
	Summarizer summarize.Summarizer

	// InitialMessages pre-seeds the context. They are distributed into the
	// two segments by the same capacity rule used at runtime; construction
	// never invokes the summarizer.
	InitialMessages []types.Message

	// Hooks receives eviction, summarization, and degradation events.
	Hooks *hooks.Registry

	// Logger receives structured log events. Default: no-op.
	Logger Logger
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	if c.SummarizePrompt == "" {
		c.SummarizePrompt = DefaultSummarizePrompt
	}
	if c.Logger == nil {
		c.Logger = noopLogger{}
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.RecentCapacity <= 0 {
		return fmt.Errorf("%w: recent_capacity must be positive, got %d", ErrInvalidConfig, c.RecentCapacity)
	}
	if c.OldCapacity <= 0 {
		return fmt.Errorf("%w: old_capacity must be positive, got %d", ErrInvalidConfig, c.OldCapacity)
	}
	return nil
}
