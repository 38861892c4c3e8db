package convoctx

import (
	"github.com/convoctx/convoctx/hooks"
	"github.com/convoctx/convoctx/summarize"
	"github.com/convoctx/convoctx/types"
)

// Option is a functional option for configuring a Context
type Option func(*Config) error

// WithSummarizer sets the summarizer used when the old segment overflows.
// Without one, overflow drops the oldest messages instead.
func WithSummarizer(s summarize.Summarizer) Option {
	return func(c *Config) error {
		c.Summarizer = s
		return nil
	}
}

// WithSummarizePrompt sets a custom summarization instruction
func WithSummarizePrompt(prompt string) Option {
	return func(c *Config) error {
		c.SummarizePrompt = prompt
		return nil
	}
}

// WithInitialMessages pre-seeds the context with an ordered message list
func WithInitialMessages(messages ...types.Message) Option {
	return func(c *Config) error {
		c.InitialMessages = messages
		return nil
	}
}

// WithHooks attaches a hook registry for eviction, summarization, and
// degradation events
func WithHooks(registry *hooks.Registry) Option {
	return func(c *Config) error {
		c.Hooks = registry
		return nil
	}
}

// WithLogger sets the logger used by the context
func WithLogger(logger Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}
