package hooks

import (
	"context"
	"sync"
	"time"

	"github.com/convoctx/convoctx/types"
)

// EvictHook is called when messages are evicted from the recent segment into
// the old segment.
type EvictHook func(ctx context.Context, evicted []types.Message) error

// BeforeSummarizeHook is called before the old segment is summarized, with the
// messages about to be replaced.
type BeforeSummarizeHook func(ctx context.Context, messages []types.Message) error

// AfterSummarizeHook is called after a successful summarization.
type AfterSummarizeHook func(ctx context.Context, event SummaryEvent) error

// DegradeHook is called when summarization fails (or no summarizer is
// configured) and the old segment is truncated instead.
type DegradeHook func(ctx context.Context, event DegradeEvent) error

// SummaryEvent describes a completed summarization of the old segment.
type SummaryEvent struct {
	// Summary is the raw text returned by the summarizer, before the
	// context wraps it into a summary message.
	Summary string

	// MessagesReplaced is the number of messages collapsed into the summary.
	MessagesReplaced int

	// Duration is how long the summarizer call took.
	Duration time.Duration
}

// DegradeEvent describes a truncation of the old segment.
type DegradeEvent struct {
	// MessagesDropped is the number of messages permanently lost.
	MessagesDropped int

	// Cause is the summarizer error that forced the degradation, or nil
	// when no summarizer was configured.
	Cause error
}

// Registry holds all registered hooks
type Registry struct {
	mu              sync.RWMutex
	evict           []EvictHook
	beforeSummarize []BeforeSummarizeHook
	afterSummarize  []AfterSummarizeHook
	degrade         []DegradeHook
}

// NewRegistry creates a new hook registry
func NewRegistry() *Registry {
	return &Registry{
		evict:           []EvictHook{},
		beforeSummarize: []BeforeSummarizeHook{},
		afterSummarize:  []AfterSummarizeHook{},
		degrade:         []DegradeHook{},
	}
}

// OnEvict registers a hook to be called when messages move from recent to old
func (r *Registry) OnEvict(hook EvictHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evict = append(r.evict, hook)
}

// OnBeforeSummarize registers a hook to be called before summarization
func (r *Registry) OnBeforeSummarize(hook BeforeSummarizeHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.beforeSummarize = append(r.beforeSummarize, hook)
}

// OnAfterSummarize registers a hook to be called after summarization
func (r *Registry) OnAfterSummarize(hook AfterSummarizeHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.afterSummarize = append(r.afterSummarize, hook)
}

// OnDegrade registers a hook to be called when the old segment is truncated
func (r *Registry) OnDegrade(hook DegradeHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.degrade = append(r.degrade, hook)
}

// TriggerEvict calls all registered evict hooks
func (r *Registry) TriggerEvict(ctx context.Context, evicted []types.Message) error {
	r.mu.RLock()
	hooks := make([]EvictHook, len(r.evict))
	copy(hooks, r.evict)
	r.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook(ctx, evicted); err != nil {
			return err
		}
	}
	return nil
}

// TriggerBeforeSummarize calls all registered before-summarize hooks
func (r *Registry) TriggerBeforeSummarize(ctx context.Context, messages []types.Message) error {
	r.mu.RLock()
	hooks := make([]BeforeSummarizeHook, len(r.beforeSummarize))
	copy(hooks, r.beforeSummarize)
	r.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook(ctx, messages); err != nil {
			return err
		}
	}
	return nil
}

// TriggerAfterSummarize calls all registered after-summarize hooks
func (r *Registry) TriggerAfterSummarize(ctx context.Context, event SummaryEvent) error {
	r.mu.RLock()
	hooks := make([]AfterSummarizeHook, len(r.afterSummarize))
	copy(hooks, r.afterSummarize)
	r.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// TriggerDegrade calls all registered degrade hooks
func (r *Registry) TriggerDegrade(ctx context.Context, event DegradeEvent) error {
	r.mu.RLock()
	hooks := make([]DegradeHook, len(r.degrade))
	copy(hooks, r.degrade)
	r.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
