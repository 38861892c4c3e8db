package summarize

import (
	"context"
	"errors"

	"github.com/convoctx/convoctx/types"
)

// ErrSummarizationFailed indicates the summarization call failed.
var ErrSummarizationFailed = errors.New("summarization failed")

// Summarizer produces a single replacement text for an ordered sequence of
// role-tagged messages. Implementations typically call an external model
// service; the call may suspend and may fail.
//
// A Summarizer performs a single attempt per invocation. Callers that want
// retries should wrap the Summarizer with retry logic before injecting it.
type Summarizer interface {
	Summarize(ctx context.Context, messages []types.Message) (string, error)
}

// Func adapts a plain function to the Summarizer interface.
type Func func(ctx context.Context, messages []types.Message) (string, error)

// Summarize implements Summarizer.
func (f Func) Summarize(ctx context.Context, messages []types.Message) (string, error) {
	return f(ctx, messages)
}
