// Package convoctx provides a bounded, self-summarizing conversation context
// for Go LLM applications.
//
// A Context maintains an ordered message log split into two capacity-bounded
// segments. The recent segment always holds the latest messages verbatim; the
// old segment collects overflow and, once it exceeds its own capacity, is
// collapsed into a single summary message by a pluggable summarizer. When the
// summarizer fails or none is configured, the context degrades gracefully by
// truncating the oldest content instead, so adding a message never fails.
//
// # Quick Start
//
// Create a context and feed it conversation turns:
//
//	cc, err := convoctx.New(10, 20,
//	    convoctx.WithSummarizer(summarize.NewAnthropic(&client, "claude-3-5-haiku-20241022", 1024)),
//	)
//	if err != nil {
//	    return err
//	}
//
//	cc.AddMessage(ctx, types.User("What is machine learning?", "alice"))
//	cc.AddMessage(ctx, types.Assistant("Machine learning is ...", "agent"))
//
//	prompt := cc.Messages() // old segment ++ recent segment, chronological
//
// # Summarizer Backends
//
// The summarize package ships Claude (Anthropic) and Gemini (GenAI) backends;
// any implementation of summarize.Summarizer can be injected, including a
// plain function via summarize.Func.
//
// # Persistence
//
// State and Restore expose an exact snapshot of both segments. The driver
// packages (driver/pgxv5, driver/databasesql, driver/mongodb) persist
// snapshots without ever triggering summarization on load.
//
// # Observability
//
// A hooks.Registry observes evictions, summarizations, and degradations;
// hooks.LoggingHooks provides ready-made log output. The Logger interface
// accepts any leveled logger without imposing a logging dependency.
package convoctx
