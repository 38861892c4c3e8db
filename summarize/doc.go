// Package summarize provides the summarization capability consumed by the
// convoctx context when its old segment overflows.
//
// The central contract is the Summarizer interface: given an ordered sequence
// of role-tagged messages, produce a single replacement text or fail. Two
// backends are provided, Anthropic (Claude streaming messages API) and GenAI
// (Gemini); any text-generation service satisfying the signature is
// substitutable, and the Func adapter turns a plain function into a
// Summarizer for tests and custom backends.
//
// Summarizers make exactly one attempt per call. Failures are reported via
// errors wrapping ErrSummarizationFailed; the owning context converts them
// into its degradation policy rather than surfacing them.
package summarize
