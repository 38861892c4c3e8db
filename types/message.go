package types

import "fmt"

// Role represents the message role
type Role string

const (
	// RoleSystem represents a system message
	RoleSystem Role = "system"

	// RoleUser represents a user message
	RoleUser Role = "user"

	// RoleAssistant represents an assistant message
	RoleAssistant Role = "assistant"

	// RoleFunction represents a function execution result message
	RoleFunction Role = "function"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant, RoleFunction:
		return true
	}
	return false
}

// Message represents one ordered unit of conversation content.
//
// Messages are immutable once appended to a context: the context never mutates
// a stored message in place, it only replaces whole segments.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`

	// Source is a free-text label identifying the producer of the message,
	// e.g. an agent or participant name.
	Source string `json:"source,omitempty"`

	// IsSummary marks synthetic messages produced by summarization or by the
	// degradation path, so consumers can detect them without sniffing content.
	IsSummary bool `json:"is_summary,omitempty"`
}

// RenderLine formats the message as a single transcript line of the form
// "<role>: <content>", the shape fed to summarization requests.
func (m Message) RenderLine() string {
	return fmt.Sprintf("%s: %s", m.Role, m.Content)
}

// System creates a system message.
func System(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// User creates a user message with the given source label.
func User(content, source string) Message {
	return Message{Role: RoleUser, Content: content, Source: source}
}

// Assistant creates an assistant message with the given source label.
func Assistant(content, source string) Message {
	return Message{Role: RoleAssistant, Content: content, Source: source}
}

// FunctionResult creates a function execution result message.
func FunctionResult(content, source string) Message {
	return Message{Role: RoleFunction, Content: content, Source: source}
}
