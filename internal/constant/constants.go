package constant

// Stored chat message roles. The wire-level "model" role only exists inside
// the LLM providers; everything persisted uses these two.
const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
)

// Greeting persisted as the first assistant message of a fresh session.
const ChatSessionGreeting = "Hi, I'm your health assistant. Tell me about your symptoms and I'll help you figure out what to do next."

// Default title before the first user message names the session.
const ChatSessionDefaultTitle = "New consultation"
