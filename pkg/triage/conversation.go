package triage

import (
	"strings"

	"telehealth-be/pkg/llm"
)

// Stored message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	// RoleModel is the wire-level role the generative API expects for
	// assistant turns.
	RoleModel = "model"
)

// SystemInstruction is the fixed opening turn of every triage conversation.
const SystemInstruction = `You are a medical triage assistant for a telehealth platform. ` +
	`Ask focused follow-up questions about the patient's symptoms, then give clear, ` +
	`plain-language guidance. Never give a definitive diagnosis or prescribe medication. ` +
	`Every reply MUST end with a line of the exact form "Urgency: LOW", "Urgency: MEDIUM", ` +
	`"Urgency: HIGH" or "Urgency: EMERGENCY" reflecting how urgently the patient should ` +
	`see a doctor. If the situation sounds life-threatening, tell the patient to call ` +
	`emergency services immediately.`

// AssistantAcknowledgment is the canned second turn that primes the model.
const AssistantAcknowledgment = `Understood. I will ask about the symptoms, keep my answers short and ` +
	`clear, avoid diagnoses, and end every reply with an Urgency line.` + "\n\nUrgency: LOW"

// StoredMessage is a persisted conversation turn as the chat service stores
// it: role is "user" or "assistant", in strict creation order.
type StoredMessage struct {
	Role    string
	Content string
}

// AssembleConversation builds the ordered turn list submitted to the model:
// the fixed system-instruction turn, the canned acknowledgment, every prior
// stored message re-labeled for the wire ("assistant" becomes "model"), and
// the new user message last. The full history is resent every turn; no
// windowing is applied.
func AssembleConversation(history []StoredMessage, newMessage string) []llm.Message {
	turns := make([]llm.Message, 0, len(history)+3)

	turns = append(turns,
		llm.Message{Role: RoleUser, Content: SystemInstruction},
		llm.Message{Role: RoleModel, Content: AssistantAcknowledgment},
	)

	for _, msg := range history {
		role := RoleUser
		if msg.Role == RoleAssistant {
			role = RoleModel
		}
		turns = append(turns, llm.Message{Role: role, Content: msg.Content})
	}

	return append(turns, llm.Message{Role: RoleUser, Content: newMessage})
}

// SessionTitle derives a session title from the first user message: the
// message itself, truncated to 50 characters plus an ellipsis. Truncation
// counts runes, not bytes, so multi-byte text is never split mid-character.
func SessionTitle(firstMessage string) string {
	trimmed := strings.TrimSpace(firstMessage)
	runes := []rune(trimmed)
	if len(runes) <= 50 {
		return trimmed
	}
	return string(runes[:50]) + "..."
}
