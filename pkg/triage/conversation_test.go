package triage

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestAssembleConversation(t *testing.T) {
	history := []StoredMessage{
		{Role: RoleUser, Content: "I have a headache"},
		{Role: RoleAssistant, Content: "How long has it lasted?\n\nUrgency: LOW"},
	}

	turns := AssembleConversation(history, "About three days now")

	if len(turns) != 5 {
		t.Fatalf("expected 5 turns, got %d", len(turns))
	}

	if turns[0].Role != RoleUser || turns[0].Content != SystemInstruction {
		t.Errorf("first turn should carry the system instruction")
	}
	if turns[1].Role != RoleModel || turns[1].Content != AssistantAcknowledgment {
		t.Errorf("second turn should be the canned acknowledgment")
	}
	if turns[2].Role != RoleUser || turns[2].Content != "I have a headache" {
		t.Errorf("unexpected third turn: %+v", turns[2])
	}
	if turns[3].Role != RoleModel {
		t.Errorf("assistant turns must be re-labeled %q, got %q", RoleModel, turns[3].Role)
	}
	last := turns[len(turns)-1]
	if last.Role != RoleUser || last.Content != "About three days now" {
		t.Errorf("new message must be the final turn, got %+v", last)
	}
}

func TestAssembleConversationIdempotent(t *testing.T) {
	history := []StoredMessage{
		{Role: RoleUser, Content: "stomach cramps"},
		{Role: RoleAssistant, Content: "Any fever?\n\nUrgency: LOW"},
		{Role: RoleUser, Content: "no fever"},
	}

	first := AssembleConversation(history, "what should I do")
	second := AssembleConversation(history, "what should I do")

	if !reflect.DeepEqual(first, second) {
		t.Error("assembling twice from the same inputs must yield identical turn sequences")
	}
}

func TestAssembleConversationEmptyHistory(t *testing.T) {
	turns := AssembleConversation(nil, "hello")
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns for a fresh session, got %d", len(turns))
	}
	if turns[2].Content != "hello" {
		t.Errorf("new message missing, got %+v", turns[2])
	}
}

func TestSessionTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"short message kept as-is", "I have a headache", "I have a headache"},
		{"whitespace trimmed", "  hello  ", "hello"},
		{
			"long message truncated at 50 chars",
			strings.Repeat("a", 80),
			strings.Repeat("a", 50) + "...",
		},
		{"exactly 50 chars untouched", strings.Repeat("b", 50), strings.Repeat("b", 50)},
		{
			"multi-byte under 50 chars kept whole",
			strings.Repeat("म", 20),
			strings.Repeat("म", 20),
		},
		{
			"multi-byte truncated on rune boundary",
			strings.Repeat("म", 80),
			strings.Repeat("म", 50) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SessionTitle(tt.input)
			if got != tt.want {
				t.Errorf("SessionTitle() = %q, want %q", got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("SessionTitle() produced invalid UTF-8: %q", got)
			}
		})
	}
}
