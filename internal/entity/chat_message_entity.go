package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is immutable once written; there is no update path.
// Seq is assigned by the store and orders messages within a session even
// when their timestamps collide.
type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Seq           int64
	Role          string // constant.ChatMessageRoleUser or ...Assistant
	Content       string
	CreatedAt     time.Time
}
