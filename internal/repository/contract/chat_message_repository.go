package contract

import (
	"context"

	"telehealth-be/internal/entity"
	"telehealth-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	DeleteAllBySessionId(ctx context.Context, sessionId uuid.UUID) error
}
