package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	SessionId *uuid.UUID `json:"session_id"`
	Message   string     `json:"message" validate:"required,min=1,max=8000"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatResponse struct {
	SessionId           uuid.UUID            `json:"session_id"`
	SessionTitle        string               `json:"session_title"`
	Reply               *ChatMessageResponse `json:"reply"`
	UrgencyLevel        string               `json:"urgency_level"`
	SuggestedSpecialist string               `json:"suggested_specialist"`
	SuggestBooking      bool                 `json:"suggest_booking"`
}

type ChatSessionResponse struct {
	Id           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	UrgencyLevel *string    `json:"urgency_level"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

type ChatSessionDetailResponse struct {
	Id           uuid.UUID             `json:"id"`
	Title        string                `json:"title"`
	UrgencyLevel *string               `json:"urgency_level"`
	CreatedAt    time.Time             `json:"created_at"`
	Messages     []ChatMessageResponse `json:"messages"`
}
