package service

import (
	"context"
	"time"

	"telehealth-be/internal/constant"
	"telehealth-be/internal/dto"
	"telehealth-be/internal/entity"
	"telehealth-be/internal/pkg/logger"
	"telehealth-be/internal/pkg/serverutils"
	"telehealth-be/internal/repository/specification"
	"telehealth-be/internal/repository/unitofwork"
	"telehealth-be/pkg/events"
	"telehealth-be/pkg/llm"
	pktNats "telehealth-be/pkg/nats"
	"telehealth-be/pkg/triage"

	"github.com/google/uuid"
)

type IChatService interface {
	SendChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSessionResponse, error)
	GetSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.ChatSessionDetailResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error
}

type chatService struct {
	uowFactory     unitofwork.RepositoryFactory
	llmProvider    llm.LLMProvider
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:     uowFactory,
		llmProvider:    llmProvider,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func chatMessageToResponse(m *entity.ChatMessage) *dto.ChatMessageResponse {
	return &dto.ChatMessageResponse{
		Id:        m.Id,
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func (s *chatService) findOwnedSession(ctx context.Context, uow unitofwork.UnitOfWork, userId, sessionId uuid.UUID) (*entity.ChatSession, error) {
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("chat session not found")
	}
	return session, nil
}

func (s *chatService) SendChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var session *entity.ChatSession
	if req.SessionId != nil {
		found, err := s.findOwnedSession(ctx, uow, userId, *req.SessionId)
		if err != nil {
			return nil, err
		}
		session = found
	} else {
		session = &entity.ChatSession{
			Id:        uuid.New(),
			UserId:    userId,
			Title:     triage.SessionTitle(req.Message),
			CreatedAt: time.Now(),
		}
		if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
			return nil, err
		}

		greeting := &entity.ChatMessage{
			Id:            uuid.New(),
			ChatSessionId: session.Id,
			Role:          constant.ChatMessageRoleAssistant,
			Content:       constant.ChatSessionGreeting,
			CreatedAt:     time.Now(),
		}
		if err := uow.ChatMessageRepository().Create(ctx, greeting); err != nil {
			return nil, err
		}
	}

	history, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "seq"},
	)
	if err != nil {
		return nil, err
	}

	// The user turn is durable before the model is consulted; a model
	// failure must not lose the patient's message.
	userMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Role:          constant.ChatMessageRoleUser,
		Content:       req.Message,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		return nil, err
	}

	stored := make([]triage.StoredMessage, len(history))
	for i, m := range history {
		stored[i] = triage.StoredMessage{Role: m.Role, Content: m.Content}
	}

	reply, err := s.llmProvider.Chat(ctx, triage.AssembleConversation(stored, req.Message))
	if err != nil {
		s.logger.Error("chat", "model call failed", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err.Error(),
		})
		return nil, err
	}

	assistantMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Role:          constant.ChatMessageRoleAssistant,
		Content:       reply,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, assistantMessage); err != nil {
		return nil, err
	}

	urgency := triage.ClassifyUrgency(reply, req.Message)
	specialist := triage.InferSpecialist(req.Message + " " + reply)

	// Each turn overwrites the session urgency; the latest classification
	// wins, not the peak.
	level := string(urgency)
	session.UrgencyLevel = &level
	now := time.Now()
	session.UpdatedAt = &now
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if urgency == triage.UrgencyEmergency && s.eventPublisher != nil {
		event := events.TriageEmergency(session.Id, userId, specialist)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("chat", "failed to publish emergency event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.SendChatResponse{
		SessionId:           session.Id,
		SessionTitle:        session.Title,
		Reply:               chatMessageToResponse(assistantMessage),
		UrgencyLevel:        string(urgency),
		SuggestedSpecialist: specialist,
		SuggestBooking:      urgency.AtLeast(triage.UrgencyMedium),
	}, nil
}

func (s *chatService) ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ChatSessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = &dto.ChatSessionResponse{
			Id:           session.Id,
			Title:        session.Title,
			UrgencyLevel: session.UrgencyLevel,
			CreatedAt:    session.CreatedAt,
			UpdatedAt:    session.UpdatedAt,
		}
	}
	return responses, nil
}

func (s *chatService) GetSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.ChatSessionDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.findOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "seq"},
	)
	if err != nil {
		return nil, err
	}

	messageResponses := make([]dto.ChatMessageResponse, len(messages))
	for i, m := range messages {
		messageResponses[i] = *chatMessageToResponse(m)
	}

	return &dto.ChatSessionDetailResponse{
		Id:           session.Id,
		Title:        session.Title,
		UrgencyLevel: session.UrgencyLevel,
		CreatedAt:    session.CreatedAt,
		Messages:     messageResponses,
	}, nil
}

func (s *chatService) DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.findOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteAllBySessionId(ctx, session.Id); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, session.Id); err != nil {
		return err
	}

	return uow.Commit()
}
