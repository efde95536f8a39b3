package service

import (
	"context"
	"testing"
	"time"

	"telehealth-be/internal/constant"
	"telehealth-be/internal/entity"
	"telehealth-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedChatSession(store *memoryStore, userId uuid.UUID) *entity.ChatSession {
	session := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     "I have a headache",
		CreatedAt: time.Now(),
	}
	store.sessions = append(store.sessions, session)

	stamp := time.Now()
	store.addMessage(&entity.ChatMessage{
		Id: uuid.New(), ChatSessionId: session.Id,
		Role: constant.ChatMessageRoleAssistant, Content: constant.ChatSessionGreeting, CreatedAt: stamp,
	})
	store.addMessage(&entity.ChatMessage{
		Id: uuid.New(), ChatSessionId: session.Id,
		Role: constant.ChatMessageRoleUser, Content: "I have a headache", CreatedAt: stamp,
	})
	store.addMessage(&entity.ChatMessage{
		Id: uuid.New(), ChatSessionId: session.Id,
		Role: constant.ChatMessageRoleAssistant, Content: "How long has it lasted?\n\nUrgency: LOW", CreatedAt: stamp,
	})
	return session
}

func TestGetSessionOrdersMessagesBySequence(t *testing.T) {
	store := newMemoryStore()
	userId := uuid.New()
	session := seedChatSession(store, userId)

	// Identical timestamps on every message and a scrambled backing store;
	// only the sequence can put the turns back in write order.
	store.messages[0], store.messages[2] = store.messages[2], store.messages[0]

	svc := NewChatService(newMemoryFactory(store), nil, nil, noopLogger{})

	detail, err := svc.GetSession(context.Background(), userId, session.Id)
	require.NoError(t, err)
	require.Len(t, detail.Messages, 3)
	assert.Equal(t, constant.ChatSessionGreeting, detail.Messages[0].Content)
	assert.Equal(t, "I have a headache", detail.Messages[1].Content)
	assert.Equal(t, constant.ChatMessageRoleAssistant, detail.Messages[2].Role)
}

func TestGetSessionHidesForeignSessions(t *testing.T) {
	store := newMemoryStore()
	session := seedChatSession(store, uuid.New())

	svc := NewChatService(newMemoryFactory(store), nil, nil, noopLogger{})

	_, err := svc.GetSession(context.Background(), uuid.New(), session.Id)
	require.Error(t, err)
	httpErr, ok := err.(*serverutils.HTTPError)
	require.True(t, ok)
	assert.Equal(t, 404, httpErr.Code)
}

func TestDeleteSessionCascadesMessages(t *testing.T) {
	store := newMemoryStore()
	userId := uuid.New()
	session := seedChatSession(store, userId)

	svc := NewChatService(newMemoryFactory(store), nil, nil, noopLogger{})

	require.NoError(t, svc.DeleteSession(context.Background(), userId, session.Id))

	assert.Empty(t, store.messages)
	assert.Empty(t, store.sessions)

	_, err := svc.GetSession(context.Background(), userId, session.Id)
	require.Error(t, err)
	httpErr, ok := err.(*serverutils.HTTPError)
	require.True(t, ok)
	assert.Equal(t, 404, httpErr.Code)

	err = svc.DeleteSession(context.Background(), userId, session.Id)
	require.Error(t, err)
	httpErr, ok = err.(*serverutils.HTTPError)
	require.True(t, ok)
	assert.Equal(t, 404, httpErr.Code)
}
