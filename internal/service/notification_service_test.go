package service

import (
	"context"
	"testing"

	"telehealth-be/internal/model"
	"telehealth-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func TestBuildNotificationFillsTemplate(t *testing.T) {
	svc := &NotificationService{logger: noopLogger{}}
	userID := uuid.New()
	appointmentID := uuid.New()
	doctorID := uuid.New()

	config := &model.NotificationType{
		Code:        "APPOINTMENT_STATUS_CHANGED",
		DisplayName: "Appointment Update",
		Template:    "Your appointment status changed from {old_status} to {new_status}",
	}
	event := events.AppointmentStatusChanged(appointmentID, userID, doctorID, "PENDING", "CONFIRMED")

	notif := svc.buildNotification(userID, config, event)

	assert.Equal(t, userID, notif.UserID)
	assert.Equal(t, "APPOINTMENT_STATUS_CHANGED", notif.TypeCode)
	assert.Equal(t, "Appointment Update", notif.Title)
	assert.Equal(t, "Your appointment status changed from PENDING to CONFIRMED", notif.Message)
	assert.Equal(t, "appointment", notif.EntityType)
	require.NotNil(t, notif.EntityID)
	assert.Equal(t, appointmentID, *notif.EntityID)
	require.NotNil(t, notif.ActorID)
	assert.Equal(t, doctorID, *notif.ActorID)
	assert.False(t, notif.IsRead)
}

func TestResolveRecipientsSelf(t *testing.T) {
	svc := &NotificationService{logger: noopLogger{}}
	userID := uuid.New()

	config := &model.NotificationType{TargetType: "SELF"}
	event := events.UserRegistered(userID, "patient@example.com", "PATIENT")

	got, err := svc.resolveRecipients(context.Background(), config, event)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, userID, got[0])
}

func TestResolveRecipientsSelfFallsBackToPatientID(t *testing.T) {
	svc := &NotificationService{logger: noopLogger{}}
	patientID := uuid.New()

	config := &model.NotificationType{TargetType: "SELF"}
	event := events.AppointmentBooked(uuid.New(), patientID, uuid.New(), "2026-09-01", "09:00 AM")

	got, err := svc.resolveRecipients(context.Background(), config, event)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, patientID, got[0])
}
