package service

import (
	"context"
	"encoding/json"

	"telehealth-be/internal/dto"
	"telehealth-be/internal/pkg/logger"
	"telehealth-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IMailWorkerService interface {
	Consume(ctx context.Context) error
}

type mailWorkerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	mailer    mailer.IEmailService
	logger    logger.ILogger
}

func NewMailWorkerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IMailWorkerService {
	return &mailWorkerService{
		pubSub:    pubSub,
		topicName: topicName,
		mailer:    emailService,
		logger:    log,
	}
}

func (ms *mailWorkerService) Consume(ctx context.Context) error {
	messages, err := ms.pubSub.Subscribe(ctx, ms.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ms.processMessage(msg)
		}
	}()

	return nil
}

func (ms *mailWorkerService) processMessage(msg *message.Message) {
	var payload dto.AppointmentMailMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		ms.logger.Error("mail_worker", "failed to unmarshal mail message", map[string]interface{}{"error": err.Error()})
		// Malformed payloads never become valid. Ack to stop the retry loop.
		msg.Ack()
		return
	}

	var err error
	if payload.Booked {
		err = ms.mailer.SendAppointmentBooked(payload.ToEmail, payload.DoctorName, payload.Date, payload.TimeSlot)
	} else {
		err = ms.mailer.SendAppointmentStatus(payload.ToEmail, payload.DoctorName, payload.Date, payload.TimeSlot, payload.Status)
	}
	if err != nil {
		ms.logger.Error("mail_worker", "failed to send appointment email", map[string]interface{}{
			"to":    payload.ToEmail,
			"error": err.Error(),
		})
		msg.Nack()
		return
	}

	ms.logger.Info("mail_worker", "appointment email sent", map[string]interface{}{"to": payload.ToEmail})
	msg.Ack()
}
