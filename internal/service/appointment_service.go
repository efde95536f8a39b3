package service

import (
	"context"
	"encoding/json"
	"time"

	"telehealth-be/internal/dto"
	"telehealth-be/internal/entity"
	"telehealth-be/internal/pkg/logger"
	"telehealth-be/internal/pkg/serverutils"
	"telehealth-be/internal/repository/specification"
	"telehealth-be/internal/repository/unitofwork"
	"telehealth-be/pkg/events"
	pktNats "telehealth-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// Slot-blocking statuses. CANCELLED and COMPLETED free the slot.
var activeAppointmentStatuses = []string{
	string(entity.AppointmentStatusPending),
	string(entity.AppointmentStatusConfirmed),
}

type IAppointmentService interface {
	Book(ctx context.Context, patientId uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, actorId uuid.UUID, actorRole entity.UserRole, appointmentId uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	ListMine(ctx context.Context, userId uuid.UUID, role entity.UserRole) ([]*dto.AppointmentResponse, error)
	GetOne(ctx context.Context, actorId uuid.UUID, appointmentId uuid.UUID) (*dto.AppointmentResponse, error)
}

type appointmentService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	mailQueue      *gochannel.GoChannel
	mailTopic      string
	logger         logger.ILogger
}

func NewAppointmentService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	mailQueue *gochannel.GoChannel,
	mailTopic string,
	log logger.ILogger,
) IAppointmentService {
	return &appointmentService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		mailQueue:      mailQueue,
		mailTopic:      mailTopic,
		logger:         log,
	}
}

func appointmentToResponse(a *entity.Appointment, doctorName string) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		Id:         a.Id,
		PatientId:  a.PatientId,
		DoctorId:   a.DoctorId,
		DoctorName: doctorName,
		Date:       a.Date,
		TimeSlot:   a.TimeSlot,
		Reason:     a.Reason,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func (s *appointmentService) enqueueMail(mail dto.AppointmentMailMessage) {
	if s.mailQueue == nil {
		return
	}
	payload, err := json.Marshal(mail)
	if err != nil {
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.mailQueue.Publish(s.mailTopic, msg); err != nil {
		s.logger.Warn("appointment", "failed to enqueue mail", map[string]interface{}{"error": err.Error()})
	}
}

func (s *appointmentService) Book(ctx context.Context, patientId uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doctor, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.DoctorId})
	if err != nil {
		return nil, err
	}
	if doctor == nil || doctor.Role != entity.UserRoleDoctor {
		return nil, serverutils.NewNotFoundError("doctor not found")
	}

	patient, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: patientId})
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, serverutils.NewNotFoundError("patient not found")
	}

	appointment := &entity.Appointment{
		Id:        uuid.New(),
		PatientId: patientId,
		DoctorId:  req.DoctorId,
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		Reason:    req.Reason,
		Status:    entity.AppointmentStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	// Slot check and insert share one transaction so two patients can't
	// claim the same cell.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	taken, err := uow.AppointmentRepository().Count(ctx,
		specification.BySlot{DoctorID: req.DoctorId, Date: req.Date, TimeSlot: req.TimeSlot},
		specification.ByStatuses{Statuses: activeAppointmentStatuses},
	)
	if err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, serverutils.NewConflictError("this time slot is already booked")
	}

	if err := uow.AppointmentRepository().Create(ctx, appointment); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		event := events.AppointmentBooked(appointment.Id, patientId, req.DoctorId, req.Date, req.TimeSlot)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("appointment", "failed to publish booking event", map[string]interface{}{"error": err.Error()})
		}
	}

	s.enqueueMail(dto.AppointmentMailMessage{
		ToEmail:    patient.Email,
		DoctorName: doctor.FullName,
		Date:       appointment.Date,
		TimeSlot:   appointment.TimeSlot,
		Status:     string(appointment.Status),
		Booked:     true,
	})

	return appointmentToResponse(appointment, doctor.FullName), nil
}

func (s *appointmentService) UpdateStatus(ctx context.Context, actorId uuid.UUID, actorRole entity.UserRole, appointmentId uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	appointment, err := uow.AppointmentRepository().FindOne(ctx, specification.ByID{ID: appointmentId})
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, serverutils.NewNotFoundError("appointment not found")
	}

	if actorId != appointment.PatientId && actorId != appointment.DoctorId {
		return nil, serverutils.NewForbiddenError("you are not part of this appointment")
	}

	target := entity.AppointmentStatus(req.Status)
	if !appointment.Status.CanTransition(target, actorRole) {
		return nil, serverutils.NewBadRequestError("status change not allowed")
	}

	oldStatus := appointment.Status
	appointment.Status = target
	appointment.UpdatedAt = time.Now()

	if err := uow.AppointmentRepository().Update(ctx, appointment); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		event := events.AppointmentStatusChanged(appointment.Id, appointment.PatientId, appointment.DoctorId, string(oldStatus), string(target))
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("appointment", "failed to publish status event", map[string]interface{}{"error": err.Error()})
		}
	}

	patient, _ := uow.UserRepository().FindOne(ctx, specification.ByID{ID: appointment.PatientId})
	doctor, _ := uow.UserRepository().FindOne(ctx, specification.ByID{ID: appointment.DoctorId})
	doctorName := ""
	if doctor != nil {
		doctorName = doctor.FullName
	}
	if patient != nil {
		s.enqueueMail(dto.AppointmentMailMessage{
			ToEmail:    patient.Email,
			DoctorName: doctorName,
			Date:       appointment.Date,
			TimeSlot:   appointment.TimeSlot,
			Status:     string(target),
		})
	}

	return appointmentToResponse(appointment, doctorName), nil
}

func (s *appointmentService) ListMine(ctx context.Context, userId uuid.UUID, role entity.UserRole) ([]*dto.AppointmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var partySpec specification.Specification = specification.ByPatientID{PatientID: userId}
	if role == entity.UserRoleDoctor {
		partySpec = specification.ByDoctorID{DoctorID: userId}
	}

	appointments, err := uow.AppointmentRepository().FindAll(ctx,
		partySpec,
		specification.OrderBy{Field: "date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	doctorNames, err := s.doctorNames(ctx, uow, appointments)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.AppointmentResponse, len(appointments))
	for i, a := range appointments {
		responses[i] = appointmentToResponse(a, doctorNames[a.DoctorId])
	}
	return responses, nil
}

func (s *appointmentService) GetOne(ctx context.Context, actorId uuid.UUID, appointmentId uuid.UUID) (*dto.AppointmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	appointment, err := uow.AppointmentRepository().FindOne(ctx, specification.ByID{ID: appointmentId})
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, serverutils.NewNotFoundError("appointment not found")
	}
	if actorId != appointment.PatientId && actorId != appointment.DoctorId {
		return nil, serverutils.NewForbiddenError("you are not part of this appointment")
	}

	doctor, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: appointment.DoctorId})
	if err != nil {
		return nil, err
	}
	doctorName := ""
	if doctor != nil {
		doctorName = doctor.FullName
	}

	return appointmentToResponse(appointment, doctorName), nil
}

func (s *appointmentService) doctorNames(ctx context.Context, uow unitofwork.UnitOfWork, appointments []*entity.Appointment) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string)
	if len(appointments) == 0 {
		return names, nil
	}

	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, a := range appointments {
		if !seen[a.DoctorId] {
			seen[a.DoctorId] = true
			ids = append(ids, a.DoctorId)
		}
	}

	doctors, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}
	for _, d := range doctors {
		names[d.Id] = d.FullName
	}
	return names, nil
}
