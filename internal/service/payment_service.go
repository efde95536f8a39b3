package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"time"

	"telehealth-be/internal/config"
	"telehealth-be/internal/dto"
	"telehealth-be/internal/entity"
	"telehealth-be/internal/pkg/logger"
	"telehealth-be/internal/pkg/serverutils"
	"telehealth-be/internal/repository/specification"
	"telehealth-be/internal/repository/unitofwork"
	"telehealth-be/pkg/events"
	pktNats "telehealth-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type IPaymentService interface {
	Checkout(ctx context.Context, patientId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	GetStatus(ctx context.Context, patientId uuid.UUID, appointmentId uuid.UUID) (*dto.PaymentStatusResponse, error)
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error
}

type paymentService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	snapClient     snap.Client
	cfg            config.MidtransConfig
	clientURL      string
	logger         logger.ILogger
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	cfg config.MidtransConfig,
	clientURL string,
	log logger.ILogger,
) IPaymentService {
	var sClient snap.Client
	env := midtrans.Sandbox
	if cfg.Production {
		env = midtrans.Production
	}
	sClient.New(cfg.ServerKey, env)

	return &paymentService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		snapClient:     sClient,
		cfg:            cfg,
		clientURL:      clientURL,
		logger:         log,
	}
}

func (s *paymentService) Checkout(ctx context.Context, patientId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	appointment, err := uow.AppointmentRepository().FindOne(ctx, specification.ByID{ID: req.AppointmentId})
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, serverutils.NewNotFoundError("appointment not found")
	}
	if appointment.PatientId != patientId {
		return nil, serverutils.NewForbiddenError("you are not part of this appointment")
	}
	if appointment.Status.IsTerminal() {
		return nil, serverutils.NewBadRequestError("this appointment can no longer be paid")
	}

	existing, err := uow.PaymentRepository().FindByAppointmentId(ctx, req.AppointmentId)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status == entity.PaymentStatusPaid {
		return nil, serverutils.NewConflictError("this appointment is already paid")
	}
	if existing != nil && existing.Status == entity.PaymentStatusPending {
		return &dto.CheckoutResponse{
			OrderId:     existing.OrderId,
			SnapToken:   existing.SnapToken,
			RedirectURL: existing.RedirectURL,
			Amount:      existing.Amount,
		}, nil
	}

	profile, err := uow.DoctorProfileRepository().FindByUserId(ctx, appointment.DoctorId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, serverutils.NewNotFoundError("doctor profile not found")
	}

	patient, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: patientId})
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, serverutils.NewNotFoundError("patient not found")
	}

	payment := &entity.Payment{
		Id:            uuid.New(),
		AppointmentId: appointment.Id,
		PatientId:     patientId,
		OrderId:       fmt.Sprintf("APPT-%s", uuid.New().String()),
		Amount:        profile.ConsultationFee,
		Status:        entity.PaymentStatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  payment.OrderId,
			GrossAmt: payment.Amount,
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
		Callbacks: &snap.Callbacks{
			Finish: fmt.Sprintf("%s/appointments/%s?payment=finished", s.clientURL, appointment.Id),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: patient.FullName,
			Email: patient.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    appointment.Id.String(),
				Price: payment.Amount,
				Qty:   1,
				Name:  fmt.Sprintf("Consultation on %s %s", appointment.Date, appointment.TimeSlot),
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := s.snapClient.CreateTransaction(snapReq)
	if midErr != nil {
		s.logger.Error("payment", "midtrans transaction failed", map[string]interface{}{
			"order_id": payment.OrderId,
			"error":    midErr.GetMessage(),
		})
		return nil, serverutils.NewBadRequestError("payment gateway rejected the transaction")
	}

	payment.SnapToken = snapResp.Token
	payment.RedirectURL = snapResp.RedirectURL

	if err := uow.PaymentRepository().Create(ctx, payment); err != nil {
		return nil, err
	}

	return &dto.CheckoutResponse{
		OrderId:     payment.OrderId,
		SnapToken:   payment.SnapToken,
		RedirectURL: payment.RedirectURL,
		Amount:      payment.Amount,
	}, nil
}

func (s *paymentService) GetStatus(ctx context.Context, patientId uuid.UUID, appointmentId uuid.UUID) (*dto.PaymentStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	payment, err := uow.PaymentRepository().FindByAppointmentId(ctx, appointmentId)
	if err != nil {
		return nil, err
	}
	if payment == nil || payment.PatientId != patientId {
		return nil, serverutils.NewNotFoundError("payment not found")
	}

	return &dto.PaymentStatusResponse{
		OrderId:       payment.OrderId,
		AppointmentId: payment.AppointmentId,
		Amount:        payment.Amount,
		Status:        string(payment.Status),
		UpdatedAt:     payment.UpdatedAt,
	}, nil
}

func (s *paymentService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key)
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + s.cfg.ServerKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		s.logger.Warn("payment", "webhook signature mismatch", map[string]interface{}{"order_id": req.OrderId})
		return serverutils.NewUnauthorizedError("invalid signature")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	payment, err := uow.PaymentRepository().FindByOrderId(ctx, req.OrderId)
	if err != nil {
		return err
	}
	if payment == nil {
		return serverutils.NewNotFoundError("payment not found")
	}

	var newStatus entity.PaymentStatus
	switch req.TransactionStatus {
	case "capture", "settlement":
		newStatus = entity.PaymentStatusPaid
	case "deny", "cancel":
		newStatus = entity.PaymentStatusFailed
	case "expire":
		newStatus = entity.PaymentStatusExpired
	case "refund", "partial_refund":
		newStatus = entity.PaymentStatusRefunded
	case "pending":
		return nil
	default:
		s.logger.Warn("payment", "unknown transaction status", map[string]interface{}{
			"order_id": req.OrderId,
			"status":   req.TransactionStatus,
		})
		return nil
	}

	if payment.Status == newStatus {
		return nil
	}

	payment.Status = newStatus
	payment.UpdatedAt = time.Now()

	if err := uow.PaymentRepository().Update(ctx, payment); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	if newStatus == entity.PaymentStatusPaid && s.eventPublisher != nil {
		event := events.PaymentSettled(payment.Id, payment.AppointmentId, payment.PatientId, payment.Amount, string(newStatus))
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("payment", "failed to publish settlement event", map[string]interface{}{"error": err.Error()})
		}
	}

	return nil
}
