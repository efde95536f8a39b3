package contract

import (
	"context"

	"telehealth-be/internal/entity"

	"github.com/google/uuid"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	Update(ctx context.Context, payment *entity.Payment) error
	FindByOrderId(ctx context.Context, orderId string) (*entity.Payment, error)
	FindByAppointmentId(ctx context.Context, appointmentId uuid.UUID) (*entity.Payment, error)
}
