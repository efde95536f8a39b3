package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusExpired  PaymentStatus = "EXPIRED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

type Payment struct {
	Id            uuid.UUID
	AppointmentId uuid.UUID
	PatientId     uuid.UUID
	OrderId       string // midtrans order reference
	Amount        int64
	Status        PaymentStatus
	SnapToken     string
	RedirectURL   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
