package dto

import (
	"time"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	AppointmentId uuid.UUID `json:"appointment_id" validate:"required"`
}

type CheckoutResponse struct {
	OrderId     string `json:"order_id"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
	Amount      int64  `json:"amount"`
}

type PaymentStatusResponse struct {
	OrderId       string    `json:"order_id"`
	AppointmentId uuid.UUID `json:"appointment_id"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MidtransWebhookRequest mirrors the notification payload midtrans posts.
type MidtransWebhookRequest struct {
	OrderId           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}
