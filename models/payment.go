package models

import "time"

// Payment transaction statuses. Status only ever advances; reverse
// transitions are rejected.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusSuccess  = "success"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// paymentStatusRank orders statuses for the monotonic-advance check.
var paymentStatusRank = map[string]int{
	PaymentStatusPending:  0,
	PaymentStatusSuccess:  1,
	PaymentStatusFailed:   1,
	PaymentStatusRefunded: 2,
}

// PaymentStatusAdvances reports whether moving from to next is a forward
// transition between known statuses.
func PaymentStatusAdvances(from, to string) bool {
	fromRank, okFrom := paymentStatusRank[from]
	toRank, okTo := paymentStatusRank[to]
	return okFrom && okTo && toRank > fromRank
}

// PaymentTransaction records one payment attempt against the gateway.
type PaymentTransaction struct {
	ID            string    `bson:"id" json:"id,omitempty"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	PartnerID     string    `bson:"partnerId" json:"partnerId"`
	Amount        float64   `bson:"amount" json:"amount"` // major currency units
	AmountMinor   int64     `bson:"amountMinor" json:"amountMinor"`
	Currency      string    `bson:"currency" json:"currency"`
	Receipt       string    `bson:"receipt" json:"receipt"`
	GatewayOrder  string    `bson:"gatewayOrder" json:"gatewayOrder,omitempty"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// PaymentOrderRequest creates a payment order for the authenticated partner.
type PaymentOrderRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency"`
}
