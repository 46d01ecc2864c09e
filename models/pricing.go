package models

import "time"

// PricingSettingsKey is the stable identifier for the active configuration
// record. Settings are loaded by key per request, never via implicit
// singleton lookup.
const PricingSettingsKey = "default"

// PricingSettings is the platform-wide fee configuration. Updates are full
// replacements inserted as new revisions, so all revisions together form the
// pricing history.
type PricingSettings struct {
	ID                 string    `bson:"id" json:"id,omitempty"`
	Key                string    `bson:"key" json:"key"`
	RegistrationFee    float64   `bson:"registrationFee" json:"registrationFee"`
	OriginalPrice      float64   `bson:"originalPrice" json:"originalPrice"`
	CommissionRate     float64   `bson:"commissionRate" json:"commissionRate"` // fraction, e.g. 0.15
	MinPayoutThreshold float64   `bson:"minPayoutThreshold" json:"minPayoutThreshold"`
	RefundPolicy       string    `bson:"refundPolicy" json:"refundPolicy,omitempty"`
	UpdatedBy          string    `bson:"updatedBy" json:"updatedBy,omitempty"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// PricingMetrics summarizes the pricing configuration and its history.
type PricingMetrics struct {
	Revisions          int       `json:"revisions"`
	RegistrationFee    float64   `json:"registrationFee"`
	OriginalPrice      float64   `json:"originalPrice"`
	CommissionRate     float64   `json:"commissionRate"`
	DiscountPercentage float64   `json:"discountPercentage"`
	LastUpdated        time.Time `json:"lastUpdated"`
}

// PricingSettingsRequest is the full-replace update payload.
type PricingSettingsRequest struct {
	RegistrationFee    float64 `json:"registrationFee" binding:"required,gte=0"`
	OriginalPrice      float64 `json:"originalPrice" binding:"required,gt=0"`
	CommissionRate     float64 `json:"commissionRate" binding:"gte=0,lte=1"`
	MinPayoutThreshold float64 `json:"minPayoutThreshold" binding:"gte=0"`
	RefundPolicy       string  `json:"refundPolicy"`
	UpdatedBy          string  `json:"updatedBy"`
}
