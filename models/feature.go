package models

import "time"

// PlanFeature is an ordered, independently toggleable list entry shown on the
// registration fee plan. FeatureKey is the lowercased feature text and is
// unique-indexed so duplicates are rejected at the storage layer.
type PlanFeature struct {
	ID         string    `bson:"id" json:"id,omitempty"`
	Feature    string    `bson:"feature" json:"feature"`
	FeatureKey string    `bson:"featureKey" json:"-"`
	Order      int       `bson:"order" json:"order"`
	Active     bool      `bson:"active" json:"active"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// FeatureRequest is the create/update payload. Order is optional on create;
// when absent the next value in the sequence is assigned.
type FeatureRequest struct {
	Feature string `json:"feature" binding:"required"`
	Order   *int   `json:"order" binding:"omitempty,gte=0"`
	Active  *bool  `json:"active"`
}

// FeatureOrderItem pairs a feature ID with its new order for bulk reorders.
type FeatureOrderItem struct {
	ID    string `json:"id" binding:"required"`
	Order int    `json:"order" binding:"gte=0"`
}
