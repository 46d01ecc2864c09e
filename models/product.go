package models

import "time"

// PartnerProduct belongs to exactly one partner. Every repository query is
// filtered by partnerId so cross-partner access surfaces as not-found.
type PartnerProduct struct {
	ID          string    `bson:"id" json:"id,omitempty"`
	PartnerID   string    `bson:"partnerId" json:"partnerId"`
	Name        string    `bson:"name" json:"name"`
	Price       float64   `bson:"price" json:"price"`
	Unit        string    `bson:"unit" json:"unit"` // e.g., "hour", "kg", "visit"
	Description string    `bson:"description" json:"description,omitempty"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// ProductRequest defines the payload for creating or updating a product.
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Unit        string  `json:"unit" binding:"required"`
	Description string  `json:"description"`
	Active      *bool   `json:"active"`
}
