package models

import "time"

type Notification struct {
	ID        string         `bson:"id" json:"id,omitempty"`
	UserID    string         `bson:"userId" json:"userId"`
	Type      string         `bson:"type" json:"type"`
	Title     string         `bson:"title" json:"title"`
	Body      string         `bson:"body" json:"body"`
	Data      map[string]any `bson:"data,omitempty" json:"data,omitempty"`
	Sent      bool           `bson:"sent" json:"sent"`
	Read      bool           `bson:"read" json:"read"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt time.Time      `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// NotificationRequest is the create payload.
type NotificationRequest struct {
	UserID string         `json:"userId" binding:"required"`
	Type   string         `json:"type" binding:"required"`
	Title  string         `json:"title" binding:"required"`
	Body   string         `json:"body" binding:"required"`
	Data   map[string]any `json:"data"`
}
