package models

import "time"

// HelpContent is a help/FAQ entry. QuestionKey is the lowercased question and
// is unique-indexed, mirroring PlanFeature's duplicate handling.
type HelpContent struct {
	ID          string    `bson:"id" json:"id,omitempty"`
	Question    string    `bson:"question" json:"question"`
	QuestionKey string    `bson:"questionKey" json:"-"`
	Answer      string    `bson:"answer" json:"answer"`
	Category    string    `bson:"category" json:"category,omitempty"`
	Order       int       `bson:"order" json:"order"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// HelpContentRequest is the create/update payload.
type HelpContentRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Category string `json:"category"`
	Order    *int   `json:"order" binding:"omitempty,gte=0"`
	Active   *bool  `json:"active"`
}
