package models

import "time"

// ParticipantKind discriminates the chat participant union.
type ParticipantKind string

const (
	ParticipantUser    ParticipantKind = "user"
	ParticipantPartner ParticipantKind = "partner"
)

// Valid reports whether the kind is a known variant.
func (k ParticipantKind) Valid() bool {
	return k == ParticipantUser || k == ParticipantPartner
}

// Participant is a tagged reference to either a user or a partner. Each
// variant is resolved against its own collection.
type Participant struct {
	Kind ParticipantKind `bson:"kind" json:"kind"`
	ID   string          `bson:"id" json:"id"`
}

// ChatMessage is an append-only message tied to a booking.
type ChatMessage struct {
	ID        string      `bson:"id" json:"id,omitempty"`
	BookingID string      `bson:"bookingId" json:"bookingId"`
	Sender    Participant `bson:"sender" json:"sender"`
	Recipient Participant `bson:"recipient" json:"recipient"`
	Body      string      `bson:"body" json:"body"`
	Read      bool        `bson:"read" json:"read"`
	CreatedAt time.Time   `bson:"createdAt" json:"createdAt,omitzero"`
}

// ChatMessageRequest is the send payload.
type ChatMessageRequest struct {
	BookingID string      `json:"bookingId" binding:"required"`
	Sender    Participant `json:"sender" binding:"required"`
	Recipient Participant `json:"recipient" binding:"required"`
	Body      string      `json:"body" binding:"required"`
}
