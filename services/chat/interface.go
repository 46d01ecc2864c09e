// File: services/chat/interface.go
package chat

import (
	"context"

	chatRepo "partnerhub/database/repository/chat"
	partnerRepo "partnerhub/database/repository/partner"
	"partnerhub/models"
)

// ChatService handles booking-scoped messages between users and partners.
type ChatService interface {
	SendMessage(ctx context.Context, req models.ChatMessageRequest) (*models.ChatMessage, error)
	ListByBooking(ctx context.Context, bookingID string) ([]models.ChatMessage, error)
	MarkRead(ctx context.Context, id string) error
}

// DefaultChatService is the production implementation. Partner participants
// are resolved against the partner collection; user participants are resolved
// by the customer-facing backend and accepted as-is here.
type DefaultChatService struct {
	Repo     chatRepo.ChatRepository
	Partners partnerRepo.PartnerRepository
}
