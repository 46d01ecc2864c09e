// File: services/chat/service.go
package chat

import (
	"context"
	"errors"
	"time"

	"partnerhub/models"
	"partnerhub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SendMessage validates the participant references and appends the message.
func (s *DefaultChatService) SendMessage(ctx context.Context, req models.ChatMessageRequest) (*models.ChatMessage, error) {
	if err := s.resolveParticipant(ctx, req.Sender); err != nil {
		return nil, err
	}
	if err := s.resolveParticipant(ctx, req.Recipient); err != nil {
		return nil, err
	}
	if req.Sender.Kind == req.Recipient.Kind && req.Sender.ID == req.Recipient.ID {
		return nil, utils.NewValidationError("sender and recipient must differ")
	}

	msg := &models.ChatMessage{
		ID:        uuid.New().String(),
		BookingID: req.BookingID,
		Sender:    req.Sender,
		Recipient: req.Recipient,
		Body:      req.Body,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Insert(ctx, msg); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("chat message sent",
		zap.String("bookingId", req.BookingID),
		zap.String("senderKind", string(req.Sender.Kind)))
	return msg, nil
}

func (s *DefaultChatService) ListByBooking(ctx context.Context, bookingID string) ([]models.ChatMessage, error) {
	return s.Repo.ListByBooking(ctx, bookingID)
}

func (s *DefaultChatService) MarkRead(ctx context.Context, id string) error {
	if err := s.Repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return utils.NewNotFoundError("message not found")
		}
		return err
	}
	return nil
}

// resolveParticipant checks the tagged reference against the lookup table for
// its variant.
func (s *DefaultChatService) resolveParticipant(ctx context.Context, p models.Participant) error {
	if !p.Kind.Valid() {
		return utils.NewValidationError("unknown participant kind: " + string(p.Kind))
	}
	if p.ID == "" {
		return utils.NewValidationError("participant id is required")
	}

	if p.Kind == models.ParticipantPartner {
		if _, err := s.Partners.GetByID(ctx, p.ID); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return utils.NewNotFoundError("partner participant not found")
			}
			return err
		}
	}
	return nil
}
