// File: services/notification/service.go
package notification

import (
	"context"
	"errors"
	"time"

	"partnerhub/models"
	"partnerhub/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Create persists the notification, attempts an immediate FCM push and
// enqueues a delivery task for the background worker. Delivery failures are
// logged but never fail the create call.
func (s *DefaultNotificationService) Create(ctx context.Context, req models.NotificationRequest) (*models.Notification, error) {
	now := time.Now()
	n := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		Type:      req.Type,
		Title:     req.Title,
		Body:      req.Body,
		Data:      req.Data,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Insert(ctx, n); err != nil {
		return nil, err
	}

	logger := utils.GetLogger()
	if err := s.pushToPartner(ctx, n); err != nil {
		logger.Warn("push delivery failed", zap.String("notificationId", n.ID), zap.Error(err))
	} else {
		if err := s.Repo.MarkSent(ctx, n.ID); err != nil {
			logger.Error("failed to mark notification sent", zap.String("notificationId", n.ID), zap.Error(err))
		} else {
			n.Sent = true
		}
	}

	if err := s.enqueueDelivery(n); err != nil {
		logger.Warn("failed to enqueue push delivery task", zap.String("notificationId", n.ID), zap.Error(err))
	}

	return n, nil
}

func (s *DefaultNotificationService) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, id string) error {
	if err := s.Repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return utils.NewNotFoundError("notification not found")
		}
		return err
	}
	return nil
}

// pushToPartner sends an FCM push when the recipient is a partner with a
// registered device token.
func (s *DefaultNotificationService) pushToPartner(ctx context.Context, n *models.Notification) error {
	if s.FCM == nil {
		return errors.New("FCM client not configured")
	}

	p, err := s.Partners.GetByID(ctx, n.UserID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// recipient is an end customer; delivery belongs to the worker
			return errors.New("recipient is not a partner")
		}
		return err
	}
	if p.FCMToken == "" {
		return errors.New("partner has no FCM token")
	}

	msg := &messaging.Message{
		Token: p.FCMToken,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: map[string]string{
			"notificationId": n.ID,
			"type":           n.Type,
		},
	}
	_, err = s.FCM.Send(ctx, msg)
	return err
}
