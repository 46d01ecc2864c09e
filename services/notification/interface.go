// File: services/notification/interface.go
package notification

import (
	"context"

	notificationRepo "partnerhub/database/repository/notification"
	partnerRepo "partnerhub/database/repository/partner"
	"partnerhub/models"

	"firebase.google.com/go/v4/messaging"
	"github.com/hibiken/asynq"
)

// NotificationService persists notifications and hands delivery to FCM and
// the background push worker.
type NotificationService interface {
	Create(ctx context.Context, req models.NotificationRequest) (*models.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// DefaultNotificationService is the production implementation. FCM and Queue
// may be nil; delivery is then deferred entirely to the background worker or
// skipped.
type DefaultNotificationService struct {
	Repo     notificationRepo.NotificationRepository
	Partners partnerRepo.PartnerRepository
	FCM      *messaging.Client
	Queue    *asynq.Client
}
