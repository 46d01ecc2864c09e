// File: services/notification/tasks.go
package notification

import (
	"encoding/json"

	"partnerhub/config"
	"partnerhub/models"

	"github.com/hibiken/asynq"
)

// TypePushDeliver is consumed by the external push-delivery worker.
const TypePushDeliver = "push:deliver"

// PushPayload is the task body handed to the delivery worker.
type PushPayload struct {
	NotificationID string `json:"notificationId"`
	UserID         string `json:"userId"`
	Title          string `json:"title"`
	Body           string `json:"body"`
}

// NewPushQueueClient builds the asynq client the notification service
// enqueues delivery tasks with.
func NewPushQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPushQueueDB,
	})
}

func (s *DefaultNotificationService) enqueueDelivery(n *models.Notification) error {
	if s.Queue == nil {
		return nil
	}

	payload, err := json.Marshal(PushPayload{
		NotificationID: n.ID,
		UserID:         n.UserID,
		Title:          n.Title,
		Body:           n.Body,
	})
	if err != nil {
		return err
	}

	_, err = s.Queue.Enqueue(asynq.NewTask(TypePushDeliver, payload))
	return err
}
