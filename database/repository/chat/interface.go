// File: database/repository/chat/interface.go
package chatRepo

import (
	"context"

	"partnerhub/database"
	"partnerhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ChatRepository interface {
	Insert(ctx context.Context, msg *models.ChatMessage) error
	ListByBooking(ctx context.Context, bookingID string) ([]models.ChatMessage, error)
	MarkRead(ctx context.Context, id string) error
}

type mongoChatRepo struct {
	coll *mongo.Collection
}

// NewMongoChatRepo constructs a new MongoDB ChatRepository.
func NewMongoChatRepo() ChatRepository {
	return &mongoChatRepo{
		coll: database.DB().Collection("chat_messages"),
	}
}
