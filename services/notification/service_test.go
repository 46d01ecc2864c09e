// File: services/notification/service_test.go
package notification

import (
	"context"
	"testing"

	"partnerhub/models"
	"partnerhub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeNotificationRepo struct {
	notifications map[string]*models.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: map[string]*models.Notification{}}
}

func (f *fakeNotificationRepo) Insert(_ context.Context, n *models.Notification) error {
	cp := *n
	f.notifications[n.ID] = &cp
	return nil
}

func (f *fakeNotificationRepo) ListByUser(_ context.Context, userID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id string) error {
	n, ok := f.notifications[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	n.Read = true
	return nil
}

func (f *fakeNotificationRepo) MarkSent(_ context.Context, id string) error {
	n, ok := f.notifications[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	n.Sent = true
	return nil
}

type fakePartnerLookup struct{}

func (fakePartnerLookup) Create(_ context.Context, _ *models.Partner) error { return nil }
func (fakePartnerLookup) GetByID(_ context.Context, _ string) (*models.Partner, error) {
	return nil, mongo.ErrNoDocuments
}
func (fakePartnerLookup) GetByPhone(_ context.Context, _ string) (*models.Partner, error) {
	return nil, mongo.ErrNoDocuments
}
func (fakePartnerLookup) Update(_ context.Context, _ string, _ map[string]interface{}) (*models.Partner, error) {
	return nil, mongo.ErrNoDocuments
}
func (fakePartnerLookup) SetTokenHash(_ context.Context, _, _ string) error { return nil }
func (fakePartnerLookup) SetStatus(_ context.Context, _, _ string) error    { return nil }

func TestCreateNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("create succeeds even when push delivery is unavailable", func(t *testing.T) {
		repo := newFakeNotificationRepo()
		svc := &DefaultNotificationService{Repo: repo, Partners: fakePartnerLookup{}}

		n, err := svc.Create(ctx, models.NotificationRequest{
			UserID: "user-1",
			Type:   "booking_confirmed",
			Title:  "Booking confirmed",
			Body:   "Your slot at 9:00 is confirmed.",
			Data:   map[string]any{"bookingId": "booking-1"},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, n.ID)
		assert.False(t, n.Sent, "no FCM client means no immediate delivery")
		assert.False(t, n.Read)

		stored := repo.notifications[n.ID]
		require.NotNil(t, stored)
		assert.Equal(t, "booking_confirmed", stored.Type)
	})

	t.Run("list is scoped to the recipient", func(t *testing.T) {
		repo := newFakeNotificationRepo()
		svc := &DefaultNotificationService{Repo: repo, Partners: fakePartnerLookup{}}

		_, err := svc.Create(ctx, models.NotificationRequest{UserID: "user-1", Type: "t", Title: "a", Body: "b"})
		require.NoError(t, err)
		_, err = svc.Create(ctx, models.NotificationRequest{UserID: "user-2", Type: "t", Title: "a", Body: "b"})
		require.NoError(t, err)

		mine, err := svc.ListByUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, mine, 1)
	})

	t.Run("mark read flips the flag and 404s on unknown ids", func(t *testing.T) {
		repo := newFakeNotificationRepo()
		svc := &DefaultNotificationService{Repo: repo, Partners: fakePartnerLookup{}}

		n, err := svc.Create(ctx, models.NotificationRequest{UserID: "user-1", Type: "t", Title: "a", Body: "b"})
		require.NoError(t, err)

		require.NoError(t, svc.MarkRead(ctx, n.ID))
		assert.True(t, repo.notifications[n.ID].Read)

		err = svc.MarkRead(ctx, "missing")
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.Status)
	})
}
