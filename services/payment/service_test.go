// File: services/payment/service_test.go
package payment

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"partnerhub/models"
	"partnerhub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakePaymentRepo struct {
	txns map[string]*models.PaymentTransaction
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{txns: map[string]*models.PaymentTransaction{}}
}

func (f *fakePaymentRepo) Insert(_ context.Context, txn *models.PaymentTransaction) error {
	cp := *txn
	f.txns[txn.TransactionID] = &cp
	return nil
}

func (f *fakePaymentRepo) GetByTransactionID(_ context.Context, transactionID string) (*models.PaymentTransaction, error) {
	txn, ok := f.txns[transactionID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *txn
	return &cp, nil
}

func (f *fakePaymentRepo) SetStatus(_ context.Context, transactionID, status string) (*models.PaymentTransaction, error) {
	txn, ok := f.txns[transactionID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	txn.Status = status
	txn.UpdatedAt = time.Now()
	cp := *txn
	return &cp, nil
}

func (f *fakePaymentRepo) EnsureIndexes(_ context.Context) error { return nil }

type fakeGateway struct {
	orderID string
	err     error

	gotAmount   int64
	gotCurrency string
	gotReceipt  string
}

func (g *fakeGateway) CreateOrder(_ context.Context, amountMinor int64, currency, receipt string) (string, error) {
	g.gotAmount = amountMinor
	g.gotCurrency = currency
	g.gotReceipt = receipt
	return g.orderID, g.err
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(50000), MinorUnits(500))
	assert.Equal(t, int64(49999), MinorUnits(499.99))
	assert.Equal(t, int64(10), MinorUnits(0.1))
	// rounding, not truncation
	assert.Equal(t, int64(30), MinorUnits(0.29999999))
}

func TestNewReceiptID(t *testing.T) {
	now := time.Now()
	receipt := NewReceiptID(now)

	require.True(t, strings.HasPrefix(receipt, "receipt_"))
	millis, err := strconv.ParseInt(strings.TrimPrefix(receipt, "receipt_"), 10, 64)
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), millis)
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a pending transaction with gateway order", func(t *testing.T) {
		repo := newFakePaymentRepo()
		gw := &fakeGateway{orderID: "order_abc"}
		svc := &DefaultPaymentService{Repo: repo, Gateway: gw}

		txn, err := svc.CreateOrder(ctx, "partner-1", models.PaymentOrderRequest{Amount: 499.99, Currency: "INR"})
		require.NoError(t, err)

		assert.Equal(t, models.PaymentStatusPending, txn.Status)
		assert.Equal(t, "order_abc", txn.GatewayOrder)
		assert.Equal(t, int64(49999), txn.AmountMinor)
		assert.Equal(t, "inr", txn.Currency)
		assert.NotEmpty(t, txn.TransactionID)

		assert.Equal(t, int64(49999), gw.gotAmount)
		assert.Equal(t, "inr", gw.gotCurrency)
		assert.True(t, strings.HasPrefix(gw.gotReceipt, "receipt_"))

		stored, err := repo.GetByTransactionID(ctx, txn.TransactionID)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPending, stored.Status)
	})

	t.Run("defaults the currency", func(t *testing.T) {
		gw := &fakeGateway{orderID: "order_abc"}
		svc := &DefaultPaymentService{Repo: newFakePaymentRepo(), Gateway: gw}

		txn, err := svc.CreateOrder(ctx, "partner-1", models.PaymentOrderRequest{Amount: 100})
		require.NoError(t, err)
		assert.Equal(t, "inr", txn.Currency)
	})

	t.Run("gateway failure surfaces as a generic internal error", func(t *testing.T) {
		repo := newFakePaymentRepo()
		gw := &fakeGateway{err: errors.New("stripe: invalid api key sk_test_123")}
		svc := &DefaultPaymentService{Repo: repo, Gateway: gw}

		_, err := svc.CreateOrder(ctx, "partner-1", models.PaymentOrderRequest{Amount: 100})
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 500, apiErr.Status)
		assert.Equal(t, "failed to create payment order", apiErr.Message)
		assert.NotContains(t, err.Error(), "sk_test_123", "gateway details must not leak")
		assert.Empty(t, repo.txns, "no transaction persisted on gateway failure")
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		svc := &DefaultPaymentService{Repo: newFakePaymentRepo(), Gateway: &fakeGateway{}}

		_, err := svc.CreateOrder(ctx, "partner-1", models.PaymentOrderRequest{Amount: 0})
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.Status)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fakePaymentRepo, *DefaultPaymentService, string) {
		repo := newFakePaymentRepo()
		svc := &DefaultPaymentService{Repo: repo, Gateway: &fakeGateway{orderID: "order_abc"}}
		txn, err := svc.CreateOrder(ctx, "partner-1", models.PaymentOrderRequest{Amount: 100})
		require.NoError(t, err)
		return repo, svc, txn.TransactionID
	}

	t.Run("pending advances to success and then refunded", func(t *testing.T) {
		_, svc, id := setup(t)

		txn, err := svc.UpdateStatus(ctx, id, models.PaymentStatusSuccess)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusSuccess, txn.Status)

		txn, err = svc.UpdateStatus(ctx, id, models.PaymentStatusRefunded)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusRefunded, txn.Status)
	})

	t.Run("reverse transitions are rejected", func(t *testing.T) {
		_, svc, id := setup(t)

		_, err := svc.UpdateStatus(ctx, id, models.PaymentStatusSuccess)
		require.NoError(t, err)

		_, err = svc.UpdateStatus(ctx, id, models.PaymentStatusPending)
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.Status)
	})

	t.Run("sideways transition between equal ranks is rejected", func(t *testing.T) {
		_, svc, id := setup(t)

		_, err := svc.UpdateStatus(ctx, id, models.PaymentStatusFailed)
		require.NoError(t, err)

		_, err = svc.UpdateStatus(ctx, id, models.PaymentStatusSuccess)
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, svc, id := setup(t)

		_, err := svc.UpdateStatus(ctx, id, "charged-back")
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.Status)
	})

	t.Run("unknown transaction is not found", func(t *testing.T) {
		_, svc, _ := setup(t)

		_, err := svc.UpdateStatus(ctx, "missing", models.PaymentStatusSuccess)
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.Status)
	})
}

func TestPaymentStatusAdvances(t *testing.T) {
	assert.True(t, models.PaymentStatusAdvances(models.PaymentStatusPending, models.PaymentStatusSuccess))
	assert.True(t, models.PaymentStatusAdvances(models.PaymentStatusPending, models.PaymentStatusFailed))
	assert.True(t, models.PaymentStatusAdvances(models.PaymentStatusFailed, models.PaymentStatusRefunded))
	assert.False(t, models.PaymentStatusAdvances(models.PaymentStatusSuccess, models.PaymentStatusPending))
	assert.False(t, models.PaymentStatusAdvances(models.PaymentStatusSuccess, models.PaymentStatusFailed))
	assert.False(t, models.PaymentStatusAdvances(models.PaymentStatusRefunded, models.PaymentStatusRefunded))
	assert.False(t, models.PaymentStatusAdvances("bogus", models.PaymentStatusSuccess))
}
