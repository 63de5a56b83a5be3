package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pasarku_backend/internals/constants"
	"pasarku_backend/internals/features/finance/transactions/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.TransactionModel{},
		&model.PaymentGatewayEventModel{},
	))
	return db
}

func fiberStatus(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T: %v", err, err)
	return fe.Code
}

func TestCreateTransaction_StartsPendingWithOrderID(t *testing.T) {
	db := newTestDB(t)

	trx, err := CreateTransaction(db, uuid.New(), constants.TransactionPemasukan, 150000, "gopay")
	require.NoError(t, err)
	assert.Equal(t, constants.TransactionPending, trx.TransactionStatus)
	assert.NotEmpty(t, trx.TransactionOrderID)
}

func TestCreateTransaction_RejectsBadInput(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateTransaction(db, uuid.New(), "hadiah", 1000, "gopay")
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))

	_, err = CreateTransaction(db, uuid.New(), constants.TransactionPemasukan, 0, "gopay")
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))
}

func TestTransitionStatus_PendingOnly(t *testing.T) {
	db := newTestDB(t)

	trx, err := CreateTransaction(db, uuid.New(), constants.TransactionPengeluaran, 50000, "bank_transfer")
	require.NoError(t, err)

	got, err := TransitionStatus(db, trx.TransactionID, constants.TransactionSuccess)
	require.NoError(t, err)

	var reloaded model.TransactionModel
	require.NoError(t, db.First(&reloaded, "transaction_id = ?", got.TransactionID).Error)
	assert.Equal(t, constants.TransactionSuccess, reloaded.TransactionStatus)
	assert.NotNil(t, reloaded.TransactionPaidAt)

	// transaksi final tidak boleh digerakkan lagi
	_, err = TransitionStatus(db, trx.TransactionID, constants.TransactionFailed)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))
}

func TestTransitionStatus_UnknownTargetRejected(t *testing.T) {
	db := newTestDB(t)

	trx, err := CreateTransaction(db, uuid.New(), constants.TransactionPemasukan, 25000, "qris")
	require.NoError(t, err)

	_, err = TransitionStatus(db, trx.TransactionID, "refunded")
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))
}

func TestChangePaymentMethod_PendingAndOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()

	trx, err := CreateTransaction(db, owner, constants.TransactionPemasukan, 75000, "gopay")
	require.NoError(t, err)

	got, err := ChangePaymentMethod(db, trx.TransactionID, owner, "bank_transfer")
	require.NoError(t, err)
	assert.Equal(t, "bank_transfer", got.TransactionPaymentMethod)

	_, err = ChangePaymentMethod(db, trx.TransactionID, uuid.New(), "qris")
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberStatus(t, err))

	_, err = TransitionStatus(db, trx.TransactionID, constants.TransactionFailed)
	require.NoError(t, err)

	_, err = ChangePaymentMethod(db, trx.TransactionID, owner, "qris")
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))
}

func TestHandlePaymentNotification_StatusMapping(t *testing.T) {
	db := newTestDB(t)

	trx, err := CreateTransaction(db, uuid.New(), constants.TransactionPemasukan, 200000, "gopay")
	require.NoError(t, err)

	payload := map[string]interface{}{
		"order_id":           trx.TransactionOrderID,
		"transaction_status": "settlement",
		"transaction_id":     "MT-12345",
	}
	raw := []byte(`{"order_id":"` + trx.TransactionOrderID + `","transaction_status":"settlement"}`)
	require.NoError(t, HandlePaymentNotification(db, payload, raw))

	var reloaded model.TransactionModel
	require.NoError(t, db.First(&reloaded, "transaction_id = ?", trx.TransactionID).Error)
	assert.Equal(t, constants.TransactionSuccess, reloaded.TransactionStatus)
	require.NotNil(t, reloaded.TransactionPaymentID)
	assert.Equal(t, "MT-12345", *reloaded.TransactionPaymentID)

	// event mentah terarsip
	var events int64
	db.Model(&model.PaymentGatewayEventModel{}).
		Where("payment_gateway_event_order_id = ?", trx.TransactionOrderID).
		Count(&events)
	assert.Equal(t, int64(1), events)
}

func TestHandlePaymentNotification_FinalTransactionUntouched(t *testing.T) {
	db := newTestDB(t)

	trx, err := CreateTransaction(db, uuid.New(), constants.TransactionPemasukan, 10000, "qris")
	require.NoError(t, err)
	_, err = TransitionStatus(db, trx.TransactionID, constants.TransactionSuccess)
	require.NoError(t, err)

	payload := map[string]interface{}{
		"order_id":           trx.TransactionOrderID,
		"transaction_status": "expire",
	}
	require.NoError(t, HandlePaymentNotification(db, payload, []byte(`{}`)))

	var reloaded model.TransactionModel
	require.NoError(t, db.First(&reloaded, "transaction_id = ?", trx.TransactionID).Error)
	assert.Equal(t, constants.TransactionSuccess, reloaded.TransactionStatus, "notifikasi telat tidak boleh menurunkan status final")
}

func TestHandlePaymentNotification_BadPayload(t *testing.T) {
	db := newTestDB(t)

	err := HandlePaymentNotification(db, map[string]interface{}{"foo": "bar"}, []byte(`{}`))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))
}
