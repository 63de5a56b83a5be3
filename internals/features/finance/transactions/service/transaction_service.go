package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pasarku_backend/internals/constants"
	"pasarku_backend/internals/features/finance/transactions/model"
)

// CreateTransaction menulis entri ledger baru berstatus pending dan
// membuatkan order id yang unik untuk gateway pembayaran.
func CreateTransaction(db *gorm.DB, userID uuid.UUID, txType string, amount int64, paymentMethod string) (model.TransactionModel, error) {
	var trx model.TransactionModel

	if txType != constants.TransactionPemasukan && txType != constants.TransactionPengeluaran {
		return trx, fiber.NewError(fiber.StatusBadRequest, "Jenis transaksi tidak dikenal")
	}
	if amount <= 0 {
		return trx, fiber.NewError(fiber.StatusBadRequest, "Nominal transaksi harus lebih dari nol")
	}

	trx = model.TransactionModel{
		TransactionUserID:        userID,
		TransactionOrderID:       newOrderID(),
		TransactionType:          txType,
		TransactionAmount:        amount,
		TransactionPaymentMethod: strings.TrimSpace(paymentMethod),
		TransactionStatus:        constants.TransactionPending,
	}
	if err := db.Create(&trx).Error; err != nil {
		log.Println("[ERROR] Gagal membuat transaksi:", err)
		return trx, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat transaksi")
	}
	return trx, nil
}

// TransitionStatus memindahkan status transaksi. Satu-satunya transisi
// yang sah adalah pending → success atau pending → failed.
func TransitionStatus(db *gorm.DB, trxID uuid.UUID, nextStatus string) (model.TransactionModel, error) {
	var trx model.TransactionModel
	if err := db.First(&trx, "transaction_id = ?", trxID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return trx, fiber.NewError(fiber.StatusNotFound, "Transaksi tidak ditemukan")
		}
		return trx, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat transaksi")
	}

	if nextStatus != constants.TransactionSuccess && nextStatus != constants.TransactionFailed {
		return trx, fiber.NewError(fiber.StatusBadRequest, "Status tujuan tidak dikenal")
	}
	if trx.TransactionStatus != constants.TransactionPending {
		return trx, fiber.NewError(fiber.StatusBadRequest, "Transaksi sudah final, status tidak bisa diubah")
	}

	updates := map[string]interface{}{
		"transaction_status": nextStatus,
	}
	if nextStatus == constants.TransactionSuccess {
		updates["transaction_paid_at"] = time.Now()
	}
	if err := db.Model(&trx).Updates(updates).Error; err != nil {
		return trx, fiber.NewError(fiber.StatusInternalServerError, "Gagal update status transaksi")
	}
	return trx, nil
}

// ChangePaymentMethod mengganti metode bayar. Hanya boleh selama pending.
func ChangePaymentMethod(db *gorm.DB, trxID uuid.UUID, actor uuid.UUID, method string) (model.TransactionModel, error) {
	var trx model.TransactionModel
	if err := db.First(&trx, "transaction_id = ?", trxID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return trx, fiber.NewError(fiber.StatusNotFound, "Transaksi tidak ditemukan")
		}
		return trx, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat transaksi")
	}
	if trx.TransactionUserID != actor {
		return trx, fiber.NewError(fiber.StatusForbidden, "Bukan transaksi milik Anda")
	}
	if trx.TransactionStatus != constants.TransactionPending {
		return trx, fiber.NewError(fiber.StatusBadRequest, "Metode bayar hanya bisa diganti selama pending")
	}

	if err := db.Model(&trx).Update("transaction_payment_method", strings.TrimSpace(method)).Error; err != nil {
		return trx, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengganti metode bayar")
	}
	trx.TransactionPaymentMethod = strings.TrimSpace(method)
	return trx, nil
}

// HandlePaymentNotification dipanggil saat menerima notifikasi dari Midtrans.
// Event mentah selalu diarsipkan lebih dulu, baru status ledger digerakkan.
func HandlePaymentNotification(db *gorm.DB, body map[string]interface{}, raw []byte) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	event := model.PaymentGatewayEventModel{
		PaymentGatewayEventOrderID: orderID,
		PaymentGatewayEventStatus:  status,
		PaymentGatewayEventPayload: datatypes.JSON(raw),
	}
	if err := db.Create(&event).Error; err != nil {
		log.Println("[ERROR] Gagal mengarsipkan event gateway:", err)
	}

	var trx model.TransactionModel
	if err := db.Where("transaction_order_id = ?", orderID).First(&trx).Error; err != nil {
		log.Println("[ERROR] Transaksi webhook tidak ditemukan:", orderID)
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("transaction with order_id %s not found", orderID))
	}

	var next string
	switch status {
	case "capture", "settlement":
		next = constants.TransactionSuccess
	case "deny", "cancel", "expire":
		next = constants.TransactionFailed
	default:
		log.Println("[INFO] Status webhook tidak diproses:", status)
		return nil
	}

	// Notifikasi bisa datang dobel; transaksi final dibiarkan apa adanya.
	if trx.TransactionStatus != constants.TransactionPending {
		log.Println("[INFO] Transaksi sudah final, webhook diabaikan:", orderID)
		return nil
	}

	updates := map[string]interface{}{
		"transaction_status": next,
	}
	if next == constants.TransactionSuccess {
		updates["transaction_paid_at"] = time.Now()
		if paymentID, ok := body["transaction_id"].(string); ok && paymentID != "" {
			updates["transaction_payment_id"] = paymentID
		}
	}
	if err := db.Model(&trx).Updates(updates).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status transaksi:", err)
		return err
	}
	return nil
}

func newOrderID() string {
	return "PSR-" + strings.ToUpper(uuid.New().String()[:8]) + "-" + fmt.Sprintf("%d", time.Now().Unix())
}
