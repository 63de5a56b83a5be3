package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pasarku_backend/internals/constants"
	"pasarku_backend/internals/features/finance/transactions/dto"
	"pasarku_backend/internals/features/finance/transactions/model"
	"pasarku_backend/internals/features/finance/transactions/service"
	penggunaModel "pasarku_backend/internals/features/users/pengguna/model"
	helper "pasarku_backend/internals/helpers"
)

var validateTransaction = validator.New()

type TransactionController struct {
	DB *gorm.DB
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db}
}

// =======================
// ➕ Create Transaction (user)
// =======================
func (ctrl *TransactionController) Create(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	var body dto.CreateTransactionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTransaction.Struct(&body); err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", helper.ValidationMap(err))
	}

	trx, err := service.CreateTransaction(ctrl.DB, actor, body.TransactionType, body.TransactionAmount, body.TransactionPaymentMethod)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	resp := dto.ToTransactionDTO(trx)

	// Snap token hanya untuk pemasukan, dan sifatnya best-effort:
	// transaksi tetap tercatat walau gateway sedang bermasalah.
	if trx.TransactionType == constants.TransactionPemasukan {
		var pengguna penggunaModel.PenggunaModel
		if err := ctrl.DB.First(&pengguna, "user_id = ?", actor).Error; err == nil {
			if token, err := service.GenerateSnapToken(trx, pengguna.UserName, pengguna.UserEmail); err == nil {
				resp.SnapToken = token
			} else {
				log.Println("[ERROR] Gagal membuat snap token:", err)
			}
		}
	}

	return helper.JsonCreated(c, "Transaksi dibuat", resp)
}

// =======================
// 📄 Transaksi milik user (paginated)
// =======================
func (ctrl *TransactionController) GetMine(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.TransactionModel{}).Where("transaction_user_id = ?", actor)
	if status := c.Query("status"); status != "" {
		q = q.Where("transaction_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung transaksi")
	}

	var trxs []model.TransactionModel
	if err := q.Order("transaction_created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&trxs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat transaksi")
	}

	resp := make([]dto.TransactionDTO, 0, len(trxs))
	for _, t := range trxs {
		resp = append(resp, dto.ToTransactionDTO(t))
	}
	return helper.JsonList(c, "", resp, helper.BuildPagination(total, p))
}

// =======================
// ✏️ Ganti metode bayar (user, pending saja)
// =======================
func (ctrl *TransactionController) ChangePaymentMethod(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Transaksi tidak ditemukan")
	}

	var body dto.ChangePaymentMethodRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTransaction.Struct(&body); err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", helper.ValidationMap(err))
	}

	trx, err := service.ChangePaymentMethod(ctrl.DB, id, actor, body.TransactionPaymentMethod)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Metode bayar diganti", dto.ToTransactionDTO(trx))
}

// =======================
// 📄 Semua transaksi (admin, paginated)
// =======================
func (ctrl *TransactionController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.TransactionModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("transaction_status = ?", status)
	}
	if txType := c.Query("type"); txType != "" {
		q = q.Where("transaction_type = ?", txType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung transaksi")
	}

	var trxs []model.TransactionModel
	if err := q.Order("transaction_created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&trxs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat transaksi")
	}

	resp := make([]dto.TransactionDTO, 0, len(trxs))
	for _, t := range trxs {
		resp = append(resp, dto.ToTransactionDTO(t))
	}
	return helper.JsonList(c, "", resp, helper.BuildPagination(total, p))
}

// =======================
// 🔍 Detail transaksi milik user
// =======================
func (ctrl *TransactionController) GetMineByID(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Transaksi tidak ditemukan")
	}

	var trx model.TransactionModel
	if err := ctrl.DB.First(&trx, "transaction_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Transaksi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat transaksi")
	}
	if trx.TransactionUserID != actor {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan transaksi milik Anda")
	}
	return helper.JsonOK(c, "", dto.ToTransactionDTO(trx))
}

// =======================
// 🔍 Detail transaksi (admin)
// =======================
func (ctrl *TransactionController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Transaksi tidak ditemukan")
	}

	var trx model.TransactionModel
	if err := ctrl.DB.First(&trx, "transaction_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Transaksi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat transaksi")
	}
	return helper.JsonOK(c, "", dto.ToTransactionDTO(trx))
}

// =======================
// ✏️ Update status (admin)
// =======================
func (ctrl *TransactionController) UpdateStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Transaksi tidak ditemukan")
	}

	var body dto.UpdateTransactionStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTransaction.Struct(&body); err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", helper.ValidationMap(err))
	}

	trx, err := service.TransitionStatus(ctrl.DB, id, body.TransactionStatus)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Status transaksi diperbarui", dto.ToTransactionDTO(trx))
}

// =======================
// 🔔 Webhook Midtrans (public)
// =======================
func (ctrl *TransactionController) Notification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := service.HandlePaymentNotification(ctrl.DB, body, c.Body()); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Notifikasi diproses", nil)
}

func actorFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	return uuid.Parse(raw)
}
