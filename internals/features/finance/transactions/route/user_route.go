package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pasarku_backend/internals/features/finance/transactions/controller"
)

// TransactionUserRoutes: ledger milik user yang login
func TransactionUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTransactionController(db)

	trx := router.Group("/transactions")
	trx.Post("/", ctrl.Create)
	trx.Get("/", ctrl.GetMine)
	trx.Get("/:id", ctrl.GetMineByID)
	trx.Patch("/:id/payment-method", ctrl.ChangePaymentMethod)
}

// TransactionAdminRoutes: monitoring ledger oleh admin
func TransactionAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTransactionController(db)

	trx := router.Group("/transactions")
	trx.Get("/", ctrl.GetAll)
	trx.Get("/:id", ctrl.GetByID)
	trx.Patch("/:id/status", ctrl.UpdateStatus)
}

// PaymentWebhookRoutes: endpoint publik untuk notifikasi gateway
func PaymentWebhookRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTransactionController(db)

	router.Post("/payments/notification", ctrl.Notification)
}
