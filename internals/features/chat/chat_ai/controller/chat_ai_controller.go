package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pasarku_backend/internals/features/chat/chat_ai/dto"
	"pasarku_backend/internals/features/chat/chat_ai/model"
	helper "pasarku_backend/internals/helpers"
)

var validateChatAI = validator.New()

type ChatAIController struct {
	DB *gorm.DB
}

func NewChatAIController(db *gorm.DB) *ChatAIController {
	return &ChatAIController{DB: db}
}

// =======================
// ➕ Simpan log chat AI
// =======================
func (ctrl *ChatAIController) Create(c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateChatAILogRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateChatAI.Struct(&body); err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", helper.ValidationMap(err))
	}

	entry := model.ChatAILogModel{
		ChatAIUserID:   userID,
		ChatAIPrompt:   body.ChatAIPrompt,
		ChatAIResponse: body.ChatAIResponse,
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan log chat")
	}
	return helper.JsonCreated(c, "Log chat tersimpan", dto.ToChatAILogDTO(entry))
}

// =======================
// 📄 Riwayat chat AI milik pengguna (paginated)
// =======================
func (ctrl *ChatAIController) GetMine(c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ChatAILogModel{}).
		Where("chat_ai_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung log chat")
	}

	var entries []model.ChatAILogModel
	if err := ctrl.DB.
		Where("chat_ai_user_id = ?", userID).
		Order("chat_ai_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat log chat")
	}

	resp := make([]dto.ChatAILogDTO, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToChatAILogDTO(e))
	}
	return helper.JsonList(c, "", resp, helper.BuildPagination(total, p))
}

// =======================
// 🗑️ Hapus log milik sendiri
// =======================
func (ctrl *ChatAIController) Delete(c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Log chat tidak ditemukan")
	}

	var entry model.ChatAILogModel
	if err := ctrl.DB.First(&entry, "chat_ai_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Log chat tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat log chat")
	}
	if entry.ChatAIUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Log chat ini bukan milik Anda")
	}

	if err := ctrl.DB.Delete(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus log chat")
	}
	return helper.JsonDeleted(c, "Log chat dihapus", fiber.Map{
		"chat_ai_id": id.String(),
	})
}
