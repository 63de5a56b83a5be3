package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pasarku_backend/internals/features/chat/conversations/dto"
	"pasarku_backend/internals/features/chat/conversations/service"
	helper "pasarku_backend/internals/helpers"
)

var validateChat = validator.New()

type ConversationController struct {
	DB *gorm.DB
}

func NewConversationController(db *gorm.DB) *ConversationController {
	return &ConversationController{DB: db}
}

// =======================
// 📨 Kirim pesan (find-or-create thread)
// =======================
func (ctrl *ConversationController) SendMessage(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.SendMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateChat.Struct(&body); err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", helper.ValidationMap(err))
	}

	receiver, err := uuid.Parse(body.ReceiverID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Penerima tidak valid")
	}

	var productID *uuid.UUID
	if body.ProductID != nil {
		pid, err := uuid.Parse(*body.ProductID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Produk tidak valid")
		}
		productID = &pid
	}

	conv, err := service.SendMessage(ctrl.DB, actor, receiver, body.Body, productID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Pesan terkirim", dto.ToConversationDTO(*conv))
}

// =======================
// 📥 Inbox (semua thread milik aktor)
// =======================
func (ctrl *ConversationController) ListConversations(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	summaries, err := service.ListConversations(ctrl.DB, actor)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	resp := make([]dto.ConversationSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		var productID *string
		if s.Conversation.ConversationProductID != nil {
			str := s.Conversation.ConversationProductID.String()
			productID = &str
		}
		resp = append(resp, dto.ConversationSummaryDTO{
			ConversationID:  s.Conversation.ConversationID.String(),
			CounterpartID:   s.Counterpart.String(),
			CounterpartName: s.CounterName,
			ProductID:       productID,
			ProductName:     s.ProductName,
			LastMessage:     s.LastMessage,
			UnreadCount:     s.UnreadCount,
			IsArchived:      s.Conversation.ConversationIsArchived,
			UpdatedAt:       s.Conversation.ConversationUpdatedAt,
		})
	}
	return helper.JsonList(c, "", resp, nil)
}

// =======================
// 📄 Isi thread
// =======================
func (ctrl *ConversationController) GetThreadMessages(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	threadID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Percakapan tidak ditemukan")
	}

	conv, msgs, err := service.GetThreadMessages(ctrl.DB, actor, threadID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	names := service.ResolveSenderNames(ctrl.DB, msgs)
	resp := dto.ToConversationDTO(*conv)
	resp.Messages = make([]dto.MessageDTO, 0, len(msgs))
	for _, m := range msgs {
		resp.Messages = append(resp.Messages, dto.ToMessageDTO(m, names[m.MessageSenderID]))
	}
	return helper.JsonOK(c, "", resp)
}

// =======================
// ✅ Tandai terbaca
// =======================
func (ctrl *ConversationController) MarkRead(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	threadID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Percakapan tidak ditemukan")
	}

	affected, err := service.MarkRead(ctrl.DB, actor, threadID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Pesan ditandai terbaca", fiber.Map{
		"updated_count": affected,
	})
}

// =======================
// 🗂️ Arsip / buka arsip
// =======================
func (ctrl *ConversationController) Archive(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	threadID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Percakapan tidak ditemukan")
	}

	var body struct {
		Archived bool `json:"archived"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	conv, err := service.SetArchived(ctrl.DB, actor, threadID, body.Archived)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Status arsip diperbarui", dto.ToConversationDTO(*conv))
}

func actorFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	return uuid.Parse(raw)
}
