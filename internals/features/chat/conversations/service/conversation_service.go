package service

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pasarku_backend/internals/features/chat/conversations/model"
	productModel "pasarku_backend/internals/features/catalog/products/model"
	adminModel "pasarku_backend/internals/features/users/admins/model"
	penggunaModel "pasarku_backend/internals/features/users/pengguna/model"
	helper "pasarku_backend/internals/helpers"
)

/* ==========================
   Send message (find-or-create thread)
========================== */

// SendMessage mencari thread milik pasangan (sender, receiver) — orientasi
// tidak berpengaruh — lalu menambahkan pesan. Kalau thread belum ada, thread
// dibuat dengan product ref opsional. Insert yang kalah balapan dengan request
// kembar akan kena unique index pasangan; kita fallback lookup sekali.
func SendMessage(db *gorm.DB, sender uuid.UUID, receiver uuid.UUID, body string, productID *uuid.UUID) (*model.ConversationModel, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Isi pesan wajib diisi")
	}
	if receiver == uuid.Nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Penerima wajib diisi")
	}

	conv, err := resolveThread(db, sender, receiver, productID)
	if err != nil {
		return nil, err
	}

	msg := model.ConversationMessageModel{
		MessageConversationID: conv.ConversationID,
		MessageSenderID:       sender,
		MessageBody:           body,
	}
	if err := db.Create(&msg).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan pesan:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengirim pesan")
	}

	// sentuh updated_at supaya thread naik ke atas inbox
	if err := db.Model(conv).
		UpdateColumn("conversation_updated_at", msg.MessageCreatedAt).Error; err != nil {
		log.Println("[WARN] Gagal update waktu thread:", err)
	}

	conv.Messages = append(conv.Messages, msg)
	return conv, nil
}

func resolveThread(db *gorm.DB, sender, receiver uuid.UUID, productID *uuid.UUID) (*model.ConversationModel, error) {
	low, high := model.NormalizePair(sender, receiver)

	var conv model.ConversationModel
	err := db.Where(
		"conversation_participant_low_id = ? AND conversation_participant_high_id = ?",
		low, high,
	).First(&conv).Error
	if err == nil {
		return &conv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat percakapan")
	}

	conv = model.ConversationModel{
		ConversationSenderID:   sender,
		ConversationReceiverID: receiver,
		ConversationProductID:  productID, // hanya di-set saat thread lahir
	}
	if err := db.Create(&conv).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			// kalah balapan first-message: thread sudah dibuat request lain
			var existing model.ConversationModel
			if err := db.Where(
				"conversation_participant_low_id = ? AND conversation_participant_high_id = ?",
				low, high,
			).First(&existing).Error; err != nil {
				return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat percakapan")
			}
			return &existing, nil
		}
		log.Println("[ERROR] Gagal membuat thread:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat percakapan")
	}
	return &conv, nil
}

/* ==========================
   Inbox
========================== */

type ConversationSummary struct {
	Conversation model.ConversationModel
	Counterpart  uuid.UUID
	CounterName  string
	ProductName  string
	LastMessage  string
	UnreadCount  int64
}

// ListConversations mengembalikan semua thread milik aktor,
// terbaru di atas, lengkap dengan ringkasan lawan bicara & produk.
func ListConversations(db *gorm.DB, actor uuid.UUID) ([]ConversationSummary, error) {
	var convs []model.ConversationModel
	if err := db.
		Where("conversation_participant_low_id = ? OR conversation_participant_high_id = ?", actor, actor).
		Order("conversation_updated_at DESC").
		Find(&convs).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat percakapan")
	}

	out := make([]ConversationSummary, 0, len(convs))
	for _, conv := range convs {
		counterpart := conv.ConversationSenderID
		if counterpart == actor {
			counterpart = conv.ConversationReceiverID
		}

		s := ConversationSummary{
			Conversation: conv,
			Counterpart:  counterpart,
			CounterName:  resolveActorName(db, counterpart),
		}

		if conv.ConversationProductID != nil {
			var product productModel.ProductModel
			if err := db.Select("product_name").
				First(&product, "product_id = ?", *conv.ConversationProductID).Error; err == nil {
				s.ProductName = product.ProductName
			}
		}

		var last model.ConversationMessageModel
		if err := db.Where("message_conversation_id = ?", conv.ConversationID).
			Order("message_created_at DESC").
			First(&last).Error; err == nil {
			s.LastMessage = last.MessageBody
		}

		db.Model(&model.ConversationMessageModel{}).
			Where("message_conversation_id = ? AND message_sender_id <> ? AND message_is_read = ?",
				conv.ConversationID, actor, false).
			Count(&s.UnreadCount)

		out = append(out, s)
	}
	return out, nil
}

/* ==========================
   Thread detail
========================== */

// GetThreadMessages: 404 kalau thread tak ada, 403 kalau aktor bukan peserta.
func GetThreadMessages(db *gorm.DB, actor uuid.UUID, threadID uuid.UUID) (*model.ConversationModel, []model.ConversationMessageModel, error) {
	conv, err := loadOwnedThread(db, actor, threadID)
	if err != nil {
		return nil, nil, err
	}

	var msgs []model.ConversationMessageModel
	if err := db.Where("message_conversation_id = ?", threadID).
		Order("message_created_at ASC").
		Find(&msgs).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat pesan")
	}
	return conv, msgs, nil
}

/* ==========================
   Read receipt
========================== */

// MarkRead menandai terbaca semua pesan lawan bicara yang belum dibaca,
// dalam satu UPDATE berfilter (atomik di sisi DB). Nol baris = no-op sukses;
// pemanggilan ulang idempoten.
func MarkRead(db *gorm.DB, actor uuid.UUID, threadID uuid.UUID) (int64, error) {
	if _, err := loadOwnedThread(db, actor, threadID); err != nil {
		return 0, err
	}

	res := db.Model(&model.ConversationMessageModel{}).
		Where("message_conversation_id = ? AND message_sender_id <> ? AND message_is_read = ?",
			threadID, actor, false).
		Update("message_is_read", true)
	if res.Error != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal menandai pesan terbaca")
	}
	return res.RowsAffected, nil
}

/* ==========================
   Archive flag
========================== */

func SetArchived(db *gorm.DB, actor uuid.UUID, threadID uuid.UUID, archived bool) (*model.ConversationModel, error) {
	conv, err := loadOwnedThread(db, actor, threadID)
	if err != nil {
		return nil, err
	}
	if err := db.Model(conv).
		UpdateColumn("conversation_is_archived", archived).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengubah status arsip")
	}
	conv.ConversationIsArchived = archived
	return conv, nil
}

/* ==========================
   Helpers
========================== */

func loadOwnedThread(db *gorm.DB, actor uuid.UUID, threadID uuid.UUID) (*model.ConversationModel, error) {
	var conv model.ConversationModel
	if err := db.First(&conv, "conversation_id = ?", threadID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Percakapan tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat percakapan")
	}
	if !conv.HasParticipant(actor) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Anda bukan peserta percakapan ini")
	}
	return &conv, nil
}

// ResolveActorName mencari nama aktor; aktor bisa pengguna atau admin.
func resolveActorName(db *gorm.DB, id uuid.UUID) string {
	var user penggunaModel.PenggunaModel
	if err := db.Select("user_name").First(&user, "user_id = ?", id).Error; err == nil {
		return user.UserName
	}
	var admin adminModel.AdminModel
	if err := db.Select("admin_name").First(&admin, "admin_id = ?", id).Error; err == nil {
		return admin.AdminName
	}
	return ""
}

// ResolveSenderNames memetakan id pengirim → nama untuk daftar pesan.
func ResolveSenderNames(db *gorm.DB, msgs []model.ConversationMessageModel) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string)
	for _, m := range msgs {
		if _, ok := names[m.MessageSenderID]; !ok {
			names[m.MessageSenderID] = resolveActorName(db, m.MessageSenderID)
		}
	}
	return names
}
