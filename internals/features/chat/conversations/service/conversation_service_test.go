package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pasarku_backend/internals/features/chat/conversations/model"
	adminModel "pasarku_backend/internals/features/users/admins/model"
	penggunaModel "pasarku_backend/internals/features/users/pengguna/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&penggunaModel.PenggunaModel{},
		&adminModel.AdminModel{},
		&model.ConversationModel{},
		&model.ConversationMessageModel{},
	))
	return db
}

func fiberStatus(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T: %v", err, err)
	return fe.Code
}

func TestSendMessage_FirstMessageCreatesSingleThread(t *testing.T) {
	db := newTestDB(t)
	a, b := uuid.New(), uuid.New()

	conv, err := SendMessage(db, a, b, "Halo, barang masih ada?", nil)
	require.NoError(t, err)
	require.NotNil(t, conv)

	var threadCount int64
	db.Model(&model.ConversationModel{}).Count(&threadCount)
	assert.Equal(t, int64(1), threadCount)

	var msgCount int64
	db.Model(&model.ConversationMessageModel{}).
		Where("message_conversation_id = ?", conv.ConversationID).
		Count(&msgCount)
	assert.Equal(t, int64(1), msgCount)
}

func TestSendMessage_ReplyAppendsToSameThread(t *testing.T) {
	db := newTestDB(t)
	a, b := uuid.New(), uuid.New()

	first, err := SendMessage(db, a, b, "Halo", nil)
	require.NoError(t, err)

	// balasan dari arah sebaliknya tetap masuk thread yang sama
	second, err := SendMessage(db, b, a, "Masih ada kok", nil)
	require.NoError(t, err)
	assert.Equal(t, first.ConversationID, second.ConversationID)

	var threadCount int64
	db.Model(&model.ConversationModel{}).Count(&threadCount)
	assert.Equal(t, int64(1), threadCount)

	var msgCount int64
	db.Model(&model.ConversationMessageModel{}).
		Where("message_conversation_id = ?", first.ConversationID).
		Count(&msgCount)
	assert.Equal(t, int64(2), msgCount)
}

func TestSendMessage_EmptyBodyRejected(t *testing.T) {
	db := newTestDB(t)

	_, err := SendMessage(db, uuid.New(), uuid.New(), "   ", nil)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))
}

func TestMarkRead_OnlyCounterpartMessagesAndIdempotent(t *testing.T) {
	db := newTestDB(t)
	a, b := uuid.New(), uuid.New()

	conv, err := SendMessage(db, a, b, "pesan pertama", nil)
	require.NoError(t, err)
	_, err = SendMessage(db, a, b, "pesan kedua", nil)
	require.NoError(t, err)
	_, err = SendMessage(db, b, a, "balasan dari b", nil)
	require.NoError(t, err)

	// b menandai terbaca: hanya pesan a yang tersentuh
	affected, err := MarkRead(db, b, conv.ConversationID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	var unreadFromB int64
	db.Model(&model.ConversationMessageModel{}).
		Where("message_sender_id = ? AND message_is_read = ?", b, false).
		Count(&unreadFromB)
	assert.Equal(t, int64(1), unreadFromB, "pesan milik b tidak boleh ikut tertandai")

	// pemanggilan kedua: nol baris
	affected, err = MarkRead(db, b, conv.ConversationID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestGetThreadMessages_NonParticipantForbidden(t *testing.T) {
	db := newTestDB(t)
	a, b := uuid.New(), uuid.New()

	conv, err := SendMessage(db, a, b, "rahasia", nil)
	require.NoError(t, err)

	_, _, err = GetThreadMessages(db, uuid.New(), conv.ConversationID)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberStatus(t, err))
}

func TestGetThreadMessages_UnknownThreadNotFound(t *testing.T) {
	db := newTestDB(t)

	_, _, err := GetThreadMessages(db, uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberStatus(t, err))
}

func TestListConversations_UnreadCountAndCounterpart(t *testing.T) {
	db := newTestDB(t)
	a, b := uuid.New(), uuid.New()

	user := penggunaModel.PenggunaModel{UserID: a, UserName: "Budi", UserEmail: "budi@example.com", UserPassword: "x"}
	require.NoError(t, db.Create(&user).Error)

	_, err := SendMessage(db, a, b, "halo", nil)
	require.NoError(t, err)
	_, err = SendMessage(db, a, b, "ada?", nil)
	require.NoError(t, err)

	inbox, err := ListConversations(db, b)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, a, inbox[0].Counterpart)
	assert.Equal(t, "Budi", inbox[0].CounterName)
	assert.Equal(t, int64(2), inbox[0].UnreadCount)
	assert.Equal(t, "ada?", inbox[0].LastMessage)
}

func TestSetArchived_ToggleByParticipant(t *testing.T) {
	db := newTestDB(t)
	a, b := uuid.New(), uuid.New()

	conv, err := SendMessage(db, a, b, "arsipkan aku", nil)
	require.NoError(t, err)

	got, err := SetArchived(db, a, conv.ConversationID, true)
	require.NoError(t, err)
	assert.True(t, got.ConversationIsArchived)

	_, err = SetArchived(db, uuid.New(), conv.ConversationID, true)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberStatus(t, err))
}
