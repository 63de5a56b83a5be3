package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Satu thread per pasangan aktor (unordered). Orientasi sender/receiver
// disimpan apa adanya saat thread dibuat; pasangan ternormalisasi
// (low, high) yang dijaga unique index, sehingga balapan find-or-create
// tidak bisa menghasilkan thread kembar.
type ConversationModel struct {
	ConversationID                uuid.UUID  `gorm:"column:conversation_id;primaryKey;type:uuid" json:"conversation_id"`
	ConversationSenderID          uuid.UUID  `gorm:"column:conversation_sender_id;type:uuid;not null;index" json:"conversation_sender_id"`
	ConversationReceiverID        uuid.UUID  `gorm:"column:conversation_receiver_id;type:uuid;not null;index" json:"conversation_receiver_id"`
	ConversationParticipantLowID  uuid.UUID  `gorm:"column:conversation_participant_low_id;type:uuid;not null;uniqueIndex:idx_conversations_pair,priority:1" json:"-"`
	ConversationParticipantHighID uuid.UUID  `gorm:"column:conversation_participant_high_id;type:uuid;not null;uniqueIndex:idx_conversations_pair,priority:2" json:"-"`
	ConversationProductID         *uuid.UUID `gorm:"column:conversation_product_id;type:uuid" json:"conversation_product_id"`
	ConversationIsArchived        bool       `gorm:"column:conversation_is_archived;not null;default:false" json:"conversation_is_archived"`
	ConversationCreatedAt         time.Time  `gorm:"column:conversation_created_at;autoCreateTime" json:"conversation_created_at"`
	ConversationUpdatedAt         time.Time  `gorm:"column:conversation_updated_at;autoUpdateTime" json:"conversation_updated_at"`

	Messages []ConversationMessageModel `gorm:"foreignKey:MessageConversationID;references:ConversationID" json:"messages,omitempty"`
}

func (ConversationModel) TableName() string {
	return "conversations"
}

func (m *ConversationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ConversationID == uuid.Nil {
		m.ConversationID = uuid.New()
	}
	if m.ConversationParticipantLowID == uuid.Nil && m.ConversationParticipantHighID == uuid.Nil {
		m.ConversationParticipantLowID, m.ConversationParticipantHighID =
			NormalizePair(m.ConversationSenderID, m.ConversationReceiverID)
	}
	return nil
}

// HasParticipant: aktor adalah salah satu peserta thread?
func (m *ConversationModel) HasParticipant(actor uuid.UUID) bool {
	return m.ConversationSenderID == actor || m.ConversationReceiverID == actor
}

// NormalizePair mengurutkan pasangan aktor secara leksikografis.
func NormalizePair(a, b uuid.UUID) (low, high uuid.UUID) {
	if strings.Compare(a.String(), b.String()) <= 0 {
		return a, b
	}
	return b, a
}
