package models

import "time"

// ChatHeader é a conversa de uma conta com um número de contato.
// Regra: no máximo 1 ChatHeader por (account_id, contact_number), garantido
// pelo unique index ux_chat_account_contact.
type ChatHeader struct {
	ID                int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	AccountID         int64      `gorm:"not null;index;unique_index:ux_chat_account_contact" json:"account_id"`
	CreatedAt         *time.Time `json:"created_at"`
	BlockedAt         *time.Time `json:"blocked_at"`
	ContactNumber     string     `gorm:"not null;unique_index:ux_chat_account_contact" json:"contact_number"`
	MaliciousAttempts int64      `gorm:"not null;default:0" json:"malicious_attempts"`
}

func (ChatHeader) TableName() string { return "chat_headers" }

func (chat ChatHeader) IsBlocked() bool {
	return chat.BlockedAt != nil
}
