package models

import "time"

// Account representa um tenant WhatsApp-business (uma instância de mensageria).
type Account struct {
	ID                int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name              string     `gorm:"not null" json:"name"`
	MessagingInstance string     `gorm:"not null;index" json:"messaging_instance"`
	CorporateNumber   string     `gorm:"not null" json:"corporate_number"`
	PersonalNumber    string     `gorm:"not null" json:"personal_number"`
	PersonalName      string     `gorm:"not null" json:"personal_name"`
	CreatedAt         *time.Time `json:"created_at"`
	Deleted           bool       `gorm:"not null;default:false" json:"deleted"`
	MessagesSent      int64      `gorm:"not null;default:0" json:"messages_sent"`
}

func (Account) TableName() string { return "accounts" }
