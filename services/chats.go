package services

import (
	"time"

	"wabiz/models"
	"wabiz/tools"

	"github.com/jinzhu/gorm"
)

const msgChatNotFound = "chat não encontrado"

type CreateChatInput struct {
	AccountID     int64  `json:"account_id" binding:"required,min=1"`
	ContactNumber string `json:"contact_number" binding:"required"`
}

func contactNumber(raw string) (string, error) {
	number, err := tools.NormalizeContactNumber(raw)
	if err != nil {
		return "", invalid("contact_number inválido: " + err.Error())
	}
	return number, nil
}

func newChatHeader(accountID int64, number string) models.ChatHeader {
	return models.ChatHeader{
		AccountID:     accountID,
		ContactNumber: number,
	}
}

// CreateOrGetChat returns the chat for (account, contact number), creating it
// when absent. created tells which of the two happened.
func CreateOrGetChat(db *gorm.DB, in CreateChatInput) (chat models.ChatHeader, created bool, err error) {
	number, err := contactNumber(in.ContactNumber)
	if err != nil {
		return models.ChatHeader{}, false, err
	}

	err = withTx(db, func(tx *gorm.DB) error {
		chat, created, err = createOrGetChat(tx, in.AccountID, number)
		return err
	})
	if err != nil {
		return models.ChatHeader{}, false, err
	}
	return chat, created, nil
}

// createOrGetChat is the check-then-create step; it must run inside a
// transaction. A concurrent creator that wins the race makes the insert fail
// on ux_chat_account_contact, which is reported as Conflict.
func createOrGetChat(tx *gorm.DB, accountID int64, number string) (models.ChatHeader, bool, error) {
	chat, err := findChat(tx, accountID, number)
	if err == nil {
		return chat, false, nil
	}
	if !IsNotFound(err) {
		return models.ChatHeader{}, false, err
	}

	if _, err := GetAccount(tx, accountID); err != nil {
		return models.ChatHeader{}, false, err
	}

	chat = newChatHeader(accountID, number)
	if err := tx.Create(&chat).Error; err != nil {
		if isUniqueViolation(err) {
			return models.ChatHeader{}, false, conflict("chat criado concorrentemente, tente novamente", err)
		}
		return models.ChatHeader{}, false, err
	}
	return chat, true, nil
}

func findChat(db *gorm.DB, accountID int64, number string) (models.ChatHeader, error) {
	var chat models.ChatHeader
	query := db.Where("account_id = ? AND contact_number = ?", accountID, number)
	if err := first(query, &chat, msgChatNotFound); err != nil {
		return models.ChatHeader{}, err
	}
	return chat, nil
}

func GetChat(db *gorm.DB, id int64) (models.ChatHeader, error) {
	var chat models.ChatHeader
	if err := first(db.Where("id = ?", id), &chat, msgChatNotFound); err != nil {
		return models.ChatHeader{}, err
	}
	return chat, nil
}

func ListChatsByAccount(db *gorm.DB, accountID int64) ([]models.ChatHeader, error) {
	chats := []models.ChatHeader{}
	if err := db.Where("account_id = ?", accountID).Order("id asc").Find(&chats).Error; err != nil {
		return nil, err
	}
	return chats, nil
}

// FindChatByNumber looks a chat up by contact number. accountID 0 searches
// every account and returns the lowest id.
func FindChatByNumber(db *gorm.DB, rawNumber string, accountID int64) (models.ChatHeader, error) {
	number, err := contactNumber(rawNumber)
	if err != nil {
		return models.ChatHeader{}, err
	}
	if accountID > 0 {
		return findChat(db, accountID, number)
	}

	var chat models.ChatHeader
	query := db.Where("contact_number = ?", number).Order("id asc")
	if err := first(query, &chat, msgChatNotFound); err != nil {
		return models.ChatHeader{}, err
	}
	return chat, nil
}

// RecordMaliciousAttempt creates the chat if needed and adds one attempt.
func RecordMaliciousAttempt(db *gorm.DB, rawNumber string, accountID int64) (int64, error) {
	number, err := contactNumber(rawNumber)
	if err != nil {
		return 0, err
	}

	var total int64
	err = withTx(db, func(tx *gorm.DB) error {
		chat, _, err := createOrGetChat(tx, accountID, number)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.ChatHeader{}).
			Where("id = ?", chat.ID).
			UpdateColumn("malicious_attempts", gorm.Expr("COALESCE(malicious_attempts, 0) + 1")).
			Error; err != nil {
			return err
		}

		chat, err = GetChat(tx, chat.ID)
		if err != nil {
			return err
		}
		total = chat.MaliciousAttempts
		return nil
	})
	return total, err
}

// ResetMaliciousAttempts zeroes the counter. Unlike RecordMaliciousAttempt it
// never creates a chat: an unknown contact simply has zero attempts.
func ResetMaliciousAttempts(db *gorm.DB, rawNumber string, accountID int64) (int64, error) {
	number, err := contactNumber(rawNumber)
	if err != nil {
		return 0, err
	}

	return 0, withTx(db, func(tx *gorm.DB) error {
		chat, err := findChat(tx, accountID, number)
		if IsNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Model(&models.ChatHeader{}).
			Where("id = ?", chat.ID).
			UpdateColumn("malicious_attempts", 0).Error
	})
}

// SetChatBlocked sets or clears blocked_at. Missing chats are not created.
func SetChatBlocked(db *gorm.DB, rawNumber string, accountID int64, blocked bool) (models.ChatHeader, error) {
	number, err := contactNumber(rawNumber)
	if err != nil {
		return models.ChatHeader{}, err
	}

	var chat models.ChatHeader
	err = withTx(db, func(tx *gorm.DB) error {
		chat, err = findChat(tx, accountID, number)
		if err != nil {
			return err
		}

		var blockedAt *time.Time
		if blocked {
			if chat.BlockedAt != nil {
				return nil
			}
			now := time.Now()
			blockedAt = &now
		}

		if err := tx.Model(&models.ChatHeader{}).
			Where("id = ?", chat.ID).
			UpdateColumn("blocked_at", blockedAt).Error; err != nil {
			return err
		}
		chat.BlockedAt = blockedAt
		return nil
	})
	if err != nil {
		return models.ChatHeader{}, err
	}
	return chat, nil
}
