package services

import (
	"strings"

	"wabiz/models"

	"github.com/jinzhu/gorm"
)

const (
	DefaultListLimit = 100

	msgAccountNotFound = "conta não encontrada"
)

// CreateAccountInput são os campos aceitos na criação de uma conta.
type CreateAccountInput struct {
	Name              string `json:"name" binding:"required"`
	MessagingInstance string `json:"messaging_instance" binding:"required"`
	CorporateNumber   string `json:"corporate_number" binding:"required"`
	PersonalNumber    string `json:"personal_number" binding:"required"`
	PersonalName      string `json:"personal_name" binding:"required"`
}

func (in CreateAccountInput) MissingFields() string {
	if strings.TrimSpace(in.Name) == "" {
		return "name"
	} else if strings.TrimSpace(in.MessagingInstance) == "" {
		return "messaging_instance"
	} else if strings.TrimSpace(in.CorporateNumber) == "" {
		return "corporate_number"
	} else if strings.TrimSpace(in.PersonalNumber) == "" {
		return "personal_number"
	} else if strings.TrimSpace(in.PersonalName) == "" {
		return "personal_name"
	}
	return ""
}

func newAccount(in CreateAccountInput) models.Account {
	return models.Account{
		Name:              strings.TrimSpace(in.Name),
		MessagingInstance: strings.TrimSpace(in.MessagingInstance),
		CorporateNumber:   strings.TrimSpace(in.CorporateNumber),
		PersonalNumber:    strings.TrimSpace(in.PersonalNumber),
		PersonalName:      strings.TrimSpace(in.PersonalName),
	}
}

func CreateAccount(db *gorm.DB, in CreateAccountInput) (models.Account, error) {
	if missing := in.MissingFields(); missing != "" {
		return models.Account{}, invalid(missing + " é obrigatório")
	}

	account := newAccount(in)
	err := withTx(db, func(tx *gorm.DB) error {
		return tx.Create(&account).Error
	})
	if err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// ListAccounts pages over every account (soft-deleted included) in id order.
func ListAccounts(db *gorm.DB, skip, limit int) ([]models.Account, error) {
	if skip < 0 || limit < 0 {
		return nil, invalid("skip e limit não podem ser negativos")
	}

	accounts := []models.Account{}
	if err := db.Order("id asc").Offset(skip).Limit(limit).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func GetAccount(db *gorm.DB, id int64) (models.Account, error) {
	var account models.Account
	if err := first(db.Where("id = ?", id), &account, msgAccountNotFound); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// FindAccountByInstance does an exact match on the messaging instance. The
// column is not unique: with duplicates the lowest id wins.
func FindAccountByInstance(db *gorm.DB, instance string) (models.Account, error) {
	instance = strings.TrimSpace(instance)
	if instance == "" {
		return models.Account{}, invalid("messaging_instance é obrigatório")
	}

	var account models.Account
	query := db.Where("messaging_instance = ?", instance).Order("id asc")
	if err := first(query, &account, msgAccountNotFound); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// IncrementMessagesSent adds exactly one to the account counter and returns the new total.
func IncrementMessagesSent(db *gorm.DB, accountID int64) (int64, error) {
	var total int64
	err := withTx(db, func(tx *gorm.DB) error {
		if _, err := GetAccount(tx, accountID); err != nil {
			return err
		}

		if err := tx.Model(&models.Account{}).
			Where("id = ?", accountID).
			UpdateColumn("messages_sent", gorm.Expr("COALESCE(messages_sent, 0) + 1")).
			Error; err != nil {
			return err
		}

		account, err := GetAccount(tx, accountID)
		if err != nil {
			return err
		}
		total = account.MessagesSent
		return nil
	})
	return total, err
}

// activeAccount loads an account and rejects soft-deleted ones.
func activeAccount(db *gorm.DB, id int64) (models.Account, error) {
	account, err := GetAccount(db, id)
	if err != nil {
		return models.Account{}, err
	}
	if account.Deleted {
		return models.Account{}, notFound(msgAccountNotFound)
	}
	return account, nil
}
