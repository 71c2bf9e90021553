package services

import (
	"strings"

	"wabiz/models"

	"github.com/jinzhu/gorm"
)

const msgTagNotFound = "etiqueta não encontrada"

type CreateTagInput struct {
	ID        int64   `json:"id" binding:"required,min=1"`
	AccountID int64   `json:"account_id" binding:"required,min=1"`
	Name      string  `json:"name" binding:"required"`
	Color     *string `json:"color"`
}

func (in CreateTagInput) MissingFields() string {
	if in.ID <= 0 {
		return "id"
	} else if in.AccountID <= 0 {
		return "account_id"
	} else if strings.TrimSpace(in.Name) == "" {
		return "name"
	}
	return ""
}

func newTag(in CreateTagInput) models.Tag {
	tag := models.Tag{
		ID:        in.ID,
		AccountID: in.AccountID,
		Name:      strings.TrimSpace(in.Name),
	}
	if in.Color != nil {
		color := strings.TrimSpace(*in.Color)
		tag.Color = &color
	}
	return tag
}

// CreateTag always checks the owning account exists and is active, so no tag
// can be orphaned.
func CreateTag(db *gorm.DB, in CreateTagInput) (models.Tag, error) {
	if missing := in.MissingFields(); missing != "" {
		return models.Tag{}, invalid(missing + " é obrigatório")
	}

	tag := newTag(in)
	err := withTx(db, func(tx *gorm.DB) error {
		if _, err := activeAccount(tx, in.AccountID); err != nil {
			return err
		}

		var count int
		if err := tx.Model(&models.Tag{}).
			Where("id = ? AND account_id = ?", tag.ID, tag.AccountID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return conflict("etiqueta já existe nesta conta", nil)
		}

		if err := tx.Create(&tag).Error; err != nil {
			if isUniqueViolation(err) {
				return conflict("etiqueta já existe nesta conta", err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return models.Tag{}, err
	}
	return tag, nil
}

// ListTagsByAccount returns every tag of the account, soft-deleted ones included.
func ListTagsByAccount(db *gorm.DB, accountID int64) ([]models.Tag, error) {
	tags := []models.Tag{}
	if err := db.Where("account_id = ?", accountID).Order("id asc").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// GetTag loads a tag by its composite key, deleted or not.
func GetTag(db *gorm.DB, key models.TagKey) (models.Tag, error) {
	var tag models.Tag
	query := db.Where("id = ? AND account_id = ?", key.ID, key.AccountID)
	if err := first(query, &tag, msgTagNotFound); err != nil {
		return models.Tag{}, err
	}
	return tag, nil
}

// DeleteTag removes every chat association of the tag and then flags it as
// deleted; the row itself is kept. Both steps share one transaction.
func DeleteTag(db *gorm.DB, key models.TagKey) error {
	return withTx(db, func(tx *gorm.DB) error {
		if _, err := GetTag(tx, key); err != nil {
			return err
		}

		if err := tx.Where("tag_id = ? AND account_id = ?", key.ID, key.AccountID).
			Delete(&models.ChatTag{}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Tag{}).
			Where("id = ? AND account_id = ?", key.ID, key.AccountID).
			UpdateColumn("deleted", true).Error
	})
}

// activeTag loads a tag and rejects soft-deleted ones.
func activeTag(db *gorm.DB, key models.TagKey) (models.Tag, error) {
	tag, err := GetTag(db, key)
	if err != nil {
		return models.Tag{}, err
	}
	if tag.Deleted {
		return models.Tag{}, notFound(msgTagNotFound)
	}
	return tag, nil
}
