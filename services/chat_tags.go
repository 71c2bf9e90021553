package services

import (
	"wabiz/models"

	"github.com/jinzhu/gorm"
)

const (
	msgChatTagNotFound = "relação chat-etiqueta não encontrada"
	msgChatTagExists   = "chat e etiqueta já associados"
)

type AssignTagInput struct {
	ChatID    int64 `json:"chat_id" binding:"required,min=1"`
	TagID     int64 `json:"tag_id" binding:"required,min=1"`
	AccountID int64 `json:"account_id" binding:"required,min=1"`
}

func (in AssignTagInput) Key() models.ChatTagKey {
	return models.ChatTagKey{ChatID: in.ChatID, TagID: in.TagID, AccountID: in.AccountID}
}

type AssignTagByNumberInput struct {
	ContactNumber string `json:"contact_number" binding:"required"`
	AccountID     int64  `json:"account_id" binding:"required,min=1"`
	TagID         int64  `json:"tag_id" binding:"required,min=1"`
}

// ChatTags is the listing returned for a chat looked up by contact number.
// ChatID is nil when the contact has no chat yet.
type ChatTags struct {
	ChatID *int64       `json:"chat_id"`
	Tags   []models.Tag `json:"tags"`
}

// AssignTag links an existing chat to an active tag of the same account.
func AssignTag(db *gorm.DB, key models.ChatTagKey) (models.ChatTag, error) {
	var link models.ChatTag
	err := withTx(db, func(tx *gorm.DB) error {
		var err error
		link, err = assignTag(tx, key)
		return err
	})
	return link, err
}

// AssignTagByNumber resolves (or creates) the chat for the contact and then
// assigns the tag, all in one transaction.
func AssignTagByNumber(db *gorm.DB, in AssignTagByNumberInput) (models.ChatTag, error) {
	number, err := contactNumber(in.ContactNumber)
	if err != nil {
		return models.ChatTag{}, err
	}

	var link models.ChatTag
	err = withTx(db, func(tx *gorm.DB) error {
		chat, _, err := createOrGetChat(tx, in.AccountID, number)
		if err != nil {
			return err
		}
		link, err = assignTag(tx, models.ChatTagKey{ChatID: chat.ID, TagID: in.TagID, AccountID: in.AccountID})
		return err
	})
	return link, err
}

func assignTag(tx *gorm.DB, key models.ChatTagKey) (models.ChatTag, error) {
	chat, err := GetChat(tx, key.ChatID)
	if err != nil {
		return models.ChatTag{}, err
	}
	// chat de outra conta: para esta conta ele não existe
	if chat.AccountID != key.AccountID {
		return models.ChatTag{}, notFound(msgChatNotFound)
	}

	if _, err := activeTag(tx, key.Tag()); err != nil {
		return models.ChatTag{}, err
	}

	exists, err := chatTagExists(tx, key)
	if err != nil {
		return models.ChatTag{}, err
	}
	if exists {
		return models.ChatTag{}, conflict(msgChatTagExists, nil)
	}

	link := models.NewChatTag(key)
	if err := tx.Create(&link).Error; err != nil {
		if isUniqueViolation(err) {
			return models.ChatTag{}, conflict(msgChatTagExists, err)
		}
		return models.ChatTag{}, err
	}
	return link, nil
}

func chatTagExists(db *gorm.DB, key models.ChatTagKey) (bool, error) {
	var count int
	err := db.Model(&models.ChatTag{}).
		Where("chat_id = ? AND tag_id = ? AND account_id = ?", key.ChatID, key.TagID, key.AccountID).
		Count(&count).Error
	return count > 0, err
}

// RemoveTag deletes exactly one association.
func RemoveTag(db *gorm.DB, key models.ChatTagKey) error {
	return withTx(db, func(tx *gorm.DB) error {
		return removeTag(tx, key)
	})
}

// RemoveTagByNumber never creates a chat: an unknown contact is NotFound.
func RemoveTagByNumber(db *gorm.DB, rawNumber string, tagID, accountID int64) error {
	number, err := contactNumber(rawNumber)
	if err != nil {
		return err
	}

	return withTx(db, func(tx *gorm.DB) error {
		chat, err := findChat(tx, accountID, number)
		if err != nil {
			return err
		}
		return removeTag(tx, models.ChatTagKey{ChatID: chat.ID, TagID: tagID, AccountID: accountID})
	})
}

func removeTag(tx *gorm.DB, key models.ChatTagKey) error {
	res := tx.Where("chat_id = ? AND tag_id = ? AND account_id = ?", key.ChatID, key.TagID, key.AccountID).
		Delete(&models.ChatTag{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(msgChatTagNotFound)
	}
	return nil
}

// ListChatTags returns the tags linked to a chat; the chat must exist.
func ListChatTags(db *gorm.DB, chatID int64) ([]models.Tag, error) {
	if _, err := GetChat(db, chatID); err != nil {
		return nil, err
	}
	return tagsOfChat(db, chatID)
}

// ListChatTagsByNumber answers with an empty list when the contact has no
// chat: for the caller that is the same as a chat without tags.
func ListChatTagsByNumber(db *gorm.DB, rawNumber string, accountID int64) (ChatTags, error) {
	number, err := contactNumber(rawNumber)
	if err != nil {
		return ChatTags{}, err
	}

	chat, err := findChat(db, accountID, number)
	if IsNotFound(err) {
		return ChatTags{Tags: []models.Tag{}}, nil
	}
	if err != nil {
		return ChatTags{}, err
	}

	tags, err := tagsOfChat(db, chat.ID)
	if err != nil {
		return ChatTags{}, err
	}
	return ChatTags{ChatID: &chat.ID, Tags: tags}, nil
}

func tagsOfChat(db *gorm.DB, chatID int64) ([]models.Tag, error) {
	tags := []models.Tag{}
	err := db.Select("tags.*").
		Joins("JOIN chat_tags ON chat_tags.tag_id = tags.id AND chat_tags.account_id = tags.account_id").
		Where("chat_tags.chat_id = ?", chatID).
		Order("tags.id asc").
		Find(&tags).Error
	return tags, err
}
