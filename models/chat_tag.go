package models

// ChatTagKey é a chave completa da associação chat <-> etiqueta.
type ChatTagKey struct {
	ChatID    int64 `json:"chat_id"`
	TagID     int64 `json:"tag_id"`
	AccountID int64 `json:"account_id"`
}

func (key ChatTagKey) Tag() TagKey {
	return TagKey{ID: key.TagID, AccountID: key.AccountID}
}

// ChatTag liga um ChatHeader a uma Tag dentro da mesma conta (N:N).
// account_id é desnormalizado e precisa bater com a conta do chat e da tag.
type ChatTag struct {
	ChatID    int64 `gorm:"primary_key;auto_increment:false" json:"chat_id"`
	TagID     int64 `gorm:"primary_key;auto_increment:false" json:"tag_id"`
	AccountID int64 `gorm:"primary_key;auto_increment:false" json:"account_id"`
}

func (ChatTag) TableName() string { return "chat_tags" }

func (ct ChatTag) Key() ChatTagKey {
	return ChatTagKey{ChatID: ct.ChatID, TagID: ct.TagID, AccountID: ct.AccountID}
}

func NewChatTag(key ChatTagKey) ChatTag {
	return ChatTag{ChatID: key.ChatID, TagID: key.TagID, AccountID: key.AccountID}
}
