package models

// TagKey identifica uma etiqueta: o id só é único dentro da conta.
type TagKey struct {
	ID        int64 `json:"id"`
	AccountID int64 `json:"account_id"`
}

// Tag é uma etiqueta de uma conta, usada para classificar chats.
// A chave primária é composta (id, account_id); nenhuma das colunas é auto increment.
type Tag struct {
	ID        int64   `gorm:"primary_key;auto_increment:false" json:"id"`
	AccountID int64   `gorm:"primary_key;auto_increment:false" json:"account_id"`
	Name      string  `gorm:"not null" json:"name"`
	Color     *string `json:"color"`
	Deleted   bool    `gorm:"not null;default:false" json:"deleted"`
}

func (Tag) TableName() string { return "tags" }

func (tag Tag) Key() TagKey {
	return TagKey{ID: tag.ID, AccountID: tag.AccountID}
}
