package controllers

import (
	"wabiz/models"
	"wabiz/services"

	"github.com/gin-gonic/gin"
)

// POST /api/chat-tags
func AssignTagToChat(c *gin.Context) {
	var in services.AssignTagInput
	if !BindJSON(c, &in) {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	link, err := services.AssignTag(db, in.Key())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondSuccess(c, link)
}

// POST /api/chat-tags/number
// Cria o chat se ainda não existir.
func AssignTagToChatByNumber(c *gin.Context) {
	var in services.AssignTagByNumberInput
	if !BindJSON(c, &in) {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	link, err := services.AssignTagByNumber(db, in)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondSuccess(c, link)
}

// DELETE /api/chat-tags/id/:chat_id/:tag_id/:account_id
func RemoveTagFromChat(c *gin.Context) {
	chatID, ok := ParamID(c, "chat_id")
	if !ok {
		return
	}
	key, ok := tagKey(c)
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	err := services.RemoveTag(db, models.ChatTagKey{ChatID: chatID, TagID: key.ID, AccountID: key.AccountID})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondMessage(c, "etiqueta removida do chat", nil)
}

// DELETE /api/chat-tags/number/:number/:tag_id/:account_id
// Não cria o chat: número desconhecido responde 404.
func RemoveTagFromChatByNumber(c *gin.Context) {
	number, ok := ParamString(c, "number")
	if !ok {
		return
	}
	key, ok := tagKey(c)
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	if err := services.RemoveTagByNumber(db, number, key.ID, key.AccountID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondMessage(c, "etiqueta removida do chat", nil)
}

// GET /api/chat-tags/chat/:chat_id
func GetChatTags(c *gin.Context) {
	chatID, ok := ParamID(c, "chat_id")
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	tags, err := services.ListChatTags(db, chatID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondSuccess(c, tags)
}

// GET /api/chat-tags/number/:number/:account_id
// Número sem chat responde lista vazia.
func GetChatTagsByNumber(c *gin.Context) {
	number, accountID, ok := chatParams(c)
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	result, err := services.ListChatTagsByNumber(db, number, accountID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondSuccess(c, result)
}
