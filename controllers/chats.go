package controllers

import (
	"wabiz/services"

	"github.com/gin-gonic/gin"
)

// POST /api/chats
// Idempotente: se o chat (account_id, contact_number) já existe, devolve o existente.
func CreateOrGetChat(c *gin.Context) {
	var in services.CreateChatInput
	if !BindJSON(c, &in) {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	chat, created, err := services.CreateOrGetChat(db, in)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	msg := "chat já existente"
	if created {
		msg = "chat criado"
	}
	RespondMessage(c, msg, gin.H{"created": created, "chat": chat})
}

// GET /api/chats/account/:account_id
func GetChatsByAccount(c *gin.Context) {
	accountID, ok := ParamID(c, "account_id")
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	chats, err := services.ListChatsByAccount(db, accountID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondSuccess(c, chats)
}

// GET /api/chats/number/:number?account_id=1
func GetChatByNumber(c *gin.Context) {
	number, ok := ParamString(c, "number")
	if !ok {
		return
	}
	accountID, ok := QueryInt(c, "account_id", 0)
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	chat, err := services.FindChatByNumber(db, number, int64(accountID))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondSuccess(c, chat)
}

func chatParams(c *gin.Context) (string, int64, bool) {
	number, ok := ParamString(c, "number")
	if !ok {
		return "", 0, false
	}
	accountID, ok := ParamID(c, "account_id")
	if !ok {
		return "", 0, false
	}
	return number, accountID, true
}

// POST /api/chats/number/:number/account/:account_id/malicious-attempts
func RecordMaliciousAttempt(c *gin.Context) {
	number, accountID, ok := chatParams(c)
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	total, err := services.RecordMaliciousAttempt(db, number, accountID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondMessage(c, "tentativa maliciosa registrada", gin.H{"malicious_attempts": total})
}

// DELETE /api/chats/number/:number/account/:account_id/malicious-attempts
func ResetMaliciousAttempts(c *gin.Context) {
	number, accountID, ok := chatParams(c)
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	total, err := services.ResetMaliciousAttempts(db, number, accountID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondMessage(c, "tentativas maliciosas zeradas", gin.H{"malicious_attempts": total})
}

// POST /api/chats/number/:number/account/:account_id/block
func BlockChat(c *gin.Context) {
	setChatBlocked(c, true)
}

// DELETE /api/chats/number/:number/account/:account_id/block
func UnblockChat(c *gin.Context) {
	setChatBlocked(c, false)
}

func setChatBlocked(c *gin.Context, blocked bool) {
	number, accountID, ok := chatParams(c)
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	chat, err := services.SetChatBlocked(db, number, accountID, blocked)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondSuccess(c, chat)
}
