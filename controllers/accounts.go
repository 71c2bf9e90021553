package controllers

import (
	"wabiz/services"

	"github.com/gin-gonic/gin"
)

// POST /api/accounts
func CreateAccount(c *gin.Context) {
	var in services.CreateAccountInput
	if !BindJSON(c, &in) {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	account, err := services.CreateAccount(db, in)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondSuccess(c, account)
}

// GET /api/accounts?skip=0&limit=100
func GetAccounts(c *gin.Context) {
	skip, ok := QueryInt(c, "skip", 0)
	if !ok {
		return
	}
	limit, ok := QueryInt(c, "limit", services.DefaultListLimit)
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	accounts, err := services.ListAccounts(db, skip, limit)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondSuccess(c, accounts)
}

// GET /api/accounts/instance/:instance
func GetAccountByInstance(c *gin.Context) {
	instance, ok := ParamString(c, "instance")
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	account, err := services.FindAccountByInstance(db, instance)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondSuccess(c, account)
}

// POST /api/accounts/:id/messages-sent
func IncrementMessagesSent(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	total, err := services.IncrementMessagesSent(db, id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondMessage(c, "contador de mensagens atualizado", gin.H{"messages_sent": total})
}
