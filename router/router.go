package router

import (
	"log"
	"net/http"

	"wabiz/config"
	"wabiz/controllers"
	"wabiz/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares.
// /health is public; everything under /api requires the shared API key.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")
	api.Use(APIKeyGate(cfg.Security.ApiKey))
	api.Use(Logger())

	// Accounts
	api.POST("/accounts", controllers.CreateAccount)
	api.GET("/accounts", controllers.GetAccounts)
	api.GET("/accounts/instance/:instance", controllers.GetAccountByInstance)
	api.POST("/accounts/:id/messages-sent", controllers.IncrementMessagesSent)

	// Tags
	api.POST("/tags", controllers.CreateTag)
	api.GET("/tags/account/:account_id", controllers.GetTagsByAccount)
	api.GET("/tags/detail/:tag_id/:account_id", controllers.GetTagDetail)
	api.DELETE("/tags/:tag_id/:account_id", controllers.DeleteTag)

	// Chats
	api.POST("/chats", controllers.CreateOrGetChat)
	api.GET("/chats/account/:account_id", controllers.GetChatsByAccount)
	api.GET("/chats/number/:number", controllers.GetChatByNumber)
	api.POST("/chats/number/:number/account/:account_id/malicious-attempts", controllers.RecordMaliciousAttempt)
	api.DELETE("/chats/number/:number/account/:account_id/malicious-attempts", controllers.ResetMaliciousAttempts)
	api.POST("/chats/number/:number/account/:account_id/block", controllers.BlockChat)
	api.DELETE("/chats/number/:number/account/:account_id/block", controllers.UnblockChat)

	// Chat <-> Tag
	api.POST("/chat-tags", controllers.AssignTagToChat)
	api.POST("/chat-tags/number", controllers.AssignTagToChatByNumber)
	api.DELETE("/chat-tags/id/:chat_id/:tag_id/:account_id", controllers.RemoveTagFromChat)
	api.DELETE("/chat-tags/number/:number/:tag_id/:account_id", controllers.RemoveTagFromChatByNumber)
	api.GET("/chat-tags/chat/:chat_id", controllers.GetChatTags)
	api.GET("/chat-tags/number/:number/:account_id", controllers.GetChatTagsByNumber)

	log.Printf("Routes initialized")
}
