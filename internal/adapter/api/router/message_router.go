package router

import (
	"github.com/labstack/echo/v4"

	"dapurkita/internal/adapter/api/handler"
	"dapurkita/internal/adapter/api/middleware"
)

// SetupMessageRouter sets up the messaging and contact discovery routes
func SetupMessageRouter(e *echo.Echo, messageHandler *handler.MessageHandler, contactHandler *handler.ContactHandler, authMiddleware *middleware.AuthMiddleware) {
	group := e.Group("/v1")
	group.Use(authMiddleware.Authenticate) // All messaging endpoints require authentication

	// Contact discovery
	group.GET("/contacts", contactHandler.ListContacts)            // GET /v1/contacts?search=&limit=
	group.GET("/resolve-user/:userId", contactHandler.ResolveUser) // GET /v1/resolve-user/:userId

	// Messaging
	group.POST("/send", messageHandler.Send)                           // POST /v1/send
	group.GET("/inbox", messageHandler.GetInbox)                       // GET /v1/inbox?page=&limit=
	group.GET("/conversation/:userId", messageHandler.GetConversation) // GET /v1/conversation/:userId?page=&limit=
	group.PATCH("/read/:senderId", messageHandler.MarkRead)            // PATCH /v1/read/:senderId
}
