package v1

import (
	"github.com/gin-gonic/gin"

	"paperforge/internal/interfaces/httpserver/handlers"
)

func registerWebsiteRoutes(group *gin.RouterGroup, handler *handlers.WebsiteHandler) {
	websites := group.Group("/websites")
	websites.POST("/generate", handler.Generate)
	websites.POST("/edit", handler.Edit)
}
