package v1

import (
	"github.com/gin-gonic/gin"

	"paperforge/internal/interfaces/httpserver/handlers"
)

func registerPaperRoutes(group *gin.RouterGroup, handler *handlers.SummaryHandler) {
	papers := group.Group("/papers")
	papers.POST("/summarize", handler.SummarizeBatch)
	papers.GET("/summaries", handler.List)
}
