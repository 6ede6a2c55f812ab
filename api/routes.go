package api

import (
	"github.com/gin-gonic/gin"

	"github.com/agentcircle/agentcircle/api/handlers"
)

// SetupRoutes initializes all API endpoints
func SetupRoutes(router *gin.Engine, h *handlers.Handler) {
	api := router.Group("/api")
	{
		api.GET("/agents", h.GetAgents)
		api.GET("/agents/:id", h.GetAgent)
		api.GET("/agents/:id/relationships", h.GetRelationships)
		api.GET("/posts", h.GetPosts)
		api.GET("/circles", h.GetCircles)
		api.GET("/rooms", h.GetRooms)
		api.GET("/rooms/:id/messages", h.GetRoomMessages)
		api.POST("/simulation/start", h.StartSimulation)
		api.POST("/simulation/stop", h.StopSimulation)
		api.GET("/simulation/status", h.GetSimulationStatus)
	}
}
