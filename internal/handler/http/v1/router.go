package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Вход офицера
	api.POST("/auth/officer/login", h.officerLogin)

	// Лента обращений, открытые маршруты
	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
	}

	// Действия офицера, только с токеном
	officer := api.Group("/incidents", OfficerAuthMiddleware(h.authService, h.logger))
	{
		officer.PATCH("/:id/status", h.updateStatus)
		officer.PATCH("/:id/severity", h.updateSeverity)
		officer.POST("/:id/actions/:action", h.quickAction)
		officer.POST("/:id/assign", h.assignOfficer)
		officer.POST("/bulk/status", h.bulkUpdateStatus)
	}

	// Серверные сессии ленты и доска офицера
	sessions := api.Group("/feed/sessions")
	{
		sessions.POST("", h.openSession)
		sessions.GET("/:id", h.getSession)
		sessions.POST("/:id/more", h.loadMore)
		sessions.POST("/:id/scroll", h.scroll)
		sessions.GET("/:id/board", h.board)
		sessions.GET("/:id/dashboard", h.dashboard)
		sessions.DELETE("/:id", h.closeSession)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
