package http

import (
	"github.com/gin-gonic/gin"

	"github.com/progmatch/mentorship-backend/internal/delivery/http/handler"
	"github.com/progmatch/mentorship-backend/internal/delivery/http/middleware"
)

type Router struct {
	relationHandler *handler.RelationHandler
	userHandler     *handler.UserHandler
	authMiddleware  *middleware.AuthMiddleware
}

func NewRouter(
	relationHandler *handler.RelationHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		relationHandler: relationHandler,
		userHandler:     userHandler,
		authMiddleware:  authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			relations := protected.Group("/program_mentorship_relations")
			{
				relations.GET("", r.relationHandler.ListRelations)
				relations.GET("/current", r.relationHandler.GetCurrentRelation)
				relations.POST("/send_request", r.relationHandler.SendRequest)
				relations.PUT("/:org_rep_id/accept/:request_id", r.relationHandler.AcceptRequest)
			}

			users := protected.Group("/user")
			{
				users.GET("", r.userHandler.GetCurrent)
				users.PUT("/availability", r.userHandler.UpdateAvailability)
			}
		}
	}

	return router
}
