package meeting

import (
	"go-wfm/internal/middleware"
	"go-wfm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	meetings := r.Group("/meetings")
	meetings.Use(middleware.AuthMiddleware())
	{
		meetings.GET("", middleware.RBACAuthorize(rbacService, "meeting", "read"), h.GetMine)
		meetings.GET("/:id", middleware.RBACAuthorize(rbacService, "meeting", "read"), h.GetByID)
		meetings.POST("", middleware.RBACAuthorize(rbacService, "meeting", "create"), h.Create)
		meetings.PATCH("/:id", middleware.RBACAuthorize(rbacService, "meeting", "update"), h.Update)
	}
}
