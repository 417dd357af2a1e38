package task

import (
	"go-wfm/internal/middleware"
	"go-wfm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	tasks := r.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware())
	{
		tasks.GET("", middleware.RBACAuthorize(rbacService, "task", "read"), h.GetMine)
		tasks.GET("/assigned", middleware.RBACAuthorize(rbacService, "task", "assign"), h.GetAssigned)
		tasks.POST("", middleware.RBACAuthorize(rbacService, "task", "create"), h.Create)
		tasks.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "task", "update"), h.UpdateStatus)
		tasks.PATCH("/:id/approve", middleware.RBACAuthorize(rbacService, "task", "approve"), h.Approve)
	}
}
