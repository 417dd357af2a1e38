package report

import (
	"go-wfm/internal/middleware"
	"go-wfm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("", middleware.RBACAuthorize(rbacService, "report", "read"), h.GetAll)
		reports.GET("/:id", middleware.RBACAuthorize(rbacService, "report", "read"), h.GetByID)
		reports.POST("/generate", middleware.RBACAuthorize(rbacService, "report", "generate"), h.Generate)
		reports.PATCH("/:id", middleware.RBACAuthorize(rbacService, "report", "amend"), h.Amend)
	}
}
