package dashboard

import (
	"go-wfm/internal/middleware"
	"go-wfm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	dash := r.Group("/dashboard")
	dash.Use(middleware.AuthMiddleware())
	{
		dash.GET("/stats", middleware.RBACAuthorize(rbacService, "dashboard", "read"), h.GetStats)
	}
}
