package attendance

import (
	"go-wfm/internal/middleware"
	"go-wfm/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, rdb *redis.Client) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.GetAll)
		attendances.POST("/check-in", middleware.Idempotency(rdb), h.CheckIn)
		attendances.POST("/check-out", middleware.Idempotency(rdb), h.CheckOut)
		attendances.PATCH("/:id/override", middleware.RBACAuthorize(rbacService, "attendance", "override"), h.Override)
	}
}
