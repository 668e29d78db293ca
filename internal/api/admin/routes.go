package admin

import (
	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes 注册管理员API路由
// 调用方需要为router挂载AdminAuth中间件
func RegisterAdminRoutes(router *gin.RouterGroup, adminHandler *AdminHandler) {
	router.GET("/get-all", adminHandler.GetAll)
	router.POST("/product/update", adminHandler.UpdateProduct)
	router.POST("/order/update", adminHandler.UpdateOrder)
	router.POST("/order/delete", adminHandler.DeleteOrder)
}
