package apis

import (
	"luxedoll/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes 注册不需要认证的路由
func RegisterPublicRoutes(router *gin.Engine, productHandler *handler.ProductHandler, authHandler *handler.AuthHandler) {
	// 商品检索与详情
	router.GET("/api/products", productHandler.GetProducts)
	router.GET("/product/:id", productHandler.GetProduct)

	// 用户登录登出
	router.POST("/api/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)
}

// RegisterAuthRoutes 注册需要会话认证的路由
// 调用方需要为router挂载UserAuth中间件
func RegisterAuthRoutes(router *gin.RouterGroup, orderHandler *handler.OrderHandler, uploadHandler *handler.UploadHandler) {
	router.GET("/my-orders", orderHandler.GetMyOrders)
	router.POST("/orders", orderHandler.CreateOrder)
	router.POST("/upload", uploadHandler.Upload)
}
