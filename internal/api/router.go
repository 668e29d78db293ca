package api

import (
	"net/http"

	"luxedoll/config"
	"luxedoll/internal/api/admin"
	"luxedoll/internal/api/apis"
	"luxedoll/internal/api/handler"
	"luxedoll/internal/middleware"
	"luxedoll/internal/repository"
	"luxedoll/internal/service"
	"luxedoll/internal/session"
	"luxedoll/pkg/firebase"
	"luxedoll/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// SetupRouter 设置API路由
func SetupRouter(cfg *config.Config, logger *logger.Logger, db *sqlx.DB, verifier firebase.Verifier) *gin.Engine {
	// 创建Gin引擎
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// 使用中间件
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// 创建会话存储
	store := session.NewStore(cfg.Session.Secret)

	// 初始化存储库
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// 初始化服务
	productService := service.NewProductService(productRepo, logger)
	orderService := service.NewOrderService(orderRepo, logger)
	uploadService := service.NewUploadService(cfg.Upload.Dir, cfg.Upload.PublicPrefix, logger)
	authService := service.NewAuthService(verifier, adminRepo, logger)

	// 确保初始管理员账号存在
	if err := authService.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		logger.Fatal("初始化管理员账号失败", "error", err)
	}

	// 初始化处理器
	productHandler := handler.NewProductHandler(productService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	uploadHandler := handler.NewUploadHandler(uploadService, logger)
	authHandler := handler.NewAuthHandler(authService, store, logger)

	// 初始化管理员处理器
	adminHandler := admin.NewAdminHandler(productService, orderService, authService, store, cfg.Admin.Username, logger)

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 注册不需要认证的路由
	apis.RegisterPublicRoutes(router, productHandler, authHandler)
	router.POST("/admin-login", adminHandler.Login)

	// 注册需要会话认证的路由
	authRouter := router.Group("/api")
	authRouter.Use(middleware.UserAuth(store))
	apis.RegisterAuthRoutes(authRouter, orderHandler, uploadHandler)

	// 注册管理员API路由
	adminRouter := router.Group("/api/admin")
	adminRouter.Use(middleware.AdminAuth(store))
	admin.RegisterAdminRoutes(adminRouter, adminHandler)

	return router
}
