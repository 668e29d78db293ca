package handler

import (
	"net/http"

	"luxedoll/internal/constants"
	"luxedoll/internal/service"
	"luxedoll/internal/session"
	"luxedoll/internal/types"
	"luxedoll/pkg/logger"

	"github.com/gin-gonic/gin"
)

// OrderHandler 订单处理器
type OrderHandler struct {
	orderService *service.OrderService
	logger       *logger.Logger
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(orderService *service.OrderService, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// CreateOrder 创建订单
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	uid := c.GetString(session.CtxUID)

	var req types.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRequest})
		return
	}

	if err := h.orderService.Create(uid, &req); err != nil {
		h.logger.Error("创建订单失败", "uid", uid, "order_ref", req.OrderRef, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrOrderCreateFailed})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order_ref": req.OrderRef})
}

// GetMyOrders 获取当前用户的订单列表
// 查询前会清理该用户超过24小时仍未支付的订单
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	uid := c.GetString(session.CtxUID)

	orders, err := h.orderService.ListByUID(uid)
	if err != nil {
		h.logger.Error("获取用户订单失败", "uid", uid, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrOrdersFetchFailed})
		return
	}

	c.JSON(http.StatusOK, orders)
}
