package admin

import (
	"net/http"

	"luxedoll/internal/constants"
	"luxedoll/internal/service"
	"luxedoll/internal/session"
	"luxedoll/internal/types"
	"luxedoll/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// AdminHandler 管理员处理器
type AdminHandler struct {
	productService  *service.ProductService
	orderService    *service.OrderService
	authService     *service.AuthService
	store           sessions.Store
	defaultUsername string
	logger          *logger.Logger
}

// NewAdminHandler 创建管理员处理器
func NewAdminHandler(
	productService *service.ProductService,
	orderService *service.OrderService,
	authService *service.AuthService,
	store sessions.Store,
	defaultUsername string,
	logger *logger.Logger,
) *AdminHandler {
	return &AdminHandler{
		productService:  productService,
		orderService:    orderService,
		authService:     authService,
		store:           store,
		defaultUsername: defaultUsername,
		logger:          logger,
	}
}

// Login 管理员登录
// 未提供用户名时使用初始管理员账号，兼容只提交密码的旧前端
func (h *AdminHandler) Login(c *gin.Context) {
	var req types.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRequest})
		return
	}

	username := req.Username
	if username == "" {
		username = h.defaultUsername
	}

	ok, err := h.authService.VerifyAdmin(username, req.Password)
	if err != nil {
		h.logger.Error("管理员登录校验失败", "username", username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrWrongPassword})
		return
	}

	sess, _ := h.store.Get(c.Request, session.Name)
	sess.Values[session.KeyIsAdmin] = true
	if err := sess.Save(c.Request, c.Writer); err != nil {
		h.logger.Error("保存会话失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetAll 返回全部商品与订单
// 存量数据中损坏的JSON列在读取时退化为空结构，不影响整体响应
func (h *AdminHandler) GetAll(c *gin.Context) {
	products, err := h.productService.GetAll()
	if err != nil {
		h.logger.Error("获取商品列表失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	orders, err := h.orderService.GetAll()
	if err != nil {
		h.logger.Error("获取订单列表失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"orders":   orders,
	})
}

// UpdateProduct 更新商品
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	var req types.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRequest})
		return
	}

	if err := h.productService.Update(req.ID, req.Name, req.Price, req.URL, req.Meta, req.Detail); err != nil {
		h.logger.Error("更新商品失败", "id", req.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateOrder 更新订单的状态、金额与交易号
func (h *AdminHandler) UpdateOrder(c *gin.Context) {
	var req types.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRequest})
		return
	}

	if err := h.orderService.Update(req.OrderRef, req.Status, req.TotalAmount, req.TransactionID); err != nil {
		h.logger.Error("更新订单失败", "order_ref", req.OrderRef, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteOrder 删除订单
func (h *AdminHandler) DeleteOrder(c *gin.Context) {
	var req types.DeleteOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRequest})
		return
	}

	if err := h.orderService.Delete(req.OrderRef); err != nil {
		h.logger.Error("删除订单失败", "order_ref", req.OrderRef, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
