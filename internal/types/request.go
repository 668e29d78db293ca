package types

import (
	"encoding/json"

	"luxedoll/internal/model"
)

// LoginRequest 用户登录请求
type LoginRequest struct {
	IDToken string `json:"idToken"`
}

// AdminLoginRequest 管理员登录请求
// username缺省时使用配置的初始管理员账号
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}

// CreateOrderRequest 下单请求
// total/items/shipping由前端结账页生成，服务端不重新计算金额
type CreateOrderRequest struct {
	OrderRef      string          `json:"orderRef" binding:"required"`
	Email         string          `json:"email"`
	Total         json.Number     `json:"total"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transactionId"`
	Items         model.JSONArray `json:"items"`
	Shipping      model.JSONMap   `json:"shipping"`
}

// UpdateProductRequest 管理员商品更新请求
type UpdateProductRequest struct {
	ID     string        `json:"id" binding:"required"`
	Name   string        `json:"name"`
	Price  float64       `json:"price"`
	URL    string        `json:"url"`
	Meta   model.JSONMap `json:"meta_json"`
	Detail model.JSONMap `json:"detail_json"`
}

// UpdateOrderRequest 管理员订单更新请求
type UpdateOrderRequest struct {
	OrderRef      string `json:"order_ref" binding:"required"`
	Status        string `json:"status"`
	TotalAmount   string `json:"total_amount"`
	TransactionID string `json:"transaction_id"`
}

// DeleteOrderRequest 管理员订单删除请求
type DeleteOrderRequest struct {
	OrderRef string `json:"order_ref" binding:"required"`
}
