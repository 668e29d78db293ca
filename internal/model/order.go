package model

import (
	"time"
)

// 订单状态
// status是开放的字符串枚举，管理员可以改写为任意文本
const (
	OrderStatusPendingPayment      = "pending_payment"
	OrderStatusPendingVerification = "Pending Verification"
)

// Order 订单模型
// order_ref由前端下单时生成，是订单的唯一主键
type Order struct {
	OrderRef      string    `db:"order_ref" json:"order_ref"`
	UID           string    `db:"uid" json:"uid"`
	Email         string    `db:"email" json:"email"`
	TotalAmount   string    `db:"total_amount" json:"total_amount"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	Items         JSONArray `db:"items_json" json:"items"`
	Shipping      JSONMap   `db:"shipping_json" json:"shipping"`
	TransactionID *string   `db:"transaction_id" json:"transaction_id"`
}
