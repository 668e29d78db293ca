package service

import (
	"luxedoll/internal/model"
	"luxedoll/internal/repository"
	"luxedoll/internal/types"
	"luxedoll/pkg/logger"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo *repository.OrderRepository
	logger    *logger.Logger
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo *repository.OrderRepository, logger *logger.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Create 为指定用户创建订单
// 订单号、金额、条目均由前端提供，服务端不做金额复算
func (s *OrderService) Create(uid string, req *types.CreateOrderRequest) error {
	status := req.Status
	if status == "" {
		status = model.OrderStatusPendingPayment
	}

	var transactionID *string
	if req.TransactionID != "" {
		transactionID = &req.TransactionID
	}

	order := &model.Order{
		OrderRef:      req.OrderRef,
		UID:           uid,
		Email:         req.Email,
		TotalAmount:   req.Total.String(),
		Status:        status,
		Items:         req.Items,
		Shipping:      req.Shipping,
		TransactionID: transactionID,
	}

	return s.orderRepo.Create(order)
}

// ListByUID 返回用户的订单列表，列表前先清理过期未支付订单
func (s *OrderService) ListByUID(uid string) ([]model.Order, error) {
	return s.orderRepo.ListByUID(uid)
}

// GetAll 获取所有订单
func (s *OrderService) GetAll() ([]model.Order, error) {
	return s.orderRepo.GetAll()
}

// Update 管理员更新订单
func (s *OrderService) Update(orderRef, status, totalAmount, transactionID string) error {
	return s.orderRepo.Update(orderRef, status, totalAmount, transactionID)
}

// Delete 管理员删除订单
func (s *OrderService) Delete(orderRef string) error {
	return s.orderRepo.Delete(orderRef)
}
