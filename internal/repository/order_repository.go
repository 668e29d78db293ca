package repository

import (
	"luxedoll/internal/model"

	"github.com/jmoiron/sqlx"
)

// OrderRepository 订单存储库
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository 创建订单存储库
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create 创建订单
// order_ref是主键，重复下单会触发UNIQUE约束错误
func (r *OrderRepository) Create(order *model.Order) error {
	query := `
		INSERT INTO orders (
			order_ref, uid, email, total_amount, status,
			items_json, shipping_json, transaction_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(
		query,
		order.OrderRef,
		order.UID,
		order.Email,
		order.TotalAmount,
		order.Status,
		order.Items,
		order.Shipping,
		order.TransactionID,
	)
	return err
}

// ListByUID 返回指定用户的全部订单，按创建时间倒序
// 查询前先在同一事务内清理该用户超过24小时仍未支付的订单，
// 过期判定使用数据库时钟datetime('now','-24 hours')
func (r *OrderRepository) ListByUID(uid string) ([]model.Order, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	deleteQuery := `
		DELETE FROM orders
		WHERE uid = ?
		AND (status = 'Pending Verification' OR status = 'pending_payment')
		AND created_at < datetime('now', '-24 hours')
	`
	if _, err := tx.Exec(deleteQuery, uid); err != nil {
		return nil, err
	}

	orders := []model.Order{}
	selectQuery := `SELECT * FROM orders WHERE uid = ? ORDER BY created_at DESC`
	if err := tx.Select(&orders, selectQuery, uid); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetAll 获取所有订单（管理面板用），按创建时间倒序
func (r *OrderRepository) GetAll() ([]model.Order, error) {
	orders := []model.Order{}
	query := `SELECT * FROM orders ORDER BY created_at DESC`
	err := r.db.Select(&orders, query)
	return orders, err
}

// Update 更新订单的状态、金额与交易号
// 订单不存在时不报错，影响行数为0；无版本检查，后写覆盖先写
func (r *OrderRepository) Update(orderRef, status, totalAmount, transactionID string) error {
	query := `
		UPDATE orders
		SET status = ?, total_amount = ?, transaction_id = ?
		WHERE order_ref = ?
	`
	_, err := r.db.Exec(query, status, totalAmount, transactionID, orderRef)
	return err
}

// Delete 根据订单号删除订单，订单不存在时为空操作
func (r *OrderRepository) Delete(orderRef string) error {
	query := `DELETE FROM orders WHERE order_ref = ?`
	_, err := r.db.Exec(query, orderRef)
	return err
}
