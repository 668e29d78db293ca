package repository

import (
	"testing"

	"luxedoll/internal/model"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// insertOrderAged 按指定时间偏移写入订单，模拟历史数据
func insertOrderAged(t *testing.T, db *sqlx.DB, ref, uid, status, age string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO orders (order_ref, uid, email, total_amount, status, created_at, items_json, shipping_json)
		 VALUES (?, ?, ?, ?, ?, datetime('now', ?), '[]', '{}')`,
		ref, uid, "user@example.com", "100", status, age,
	)
	require.NoError(t, err)
}

func TestOrderRepository_CreateAndListRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	txID := "TX-9"
	items := model.JSONArray{
		map[string]interface{}{"id": "doll-1", "qty": float64(2), "price": float64(120.5)},
	}
	shipping := model.JSONMap{
		"street": "Puppenallee 7",
		"city":   "Berlin",
		"zip":    "10115",
	}

	err := repo.Create(&model.Order{
		OrderRef:      "R1",
		UID:           "user-1",
		Email:         "collector@example.com",
		TotalAmount:   "241",
		Status:        model.OrderStatusPendingPayment,
		Items:         items,
		Shipping:      shipping,
		TransactionID: &txID,
	})
	require.NoError(t, err)

	orders, err := repo.ListByUID("user-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	got := orders[0]
	assert.Equal(t, "R1", got.OrderRef)
	assert.Equal(t, "collector@example.com", got.Email)
	assert.Equal(t, "241", got.TotalAmount)
	assert.Equal(t, model.OrderStatusPendingPayment, got.Status)
	assert.Equal(t, items, got.Items)
	assert.Equal(t, shipping, got.Shipping)
	require.NotNil(t, got.TransactionID)
	assert.Equal(t, "TX-9", *got.TransactionID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestOrderRepository_Create_DuplicateRef(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	order := &model.Order{OrderRef: "R1", UID: "user-1", Status: model.OrderStatusPendingPayment}
	require.NoError(t, repo.Create(order))
	assert.Error(t, repo.Create(order))
}

func TestOrderRepository_ListByUID_ExpirySweep(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	// 25小时前的未支付订单会被清理，1小时前的保留
	insertOrderAged(t, db, "old-pending", "user-1", model.OrderStatusPendingPayment, "-25 hours")
	insertOrderAged(t, db, "old-verify", "user-1", model.OrderStatusPendingVerification, "-25 hours")
	insertOrderAged(t, db, "fresh-pending", "user-1", model.OrderStatusPendingPayment, "-1 hours")
	// 已支付的订单不受24小时限制
	insertOrderAged(t, db, "old-paid", "user-1", "Paid", "-25 hours")
	// 其他用户的过期订单不能被顺带清理
	insertOrderAged(t, db, "other-old", "user-2", model.OrderStatusPendingPayment, "-25 hours")

	orders, err := repo.ListByUID("user-1")
	require.NoError(t, err)

	refs := make([]string, 0, len(orders))
	for _, o := range orders {
		refs = append(refs, o.OrderRef)
	}
	assert.ElementsMatch(t, []string{"fresh-pending", "old-paid"}, refs)

	// 另一个用户的订单仍然在
	others, err := repo.ListByUID("user-2")
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, "other-old", others[0].OrderRef)
}

func TestOrderRepository_ListByUID_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	insertOrderAged(t, db, "oldest", "user-1", "Paid", "-3 hours")
	insertOrderAged(t, db, "middle", "user-1", "Paid", "-2 hours")
	insertOrderAged(t, db, "newest", "user-1", "Paid", "-1 hours")

	orders, err := repo.ListByUID("user-1")
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "newest", orders[0].OrderRef)
	assert.Equal(t, "oldest", orders[2].OrderRef)
}

func TestOrderRepository_ListByUID_Empty(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	orders, err := repo.ListByUID("nobody")
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestOrderRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	insertOrderAged(t, db, "R1", "user-1", model.OrderStatusPendingPayment, "-1 hours")

	require.NoError(t, repo.Update("R1", "Paid", "300", "TX-1"))

	orders, err := repo.ListByUID("user-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Paid", orders[0].Status)
	assert.Equal(t, "300", orders[0].TotalAmount)
	require.NotNil(t, orders[0].TransactionID)
	assert.Equal(t, "TX-1", *orders[0].TransactionID)

	// 不存在的订单号更新不报错，影响行数为0
	require.NoError(t, repo.Update("missing", "Paid", "1", ""))
}

func TestOrderRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	insertOrderAged(t, db, "R1", "user-1", "Paid", "-1 hours")

	require.NoError(t, repo.Delete("R1"))

	orders, err := repo.ListByUID("user-1")
	require.NoError(t, err)
	assert.Empty(t, orders)

	// 删除不存在的订单为空操作
	require.NoError(t, repo.Delete("R1"))
}

func TestOrderRepository_GetAll_MalformedBlob(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	_, err := db.Exec(
		`INSERT INTO orders (order_ref, uid, total_amount, status, items_json, shipping_json)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		"broken", "user-1", "10", "Paid", "[broken", "{broken",
	)
	require.NoError(t, err)

	orders, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, model.JSONArray{}, orders[0].Items)
	assert.Equal(t, model.JSONMap{}, orders[0].Shipping)
}
