package repository

import (
	"fmt"
	"testing"

	"luxedoll/internal/model"
	"luxedoll/pkg/database"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// newTestDB 创建带完整表结构的内存数据库
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	// 内存数据库在多连接下互相独立，必须限制为单连接
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.InitSchema(db))
	return db
}

// seedProducts 写入n个测试商品，名称Doll #i，价格为i*10
func seedProducts(t *testing.T, repo *ProductRepository, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		err := repo.Create(&model.Product{
			ID:           fmt.Sprintf("doll-%d", i),
			Name:         fmt.Sprintf("Doll #%d", i),
			Price:        float64(i * 10),
			URL:          fmt.Sprintf("https://example.com/doll-%d", i),
			OptionsCount: i,
			Meta:         model.JSONMap{"id": fmt.Sprintf("doll-%d", i), "name": fmt.Sprintf("Doll #%d", i)},
			Detail:       model.JSONMap{"id": fmt.Sprintf("doll-%d", i), "description": "collectible"},
		})
		require.NoError(t, err)
	}
}
