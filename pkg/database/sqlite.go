package database

import (
	"fmt"

	"luxedoll/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// NewSQLiteConnection 创建一个新的SQLite连接
func NewSQLiteConnection(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	// 构建DSN，busy_timeout避免并发写入时直接报SQLITE_BUSY
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", cfg.Path)

	// 连接数据库
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// SQLite只有单写者，限制为单连接，逐请求串行执行
	db.SetMaxOpenConns(1)

	// 验证连接
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	return db, nil
}

// InitSchema 初始化数据库表结构与索引
func InitSchema(db *sqlx.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS products (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		price         REAL,
		url           TEXT,
		options_count INTEGER,
		meta_json     TEXT,   -- 首页展示用的轻量数据
		detail_json   TEXT    -- 商品详情页的完整数据
	);

	CREATE TABLE IF NOT EXISTS orders (
		order_ref      TEXT PRIMARY KEY,
		uid            TEXT NOT NULL,
		email          TEXT,
		total_amount   TEXT,
		status         TEXT DEFAULT 'pending_payment',
		created_at     TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		items_json     TEXT,   -- 购物车条目
		shipping_json  TEXT,   -- 收货地址
		transaction_id TEXT
	);

	CREATE TABLE IF NOT EXISTS admins (
		username      TEXT PRIMARY KEY,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_products_name ON products(name);
	CREATE INDEX IF NOT EXISTS idx_products_price ON products(price);
	CREATE INDEX IF NOT EXISTS idx_orders_uid ON orders(uid);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("初始化表结构失败: %w", err)
	}
	return nil
}
