package repository

import (
	"luxedoll/internal/model"

	"github.com/jmoiron/sqlx"
)

// ProductRepository 商品存储库
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository 创建商品存储库
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ListQuery 商品列表查询条件
type ListQuery struct {
	Search string // 按名称子串搜索，空串表示不过滤
	Sort   string // low-to-high / high-to-low / a-z / z-a
	Page   int
	Limit  int
}

// ListMeta 检索商品列表，仅返回meta_json与匹配总数
func (r *ProductRepository) ListMeta(q ListQuery) ([]model.JSONMap, int, error) {
	baseQuery := `SELECT meta_json FROM products`
	countQuery := `SELECT COUNT(*) FROM products`
	var args []interface{}

	// SQLite的LIKE对ASCII默认不区分大小写
	if q.Search != "" {
		where := ` WHERE name LIKE ?`
		baseQuery += where
		countQuery += where
		args = append(args, "%"+q.Search+"%")
	}

	// 先获取匹配总数
	var total int
	if err := r.db.Get(&total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	// 应用排序，未识别的排序方式保持自然顺序
	switch q.Sort {
	case "low-to-high":
		baseQuery += ` ORDER BY price ASC`
	case "high-to-low":
		baseQuery += ` ORDER BY price DESC`
	case "a-z":
		baseQuery += ` ORDER BY name ASC`
	case "z-a":
		baseQuery += ` ORDER BY name DESC`
	}

	// 分页
	baseQuery += ` LIMIT ? OFFSET ?`
	offset := (q.Page - 1) * q.Limit
	args = append(args, q.Limit, offset)

	metas := []model.JSONMap{}
	if err := r.db.Select(&metas, baseQuery, args...); err != nil {
		return nil, 0, err
	}
	return metas, total, nil
}

// GetDetail 获取商品详情数据，商品不存在时返回sql.ErrNoRows
func (r *ProductRepository) GetDetail(id string) (model.JSONMap, error) {
	var detail model.JSONMap
	query := `SELECT detail_json FROM products WHERE id = ?`
	err := r.db.Get(&detail, query, id)
	return detail, err
}

// GetAll 获取所有商品（管理面板用）
func (r *ProductRepository) GetAll() ([]model.Product, error) {
	products := []model.Product{}
	query := `SELECT * FROM products`
	err := r.db.Select(&products, query)
	return products, err
}

// Create 创建商品
func (r *ProductRepository) Create(product *model.Product) error {
	query := `
		INSERT INTO products (id, name, price, url, options_count, meta_json, detail_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(
		query,
		product.ID,
		product.Name,
		product.Price,
		product.URL,
		product.OptionsCount,
		product.Meta,
		product.Detail,
	)
	return err
}

// Update 更新商品基础字段与两个JSON列
// 商品不存在时不报错，影响行数为0
func (r *ProductRepository) Update(id, name string, price float64, url string, meta, detail model.JSONMap) error {
	query := `
		UPDATE products
		SET name = ?, price = ?, url = ?, meta_json = ?, detail_json = ?
		WHERE id = ?
	`
	_, err := r.db.Exec(query, name, price, url, meta, detail, id)
	return err
}
