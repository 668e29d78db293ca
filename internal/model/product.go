package model

// Product 商品模型
// meta_json是首页列表用的轻量数据，detail_json是详情页的完整数据，
// 两个JSON列的内部结构由写入方决定，数据库不做约束
type Product struct {
	ID           string  `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	Price        float64 `db:"price" json:"price"`
	URL          string  `db:"url" json:"url"`
	OptionsCount int     `db:"options_count" json:"options_count"`
	Meta         JSONMap `db:"meta_json" json:"meta_json"`
	Detail       JSONMap `db:"detail_json" json:"detail_json"`
}
