package service

import (
	"luxedoll/internal/model"
	"luxedoll/internal/repository"
	"luxedoll/pkg/logger"
)

// 分页默认值与上限
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ProductService 商品服务
type ProductService struct {
	productRepo *repository.ProductRepository
	logger      *logger.Logger
}

// NewProductService 创建商品服务
func NewProductService(productRepo *repository.ProductRepository, logger *logger.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// ListResult 商品列表查询结果
type ListResult struct {
	Total    int
	Page     int
	Limit    int
	Count    int
	Products []model.JSONMap
}

// List 按搜索词、排序方式分页检索商品
// 非法的page/limit回落到默认值，limit有上限防止单页拉全表
func (s *ProductService) List(search, sort string, page, limit int) (*ListResult, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	metas, total, err := s.productRepo.ListMeta(repository.ListQuery{
		Search: search,
		Sort:   sort,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Total:    total,
		Page:     page,
		Limit:    limit,
		Count:    len(metas),
		Products: metas,
	}, nil
}

// GetDetail 获取商品详情数据
func (s *ProductService) GetDetail(id string) (model.JSONMap, error) {
	return s.productRepo.GetDetail(id)
}

// GetAll 获取所有商品
func (s *ProductService) GetAll() ([]model.Product, error) {
	return s.productRepo.GetAll()
}

// Update 管理员更新商品
func (s *ProductService) Update(id, name string, price float64, url string, meta, detail model.JSONMap) error {
	return s.productRepo.Update(id, name, price, url, meta, detail)
}
