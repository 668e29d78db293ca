package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"luxedoll/internal/constants"
	"luxedoll/internal/service"
	"luxedoll/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ProductHandler 商品处理器
type ProductHandler struct {
	productService *service.ProductService
	logger         *logger.Logger
}

// NewProductHandler 创建商品处理器
func NewProductHandler(productService *service.ProductService, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// GetProducts 商品列表检索
// 支持q（名称子串搜索）、sort（排序方式）、page/limit（分页），
// 分页参数解析失败时静默回落到默认值
func (h *ProductHandler) GetProducts(c *gin.Context) {
	search := strings.TrimSpace(c.Query("q"))
	sortMode := c.Query("sort")

	page := service.DefaultPage
	limit := service.DefaultPageSize

	if pageStr := c.Query("page"); pageStr != "" {
		if pageNum, err := strconv.Atoi(pageStr); err == nil {
			page = pageNum
		}
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if limitNum, err := strconv.Atoi(limitStr); err == nil {
			limit = limitNum
		}
	}

	result, err := h.productService.List(search, sortMode, page, limit)
	if err != nil {
		h.logger.Error("检索商品列表失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    result.Total,
		"page":     result.Page,
		"limit":    result.Limit,
		"count":    result.Count,
		"products": result.Products,
	})
}

// GetProduct 商品详情
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	detail, err := h.productService.GetDetail(id)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrProductNotFound})
		return
	}
	if err != nil {
		h.logger.Error("获取商品详情失败", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}
