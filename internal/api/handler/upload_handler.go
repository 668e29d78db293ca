package handler

import (
	"net/http"

	"luxedoll/internal/constants"
	"luxedoll/internal/service"
	"luxedoll/internal/session"
	"luxedoll/pkg/logger"

	"github.com/gin-gonic/gin"
)

// UploadHandler 支付凭证上传处理器
type UploadHandler struct {
	uploadService *service.UploadService
	logger        *logger.Logger
}

// NewUploadHandler 创建支付凭证上传处理器
func NewUploadHandler(uploadService *service.UploadService, logger *logger.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		logger:        logger,
	}
}

// Upload 上传支付凭证
// 仅接受png/jpg/jpeg/pdf，每次请求一个文件
func (h *UploadHandler) Upload(c *gin.Context) {
	uid := c.GetString(session.CtxUID)

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrNoFilePart})
		return
	}

	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrNoSelectedFile})
		return
	}

	if !service.AllowedFile(file.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrFileTypeNotAllowed})
		return
	}

	url, filename, err := h.uploadService.Save(uid, file)
	if err != nil {
		h.logger.Error("保存支付凭证失败", "uid", uid, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUploadFailed})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"url":      url,
		"filename": filename,
	})
}
