package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"luxedoll/pkg/logger"

	"github.com/google/uuid"
)

// 允许上传的支付凭证格式
var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"pdf":  true,
}

// 文件名中允许的字符之外全部剔除
var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// UploadService 支付凭证上传服务
type UploadService struct {
	dir          string
	publicPrefix string
	logger       *logger.Logger
}

// NewUploadService 创建支付凭证上传服务
func NewUploadService(dir, publicPrefix string, logger *logger.Logger) *UploadService {
	return &UploadService{
		dir:          dir,
		publicPrefix: publicPrefix,
		logger:       logger,
	}
}

// AllowedFile 判断文件扩展名是否在允许列表中（不区分大小写）
func AllowedFile(filename string) bool {
	ext := fileExt(filename)
	return ext != "" && allowedExtensions[ext]
}

// SanitizeFilename 清理文件名中的路径与特殊字符
func SanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filepath.Base(filename), "")
}

// Save 保存上传的支付凭证
// 生成唯一文件名 proof_{uid}_{时间戳}_{8位随机hex}.{扩展名}，
// 返回对外访问URL与生成的文件名
func (s *UploadService) Save(uid string, file *multipart.FileHeader) (string, string, error) {
	ext := fileExt(file.Filename)
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	filename := SanitizeFilename(fmt.Sprintf("proof_%s_%d_%s.%s", uid, time.Now().Unix(), suffix, ext))

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("打开上传文件失败: %w", err)
	}
	defer src.Close()

	dstPath := filepath.Join(s.dir, filename)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", "", fmt.Errorf("创建凭证文件失败: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("写入凭证文件失败: %w", err)
	}

	s.logger.Info("保存支付凭证", "uid", uid, "filename", filename)
	return s.publicPrefix + "/" + filename, filename, nil
}

// fileExt 返回小写的文件扩展名，不含点号
func fileExt(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}
