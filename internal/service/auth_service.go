package service

import (
	"fmt"

	"luxedoll/internal/model"
	"luxedoll/internal/repository"
	"luxedoll/pkg/firebase"
	"luxedoll/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"k8s.io/apimachinery/pkg/util/rand"
)

// 未设置昵称的用户在站内的默认称呼
const defaultDisplayName = "Collector"

// AuthService 认证服务
type AuthService struct {
	verifier  firebase.Verifier
	adminRepo *repository.AdminRepository
	logger    *logger.Logger
}

// NewAuthService 创建认证服务
func NewAuthService(verifier firebase.Verifier, adminRepo *repository.AdminRepository, logger *logger.Logger) *AuthService {
	return &AuthService{
		verifier:  verifier,
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// Login 验证身份令牌并返回用户信息
func (s *AuthService) Login(idToken string) (*firebase.UserInfo, error) {
	info, err := s.verifier.VerifyIDToken(idToken)
	if err != nil {
		return nil, err
	}
	if info.Name == "" {
		info.Name = defaultDisplayName
	}
	return info, nil
}

// VerifyAdmin 校验管理员用户名与密码
func (s *AuthService) VerifyAdmin(username, password string) (bool, error) {
	admin, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		return false, fmt.Errorf("查询管理员账号失败: %w", err)
	}
	if admin == nil {
		return false, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return false, nil
	}
	return true, nil
}

// EnsureAdmin 确保初始管理员账号存在
// 未配置密码时生成一个随机密码并在日志中输出一次
func (s *AuthService) EnsureAdmin(username, password string) error {
	existing, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		return fmt.Errorf("查询管理员账号失败: %w", err)
	}
	if existing != nil {
		return nil
	}

	if password == "" {
		password = rand.String(16)
		s.logger.Warn("未配置管理员密码，已生成随机初始密码，请尽快修改",
			"username", username, "password", password)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("生成密码哈希失败: %w", err)
	}

	return s.adminRepo.Create(&model.Admin{
		Username:     username,
		PasswordHash: string(hash),
	})
}
