package handler

import (
	"net/http"

	"luxedoll/internal/constants"
	"luxedoll/internal/service"
	"luxedoll/internal/session"
	"luxedoll/internal/types"
	"luxedoll/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// AuthHandler 用户认证处理器
type AuthHandler struct {
	authService *service.AuthService
	store       sessions.Store
	logger      *logger.Logger
}

// NewAuthHandler 创建用户认证处理器
func NewAuthHandler(authService *service.AuthService, store sessions.Store, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
		logger:      logger,
	}
}

// Login 用户登录
// 验证前端提交的身份令牌，成功后将uid/email/name写入会话
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IDToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrNoToken})
		return
	}

	info, err := h.authService.Login(req.IDToken)
	if err != nil {
		h.logger.Error("身份令牌验证失败", "error", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrInvalidToken})
		return
	}

	sess, _ := h.store.Get(c.Request, session.Name)
	sess.Values[session.KeyUID] = info.UID
	sess.Values[session.KeyEmail] = info.Email
	sess.Values[session.KeyName] = info.Name
	if err := sess.Save(c.Request, c.Writer); err != nil {
		h.logger.Error("保存会话失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout 退出登录
// 仅清除会话中的身份信息，管理员标记不受影响
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, _ := h.store.Get(c.Request, session.Name)
	delete(sess.Values, session.KeyUID)
	delete(sess.Values, session.KeyEmail)
	delete(sess.Values, session.KeyName)
	if err := sess.Save(c.Request, c.Writer); err != nil {
		h.logger.Error("保存会话失败", "error", err)
	}

	c.Redirect(http.StatusFound, "/")
}
