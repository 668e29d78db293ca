package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// Name 会话Cookie名称
const Name = "luxedoll_session"

// 会话内保存的键
const (
	KeyUID     = "uid"
	KeyEmail   = "email"
	KeyName    = "name"
	KeyIsAdmin = "is_admin"
)

// 认证中间件写入gin上下文的键
const (
	CtxUID   = "uid"
	CtxEmail = "email"
	CtxName  = "name"
)

// NewStore 创建签名Cookie会话存储
func NewStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}
