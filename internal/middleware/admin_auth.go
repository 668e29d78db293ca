package middleware

import (
	"net/http"

	"luxedoll/internal/constants"
	"luxedoll/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// AdminAuth 管理员认证中间件
// 管理员能力是会话上独立的标记，与用户登录态互不依赖
func AdminAuth(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := store.Get(c.Request, session.Name)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrUnauthorized})
			c.Abort()
			return
		}

		isAdmin, _ := sess.Values[session.KeyIsAdmin].(bool)
		if !isAdmin {
			c.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrUnauthorized})
			c.Abort()
			return
		}

		c.Next()
	}
}
