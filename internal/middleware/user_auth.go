package middleware

import (
	"net/http"

	"luxedoll/internal/constants"
	"luxedoll/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// UserAuth 用户会话认证中间件
// 从签名Cookie中读取登录态，将身份信息写入请求上下文供后续处理使用
func UserAuth(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := store.Get(c.Request, session.Name)
		if err != nil {
			// 签名不匹配等情况按未登录处理
			c.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrUnauthorized})
			c.Abort()
			return
		}

		uid, _ := sess.Values[session.KeyUID].(string)
		if uid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrUnauthorized})
			c.Abort()
			return
		}

		email, _ := sess.Values[session.KeyEmail].(string)
		name, _ := sess.Values[session.KeyName].(string)

		c.Set(session.CtxUID, uid)
		c.Set(session.CtxEmail, email)
		c.Set(session.CtxName, name)
		c.Next()
	}
}
