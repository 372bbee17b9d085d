package middlewares

import (
	"strings"

	"buqian/global"
	"buqian/initialize/jwt"
	"buqian/response"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware 基于JWT的认证中间件，token放在Authorization头的Bearer里
func JWTAuthMiddleware() func(c *gin.Context) {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			response.ResponseError(c, response.CodeNeedLogin)
			c.Abort()
			return
		}
		// 按空格分割，格式必须是 Bearer xxx
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			response.ResponseError(c, response.CodeInvalidToken)
			c.Abort()
			return
		}
		mc, err := jwt.ParseToken(parts[1])
		if err != nil {
			response.ResponseError(c, response.CodeInvalidToken)
			c.Abort()
			return
		}
		c.Set(global.CtxUserIDKey, mc.UserId)
		c.Next()
	}
}
