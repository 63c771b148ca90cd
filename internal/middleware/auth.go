package middleware

import (
	"skill_manager_backend/internal/model"
	"skill_manager_backend/internal/util"
	"skill_manager_backend/pkg/logger"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware 校验 Bearer 令牌并把 Claims 写入上下文
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || tokenString == "" {
			util.Unauthorized(c)
			return
		}

		claims, err := util.ParseJWT(tokenString, secret)
		if err != nil {
			logger.Log.Debug("JWT解析错误", zap.String("request_id", c.GetString(util.RequestIDKey)), zap.Error(err))
			util.Unauthorized(c)
			return
		}

		c.Set(util.ClaimsKey, claims)
		c.Next()
	}
}

func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetClaimsFromContext(c)
		if claims == nil {
			util.Unauthorized(c)
			return
		}

		if !slices.Contains(roles, claims.Role) {
			logger.Log.Info("角色验证失败", zap.String("subject", claims.Subject), zap.String("role", string(claims.Role)))
			util.Forbidden(c)
			return
		}
		c.Next()
	}
}

// AdminOnly 未配置 JWT Secret 时管理接口不鉴权
func AdminOnly(secret string) []gin.HandlerFunc {
	if secret == "" {
		return nil
	}
	return []gin.HandlerFunc{AuthMiddleware(secret), RoleMiddleware(model.Admin)}
}
