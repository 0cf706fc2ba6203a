package middleware

import (
    "strings"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/miniblog/internal/model"
    "github.com/d60-Lab/miniblog/internal/service"
    "github.com/d60-Lab/miniblog/pkg/response"
)

const userKey = "currentUser"

// Auth 解析 Authorization: Bearer <token>，成功则把用户放进请求上下文。
// 不带 token 的请求直接放行（匿名可读）
func Auth(authSvc service.AuthService) gin.HandlerFunc {
    return func(c *gin.Context) {
        raw := bearerToken(c)
        if raw == "" {
            c.Next()
            return
        }
        user, err := authSvc.Authenticate(c.Request.Context(), raw)
        if err != nil {
            response.Unauthorized(c, err.Error())
            return
        }
        c.Set(userKey, user)
        c.Next()
    }
}

// RequireAuth 未登录直接 401；登录校验本身在 Auth 中完成
func RequireAuth() gin.HandlerFunc {
    return func(c *gin.Context) {
        if UserFrom(c) == nil {
            response.Unauthorized(c, service.ErrUnauthenticated.Error())
            return
        }
        c.Next()
    }
}

// UserFrom 取当前登录用户；匿名请求返回 nil
func UserFrom(c *gin.Context) *model.User {
    v, ok := c.Get(userKey)
    if !ok {
        return nil
    }
    user, _ := v.(*model.User)
    return user
}

func bearerToken(c *gin.Context) string {
    h := c.GetHeader("Authorization")
    if h == "" {
        return ""
    }
    parts := strings.SplitN(h, " ", 2)
    if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
        return ""
    }
    return strings.TrimSpace(parts[1])
}
