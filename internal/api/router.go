package api

import (
    sentrygin "github.com/getsentry/sentry-go/gin"
    "github.com/gin-contrib/gzip"
    "github.com/gin-gonic/gin"
    swaggerFiles "github.com/swaggo/files"
    ginSwagger "github.com/swaggo/gin-swagger"
    "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
    "golang.org/x/time/rate"

    "github.com/d60-Lab/miniblog/config"
    "github.com/d60-Lab/miniblog/internal/api/handler"
    "github.com/d60-Lab/miniblog/internal/api/middleware"
    "github.com/d60-Lab/miniblog/internal/service"
)

// SetupRouter 组装中间件与路由
func SetupRouter(cfg *config.Config, h *handler.Handler, authSvc service.AuthService) *gin.Engine {
    if cfg.Server.Mode != "" {
        gin.SetMode(cfg.Server.Mode)
    }

    r := gin.New()
    r.Use(gin.Recovery())
    if cfg.Sentry.DSN != "" {
        r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
    }
    r.Use(otelgin.Middleware("miniblog"))
    r.Use(gzip.Gzip(gzip.DefaultCompression))
    r.Use(middleware.Auth(authSvc))

    r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
    r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

    v1 := r.Group("/api/v1")
    {
        authGroup := v1.Group("/auth")
        {
            authGroup.POST("/register", h.Register)
            // 登录按 IP 限频，防止口令爆破
            authGroup.POST("/login", middleware.LoginRateLimit(rate.Limit(1), 5), h.Login)
            authGroup.POST("/logout", middleware.RequireAuth(), h.Logout)
        }

        posts := v1.Group("/posts")
        {
            posts.GET("", h.ListPosts)
            posts.GET("/:id", h.GetPost)
            posts.POST("", middleware.RequireAuth(), h.CreatePost)
            posts.PUT("/:id", middleware.RequireAuth(), h.UpdatePost)
            posts.DELETE("/:id", middleware.RequireAuth(), h.DeletePost)
            posts.POST("/:id/like", middleware.RequireAuth(), h.Like)
            posts.POST("/:id/dislike", middleware.RequireAuth(), h.Dislike)
        }
    }
    return r
}
