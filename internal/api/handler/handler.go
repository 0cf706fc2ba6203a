package handler

import "github.com/d60-Lab/miniblog/internal/service"

// Handler 聚合各用例服务，供路由注册
type Handler struct {
    blogSvc service.BlogService
    authSvc service.AuthService
}

func New(blogSvc service.BlogService, authSvc service.AuthService) *Handler {
    return &Handler{blogSvc: blogSvc, authSvc: authSvc}
}
