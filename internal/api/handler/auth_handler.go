package handler

import (
    "errors"
    "strings"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/miniblog/internal/service"
    "github.com/d60-Lab/miniblog/pkg/response"
)

type registerRequest struct {
    Username string `json:"username" binding:"required,min=2,max=64"`
    Email    string `json:"email" binding:"required,email"`
    Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
    Username string `json:"username" binding:"required"`
    Password string `json:"password" binding:"required"`
}

// Register 注册用户
// @Summary 注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body registerRequest true "注册信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
    var req registerRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    id, err := h.authSvc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
    if err != nil {
        if errors.Is(err, service.ErrUserExists) {
            response.Conflict(c, err.Error())
            return
        }
        response.InternalError(c, err)
        return
    }
    response.Created(c, gin.H{"id": id})
}

// Login 登录换取 JWT
// @Summary 登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录信息"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
    var req loginRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    token, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
    if err != nil {
        if errors.Is(err, service.ErrInvalidCredentials) {
            response.Unauthorized(c, err.Error())
            return
        }
        response.InternalError(c, err)
        return
    }
    response.Success(c, gin.H{"token": token})
}

// Logout 注销当前 token
// @Summary 注销
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
    raw := c.GetHeader("Authorization")
    parts := strings.SplitN(raw, " ", 2)
    if len(parts) != 2 {
        response.Unauthorized(c, service.ErrInvalidToken.Error())
        return
    }
    if err := h.authSvc.Logout(c.Request.Context(), strings.TrimSpace(parts[1])); err != nil {
        response.Unauthorized(c, err.Error())
        return
    }
    response.Success(c, nil)
}
