package handler

import (
    "errors"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/miniblog/internal/api/middleware"
    "github.com/d60-Lab/miniblog/internal/service"
    "github.com/d60-Lab/miniblog/pkg/response"
)

type postRequest struct {
    Title string `json:"title"`
    Body  string `json:"body"`
}

// ListPosts 文章列表，最新在前
// @Summary 文章列表
// @Tags 文章
// @Produce json
// @Success 200 {object} response.Response{data=[]service.PostSummary}
// @Router /api/v1/posts [get]
func (h *Handler) ListPosts(c *gin.Context) {
    posts, err := h.blogSvc.ListPosts(c.Request.Context())
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, posts)
}

// GetPost 单篇详情（含点赞/点踩计数）
// @Summary 文章详情
// @Tags 文章
// @Param id path string true "文章ID"
// @Produce json
// @Success 200 {object} response.Response{data=service.PostDetail}
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{id} [get]
func (h *Handler) GetPost(c *gin.Context) {
    detail, err := h.blogSvc.GetPost(c.Request.Context(), c.Param("id"))
    if err != nil {
        h.writeBlogError(c, err)
        return
    }
    response.Success(c, detail)
}

// CreatePost 新建文章
// @Summary 新建文章
// @Tags 文章
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body postRequest true "文章内容"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
    var req postRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    id, err := h.blogSvc.CreatePost(c.Request.Context(), middleware.UserFrom(c), req.Title, req.Body)
    if err != nil {
        h.writeBlogError(c, err)
        return
    }
    response.Success(c, gin.H{"id": id})
}

// UpdatePost 修改文章，仅作者可操作
// @Summary 修改文章
// @Tags 文章
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "文章ID"
// @Param request body postRequest true "文章内容"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{id} [put]
func (h *Handler) UpdatePost(c *gin.Context) {
    var req postRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    err := h.blogSvc.UpdatePost(c.Request.Context(), middleware.UserFrom(c), c.Param("id"), req.Title, req.Body)
    if err != nil {
        h.writeBlogError(c, err)
        return
    }
    response.Success(c, nil)
}

// DeletePost 删除文章，仅作者可操作
// @Summary 删除文章
// @Tags 文章
// @Produce json
// @Security BearerAuth
// @Param id path string true "文章ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{id} [delete]
func (h *Handler) DeletePost(c *gin.Context) {
    err := h.blogSvc.DeletePost(c.Request.Context(), middleware.UserFrom(c), c.Param("id"))
    if err != nil {
        h.writeBlogError(c, err)
        return
    }
    response.Success(c, nil)
}

// Like 点赞
// @Summary 点赞
// @Tags 文章
// @Produce json
// @Security BearerAuth
// @Param id path string true "文章ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{id}/like [post]
func (h *Handler) Like(c *gin.Context) {
    h.react(c, true)
}

// Dislike 点踩
// @Summary 点踩
// @Tags 文章
// @Produce json
// @Security BearerAuth
// @Param id path string true "文章ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{id}/dislike [post]
func (h *Handler) Dislike(c *gin.Context) {
    h.react(c, false)
}

func (h *Handler) react(c *gin.Context, isLike bool) {
    err := h.blogSvc.React(c.Request.Context(), middleware.UserFrom(c), c.Param("id"), isLike)
    if err != nil {
        h.writeBlogError(c, err)
        return
    }
    response.Success(c, nil)
}

// writeBlogError 把服务层错误翻译成 HTTP 状态码
func (h *Handler) writeBlogError(c *gin.Context, err error) {
    switch {
    case errors.Is(err, service.ErrPostNotFound):
        response.NotFound(c, err.Error())
    case errors.Is(err, service.ErrNotAuthor):
        response.Forbidden(c, err.Error())
    case errors.Is(err, service.ErrTitleRequired):
        response.BadRequest(c, err.Error())
    case errors.Is(err, service.ErrUnauthenticated):
        response.Unauthorized(c, err.Error())
    default:
        response.InternalError(c, err)
    }
}
