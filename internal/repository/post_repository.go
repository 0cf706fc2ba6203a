package repository

import (
    "context"
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/miniblog/internal/model"
)

type PostRepository interface {
    // ListWithAuthor 全量文章列表（含作者用户名），created_at 倒序
    ListWithAuthor(ctx context.Context) ([]*model.PostWithAuthor, error)
    // GetWithAuthor 按 id 查单篇（含作者用户名）；不存在返回 gorm.ErrRecordNotFound
    GetWithAuthor(ctx context.Context, id string) (*model.PostWithAuthor, error)
    Create(ctx context.Context, title, body, authorID string) (string, error)
    // Update 仅更新 title/body；归属校验由上层负责
    Update(ctx context.Context, id, title, body string) error
    Delete(ctx context.Context, id string) error
    Exists(ctx context.Context, id string) (bool, error)
    Count(ctx context.Context) (int64, error)
}

type postRepository struct{ db *gorm.DB }

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) ListWithAuthor(ctx context.Context) ([]*model.PostWithAuthor, error) {
    var res []*model.PostWithAuthor
    err := r.db.WithContext(ctx).
        Table("posts").
        Select("posts.id", "posts.title", "posts.body", "posts.author_id", "posts.created_at", "users.username").
        Joins("JOIN users ON posts.author_id = users.id").
        Order("posts.created_at DESC").
        Scan(&res).Error
    return res, err
}

func (r *postRepository) GetWithAuthor(ctx context.Context, id string) (*model.PostWithAuthor, error) {
    var p model.PostWithAuthor
    err := r.db.WithContext(ctx).
        Table("posts").
        Select("posts.id", "posts.title", "posts.body", "posts.author_id", "posts.created_at", "users.username").
        Joins("JOIN users ON posts.author_id = users.id").
        Where("posts.id = ?", id).
        Take(&p).Error
    if err != nil {
        return nil, err
    }
    return &p, nil
}

func (r *postRepository) Create(ctx context.Context, title, body, authorID string) (string, error) {
    p := &model.Post{
        ID:        uuid.New().String(),
        Title:     title,
        Body:      body,
        AuthorID:  authorID,
        CreatedAt: time.Now(),
    }
    if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
        return "", err
    }
    return p.ID, nil
}

func (r *postRepository) Update(ctx context.Context, id, title, body string) error {
    return r.db.WithContext(ctx).
        Model(&model.Post{}).
        Where("id = ?", id).
        Updates(map[string]any{"title": title, "body": body}).Error
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
    return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{}).Error
}

func (r *postRepository) Exists(ctx context.Context, id string) (bool, error) {
    var cnt int64
    if err := r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).Model(&model.Post{}).Count(&cnt).Error
    return cnt, err
}
