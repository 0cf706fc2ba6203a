package service

import (
    "context"
    "errors"
    "time"

    "gorm.io/gorm"

    "github.com/d60-Lab/miniblog/internal/model"
    "github.com/d60-Lab/miniblog/internal/repository"
    "github.com/d60-Lab/miniblog/pkg/textutil"
)

var (
    ErrPostNotFound    = errors.New("post not found")
    ErrNotAuthor       = errors.New("only the author may modify this post")
    ErrTitleRequired   = errors.New("title is required")
    ErrUnauthenticated = errors.New("login required")
)

// PostSummary 列表项；Excerpt 为截断后的正文摘要
type PostSummary struct {
    ID        string    `json:"id"`
    Title     string    `json:"title"`
    Excerpt   string    `json:"excerpt"`
    AuthorID  string    `json:"authorId"`
    Username  string    `json:"username"`
    CreatedAt time.Time `json:"createdAt"`
}

// PostDetail 单篇详情，附带点赞/点踩计数
type PostDetail struct {
    model.PostWithAuthor
    Likes    int64 `json:"likes"`
    Dislikes int64 `json:"dislikes"`
}

// BlogService 文章用例编排；所有需要登录的用例显式接收当前用户
type BlogService interface {
    ListPosts(ctx context.Context) ([]PostSummary, error)
    CreatePost(ctx context.Context, user *model.User, title, body string) (string, error)
    // GetPostForEdit 按 id 取文章并校验归属；先判存在（ErrPostNotFound），
    // 再判作者（ErrNotAuthor）
    GetPostForEdit(ctx context.Context, user *model.User, id string) (*model.PostWithAuthor, error)
    UpdatePost(ctx context.Context, user *model.User, id, title, body string) error
    DeletePost(ctx context.Context, user *model.User, id string) error
    GetPost(ctx context.Context, id string) (*PostDetail, error)
    React(ctx context.Context, user *model.User, postID string, isLike bool) error
}

type blogService struct {
    postRepo  repository.PostRepository
    reactRepo repository.ReactionRepository
}

func NewBlogService(postRepo repository.PostRepository, reactRepo repository.ReactionRepository) BlogService {
    return &blogService{postRepo: postRepo, reactRepo: reactRepo}
}

func (s *blogService) ListPosts(ctx context.Context) ([]PostSummary, error) {
    posts, err := s.postRepo.ListWithAuthor(ctx)
    if err != nil {
        return nil, err
    }
    res := make([]PostSummary, len(posts))
    for i, p := range posts {
        res[i] = PostSummary{
            ID:        p.ID,
            Title:     p.Title,
            Excerpt:   textutil.Abbreviate(p.Body, textutil.DefaultAbbreviateLen),
            AuthorID:  p.AuthorID,
            Username:  p.Username,
            CreatedAt: p.CreatedAt,
        }
    }
    return res, nil
}

func (s *blogService) CreatePost(ctx context.Context, user *model.User, title, body string) (string, error) {
    if user == nil {
        return "", ErrUnauthenticated
    }
    if title == "" {
        return "", ErrTitleRequired
    }
    return s.postRepo.Create(ctx, title, body, user.ID)
}

func (s *blogService) GetPostForEdit(ctx context.Context, user *model.User, id string) (*model.PostWithAuthor, error) {
    if user == nil {
        return nil, ErrUnauthenticated
    }
    post, err := s.postRepo.GetWithAuthor(ctx, id)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrPostNotFound
        }
        return nil, err
    }
    if post.AuthorID != user.ID {
        return nil, ErrNotAuthor
    }
    return post, nil
}

func (s *blogService) UpdatePost(ctx context.Context, user *model.User, id, title, body string) error {
    if _, err := s.GetPostForEdit(ctx, user, id); err != nil {
        return err
    }
    if title == "" {
        return ErrTitleRequired
    }
    return s.postRepo.Update(ctx, id, title, body)
}

func (s *blogService) DeletePost(ctx context.Context, user *model.User, id string) error {
    if _, err := s.GetPostForEdit(ctx, user, id); err != nil {
        return err
    }
    return s.postRepo.Delete(ctx, id)
}

func (s *blogService) GetPost(ctx context.Context, id string) (*PostDetail, error) {
    post, err := s.postRepo.GetWithAuthor(ctx, id)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrPostNotFound
        }
        return nil, err
    }
    likes, err := s.reactRepo.Count(ctx, id, true)
    if err != nil {
        return nil, err
    }
    dislikes, err := s.reactRepo.Count(ctx, id, false)
    if err != nil {
        return nil, err
    }
    return &PostDetail{PostWithAuthor: *post, Likes: likes, Dislikes: dislikes}, nil
}

func (s *blogService) React(ctx context.Context, user *model.User, postID string, isLike bool) error {
    if user == nil {
        return ErrUnauthenticated
    }
    ok, err := s.postRepo.Exists(ctx, postID)
    if err != nil {
        return err
    }
    if !ok {
        return ErrPostNotFound
    }
    return s.reactRepo.Upsert(ctx, postID, user.ID, isLike)
}
