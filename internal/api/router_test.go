package api

import (
    "bytes"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/miniblog/config"
    "github.com/d60-Lab/miniblog/internal/api/handler"
    "github.com/d60-Lab/miniblog/internal/auth"
    "github.com/d60-Lab/miniblog/internal/model"
    "github.com/d60-Lab/miniblog/internal/repository"
    "github.com/d60-Lab/miniblog/internal/service"
)

type envelope struct {
    Code int             `json:"code"`
    Msg  string          `json:"msg"`
    Data json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T) *gin.Engine {
    t.Helper()
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
    require.NoError(t, err)
    require.NoError(t, db.AutoMigrate(&model.User{}, &model.Post{}, &model.Reaction{}))

    userRepo := repository.NewUserRepository(db)
    authSvc := service.NewAuthService(userRepo, auth.NewMemoryTokenStore(), "test-secret", time.Hour)
    blogSvc := service.NewBlogService(repository.NewPostRepository(db), repository.NewReactionRepository(db))

    cfg := &config.Config{}
    cfg.Server.Mode = gin.TestMode
    return SetupRouter(cfg, handler.New(blogSvc, authSvc), authSvc)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
    t.Helper()
    var buf bytes.Buffer
    if body != nil {
        require.NoError(t, json.NewEncoder(&buf).Encode(body))
    }
    req := httptest.NewRequest(method, path, &buf)
    req.Header.Set("Content-Type", "application/json")
    if token != "" {
        req.Header.Set("Authorization", "Bearer "+token)
    }
    w := httptest.NewRecorder()
    r.ServeHTTP(w, req)

    var env envelope
    if w.Body.Len() > 0 {
        require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
    }
    return w, env
}

func registerAndLogin(t *testing.T, r *gin.Engine, username string) string {
    t.Helper()
    w, _ := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
        "username": username, "email": username + "@example.com", "password": "secret123",
    })
    require.Equal(t, http.StatusCreated, w.Code)

    w, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
        "username": username, "password": "secret123",
    })
    require.Equal(t, http.StatusOK, w.Code)
    var data struct {
        Token string `json:"token"`
    }
    require.NoError(t, json.Unmarshal(env.Data, &data))
    require.NotEmpty(t, data.Token)
    return data.Token
}

func TestHealthz(t *testing.T) {
    r := setupRouter(t)
    w, _ := doJSON(t, r, http.MethodGet, "/healthz", "", nil)
    assert.Equal(t, http.StatusOK, w.Code)
}

func TestPostLifecycleOverHTTP(t *testing.T) {
    r := setupRouter(t)
    aliceToken := registerAndLogin(t, r, "alice")
    bobToken := registerAndLogin(t, r, "bob")

    // 未登录不能发文
    w, _ := doJSON(t, r, http.MethodPost, "/api/v1/posts", "", gin.H{"title": "t", "body": "b"})
    assert.Equal(t, http.StatusUnauthorized, w.Code)

    // 空标题是可恢复的校验错误
    w, _ = doJSON(t, r, http.MethodPost, "/api/v1/posts", aliceToken, gin.H{"title": "", "body": "b"})
    assert.Equal(t, http.StatusBadRequest, w.Code)

    w, env := doJSON(t, r, http.MethodPost, "/api/v1/posts", aliceToken, gin.H{"title": "hello", "body": "world"})
    require.Equal(t, http.StatusOK, w.Code)
    var created struct {
        ID string `json:"id"`
    }
    require.NoError(t, json.Unmarshal(env.Data, &created))
    require.NotEmpty(t, created.ID)

    // 列表匿名可读
    w, env = doJSON(t, r, http.MethodGet, "/api/v1/posts", "", nil)
    require.Equal(t, http.StatusOK, w.Code)
    var list []service.PostSummary
    require.NoError(t, json.Unmarshal(env.Data, &list))
    require.Len(t, list, 1)
    assert.Equal(t, "alice", list[0].Username)

    // 非作者改/删一律 403
    w, _ = doJSON(t, r, http.MethodPut, "/api/v1/posts/"+created.ID, bobToken, gin.H{"title": "x", "body": "y"})
    assert.Equal(t, http.StatusForbidden, w.Code)
    w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/posts/"+created.ID, bobToken, nil)
    assert.Equal(t, http.StatusForbidden, w.Code)

    // bob 点赞后详情计数变化
    w, _ = doJSON(t, r, http.MethodPost, "/api/v1/posts/"+created.ID+"/like", bobToken, nil)
    require.Equal(t, http.StatusOK, w.Code)

    w, env = doJSON(t, r, http.MethodGet, "/api/v1/posts/"+created.ID, "", nil)
    require.Equal(t, http.StatusOK, w.Code)
    var detail service.PostDetail
    require.NoError(t, json.Unmarshal(env.Data, &detail))
    assert.EqualValues(t, 1, detail.Likes)
    assert.EqualValues(t, 0, detail.Dislikes)

    // bob 改点踩：还是一人一票
    w, _ = doJSON(t, r, http.MethodPost, "/api/v1/posts/"+created.ID+"/dislike", bobToken, nil)
    require.Equal(t, http.StatusOK, w.Code)
    w, env = doJSON(t, r, http.MethodGet, "/api/v1/posts/"+created.ID, "", nil)
    require.Equal(t, http.StatusOK, w.Code)
    require.NoError(t, json.Unmarshal(env.Data, &detail))
    assert.EqualValues(t, 0, detail.Likes)
    assert.EqualValues(t, 1, detail.Dislikes)

    // 对不存在的文章表态是 404
    w, _ = doJSON(t, r, http.MethodPost, "/api/v1/posts/missing/like", bobToken, nil)
    assert.Equal(t, http.StatusNotFound, w.Code)

    // 作者删除
    w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/posts/"+created.ID, aliceToken, nil)
    require.Equal(t, http.StatusOK, w.Code)
    w, _ = doJSON(t, r, http.MethodGet, "/api/v1/posts/"+created.ID, "", nil)
    assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogoutInvalidatesToken(t *testing.T) {
    r := setupRouter(t)
    token := registerAndLogin(t, r, "alice")

    w, _ := doJSON(t, r, http.MethodPost, "/api/v1/auth/logout", token, nil)
    require.Equal(t, http.StatusOK, w.Code)

    w, _ = doJSON(t, r, http.MethodPost, "/api/v1/posts", token, gin.H{"title": "t", "body": "b"})
    assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRateLimited(t *testing.T) {
    r := setupRouter(t)

    var last int
    for i := 0; i < 10; i++ {
        w, _ := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
            "username": "nobody", "password": "wrong",
        })
        last = w.Code
    }
    assert.Equal(t, http.StatusTooManyRequests, last)
}
