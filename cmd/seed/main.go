package main

import (
    "context"
    "fmt"

    "github.com/d60-Lab/miniblog/config"
    "github.com/d60-Lab/miniblog/internal/auth"
    "github.com/d60-Lab/miniblog/internal/repository"
    "github.com/d60-Lab/miniblog/internal/service"
    "github.com/d60-Lab/miniblog/pkg/database"
)

func must[T any](v T, err error) T {
    if err != nil {
        panic(err)
    }
    return v
}

func mustDo(err error) {
    if err != nil {
        panic(err)
    }
}

// 本地演示数据：两个用户、几篇文章、互相点赞/点踩
func main() {
    cfg := must(config.Load())
    db := must(database.InitDB(cfg))

    userRepo := repository.NewUserRepository(db)
    postRepo := repository.NewPostRepository(db)
    reactRepo := repository.NewReactionRepository(db)
    authSvc := service.NewAuthService(userRepo, auth.NewMemoryTokenStore(), cfg.JWT.Secret, cfg.JWT.TTL)
    blogSvc := service.NewBlogService(postRepo, reactRepo)

    ctx := context.Background()

    aliceID := must(authSvc.Register(ctx, "alice", "alice@example.com", "secret123"))
    bobID := must(authSvc.Register(ctx, "bob", "bob@example.com", "secret123"))
    alice := must(userRepo.GetByID(ctx, aliceID))
    bob := must(userRepo.GetByID(ctx, bobID))

    first := must(blogSvc.CreatePost(ctx, alice, "Hello, world", "The very first post on this blog. Nothing fancy yet, just making sure everything works end to end."))
    second := must(blogSvc.CreatePost(ctx, bob, "On reading lists", "Everyone keeps a reading list and nobody ever finishes one. Mine currently has forty-two entries."))
    must(blogSvc.CreatePost(ctx, alice, "Short one", "Brevity."))

    mustDo(blogSvc.React(ctx, bob, first, true))
    mustDo(blogSvc.React(ctx, alice, second, true))
    mustDo(blogSvc.React(ctx, alice, second, false)) // 改主意了

    total := must(postRepo.Count(ctx))
    fmt.Printf("seeded %d posts for users alice/bob (password secret123)\n", total)
}
