package repository

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/miniblog/internal/model"
)

func TestReactionUpsertInsertsOnce(t *testing.T) {
    db := setupTestDB(t)
    repo := NewReactionRepository(db)
    ctx := context.Background()

    seedUser(t, db, "u1", "alice")
    seedPost(t, db, "p1", "t", "b", "u1", time.Now())

    require.NoError(t, repo.Upsert(ctx, "p1", "u1", true))
    // 同极性重复表态是幂等 no-op
    require.NoError(t, repo.Upsert(ctx, "p1", "u1", true))

    var rows []model.Reaction
    require.NoError(t, db.Find(&rows).Error)
    require.Len(t, rows, 1)
    assert.True(t, rows[0].IsLike)
}

func TestReactionUpsertToggles(t *testing.T) {
    db := setupTestDB(t)
    repo := NewReactionRepository(db)
    ctx := context.Background()

    seedUser(t, db, "u1", "alice")
    seedPost(t, db, "p1", "t", "b", "u1", time.Now())

    require.NoError(t, repo.Upsert(ctx, "p1", "u1", true))
    require.NoError(t, repo.Upsert(ctx, "p1", "u1", false))

    var rows []model.Reaction
    require.NoError(t, db.Find(&rows).Error)
    require.Len(t, rows, 1)
    assert.False(t, rows[0].IsLike)

    likes, err := repo.Count(ctx, "p1", true)
    require.NoError(t, err)
    dislikes, err := repo.Count(ctx, "p1", false)
    require.NoError(t, err)
    assert.EqualValues(t, 0, likes)
    assert.EqualValues(t, 1, dislikes)
}

func TestReactionCountByPolarity(t *testing.T) {
    db := setupTestDB(t)
    repo := NewReactionRepository(db)
    ctx := context.Background()

    seedUser(t, db, "u1", "alice")
    seedUser(t, db, "u2", "bob")
    seedUser(t, db, "u3", "carol")
    seedPost(t, db, "p1", "t", "b", "u1", time.Now())

    require.NoError(t, repo.Upsert(ctx, "p1", "u1", true))
    require.NoError(t, repo.Upsert(ctx, "p1", "u2", true))
    require.NoError(t, repo.Upsert(ctx, "p1", "u3", false))

    likes, err := repo.Count(ctx, "p1", true)
    require.NoError(t, err)
    dislikes, err := repo.Count(ctx, "p1", false)
    require.NoError(t, err)
    assert.EqualValues(t, 2, likes)
    assert.EqualValues(t, 1, dislikes)
    // 每个用户至多一条，总数等于表态人数
    assert.EqualValues(t, 3, likes+dislikes)

    // 没有表态的文章计数为 0
    none, err := repo.Count(ctx, "p-none", true)
    require.NoError(t, err)
    assert.EqualValues(t, 0, none)
}

func TestReactionUniquePairEnforcedByIndex(t *testing.T) {
    db := setupTestDB(t)
    ctx := context.Background()

    seedUser(t, db, "u1", "alice")
    seedPost(t, db, "p1", "t", "b", "u1", time.Now())

    first := model.Reaction{ID: "r1", PostID: "p1", UserID: "u1", IsLike: true}
    require.NoError(t, db.WithContext(ctx).Create(&first).Error)

    // 绕过仓储直接插第二条同 (post, user)，应被唯一索引拒绝
    dup := model.Reaction{ID: "r2", PostID: "p1", UserID: "u1", IsLike: false}
    assert.Error(t, db.WithContext(ctx).Create(&dup).Error)
}
