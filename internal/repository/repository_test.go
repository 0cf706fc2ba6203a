package repository

import (
    "testing"
    "time"

    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/miniblog/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
    t.Helper()
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
    require.NoError(t, err)
    require.NoError(t, db.AutoMigrate(&model.User{}, &model.Post{}, &model.Reaction{}))
    return db
}

func seedUser(t *testing.T, db *gorm.DB, id, username string) {
    t.Helper()
    u := model.User{ID: id, Username: username, Email: username + "@example.com", Password: "x"}
    require.NoError(t, db.Create(&u).Error)
}

func seedPost(t *testing.T, db *gorm.DB, id, title, body, authorID string, created time.Time) {
    t.Helper()
    p := model.Post{ID: id, Title: title, Body: body, AuthorID: authorID, CreatedAt: created}
    require.NoError(t, db.Create(&p).Error)
}
