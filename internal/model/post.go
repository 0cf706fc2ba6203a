package model

import "time"

// Post 博客文章；author_id 与 created_at 写入后不再变更
type Post struct {
    ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
    Title     string    `json:"title" gorm:"type:varchar(255);not null"`
    Body      string    `json:"body" gorm:"type:text"`
    AuthorID  string    `json:"authorId" gorm:"type:varchar(36);index:idx_post_author;not null"`
    CreatedAt time.Time `json:"createdAt" gorm:"index:idx_post_created"`
}

func (Post) TableName() string { return "posts" }

// PostWithAuthor 列表/详情展示用，附带作者用户名
type PostWithAuthor struct {
    ID        string    `json:"id"`
    Title     string    `json:"title"`
    Body      string    `json:"body"`
    AuthorID  string    `json:"authorId"`
    Username  string    `json:"username"`
    CreatedAt time.Time `json:"createdAt"`
}
