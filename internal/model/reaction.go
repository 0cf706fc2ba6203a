package model

import "time"

// Reaction 用户对文章的点赞/点踩
type Reaction struct {
    ID     string `gorm:"primaryKey;type:varchar(36)"`
    PostID string `gorm:"type:varchar(36);index:idx_react_post;uniqueIndex:ux_react_post_user;not null"`
    UserID string `gorm:"type:varchar(36);not null;uniqueIndex:ux_react_post_user"`
    // 复合唯一键，每个 (post, user) 至多一条
    // ux_react_post_user = (post_id, user_id)
    IsLike    bool `gorm:"not null"`
    CreatedAt time.Time
    UpdatedAt time.Time
}

func (Reaction) TableName() string { return "reacts" }
