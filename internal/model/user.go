package model

import "time"

// User 博客用户（作者 / 读者）
type User struct {
    ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
    Username  string    `json:"username" gorm:"type:varchar(64);uniqueIndex:ux_user_username;not null"`
    Email     string    `json:"email" gorm:"type:varchar(128);uniqueIndex:ux_user_email;not null"`
    Password  string    `json:"-" gorm:"type:varchar(128);not null"` // bcrypt hash
    CreatedAt time.Time `json:"createdAt"`
}

func (User) TableName() string { return "users" }
