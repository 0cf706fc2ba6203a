package repository

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/miniblog/internal/model"
)

type UserRepository interface {
    Create(ctx context.Context, username, email, passwordHash string) (string, error)
    GetByID(ctx context.Context, id string) (*model.User, error)
    GetByUsername(ctx context.Context, username string) (*model.User, error)
    ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

type userRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) Create(ctx context.Context, username, email, passwordHash string) (string, error) {
    u := &model.User{ID: uuid.New().String(), Username: username, Email: email, Password: passwordHash}
    if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
        return "", err
    }
    return u.ID, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&u).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).Where("username = ?", username).Take(&u).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
    var cnt int64
    err := r.db.WithContext(ctx).
        Model(&model.User{}).
        Where("username = ? OR email = ?", username, email).
        Count(&cnt).Error
    if err != nil {
        return false, err
    }
    return cnt > 0, nil
}
