package repository

import (
    "context"
    "errors"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/miniblog/internal/model"
)

type ReactionRepository interface {
    // Upsert 写入用户对文章的表态：不存在则插入，极性不同则原地更新，
    // 极性相同则不产生任何写（幂等）
    Upsert(ctx context.Context, postID, userID string, isLike bool) error
    // Count 统计某文章下指定极性的表态数；0 是正常结果
    Count(ctx context.Context, postID string, isLike bool) (int64, error)
    Get(ctx context.Context, postID, userID string) (*model.Reaction, error)
}

type reactionRepository struct{ db *gorm.DB }

func NewReactionRepository(db *gorm.DB) ReactionRepository { return &reactionRepository{db: db} }

func (r *reactionRepository) Upsert(ctx context.Context, postID, userID string, isLike bool) error {
    return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        var existing model.Reaction
        err := tx.Where("post_id = ? AND user_id = ?", postID, userID).Take(&existing).Error
        switch {
        case errors.Is(err, gorm.ErrRecordNotFound):
            rec := &model.Reaction{
                ID:     uuid.New().String(),
                PostID: postID,
                UserID: userID,
                IsLike: isLike,
            }
            return tx.Create(rec).Error
        case err != nil:
            return err
        case existing.IsLike != isLike:
            return tx.Model(&model.Reaction{}).
                Where("post_id = ? AND user_id = ?", postID, userID).
                Update("is_like", isLike).Error
        default:
            // 极性未变，无需写
            return nil
        }
    })
}

func (r *reactionRepository) Count(ctx context.Context, postID string, isLike bool) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).
        Model(&model.Reaction{}).
        Where("post_id = ? AND is_like = ?", postID, isLike).
        Count(&cnt).Error
    return cnt, err
}

func (r *reactionRepository) Get(ctx context.Context, postID, userID string) (*model.Reaction, error) {
    var rec model.Reaction
    err := r.db.WithContext(ctx).Where("post_id = ? AND user_id = ?", postID, userID).Take(&rec).Error
    if err != nil {
        return nil, err
    }
    return &rec, nil
}
