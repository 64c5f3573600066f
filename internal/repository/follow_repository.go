package repository

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"
    "gorm.io/gorm/clause"

    "github.com/d60-Lab/microblog/internal/model"
)

type FollowRepository interface {
    Create(ctx context.Context, followerID, followingID string) error
    Delete(ctx context.Context, followerID, followingID string) error
    Exists(ctx context.Context, followerID, followingID string) (bool, error)
    ListFollowings(ctx context.Context, followerID string, offset, limit int) ([]*model.Follow, error)
    ListFollowers(ctx context.Context, followingID string, offset, limit int) ([]*model.Follow, error)
    // ListFollowingIDs 取 followerID 关注的全部用户 ID（feed 候选作者集合用）
    ListFollowingIDs(ctx context.Context, followerID string) ([]string, error)
    CountFollowings(ctx context.Context, followerID string) (int64, error)
    CountFollowers(ctx context.Context, followingID string) (int64, error)
}

type followRepository struct {
    db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

func (r *followRepository) Create(ctx context.Context, followerID, followingID string) error {
    f := &model.Follow{ID: uuid.New().String(), FollowerID: followerID, FollowingID: followingID}
    // 幂等：重复关注不报错
    return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(f).Error
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID string) error {
    return r.db.WithContext(ctx).
        Where("follower_id = ? AND following_id = ?", followerID, followingID).
        Delete(&model.Follow{}).Error
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
    var cnt int64
    if err := r.db.WithContext(ctx).
        Model(&model.Follow{}).
        Where("follower_id = ? AND following_id = ?", followerID, followingID).
        Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

func (r *followRepository) ListFollowings(ctx context.Context, followerID string, offset, limit int) ([]*model.Follow, error) {
    var res []*model.Follow
    err := r.db.WithContext(ctx).Where("follower_id = ?", followerID).Offset(offset).Limit(limit).Find(&res).Error
    return res, err
}

func (r *followRepository) ListFollowers(ctx context.Context, followingID string, offset, limit int) ([]*model.Follow, error) {
    var res []*model.Follow
    err := r.db.WithContext(ctx).Where("following_id = ?", followingID).Offset(offset).Limit(limit).Find(&res).Error
    return res, err
}

func (r *followRepository) ListFollowingIDs(ctx context.Context, followerID string) ([]string, error) {
    var ids []string
    err := r.db.WithContext(ctx).Model(&model.Follow{}).
        Where("follower_id = ?", followerID).
        Pluck("following_id", &ids).Error
    return ids, err
}

func (r *followRepository) CountFollowings(ctx context.Context, followerID string) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).Model(&model.Follow{}).
        Where("follower_id = ?", followerID).Count(&cnt).Error
    return cnt, err
}

func (r *followRepository) CountFollowers(ctx context.Context, followingID string) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).Model(&model.Follow{}).
        Where("following_id = ?", followingID).Count(&cnt).Error
    return cnt, err
}
