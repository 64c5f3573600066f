package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/microblog/internal/model"
)

type UserRepository interface {
    FindByID(ctx context.Context, id string) (*model.User, error)
    FindByUsername(ctx context.Context, username string) (*model.User, error)
    FindByIDs(ctx context.Context, ids []string) ([]*model.User, error)
}

type userRepository struct {
    db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
        return nil, translate(err)
    }
    return &u, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
        return nil, translate(err)
    }
    return &u, nil
}

func (r *userRepository) FindByIDs(ctx context.Context, ids []string) ([]*model.User, error) {
    if len(ids) == 0 {
        return nil, nil
    }
    var res []*model.User
    err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
    return res, err
}
