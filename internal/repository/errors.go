package repository

import (
    "errors"

    "gorm.io/gorm"
)

var (
    ErrNotFound  = errors.New("record not found")
    ErrDuplicate = errors.New("duplicate record")
)

// translate 把 gorm 错误归一到仓储层哨兵错误
func translate(err error) error {
    switch {
    case err == nil:
        return nil
    case errors.Is(err, gorm.ErrRecordNotFound):
        return ErrNotFound
    case errors.Is(err, gorm.ErrDuplicatedKey):
        return ErrDuplicate
    default:
        return err
    }
}
