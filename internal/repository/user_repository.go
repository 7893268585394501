package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/deExistent98/clinic-booking/internal/model"
)

type UserRepository interface {
	// Все пользователи в порядке создания.
	List(ctx context.Context) ([]model.User, error)
	// Пользователь по ID.
	GetByID(ctx context.Context, id uint) (*model.User, error)
	// Создать пользователя; ID назначает хранилище.
	Create(ctx context.Context, user *model.User) error
	// Перезаписать все изменяемые поля.
	Update(ctx context.Context, user *model.User) error
	// Удалить по ID.
	Delete(ctx context.Context, id uint) error
	// Количество строк в таблице.
	Count(ctx context.Context) (int64, error)
}

// Реализация на GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormUserRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *GormUserRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *GormUserRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id).Error
}

func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
