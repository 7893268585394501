package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/deExistent98/clinic-booking/internal/model"
)

type DoctorRepository interface {
	// Все врачи в порядке создания.
	List(ctx context.Context) ([]model.Doctor, error)
	// Врач по ID.
	GetByID(ctx context.Context, id uint) (*model.Doctor, error)
	// Создать врача; ID назначает хранилище.
	Create(ctx context.Context, doctor *model.Doctor) error
	// Перезаписать все изменяемые поля.
	Update(ctx context.Context, doctor *model.Doctor) error
	// Удалить по ID.
	Delete(ctx context.Context, id uint) error
	// Количество строк в таблице.
	Count(ctx context.Context) (int64, error)
}

// Реализация на GORM.
type GormDoctorRepository struct {
	db *gorm.DB
}

func NewGormDoctorRepository(db *gorm.DB) *GormDoctorRepository {
	return &GormDoctorRepository{db: db}
}

func (r *GormDoctorRepository) List(ctx context.Context) ([]model.Doctor, error) {
	var doctors []model.Doctor
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *GormDoctorRepository) GetByID(ctx context.Context, id uint) (*model.Doctor, error) {
	var d model.Doctor
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *GormDoctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	return r.db.WithContext(ctx).Create(doctor).Error
}

func (r *GormDoctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	return r.db.WithContext(ctx).Save(doctor).Error
}

func (r *GormDoctorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Doctor{}, "id = ?", id).Error
}

func (r *GormDoctorRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Doctor{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
