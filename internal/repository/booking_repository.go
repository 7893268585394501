package repository

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/deExistent98/clinic-booking/internal/model"
)

type BookingRepository interface {
	// Все бронирования с пациентом и врачом.
	List(ctx context.Context) ([]model.Booking, error)
	// Бронирование по ID с пациентом и врачом.
	GetByID(ctx context.Context, id uint) (*model.Booking, error)
	// Все бронирования пользователя (может быть пусто).
	ListByUser(ctx context.Context, userID uint) ([]model.Booking, error)
	// Занят ли у врача слот (точное совпадение даты и метки).
	ExistsByDoctorDateAndSlot(ctx context.Context, doctorID uint, date datatypes.Date, timeSlot string) (bool, error)
	// Создать бронирование; ID назначает хранилище.
	Create(ctx context.Context, booking *model.Booking) error
	// Перезаписать все поля строки.
	Update(ctx context.Context, booking *model.Booking) error
	// Удалить по ID, без каскадных эффектов.
	Delete(ctx context.Context, id uint) error
	// Количество строк в таблице.
	Count(ctx context.Context) (int64, error)
}

// Реализация на GORM.
type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) List(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Doctor").
		Order("id ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *GormBookingRepository) GetByID(ctx context.Context, id uint) (*model.Booking, error) {
	var b model.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Doctor").
		First(&b, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepository) ListByUser(ctx context.Context, userID uint) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Doctor").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *GormBookingRepository) ExistsByDoctorDateAndSlot(
	ctx context.Context,
	doctorID uint,
	date datatypes.Date,
	timeSlot string,
) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("doctor_id = ? AND date = ? AND time_slot = ?", doctorID, date, timeSlot).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *GormBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	// Навигационные поля уже указывают на существующие строки,
	// апсертить их вместе с бронированием не нужно.
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(booking).Error
}

func (r *GormBookingRepository) Update(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(booking).Error
}

func (r *GormBookingRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Booking{}, "id = ?", id).Error
}

func (r *GormBookingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Booking{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
