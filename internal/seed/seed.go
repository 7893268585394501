package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/deExistent98/clinic-booking/internal/model"
)

// Run загружает демонстрационные данные при первом старте.
// Каждая таблица проверяется независимо: непустая — пропускается,
// поэтому повторный запуск ничего не меняет.
func Run(ctx context.Context, db *gorm.DB) error {
	if err := seedUsers(ctx, db); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seedDoctors(ctx, db); err != nil {
		return fmt.Errorf("seed doctors: %w", err)
	}
	if err := seedBookings(ctx, db); err != nil {
		return fmt.Errorf("seed bookings: %w", err)
	}
	return nil
}

func seedUsers(ctx context.Context, db *gorm.DB) error {
	var n int64
	if err := db.WithContext(ctx).Model(&model.User{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	users := []model.User{
		{
			FullName: "Stefano Cacucci",
			Email:    "scacucci15@gmail.com",
			Password: "1234",
			Phone:    "3277916300",
			Role:     "PATIENT",
		},
		{
			FullName: "Maria Bianchi",
			Email:    "maria.bianchi@example.com",
			Password: "abcd",
			Phone:    "3399988776",
			Role:     "PATIENT",
		},
	}
	if err := db.WithContext(ctx).Create(&users).Error; err != nil {
		return err
	}

	log.Println("seed: sample users loaded")
	return nil
}

func seedDoctors(ctx context.Context, db *gorm.DB) error {
	var n int64
	if err := db.WithContext(ctx).Model(&model.Doctor{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	doctors := []model.Doctor{
		{FirstName: "Mario", LastName: "Rossi", Specialty: "Cardiologia", Availability: "Lun-Ven 9:00-17:00"},
		{FirstName: "Laura", LastName: "Verdi", Specialty: "Dermatologia", Availability: "Mar-Gio 10:00-18:00"},
	}
	if err := db.WithContext(ctx).Create(&doctors).Error; err != nil {
		return err
	}

	log.Println("seed: sample doctors loaded")
	return nil
}

func seedBookings(ctx context.Context, db *gorm.DB) error {
	var n int64
	if err := db.WithContext(ctx).Model(&model.Booking{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var users []model.User
	if err := db.WithContext(ctx).Order("id ASC").Limit(2).Find(&users).Error; err != nil {
		return err
	}
	var doctors []model.Doctor
	if err := db.WithContext(ctx).Order("id ASC").Limit(2).Find(&doctors).Error; err != nil {
		return err
	}
	if len(users) < 2 || len(doctors) < 2 {
		// Пользователей или врачей завели вручную меньше двух —
		// демонстрационные бронирования некуда прицепить.
		log.Println("seed: not enough users/doctors, skipping sample bookings")
		return nil
	}

	tomorrow := time.Now().AddDate(0, 0, 1)
	dayAfter := time.Now().AddDate(0, 0, 2)

	bookings := []model.Booking{
		{
			UserID:   users[0].ID,
			DoctorID: doctors[0].ID,
			Date:     model.DateOf(tomorrow.Year(), tomorrow.Month(), tomorrow.Day()),
			TimeSlot: "10:00",
			Status:   "In attesa",
			Notes:    "Prima visita",
		},
		{
			UserID:   users[1].ID,
			DoctorID: doctors[1].ID,
			Date:     model.DateOf(dayAfter.Year(), dayAfter.Month(), dayAfter.Day()),
			TimeSlot: "11:30",
			Status:   "Completata",
			Notes:    "Controllo annuale",
		},
	}
	if err := db.WithContext(ctx).Create(&bookings).Error; err != nil {
		return err
	}

	log.Println("seed: sample bookings loaded")
	return nil
}
