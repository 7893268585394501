package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех сущностей клиники.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Doctor{},
		&Booking{},
		&Event{},
	)
}
