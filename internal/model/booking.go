package model

import (
	"time"

	"gorm.io/datatypes"
)

// bookings
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID   uint `gorm:"not null;index" json:"-"`
	DoctorID uint `gorm:"not null;index" json:"-"`

	// Чистая дата без времени.
	Date datatypes.Date `gorm:"type:date;not null" json:"-"`

	// Метка слота, например "10:00". Сравнивается как строка,
	// интервальной логики нет.
	TimeSlot string `gorm:"type:varchar(32);not null" json:"timeSlot"`

	// Свободный текст: "In attesa", "Completata" и т.п.
	Status string `gorm:"type:varchar(64)" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`

	// Навигационные поля; заполняются через Preload.
	User   *User   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`
	Doctor *Doctor `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"doctor,omitempty"`
}

// DateOf собирает календарную дату (UTC, полночь).
func DateOf(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate парсит дату формата YYYY-MM-DD.
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return DateOf(t.Year(), t.Month(), t.Day()), nil
}

// FormatDate форматирует дату обратно в YYYY-MM-DD.
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format("2006-01-02")
}
