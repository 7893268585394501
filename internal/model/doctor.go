package model

// doctors
type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"type:varchar(255)" json:"firstName"`
	LastName  string `gorm:"type:varchar(255)" json:"lastName"`
	Specialty string `gorm:"type:varchar(255)" json:"specialty"`

	// Свободный текст вида "Lun-Ven 9:00-17:00"; нигде не парсится
	// и не сверяется со временем бронирований.
	Availability string `gorm:"type:varchar(255)" json:"availability"`
}
