package model

// users
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"type:varchar(255);not null" json:"fullName"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`

	// Пароль хранится так, как пришёл от клиента; хеширования в этом слое нет.
	Password string `gorm:"type:varchar(255)" json:"password,omitempty"`

	Phone string `gorm:"type:varchar(32)" json:"phone"`
	Role  string `gorm:"type:varchar(32);not null;default:'PATIENT'" json:"role"`
}
