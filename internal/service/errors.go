package service

import "errors"

// Доменные ошибки жизненного цикла бронирования.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotTaken       = errors.New("doctor already booked for this date and time slot")
)
