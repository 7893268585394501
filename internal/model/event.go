package model

import (
	"time"

	"github.com/google/uuid"
)

// Тип события аудита.
type EventType string

const (
	EventTypeBookingCreated       EventType = "booking_created"
	EventTypeBookingUpdated       EventType = "booking_updated"
	EventTypeBookingStatusChanged EventType = "booking_status_changed"
	EventTypeBookingCancelled     EventType = "booking_cancelled"
)

// events — журнал изменений бронирований.
type Event struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	EventType EventType `gorm:"type:varchar(64);not null;index" json:"eventType"`

	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`

	// Идентификаторы без FK-ограничений: событие переживает удаление записи.
	UserID    *uint `gorm:"index" json:"userId,omitempty"`
	BookingID *uint `gorm:"index" json:"bookingId,omitempty"`

	Details string `gorm:"type:text" json:"details"`
}
