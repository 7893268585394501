package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/deExistent98/clinic-booking/internal/model"
	"github.com/deExistent98/clinic-booking/internal/repository"
)

// BookingService — жизненный цикл бронирований: создание с проверкой
// занятости слота, частичные обновления, удаление, выборки.
type BookingService struct {
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	doctorRepo  repository.DoctorRepository
	eventRepo   repository.EventRepository
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	eventRepo repository.EventRepository,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		doctorRepo:  doctorRepo,
		eventRepo:   eventRepo,
	}
}

// Create проверяет, что пациент и врач существуют и что слот врача
// свободен, затем сохраняет бронирование с прикреплёнными записями.
// Проверка занятости и вставка — отдельные шаги, без транзакции:
// между ними остаётся окно для конкурентного дубля.
func (s *BookingService) Create(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	doctor, err := s.doctorRepo.GetByID(ctx, booking.DoctorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("find doctor: %w", err)
	}

	taken, err := s.bookingRepo.ExistsByDoctorDateAndSlot(ctx, booking.DoctorID, booking.Date, booking.TimeSlot)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if taken {
		return nil, ErrSlotTaken
	}

	booking.User = user
	booking.Doctor = doctor
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.appendEvent(ctx, model.EventTypeBookingCreated, booking,
		fmt.Sprintf("booking for doctor %d on %s %s", booking.DoctorID, model.FormatDate(booking.Date), booking.TimeSlot))

	return booking, nil
}

// Update перезаписывает дату, слот, статус и заметки. Пациент и врач
// не меняются. Занятость слота здесь заново не проверяется: правка
// может создать дубль по (врач, дата, слот).
func (s *BookingService) Update(ctx context.Context, id uint, date datatypes.Date, timeSlot, status, notes string) (*model.Booking, error) {
	b, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	b.Date = date
	b.TimeSlot = timeSlot
	b.Status = status
	b.Notes = notes

	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.appendEvent(ctx, model.EventTypeBookingUpdated, b,
		fmt.Sprintf("rescheduled to %s %s", model.FormatDate(b.Date), b.TimeSlot))

	return b, nil
}

// UpdateStatus перезаписывает только статус. Из сырого тела запроса
// убираются обрамляющие двойные кавычки.
func (s *BookingService) UpdateStatus(ctx context.Context, id uint, rawStatus string) (*model.Booking, error) {
	b, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	b.Status = strings.ReplaceAll(rawStatus, `"`, "")

	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	s.appendEvent(ctx, model.EventTypeBookingStatusChanged, b,
		fmt.Sprintf("status set to %q", b.Status))

	return b, nil
}

// Delete удаляет бронирование по ID. Каскадных эффектов нет.
func (s *BookingService) Delete(ctx context.Context, id uint) error {
	b, err := s.getExisting(ctx, id)
	if err != nil {
		return err
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.appendEvent(ctx, model.EventTypeBookingCancelled, b, "booking deleted")

	return nil
}

// Get возвращает бронирование с пациентом и врачом.
func (s *BookingService) Get(ctx context.Context, id uint) (*model.Booking, error) {
	return s.getExisting(ctx, id)
}

// List возвращает все бронирования.
func (s *BookingService) List(ctx context.Context) ([]model.Booking, error) {
	return s.bookingRepo.List(ctx)
}

// ListByUser возвращает бронирования пользователя; для неизвестного
// пользователя это просто пустой список.
func (s *BookingService) ListByUser(ctx context.Context, userID uint) ([]model.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// ListEvents возвращает журнал бронирования, новые записи первыми.
// Для несуществующего бронирования — ErrBookingNotFound.
func (s *BookingService) ListEvents(ctx context.Context, id uint) ([]model.Event, error) {
	if _, err := s.getExisting(ctx, id); err != nil {
		return nil, err
	}
	if s.eventRepo == nil {
		return []model.Event{}, nil
	}
	return s.eventRepo.ListByBooking(ctx, id)
}

func (s *BookingService) getExisting(ctx context.Context, id uint) (*model.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return b, nil
}

// Журнал ведётся по принципу best effort: сбой записи события
// не валит основную операцию.
func (s *BookingService) appendEvent(ctx context.Context, t model.EventType, b *model.Booking, details string) {
	if s.eventRepo == nil {
		return
	}
	userID := b.UserID
	bookingID := b.ID
	e := &model.Event{
		EventType: t,
		UserID:    &userID,
		BookingID: &bookingID,
		Details:   details,
	}
	if err := s.eventRepo.Append(ctx, e); err != nil {
		log.Printf("append %s event: %v", t, err)
	}
}
