package repository

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/deExistent98/clinic-booking/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func seedBookingFixtures(t *testing.T, db *gorm.DB) (model.User, model.Doctor) {
	t.Helper()

	user := model.User{FullName: "Anna Ferri", Email: "anna@example.com", Role: "PATIENT"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	doctor := model.Doctor{FirstName: "Laura", LastName: "Verdi", Specialty: "Dermatologia"}
	if err := db.Create(&doctor).Error; err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	return user, doctor
}

func TestExistsByDoctorDateAndSlot(t *testing.T) {
	db := newTestDB(t)
	user, doctor := seedBookingFixtures(t, db)
	repo := NewGormBookingRepository(db)

	date := model.DateOf(2025, time.March, 10)
	if err := repo.Create(context.Background(), &model.Booking{
		UserID: user.ID, DoctorID: doctor.ID, Date: date, TimeSlot: "09:30",
	}); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	cases := []struct {
		name     string
		doctorID uint
		date     string
		slot     string
		want     bool
	}{
		{"same tuple", doctor.ID, "2025-03-10", "09:30", true},
		{"different slot", doctor.ID, "2025-03-10", "10:00", false},
		{"different date", doctor.ID, "2025-03-11", "09:30", false},
		{"different doctor", doctor.ID + 1, "2025-03-10", "09:30", false},
	}
	for _, tc := range cases {
		d, err := model.ParseDate(tc.date)
		if err != nil {
			t.Fatalf("%s: parse date: %v", tc.name, err)
		}
		got, err := repo.ExistsByDoctorDateAndSlot(context.Background(), tc.doctorID, d, tc.slot)
		if err != nil {
			t.Fatalf("%s: exists: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: exists = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestListByUser(t *testing.T) {
	db := newTestDB(t)
	user, doctor := seedBookingFixtures(t, db)
	repo := NewGormBookingRepository(db)

	other := model.User{FullName: "Paolo Neri", Email: "paolo@example.com", Role: "PATIENT"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed second user: %v", err)
	}

	date := model.DateOf(2025, time.March, 10)
	for i, b := range []model.Booking{
		{UserID: user.ID, DoctorID: doctor.ID, Date: date, TimeSlot: "09:30"},
		{UserID: user.ID, DoctorID: doctor.ID, Date: date, TimeSlot: "10:00"},
		{UserID: other.ID, DoctorID: doctor.ID, Date: date, TimeSlot: "11:00"},
	} {
		if err := repo.Create(context.Background(), &b); err != nil {
			t.Fatalf("create booking %d: %v", i, err)
		}
	}

	mine, err := repo.ListByUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("len = %d, want 2", len(mine))
	}
	for _, b := range mine {
		if b.UserID != user.ID {
			t.Fatalf("booking %d belongs to user %d", b.ID, b.UserID)
		}
		if b.User == nil || b.Doctor == nil {
			t.Fatalf("booking %d: user/doctor not preloaded", b.ID)
		}
	}

	none, err := repo.ListByUser(context.Background(), 9999)
	if err != nil {
		t.Fatalf("ListByUser unknown: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("len = %d, want 0", len(none))
	}
}

func TestGetByID_PreloadsRefs(t *testing.T) {
	db := newTestDB(t)
	user, doctor := seedBookingFixtures(t, db)
	repo := NewGormBookingRepository(db)

	b := model.Booking{UserID: user.ID, DoctorID: doctor.ID, Date: model.DateOf(2025, time.March, 10), TimeSlot: "09:30"}
	if err := repo.Create(context.Background(), &b); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	got, err := repo.GetByID(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.User == nil || got.User.Email != user.Email {
		t.Fatalf("user not preloaded: %+v", got.User)
	}
	if got.Doctor == nil || got.Doctor.Specialty != doctor.Specialty {
		t.Fatalf("doctor not preloaded: %+v", got.Doctor)
	}
}
