package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"hotel-records/models"
	"hotel-records/storage"
	"hotel-records/storage/storagetest"
)

type testEnv struct {
	ctx          context.Context
	db           *gorm.DB
	store        *storage.Store
	catalog      *RoomCatalogService
	guests       *GuestService
	reservations *ReservationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := storagetest.Open(t)
	store := storage.New(db)
	catalog := NewRoomCatalogService(store)
	guests := NewGuestService(store)
	return &testEnv{
		ctx:          context.Background(),
		db:           db,
		store:        store,
		catalog:      catalog,
		guests:       guests,
		reservations: NewReservationService(store, guests, catalog),
	}
}

func (e *testEnv) count(t *testing.T, model any) int64 {
	t.Helper()
	n, err := e.store.Count(model)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func (e *testEnv) roomType(t *testing.T, name string) models.RoomTypeView {
	t.Helper()
	rt, _, err := e.catalog.CreateRoomType(e.ctx, RoomTypeInput{Name: name, FloorPrice: 100})
	if err != nil {
		t.Fatalf("create room type %q: %v", name, err)
	}
	return rt
}

func (e *testEnv) room(t *testing.T, number int, typeName string) models.RoomView {
	t.Helper()
	room, err := e.catalog.CreateRoom(e.ctx, RoomInput{Number: number, Available: true, TypeName: typeName})
	if err != nil {
		t.Fatalf("create room %d: %v", number, err)
	}
	return room
}

func (e *testEnv) guest(t *testing.T, first, last, mobile string) models.GuestView {
	t.Helper()
	g, _, err := e.guests.Create(e.ctx, GuestInput{
		FirstName: first,
		LastName:  last,
		Address:   "1 Main St",
		Mobile:    mobile,
		Password:  "x",
		Role:      "client",
	})
	if err != nil {
		t.Fatalf("create guest: %v", err)
	}
	return g
}

func (e *testEnv) reservation(t *testing.T, guestID, roomID string, start, end time.Time) models.ReservationView {
	t.Helper()
	r, err := e.reservations.Create(e.ctx, ReservationInput{
		Start:       start,
		End:         end,
		PricePerDay: 150,
		Guest:       &GuestRef{ID: guestID},
		Room:        &RoomRef{ID: roomID},
	})
	if err != nil {
		t.Fatalf("create reservation: %v", err)
	}
	return r
}

func at(day, hour int) time.Time {
	return time.Date(2025, time.January, day, hour, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

// deleteBefore removes a row with raw SQL right before the next create or update
// of a reservation, inside the same transaction.
func (e *testEnv) deleteBefore(t *testing.T, op, table, id string) {
	t.Helper()
	hook := func(db *gorm.DB) {
		if _, ok := db.Statement.Dest.(*models.Reservation); !ok {
			return
		}
		if err := db.Session(&gorm.Session{NewDB: true}).Exec("DELETE FROM "+table+" WHERE id = ?", id).Error; err != nil {
			t.Errorf("delete %s %s: %v", table, id, err)
		}
	}

	var err error
	switch op {
	case "create":
		err = e.db.Callback().Create().Before("gorm:create").Register("test:delete_"+table, hook)
	case "update":
		err = e.db.Callback().Update().Before("gorm:update").Register("test:delete_"+table, hook)
	default:
		t.Fatalf("unknown op %q", op)
	}
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
}
