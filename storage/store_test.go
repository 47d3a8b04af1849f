package storage_test

import (
	"context"
	"errors"
	"testing"

	mysql "github.com/go-sql-driver/mysql"

	"hotel-records/models"
	"hotel-records/storage"
	"hotel-records/storage/storagetest"
)

func seedRoom(t *testing.T, s *storage.Store) (models.RoomType, models.Room) {
	t.Helper()
	rt := models.RoomType{Name: "suite", FloorPrice: 100}
	if err := s.Insert(&rt); err != nil {
		t.Fatalf("insert room type: %v", err)
	}
	room := models.Room{Number: 101, Available: true, RoomTypeID: rt.ID}
	if err := s.Insert(&room); err != nil {
		t.Fatalf("insert room: %v", err)
	}
	return rt, room
}

func TestInsertGeneratesIdentity(t *testing.T) {
	s := storage.New(storagetest.Open(t))
	rt, room := seedRoom(t, s)

	if len(rt.ID) != 36 || len(room.ID) != 36 {
		t.Fatalf("expected 36-character ids, got %q and %q", rt.ID, room.ID)
	}
}

func TestGetMissingIsNotAnError(t *testing.T) {
	s := storage.New(storagetest.Open(t))

	var rt models.RoomType
	found, err := s.Get(&rt, "00000000-0000-0000-0000-000000000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected not found")
	}
}

func TestGetWithPreload(t *testing.T) {
	s := storage.New(storagetest.Open(t))
	_, room := seedRoom(t, s)

	var got models.Room
	found, err := s.Get(&got, room.ID, storage.Preload("RoomType"))
	if err != nil || !found {
		t.Fatalf("get room: found=%t err=%v", found, err)
	}
	if got.RoomType.Name != "suite" {
		t.Fatalf("expected preloaded room type, got %+v", got.RoomType)
	}
}

func TestDeleteReferencedParentIsRefused(t *testing.T) {
	s := storage.New(storagetest.Open(t))
	rt, _ := seedRoom(t, s)

	err := s.Transaction(context.Background(), func(tx *storage.Store) error {
		_, err := tx.Delete(&models.RoomType{}, rt.ID)
		return err
	})
	if !errors.Is(err, storage.ErrReferenced) {
		t.Fatalf("expected ErrReferenced, got %v", err)
	}

	n, err := s.Count(&models.RoomType{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("room type should survive, count=%d", n)
	}
}

func TestDeleteReportsWhetherRowWasRemoved(t *testing.T) {
	s := storage.New(storagetest.Open(t))
	_, room := seedRoom(t, s)

	deleted, err := s.Delete(&models.Room{}, room.ID)
	if err != nil || !deleted {
		t.Fatalf("first delete: deleted=%t err=%v", deleted, err)
	}
	deleted, err = s.Delete(&models.Room{}, room.ID)
	if err != nil || deleted {
		t.Fatalf("second delete: deleted=%t err=%v", deleted, err)
	}
}

func TestTransactionRollsBackOnError(t *testing.T) {
	s := storage.New(storagetest.Open(t))
	boom := errors.New("boom")

	err := s.Transaction(context.Background(), func(tx *storage.Store) error {
		if err := tx.Insert(&models.RoomType{Name: "tmp", FloorPrice: 1}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	n, _ := s.Count(&models.RoomType{})
	if n != 0 {
		t.Fatalf("insert should have been rolled back, count=%d", n)
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	if storage.IsForeignKeyViolation(nil) {
		t.Fatal("nil is not a violation")
	}
	if !storage.IsForeignKeyViolation(errors.New("FOREIGN KEY constraint failed")) {
		t.Fatal("sqlite message should be recognised")
	}
	for _, msg := range []string{"connection refused", "row 1451 not found", "timeout after 1452ms"} {
		if storage.IsForeignKeyViolation(errors.New(msg)) {
			t.Fatalf("unrelated error %q misclassified", msg)
		}
	}
	if !storage.IsForeignKeyViolation(&mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"}) {
		t.Fatal("mysql 1451 should be recognised")
	}
}
