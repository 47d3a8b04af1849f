package services

import (
	"errors"
	"testing"

	"hotel-records/models"
)

func TestCreateRoomTypeIsIdempotentByName(t *testing.T) {
	env := newTestEnv(t)

	first, outcome, err := env.catalog.CreateRoomType(env.ctx, RoomTypeInput{Name: "suite", FloorPrice: 100, CeilingPrice: strPtr("300")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if outcome != Created {
		t.Fatalf("expected Created, got %s", outcome)
	}

	second, outcome, err := env.catalog.CreateRoomType(env.ctx, RoomTypeInput{Name: "suite", FloorPrice: 999})
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if outcome != FoundExisting {
		t.Fatalf("expected FoundExisting, got %s", outcome)
	}
	if second.ID != first.ID || second.FloorPrice != 100 {
		t.Fatalf("expected the existing record unchanged, got %+v", second)
	}
	if n := env.count(t, &models.RoomType{}); n != 1 {
		t.Fatalf("expected 1 room type, got %d", n)
	}
}

func TestCreateRoomRequiresExistingType(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.CreateRoom(env.ctx, RoomInput{Number: 101, Available: true, TypeName: "penthouse"})
	if !errors.Is(err, ErrRoomTypeNotFound) || !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected room type not found, got %v", err)
	}
	if n := env.count(t, &models.Room{}); n != 0 {
		t.Fatalf("no room should be written, got %d", n)
	}

	env.roomType(t, "suite")
	room := env.room(t, 101, "suite")
	if room.Type.Name != "suite" || room.Number != 101 || !room.Available {
		t.Fatalf("unexpected room %+v", room)
	}
}

func TestListRoomTypesAndRoomsAreOrdered(t *testing.T) {
	env := newTestEnv(t)
	env.roomType(t, "suite")
	env.roomType(t, "double")
	env.roomType(t, "simple")
	env.room(t, 303, "suite")
	env.room(t, 101, "simple")
	env.room(t, 202, "double")

	types, err := env.catalog.ListRoomTypes(env.ctx)
	if err != nil {
		t.Fatalf("list types: %v", err)
	}
	if len(types) != 3 || types[0].Name != "double" || types[1].Name != "simple" || types[2].Name != "suite" {
		t.Fatalf("types not ordered by name: %+v", types)
	}

	rooms, err := env.catalog.ListRooms(env.ctx)
	if err != nil {
		t.Fatalf("list rooms: %v", err)
	}
	if len(rooms) != 3 || rooms[0].Number != 101 || rooms[1].Number != 202 || rooms[2].Number != 303 {
		t.Fatalf("rooms not ordered by number: %+v", rooms)
	}
	if rooms[0].Type.Name != "simple" {
		t.Fatalf("room type not hydrated: %+v", rooms[0])
	}
}

func TestSearchRoomTypes(t *testing.T) {
	env := newTestEnv(t)
	suite := env.roomType(t, "suite")
	env.roomType(t, "double")

	all, err := env.catalog.SearchRoomTypes(env.ctx, RoomTypeCriteria{})
	if err != nil || len(all) != 2 {
		t.Fatalf("empty criteria: %d results, err=%v", len(all), err)
	}

	byName, _ := env.catalog.SearchRoomTypes(env.ctx, RoomTypeCriteria{Name: "suite"})
	if len(byName) != 1 || byName[0].ID != suite.ID {
		t.Fatalf("by name: %+v", byName)
	}

	mismatch, _ := env.catalog.SearchRoomTypes(env.ctx, RoomTypeCriteria{ID: suite.ID, Name: "double"})
	if len(mismatch) != 0 {
		t.Fatalf("filters must be ANDed, got %+v", mismatch)
	}
}

func TestGetRoomByNumber(t *testing.T) {
	env := newTestEnv(t)
	env.roomType(t, "suite")
	created := env.room(t, 101, "suite")

	room, found, err := env.catalog.GetRoomByNumber(env.ctx, 101)
	if err != nil || !found || room.ID != created.ID {
		t.Fatalf("lookup 101: found=%t err=%v room=%+v", found, err, room)
	}

	_, found, err = env.catalog.GetRoomByNumber(env.ctx, 999)
	if err != nil || found {
		t.Fatalf("lookup 999: found=%t err=%v", found, err)
	}

	env.room(t, 101, "suite")
	_, _, err = env.catalog.GetRoomByNumber(env.ctx, 101)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("duplicate numbers should be ambiguous, got %v", err)
	}
}

func TestUpdateRoomTypeAppliesOnlySuppliedFields(t *testing.T) {
	env := newTestEnv(t)
	rt, _, _ := env.catalog.CreateRoomType(env.ctx, RoomTypeInput{Name: "suite", FloorPrice: 100, Description: strPtr("big")})

	price := 180.5
	updated, err := env.catalog.UpdateRoomType(env.ctx, rt.ID, RoomTypePatch{FloorPrice: &price})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FloorPrice != 180.5 || updated.Name != "suite" || updated.Description == nil || *updated.Description != "big" {
		t.Fatalf("unexpected update result %+v", updated)
	}

	_, err = env.catalog.UpdateRoomType(env.ctx, "00000000-0000-0000-0000-000000000000", RoomTypePatch{FloorPrice: &price})
	if !errors.Is(err, ErrRoomTypeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateRoomRebindsType(t *testing.T) {
	env := newTestEnv(t)
	env.roomType(t, "suite")
	double := env.roomType(t, "double")
	room := env.room(t, 101, "suite")

	number := 102
	available := false
	updated, err := env.catalog.UpdateRoom(env.ctx, room.ID, RoomPatch{
		Number:    &number,
		Available: &available,
		Notes:     strPtr("sea view"),
		TypeName:  strPtr("double"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Number != 102 || updated.Available || updated.Type.ID != double.ID || *updated.Notes != "sea view" {
		t.Fatalf("unexpected update result %+v", updated)
	}

	_, err = env.catalog.UpdateRoom(env.ctx, room.ID, RoomPatch{TypeName: strPtr("penthouse"), Number: &number})
	if !errors.Is(err, ErrRoomTypeNotFound) {
		t.Fatalf("expected room type not found, got %v", err)
	}
	reloaded, _, _ := env.catalog.GetRoom(env.ctx, room.ID)
	if reloaded.Type.ID != double.ID {
		t.Fatalf("failed update must not change the room, got %+v", reloaded)
	}

	_, err = env.catalog.UpdateRoom(env.ctx, "00000000-0000-0000-0000-000000000000", RoomPatch{Number: &number})
	if !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected room not found, got %v", err)
	}
}

func TestDeleteRoomTypeBlockedByRooms(t *testing.T) {
	env := newTestEnv(t)
	suite := env.roomType(t, "suite")
	room := env.room(t, 101, "suite")

	deleted, err := env.catalog.DeleteRoomType(env.ctx, suite.ID)
	if !errors.Is(err, ErrDependencyConflict) || deleted {
		t.Fatalf("expected dependency conflict, got deleted=%t err=%v", deleted, err)
	}
	if env.count(t, &models.RoomType{}) != 1 || env.count(t, &models.Room{}) != 1 {
		t.Fatal("room type and room must both survive the refused delete")
	}

	if ok, err := env.catalog.DeleteRoom(env.ctx, room.ID); err != nil || !ok {
		t.Fatalf("delete room: ok=%t err=%v", ok, err)
	}
	if ok, err := env.catalog.DeleteRoomType(env.ctx, suite.ID); err != nil || !ok {
		t.Fatalf("delete room type: ok=%t err=%v", ok, err)
	}
	if ok, err := env.catalog.DeleteRoomType(env.ctx, suite.ID); err != nil || ok {
		t.Fatalf("second delete should report absence: ok=%t err=%v", ok, err)
	}
}

func TestDeleteRoomBlockedByReservations(t *testing.T) {
	env := newTestEnv(t)
	env.roomType(t, "suite")
	room := env.room(t, 101, "suite")
	g := env.guest(t, "A", "B", "5551234567")
	env.reservation(t, g.ID, room.ID, at(1, 15), at(2, 11))

	deleted, err := env.catalog.DeleteRoom(env.ctx, room.ID)
	if !errors.Is(err, ErrRoomInUse) || deleted {
		t.Fatalf("expected room in use, got deleted=%t err=%v", deleted, err)
	}
	if env.count(t, &models.Room{}) != 1 || env.count(t, &models.Reservation{}) != 1 {
		t.Fatal("room and reservation must both survive the refused delete")
	}
}
