package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"hotel-records/models"
	"hotel-records/storage"
)

type RoomInput struct {
	Number    int
	Available bool
	Notes     *string
	TypeName  string
}

type RoomPatch struct {
	Number    *int
	Available *bool
	Notes     *string
	TypeName  *string
}

var withRoomType = storage.Preload("RoomType")

func (s *RoomCatalogService) CreateRoom(ctx context.Context, in RoomInput) (models.RoomView, error) {
	log.Printf("➡️ RoomCatalogService.CreateRoom number=%d type=%q", in.Number, in.TypeName)

	var room models.Room
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		rt, err := s.roomTypeByName(tx, in.TypeName)
		if err != nil {
			return err
		}

		room = models.Room{
			Number:     in.Number,
			Available:  in.Available,
			Notes:      in.Notes,
			RoomTypeID: rt.ID,
		}
		if err := tx.Insert(&room); err != nil {
			if storage.IsForeignKeyViolation(err) {
				// the type vanished between lookup and insert
				return fmt.Errorf("%w: %q", ErrRoomTypeNotFound, in.TypeName)
			}
			return err
		}
		room.RoomType = rt
		return nil
	})
	if err != nil {
		log.Printf("⬅️ RoomCatalogService.CreateRoom error: %v", err)
		return models.RoomView{}, err
	}

	log.Printf("⬅️ RoomCatalogService.CreateRoom ok: id=%s", room.ID)
	return room.View(), nil
}

func (s *RoomCatalogService) ListRooms(ctx context.Context) ([]models.RoomView, error) {
	var rooms []models.Room
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		return tx.Find(&rooms, withRoomType, storage.OrderBy("number"))
	})
	if err != nil {
		return nil, err
	}

	out := make([]models.RoomView, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.View())
	}
	return out, nil
}

// GetRoomByNumber reports false when no room carries that number. Room numbers are
// not unique in the store, so more than one match is rejected as ambiguous.
func (s *RoomCatalogService) GetRoomByNumber(ctx context.Context, number int) (models.RoomView, bool, error) {
	var rooms []models.Room
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		return tx.Find(&rooms, withRoomType, storage.Where("number = ?", number), storage.OrderBy("id"))
	})
	if err != nil {
		return models.RoomView{}, false, err
	}

	switch len(rooms) {
	case 0:
		return models.RoomView{}, false, nil
	case 1:
		return rooms[0].View(), true, nil
	default:
		return models.RoomView{}, false, validationErrorf("room number %d is shared by %d rooms", number, len(rooms))
	}
}

func (s *RoomCatalogService) GetRoom(ctx context.Context, id string) (models.RoomView, bool, error) {
	var room models.Room
	var found bool
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		var err error
		found, err = tx.Get(&room, id, withRoomType)
		return err
	})
	if err != nil || !found {
		return models.RoomView{}, false, err
	}
	return room.View(), true, nil
}

func (s *RoomCatalogService) UpdateRoom(ctx context.Context, id string, p RoomPatch) (models.RoomView, error) {
	log.Printf("➡️ RoomCatalogService.UpdateRoom id=%s", id)

	var room models.Room
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		found, err := tx.Get(&room, id, withRoomType)
		if err != nil {
			return err
		}
		if !found {
			return ErrRoomNotFound
		}

		if p.Number != nil {
			room.Number = *p.Number
		}
		if p.Available != nil {
			room.Available = *p.Available
		}
		if p.Notes != nil {
			room.Notes = p.Notes
		}
		if p.TypeName != nil {
			rt, err := s.roomTypeByName(tx, *p.TypeName)
			if err != nil {
				return err
			}
			room.RoomTypeID = rt.ID
			room.RoomType = rt
		}
		if err := tx.Update(&room); err != nil {
			if storage.IsForeignKeyViolation(err) {
				return fmt.Errorf("%w: %q", ErrRoomTypeNotFound, room.RoomType.Name)
			}
			return err
		}
		return nil
	})
	if err != nil {
		log.Printf("⬅️ RoomCatalogService.UpdateRoom error: %v", err)
		return models.RoomView{}, err
	}
	return room.View(), nil
}

// DeleteRoom is refused by the store while reservations reference the room.
func (s *RoomCatalogService) DeleteRoom(ctx context.Context, id string) (bool, error) {
	log.Printf("➡️ RoomCatalogService.DeleteRoom id=%s", id)

	var deleted bool
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		var err error
		deleted, err = tx.Delete(&models.Room{}, id)
		return err
	})
	if errors.Is(err, storage.ErrReferenced) {
		log.Printf("⚠️ RoomCatalogService.DeleteRoom blocked id=%s", id)
		return false, ErrRoomInUse
	}
	if err != nil {
		return false, err
	}

	log.Printf("⬅️ RoomCatalogService.DeleteRoom id=%s deleted=%t", id, deleted)
	return deleted, nil
}

// roomByID resolves a room inside an open transaction.
func (s *RoomCatalogService) roomByID(tx *storage.Store, id string) (models.Room, error) {
	var room models.Room
	found, err := tx.Get(&room, id)
	if err != nil {
		return room, err
	}
	if !found {
		return room, ErrRoomNotFound
	}
	return room, nil
}
