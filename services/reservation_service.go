package services

import (
	"context"
	"log"
	"time"

	"hotel-records/models"
	"hotel-records/storage"
)

// ReservationService owns the reservation lifecycle. Guest and room existence
// checks go through the guest and catalog services, inside the same transaction.
type ReservationService struct {
	Store   *storage.Store
	Guests  *GuestService
	Catalog *RoomCatalogService
}

func NewReservationService(store *storage.Store, guests *GuestService, catalog *RoomCatalogService) *ReservationService {
	return &ReservationService{Store: store, Guests: guests, Catalog: catalog}
}

// GuestRef and RoomRef identify the embedded sub-objects of a reservation
// request. Only the ID is used; the rest of an embedded view is ignored.
type GuestRef struct {
	ID string
}

type RoomRef struct {
	ID string
}

type ReservationInput struct {
	Start       time.Time
	End         time.Time
	PricePerDay float64
	Note        *string
	Guest       *GuestRef
	Room        *RoomRef
}

// ReservationPatch is applied in a fixed order: guest, room, start, end, price, note.
type ReservationPatch struct {
	GuestID     *string
	RoomID      *string
	Start       *time.Time
	End         *time.Time
	PricePerDay *float64
	Note        *string
}

// ReservationCriteria filters are ANDed. The name filter only applies when both
// LastName and FirstName are set.
type ReservationCriteria struct {
	ReservationID string
	RoomID        string
	GuestID       string
	LastName      string
	FirstName     string
}

var hydrated = []storage.Scope{
	storage.Preload("Room.RoomType"),
	storage.Preload("Guest"),
}

func (s *ReservationService) Search(ctx context.Context, c ReservationCriteria) ([]models.ReservationView, error) {
	scopes := append([]storage.Scope{}, hydrated...)
	if c.ReservationID != "" {
		scopes = append(scopes, storage.Where("reservations.id = ?", c.ReservationID))
	}
	if c.RoomID != "" {
		scopes = append(scopes, storage.Where("reservations.room_id = ?", c.RoomID))
	}
	if c.GuestID != "" {
		scopes = append(scopes, storage.Where("reservations.guest_id = ?", c.GuestID))
	}
	if c.LastName != "" && c.FirstName != "" {
		scopes = append(scopes,
			storage.Joins("JOIN guests ON guests.id = reservations.guest_id"),
			storage.Where("guests.last_name = ? AND guests.first_name = ?", c.LastName, c.FirstName),
		)
	}

	var reservations []models.Reservation
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		return tx.Find(&reservations, scopes...)
	})
	if err != nil {
		return nil, err
	}

	out := make([]models.ReservationView, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, r.View())
	}
	return out, nil
}

func (s *ReservationService) Get(ctx context.Context, id string) (models.ReservationView, error) {
	var r models.Reservation
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		var err error
		r, err = s.hydrate(tx, id)
		return err
	})
	if err != nil {
		return models.ReservationView{}, err
	}
	return r.View(), nil
}

// ----------------------------------------------------
// CREATE
// ----------------------------------------------------
func (s *ReservationService) Create(ctx context.Context, in ReservationInput) (models.ReservationView, error) {
	log.Printf("➡️ ReservationService.Create start=%s end=%s", in.Start.Format(time.RFC3339), in.End.Format(time.RFC3339))

	if !in.End.After(in.Start) {
		return models.ReservationView{}, validationErrorf("end must be after start")
	}
	if in.Guest == nil || in.Guest.ID == "" {
		return models.ReservationView{}, validationErrorf("guest with an id is required")
	}
	if in.Room == nil || in.Room.ID == "" {
		return models.ReservationView{}, validationErrorf("room with an id is required")
	}

	var result models.Reservation
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		guest, err := s.Guests.guestByID(tx, in.Guest.ID)
		if err != nil {
			return err
		}
		room, err := s.Catalog.roomByID(tx, in.Room.ID)
		if err != nil {
			return err
		}

		r := models.Reservation{
			StartAt:     in.Start,
			EndAt:       in.End,
			PricePerDay: in.PricePerDay,
			Note:        in.Note,
			GuestID:     guest.ID,
			RoomID:      room.ID,
		}
		if err := tx.Insert(&r); err != nil {
			if storage.IsForeignKeyViolation(err) {
				if refErr := s.missingReference(tx, r.GuestID, r.RoomID); refErr != nil {
					return refErr
				}
			}
			return err
		}

		result, err = s.hydrate(tx, r.ID)
		return err
	})
	if err != nil {
		log.Printf("⬅️ ReservationService.Create error: %v", err)
		return models.ReservationView{}, err
	}

	log.Printf("⬅️ ReservationService.Create ok: id=%s", result.ID)
	return result.View(), nil
}

// ----------------------------------------------------
// UPDATE: start is checked against the stored end, then end against
// the (possibly just updated) start
// ----------------------------------------------------
func (s *ReservationService) Update(ctx context.Context, id string, p ReservationPatch) (models.ReservationView, error) {
	log.Printf("➡️ ReservationService.Update id=%s", id)

	var result models.Reservation
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		var r models.Reservation
		found, err := tx.Get(&r, id)
		if err != nil {
			return err
		}
		if !found {
			return ErrReservationNotFound
		}

		if p.GuestID != nil {
			guest, err := s.Guests.guestByID(tx, *p.GuestID)
			if err != nil {
				return err
			}
			r.GuestID = guest.ID
		}
		if p.RoomID != nil {
			room, err := s.Catalog.roomByID(tx, *p.RoomID)
			if err != nil {
				return err
			}
			r.RoomID = room.ID
		}
		if p.Start != nil {
			if !p.Start.Before(r.EndAt) {
				return validationErrorf("start must be before end (%s)", r.EndAt.Format(time.RFC3339))
			}
			r.StartAt = *p.Start
		}
		if p.End != nil {
			if !p.End.After(r.StartAt) {
				return validationErrorf("end must be after start (%s)", r.StartAt.Format(time.RFC3339))
			}
			r.EndAt = *p.End
		}
		if p.PricePerDay != nil {
			r.PricePerDay = *p.PricePerDay
		}
		if p.Note != nil {
			r.Note = p.Note
		}

		if err := tx.Update(&r); err != nil {
			if storage.IsForeignKeyViolation(err) {
				if refErr := s.missingReference(tx, r.GuestID, r.RoomID); refErr != nil {
					return refErr
				}
			}
			return err
		}
		result, err = s.hydrate(tx, r.ID)
		return err
	})
	if err != nil {
		log.Printf("⬅️ ReservationService.Update error: %v", err)
		return models.ReservationView{}, err
	}
	return result.View(), nil
}

// Delete reports false when there was nothing to delete.
func (s *ReservationService) Delete(ctx context.Context, id string) (bool, error) {
	log.Printf("➡️ ReservationService.Delete id=%s", id)

	var deleted bool
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		var err error
		deleted, err = tx.Delete(&models.Reservation{}, id)
		return err
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (s *ReservationService) hydrate(tx *storage.Store, id string) (models.Reservation, error) {
	var r models.Reservation
	found, err := tx.Get(&r, id, hydrated...)
	if err != nil {
		return r, err
	}
	if !found {
		return r, ErrReservationNotFound
	}
	return r, nil
}

// missingReference reports which of the guest or room went away after it was
// resolved, so a concurrent delete surfaces as not found.
func (s *ReservationService) missingReference(tx *storage.Store, guestID, roomID string) error {
	if _, err := s.Guests.guestByID(tx, guestID); err != nil {
		return err
	}
	if _, err := s.Catalog.roomByID(tx, roomID); err != nil {
		return err
	}
	return nil
}
