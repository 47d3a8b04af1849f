package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"hotel-records/models"
	"hotel-records/storage"
)

// RoomCatalogService manages room types and the rooms attached to them.
type RoomCatalogService struct {
	Store *storage.Store
}

func NewRoomCatalogService(store *storage.Store) *RoomCatalogService {
	return &RoomCatalogService{Store: store}
}

type RoomTypeInput struct {
	Name         string
	FloorPrice   float64
	CeilingPrice *string
	Description  *string
}

// RoomTypePatch holds the fields of a partial update; nil means "leave as is".
type RoomTypePatch struct {
	Name         *string
	FloorPrice   *float64
	CeilingPrice *string
	Description  *string
}

type RoomTypeCriteria struct {
	ID   string
	Name string
}

// ----------------------------------------------------
// CREATE: returns the existing type when the name is already taken
// ----------------------------------------------------
func (s *RoomCatalogService) CreateRoomType(ctx context.Context, in RoomTypeInput) (models.RoomTypeView, Outcome, error) {
	log.Printf("➡️ RoomCatalogService.CreateRoomType name=%q", in.Name)

	var (
		rt      models.RoomType
		outcome = Created
	)
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		found, err := tx.FindOne(&rt, storage.Where("name = ?", in.Name))
		if err != nil {
			return err
		}
		if found {
			outcome = FoundExisting
			return nil
		}

		rt = models.RoomType{
			Name:         in.Name,
			FloorPrice:   in.FloorPrice,
			CeilingPrice: in.CeilingPrice,
			Description:  in.Description,
		}
		return tx.Insert(&rt)
	})
	if err != nil {
		log.Printf("⬅️ RoomCatalogService.CreateRoomType error: %v", err)
		return models.RoomTypeView{}, outcome, err
	}

	log.Printf("⬅️ RoomCatalogService.CreateRoomType ok: id=%s outcome=%s", rt.ID, outcome)
	return rt.View(), outcome, nil
}

func (s *RoomCatalogService) ListRoomTypes(ctx context.Context) ([]models.RoomTypeView, error) {
	var types []models.RoomType
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		return tx.Find(&types, storage.OrderBy("name"))
	})
	if err != nil {
		return nil, err
	}
	return roomTypeViews(types), nil
}

func (s *RoomCatalogService) SearchRoomTypes(ctx context.Context, c RoomTypeCriteria) ([]models.RoomTypeView, error) {
	scopes := []storage.Scope{}
	if c.ID != "" {
		scopes = append(scopes, storage.Where("id = ?", c.ID))
	}
	if c.Name != "" {
		scopes = append(scopes, storage.Where("name = ?", c.Name))
	}

	var types []models.RoomType
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		return tx.Find(&types, scopes...)
	})
	if err != nil {
		return nil, err
	}
	return roomTypeViews(types), nil
}

// ----------------------------------------------------
// UPDATE: only supplied fields are written
// ----------------------------------------------------
func (s *RoomCatalogService) UpdateRoomType(ctx context.Context, id string, p RoomTypePatch) (models.RoomTypeView, error) {
	log.Printf("➡️ RoomCatalogService.UpdateRoomType id=%s", id)

	var rt models.RoomType
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		found, err := tx.Get(&rt, id)
		if err != nil {
			return err
		}
		if !found {
			return ErrRoomTypeNotFound
		}

		if p.Name != nil {
			rt.Name = *p.Name
		}
		if p.FloorPrice != nil {
			rt.FloorPrice = *p.FloorPrice
		}
		if p.CeilingPrice != nil {
			rt.CeilingPrice = p.CeilingPrice
		}
		if p.Description != nil {
			rt.Description = p.Description
		}
		return tx.Update(&rt)
	})
	if err != nil {
		log.Printf("⬅️ RoomCatalogService.UpdateRoomType error: %v", err)
		return models.RoomTypeView{}, err
	}
	return rt.View(), nil
}

// ----------------------------------------------------
// DELETE: refused by the store while rooms reference the type
// ----------------------------------------------------
func (s *RoomCatalogService) DeleteRoomType(ctx context.Context, id string) (bool, error) {
	log.Printf("➡️ RoomCatalogService.DeleteRoomType id=%s", id)

	var deleted bool
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		var err error
		deleted, err = tx.Delete(&models.RoomType{}, id)
		return err
	})
	if errors.Is(err, storage.ErrReferenced) {
		log.Printf("⚠️ RoomCatalogService.DeleteRoomType blocked id=%s", id)
		return false, ErrRoomTypeInUse
	}
	if err != nil {
		return false, err
	}

	log.Printf("⬅️ RoomCatalogService.DeleteRoomType id=%s deleted=%t", id, deleted)
	return deleted, nil
}

// roomTypeByName resolves a type by name inside an open transaction.
func (s *RoomCatalogService) roomTypeByName(tx *storage.Store, name string) (models.RoomType, error) {
	var rt models.RoomType
	found, err := tx.FindOne(&rt, storage.Where("name = ?", name))
	if err != nil {
		return rt, err
	}
	if !found {
		return rt, fmt.Errorf("%w: %q", ErrRoomTypeNotFound, name)
	}
	return rt, nil
}

func roomTypeViews(types []models.RoomType) []models.RoomTypeView {
	out := make([]models.RoomTypeView, 0, len(types))
	for _, t := range types {
		out = append(out, t.View())
	}
	return out
}
