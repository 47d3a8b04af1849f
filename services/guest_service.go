package services

import (
	"context"
	"errors"
	"log"

	"hotel-records/models"
	"hotel-records/storage"
	"hotel-records/utils"
)

type GuestService struct {
	Store *storage.Store
}

func NewGuestService(store *storage.Store) *GuestService {
	return &GuestService{Store: store}
}

type GuestInput struct {
	FirstName string
	LastName  string
	Address   string
	Mobile    string
	Password  string
	Role      string
}

type GuestPatch struct {
	FirstName *string
	LastName  *string
	Address   *string
	Mobile    *string
	Password  *string
	Role      *string
}

type GuestCriteria struct {
	ID        string
	FirstName string
	LastName  string
	Mobile    string
	Role      string
}

// ----------------------------------------------------
// CREATE: same (last name, first name, mobile) returns the existing guest
// ----------------------------------------------------
func (s *GuestService) Create(ctx context.Context, in GuestInput) (models.GuestView, Outcome, error) {
	log.Printf("➡️ GuestService.Create incoming: %s %s", in.FirstName, in.LastName)

	mobile := utils.FixedWidth(in.Mobile, models.MobileWidth)

	var (
		guest   models.Guest
		outcome = Created
	)
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		found, err := tx.FindOne(&guest,
			storage.Where("last_name = ? AND first_name = ? AND mobile = ?", in.LastName, in.FirstName, mobile),
		)
		if err != nil {
			return err
		}
		if found {
			outcome = FoundExisting
			return nil
		}

		guest = models.Guest{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Address:   in.Address,
			Mobile:    mobile,
			Password:  utils.FixedWidth(in.Password, models.PasswordWidth),
			Role:      in.Role,
		}
		return tx.Insert(&guest)
	})
	if err != nil {
		log.Printf("⬅️ GuestService.Create error: %v", err)
		return models.GuestView{}, outcome, err
	}

	log.Printf("⬅️ GuestService.Create result: id=%s outcome=%s", guest.ID, outcome)
	return guest.View(), outcome, nil
}

// ----------------------------------------------------
// GET BY ID
// ----------------------------------------------------
func (s *GuestService) GetByID(ctx context.Context, id string) (models.GuestView, bool, error) {
	log.Printf("➡️ GuestService.GetByID id=%s", id)

	var guest models.Guest
	var found bool
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		var err error
		found, err = tx.Get(&guest, id)
		return err
	})
	if err != nil || !found {
		return models.GuestView{}, false, err
	}
	return guest.View(), true, nil
}

func (s *GuestService) Search(ctx context.Context, c GuestCriteria) ([]models.GuestView, error) {
	scopes := []storage.Scope{}
	if c.ID != "" {
		scopes = append(scopes, storage.Where("id = ?", c.ID))
	}
	if c.LastName != "" {
		scopes = append(scopes, storage.Where("last_name = ?", c.LastName))
	}
	if c.FirstName != "" {
		scopes = append(scopes, storage.Where("first_name = ?", c.FirstName))
	}
	if c.Mobile != "" {
		scopes = append(scopes, storage.Where("mobile = ?", utils.FixedWidth(c.Mobile, models.MobileWidth)))
	}
	if c.Role != "" {
		scopes = append(scopes, storage.Where("role = ?", c.Role))
	}

	var guests []models.Guest
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		return tx.Find(&guests, scopes...)
	})
	if err != nil {
		return nil, err
	}

	out := make([]models.GuestView, 0, len(guests))
	for _, g := range guests {
		out = append(out, g.View())
	}
	return out, nil
}

// ----------------------------------------------------
// UPDATE
// ----------------------------------------------------
func (s *GuestService) Update(ctx context.Context, id string, p GuestPatch) (models.GuestView, error) {
	log.Printf("➡️ GuestService.Update id=%s", id)

	var guest models.Guest
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		found, err := tx.Get(&guest, id)
		if err != nil {
			return err
		}
		if !found {
			return ErrGuestNotFound
		}

		if p.FirstName != nil {
			guest.FirstName = *p.FirstName
		}
		if p.LastName != nil {
			guest.LastName = *p.LastName
		}
		if p.Address != nil {
			guest.Address = *p.Address
		}
		if p.Mobile != nil {
			guest.Mobile = utils.FixedWidth(*p.Mobile, models.MobileWidth)
		}
		if p.Password != nil {
			guest.Password = utils.FixedWidth(*p.Password, models.PasswordWidth)
		}
		if p.Role != nil {
			guest.Role = *p.Role
		}
		return tx.Update(&guest)
	})

	log.Printf("⬅️ GuestService.Update err=%v", err)
	if err != nil {
		return models.GuestView{}, err
	}
	return guest.View(), nil
}

// ----------------------------------------------------
// DELETE: no service-level guard; the store still refuses
// while reservations reference the guest
// ----------------------------------------------------
func (s *GuestService) Delete(ctx context.Context, id string) (bool, error) {
	log.Printf("➡️ GuestService.Delete id=%s", id)

	var deleted bool
	err := s.Store.Transaction(ctx, func(tx *storage.Store) error {
		var err error
		deleted, err = tx.Delete(&models.Guest{}, id)
		return err
	})
	if errors.Is(err, storage.ErrReferenced) {
		return false, ErrGuestInUse
	}
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// guestByID resolves a guest inside an open transaction.
func (s *GuestService) guestByID(tx *storage.Store, id string) (models.Guest, error) {
	var guest models.Guest
	found, err := tx.Get(&guest, id)
	if err != nil {
		return guest, err
	}
	if !found {
		return guest, ErrGuestNotFound
	}
	return guest, nil
}
