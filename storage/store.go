// Package storage is the transactional record store shared by the services.
// It deals in gorm models and knows nothing about the hotel rules on top.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrReferenced is returned by Delete when dependent rows still point at the record.
var ErrReferenced = errors.New("record is referenced by dependent rows")

// Scope narrows a query (filters, joins, preloads, ordering).
type Scope = func(*gorm.DB) *gorm.DB

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Transaction runs fn against a store bound to a single transaction. Any error
// returned by fn rolls the whole transaction back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// Get loads the record with the given id. A missing row is reported as false, not as an error.
func (s *Store) Get(dest any, id string, scopes ...Scope) (bool, error) {
	all := append(append([]Scope{}, scopes...), Where("id = ?", id))
	return s.FindOne(dest, all...)
}

// FindOne loads the first record matching the scopes into dest.
func (s *Store) FindOne(dest any, scopes ...Scope) (bool, error) {
	res := s.db.Scopes(scopes...).Limit(1).Find(dest)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Find loads every record matching the scopes into dest (a pointer to a slice).
func (s *Store) Find(dest any, scopes ...Scope) error {
	return s.db.Scopes(scopes...).Find(dest).Error
}

func (s *Store) Count(model any, scopes ...Scope) (int64, error) {
	var n int64
	err := s.db.Model(model).Scopes(scopes...).Count(&n).Error
	return n, err
}

// Insert writes a new record. Associations are never written through; only FK columns are.
func (s *Store) Insert(v any) error {
	return s.db.Omit(clause.Associations).Create(v).Error
}

// Update writes every column of an existing record.
func (s *Store) Update(v any) error {
	return s.db.Omit(clause.Associations).Save(v).Error
}

// Delete removes the record with the given id and reports whether a row was removed.
// FK violations come back wrapped in ErrReferenced.
func (s *Store) Delete(model any, id string) (bool, error) {
	res := s.db.Delete(model, "id = ?", id)
	if res.Error != nil {
		if IsForeignKeyViolation(res.Error) {
			return false, fmt.Errorf("%w: %v", ErrReferenced, res.Error)
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IsForeignKeyViolation recognises FK failures from the mysql and sqlite drivers.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		// 1451: parent row referenced, 1452: child row without parent
		return merr.Number == 1451 || merr.Number == 1452
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key")
}

func Where(query any, args ...any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(query, args...)
	}
}

func Preload(path string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload(path)
	}
}

func Joins(query string, args ...any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins(query, args...)
	}
}

func OrderBy(order string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(order)
	}
}
