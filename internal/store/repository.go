package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound covers both a missing record and a record owned by someone
// else. Callers cannot tell the two apart.
var ErrNotFound = errors.New("record not found")

// Repository implements owner-scoped CRUD shared by every resource kind.
// Reads, updates and deletes always filter by id and owner together.
type Repository[T any] struct {
	db *gorm.DB
}

func NewRepository[T any](conn *gorm.DB) *Repository[T] {
	return &Repository[T]{db: conn}
}

func (r *Repository[T]) List(ctx context.Context, ownerID string) ([]T, error) {
	records := make([]T, 0)

	if err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *Repository[T]) Get(ctx context.Context, id uint, ownerID string) (*T, error) {
	var record T

	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&record).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &record, nil
}

func (r *Repository[T]) Create(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Save overwrites every column of an existing record.
func (r *Repository[T]) Save(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *Repository[T]) Delete(ctx context.Context, id uint, ownerID string) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(new(T))

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
