package store

import (
	"context"
	"errors"

	"github.com/agenda-ufu/agenda/internal/models"
	"gorm.io/gorm"
)

var ErrDuplicateEmail = errors.New("email already registered")

type Users struct {
	db *gorm.DB
}

func NewUsers(conn *gorm.DB) *Users {
	return &Users{db: conn}
}

func (u *Users) Create(ctx context.Context, user *models.User) error {
	err := u.db.WithContext(ctx).Create(user).Error

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}

	return err
}

func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := u.db.WithContext(ctx).Where("email = ?", email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (u *Users) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User

	err := u.db.WithContext(ctx).Where("id = ?", id).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// Delete removes the user row; owned resources go with it through the
// cascade constraints declared on the model.
func (u *Users) Delete(ctx context.Context, id string) error {
	result := u.db.WithContext(ctx).Where("id = ?", id).Delete(&models.User{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
