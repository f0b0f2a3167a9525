package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/inventory-management/internal"
	"github.com/frahmantamala/inventory-management/internal/auth"
	userDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetCredentials(username string) (*auth.Credentials, error) {
	var u userDatamodel.User
	err := r.db.Where("username = ?", username).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrInvalidCredentials
		}
		return nil, err
	}

	return &auth.Credentials{
		UserID:       u.UserID,
		Username:     u.Username,
		Role:         u.Role,
		PasswordHash: u.Password,
	}, nil
}
