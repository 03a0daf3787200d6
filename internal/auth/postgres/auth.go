package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/task-management/internal/auth"
	userDatamodel "github.com/frahmantamala/task-management/internal/core/datamodel/user"
)

// Repository is the credential store backed by the users table.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func toAuthUser(rec *userDatamodel.User) *auth.User {
	return &auth.User{
		ID:         rec.ID,
		Name:       rec.Name,
		Email:      rec.Email,
		Role:       rec.Role,
		Department: rec.Department,
	}
}

// GetByEmail returns the user and its password hash for credential checks.
func (r *Repository) GetByEmail(email string) (*auth.User, string, error) {
	var rec userDatamodel.User
	if err := r.db.Where("email = ?", email).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errors.New("user not found")
		}
		return nil, "", err
	}
	return toAuthUser(&rec), rec.PasswordHash, nil
}

func (r *Repository) GetByID(userID int64) (*auth.User, error) {
	var rec userDatamodel.User
	if err := r.db.Where("id = ?", userID).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return toAuthUser(&rec), nil
}

func (r *Repository) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&userDatamodel.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new employee account.
func (r *Repository) Create(name, email, passwordHash string) (*auth.User, error) {
	rec := &userDatamodel.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         auth.RoleEmployee,
	}
	if err := r.db.Create(rec).Error; err != nil {
		return nil, err
	}
	return toAuthUser(rec), nil
}
