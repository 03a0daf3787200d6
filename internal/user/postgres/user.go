package postgres

import (
	"errors"

	"gorm.io/gorm"

	userDatamodel "github.com/frahmantamala/task-management/internal/core/datamodel/user"
	"github.com/frahmantamala/task-management/internal/user"
)

// UserRepository implements the user.Repository interface using GORM
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(userID int64) (*user.User, error) {
	var rec userDatamodel.User
	if err := r.db.Where("id = ?", userID).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return user.FromDataModel(&rec), nil
}

func (r *UserRepository) ListByRole(role string) ([]*user.User, error) {
	var recs []*userDatamodel.User
	err := r.db.Where("role = ?", role).
		Order("name ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return user.FromDataModelSlice(recs), nil
}
