package user

import (
	"time"

	userDatamodel "github.com/frahmantamala/task-management/internal/core/datamodel/user"
)

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Department   *string   `json:"department,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromDataModel(rec *userDatamodel.User) *User {
	return &User{
		ID:           rec.ID,
		Name:         rec.Name,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		Role:         rec.Role,
		Department:   rec.Department,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

func FromDataModelSlice(recs []*userDatamodel.User) []*User {
	result := make([]*User, len(recs))
	for i, rec := range recs {
		result[i] = FromDataModel(rec)
	}
	return result
}
