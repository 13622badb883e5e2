package users

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity record keyed by the email the auth provider
// asserts. The primary key is a generated UUID; email is a separate
// unique column and is never used as the identifier.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Name      *string   `json:"name"`
	Password  string    `json:"-" gorm:"default:''"` // empty for provider-created accounts
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) ToResponse() UserResponse {
	name := ""
	if u.Name != nil {
		name = *u.Name
	}
	return UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type CreateUserRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Name  *string `json:"name" binding:"omitempty,max=255"`
}

type UpdateUserRequest struct {
	Email *string `json:"email" binding:"omitempty,email"`
	Name  *string `json:"name" binding:"omitempty,max=255"`
}
