package dto

import (
	"time"

	"github.com/yukikurage/user-task-api/internal/models"
	"github.com/yukikurage/user-task-api/internal/services"
)

// CreateUserRequest is the body of POST /user/create
type CreateUserRequest struct {
	Username  string `json:"username" binding:"required,max=50"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age" binding:"gte=0"`
}

// UpdateUserRequest is the body of PUT /user/update
type UpdateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age" binding:"gte=0"`
}

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Age       int       `json:"age"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToInput converts the request into service input
func (r CreateUserRequest) ToInput() services.CreateUserInput {
	return services.CreateUserInput{
		Username:  r.Username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Age:       r.Age,
	}
}

// ToInput converts the request into service input
func (r UpdateUserRequest) ToInput() services.UpdateUserInput {
	return services.UpdateUserInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Age:       r.Age,
	}
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Age:       user.Age,
		Slug:      user.Slug,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserDTOs converts a slice of users, never returning nil
func ToUserDTOs(users []models.User) []UserDTO {
	items := make([]UserDTO, len(users))
	for i, user := range users {
		items[i] = ToUserDTO(user)
	}
	return items
}
