package response

import (
	"time"

	"solar_portal/internal/domain/entities"
)

type ContactResponse struct {
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// UserResponse expects the phone gate to have been applied already.
type UserResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Role               string          `json:"role"`
	Status             string          `json:"status"`
	Contact            ContactResponse `json:"contact"`
	ServiceCounties    []string        `json:"service_counties,omitempty"`
	RegistrationNumber string          `json:"registration_number,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

func FromContact(c entities.ContactInfo) ContactResponse {
	return ContactResponse{Email: c.Email, Phone: c.Phone}
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Name:               u.Name,
		Role:               string(entities.RoleOf(u)),
		Status:             string(u.Status),
		Contact:            FromContact(u.Contact),
		ServiceCounties:    u.ServiceCounties,
		RegistrationNumber: u.RegistrationNumber,
		CreatedAt:          u.CreatedAt,
	}
}

func FromUsers(us []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(us))
	for _, u := range us {
		out = append(out, FromUser(u))
	}
	return out
}
