package entities

import (
	"slices"
	"time"
)

// Role is attached to a user record when it is built and never re-derived
// from the shape of the record.
type Role string

const (
	RoleHomeowner Role = "homeowner"
	RoleInstaller Role = "installer"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleHomeowner, RoleInstaller, RoleAdmin:
		return true
	}
	return false
}

type UserStatus string

const (
	UserStatusActive              UserStatus = "active"
	UserStatusOnHold              UserStatus = "on_hold"
	UserStatusDeleted             UserStatus = "deleted"
	UserStatusPendingVerification UserStatus = "pending_verification"
)

type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AdminPermissions is only present on admin records.
type AdminPermissions struct {
	CanLoginAs  bool     `json:"can_login_as"`
	VisibleTabs []string `json:"visible_tabs"`
}

// User is a homeowner, installer or admin.
//
// Role-specific attributes:
//   - installers carry ServiceCounties (lead distribution) and RegistrationNumber
//   - admins carry Permissions
type User struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Role      Role        `json:"role"`
	Contact   ContactInfo `json:"contact"`
	Status    UserStatus  `json:"status"`
	CreatedAt time.Time   `json:"created_at"`

	ServiceCounties    []string `json:"service_counties,omitempty"`
	RegistrationNumber string   `json:"registration_number,omitempty"`

	Permissions *AdminPermissions `json:"permissions,omitempty"`
}

func NewHomeowner(id, name string, contact ContactInfo) User {
	return User{ID: id, Name: name, Role: RoleHomeowner, Contact: contact, Status: UserStatusActive, CreatedAt: time.Now().UTC()}
}

func NewInstaller(id, name string, contact ContactInfo, serviceCounties []string) User {
	return User{
		ID:              id,
		Name:            name,
		Role:            RoleInstaller,
		Contact:         contact,
		Status:          UserStatusActive,
		CreatedAt:       time.Now().UTC(),
		ServiceCounties: slices.Clone(serviceCounties),
	}
}

func NewAdmin(id, name, email string, permissions AdminPermissions) User {
	return User{
		ID:          id,
		Name:        name,
		Role:        RoleAdmin,
		Contact:     ContactInfo{Email: email},
		Status:      UserStatusActive,
		CreatedAt:   time.Now().UTC(),
		Permissions: &permissions,
	}
}

// RoleOf classifies a user record. Every record built through the
// constructors above carries exactly one role.
func RoleOf(u User) Role {
	return u.Role
}

// Actor is the authenticated caller of an operation, resolved once from the
// user directory and passed explicitly.
type Actor struct {
	ID              string
	Role            Role
	ServiceCounties []string
}

func (u User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role, ServiceCounties: slices.Clone(u.ServiceCounties)}
}

func (a Actor) Is(role Role) bool {
	return a.Role == role
}

// ServesCounty reports whether an installer actor has county in its service area.
func (a Actor) ServesCounty(county string) bool {
	return a.Role == RoleInstaller && slices.Contains(a.ServiceCounties, county)
}

func (u User) ServesCounty(county string) bool {
	return u.Role == RoleInstaller && slices.Contains(u.ServiceCounties, county)
}
