package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	RoleAdministrator = "administrator"
	RoleAdmin         = "admin"
	RoleEmployee      = "employee"
)

// Admin console modules guarded by the role gate.
const (
	ModuleEmployees   = "employees"
	ModuleAttractions = "attractions"
	ModuleRates       = "rates"
	ModuleContacts    = "contacts"
)

var fullAccess = []string{ModuleEmployees, ModuleAttractions, ModuleRates, ModuleContacts}

var restrictedAccess = []string{ModuleAttractions, ModuleRates, ModuleContacts}

// ModulesForRole returns the set of modules a role may open.
// Unrecognized roles deliberately get the restricted set, not an empty one:
// a typo'd role behaves like the least-privileged known role.
func ModulesForRole(role string) []string {
	switch role {
	case RoleAdministrator, RoleAdmin:
		return fullAccess
	default:
		return restrictedAccess
	}
}

// HasModuleAccess reports whether the role may open the named module.
func HasModuleAccess(role, module string) bool {
	for _, m := range ModulesForRole(role) {
		if m == module {
			return true
		}
	}
	return false
}

type Employee struct {
	ID            uuid.UUID `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Position      string    `json:"position"`
	Role          string    `json:"role"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	ImageUploadID string    `json:"image_upload_id,omitempty"`
	PasswordHash  string    `json:"-"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	RefreshToken  string    `json:"-"`
}

// Session is the cached profile of an authenticated employee. It lives in
// Redis for the lifetime of the refresh token and is what the role gate
// consults.
type Session struct {
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	ImageURL    string    `json:"image_url"`
}

type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

type CreateEmployeeRequest struct {
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
	Position      string `json:"position" validate:"required"`
	Role          string `json:"role" validate:"required,oneof=administrator admin employee"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	ImageUploadID string `json:"image_upload_id"`
}

type UpdateEmployeeRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email" validate:"omitempty,email"`
	Password      string `json:"password" validate:"omitempty,min=6"`
	Position      string `json:"position"`
	Role          string `json:"role" validate:"omitempty,oneof=administrator admin employee"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	ImageUploadID string `json:"image_upload_id"`
}

type JWTClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

type BlacklistedToken struct {
	ID        uint
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
