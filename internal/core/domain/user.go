package domain

import (
	"errors"
	"time"
)

// User types accepted at registration.
const (
	UserTypeBuyer  = "buyer"
	UserTypeSeller = "seller"
	UserTypeAgent  = "agent"
)

// Account lifecycle values.
const (
	UserStatusActive     = "active"
	VerificationPending  = "pending"
	VerificationVerified = "verified"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("token missing")
	ErrInvalidToken       = errors.New("token invalid")
)

// User models a registered account: buyers, sellers and agents share one
// collection and are discriminated by UserType.
type User struct {
	ID                 string    `json:"id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	Email              string    `json:"email"`
	PasswordHash       string    `json:"-"`
	UserType           string    `json:"user_type"`
	Status             string    `json:"status"`
	VerificationStatus string    `json:"verification_status"`
	PhoneNumber        string    `json:"phone_number,omitempty"`
	Agency             string    `json:"agency,omitempty"`
	Experience         string    `json:"experience,omitempty"`
	LicenseNumber      string    `json:"license_number,omitempty"`
	ProfileImageURL    string    `json:"profile_image_url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// FullName joins first and last name for display (owner blocks, directory).
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// ValidUserType reports whether t is one of the accepted registration types.
func ValidUserType(t string) bool {
	switch t {
	case UserTypeBuyer, UserTypeSeller, UserTypeAgent:
		return true
	}
	return false
}

// AgentProfile is the fixed projection returned by the agent directory.
type AgentProfile struct {
	ID                 string `json:"id"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Email              string `json:"email"`
	PhoneNumber        string `json:"phone_number"`
	Agency             string `json:"agency"`
	Experience         string `json:"experience"`
	LicenseNumber      string `json:"license_number"`
	VerificationStatus string `json:"verification_status"`
	ProfileImageURL    string `json:"profile_image_url"`
}
