// ABOUTME: User model and partial-update patch for profile data.
// ABOUTME: Username and email are unique across the store.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the owner of all other records. Every other entity carries a
// UserID referencing one of these.
type User struct {
	ID               uuid.UUID
	Username         string
	Email            string
	Name             string
	DateOfBirth      *Date
	IsPregnant       bool
	PregnancyDueDate *Date
	CreatedAt        time.Time
}

// NewUser creates a new User with generated UUID and current timestamp.
func NewUser(username, email, name string) *User {
	return &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// WithDateOfBirth sets the date of birth.
func (u *User) WithDateOfBirth(d Date) *User {
	u.DateOfBirth = &d
	return u
}

// WithPregnancy marks the user pregnant with the given due date.
func (u *User) WithPregnancy(dueDate Date) *User {
	u.IsPregnant = true
	u.PregnancyDueDate = &dueDate
	return u
}

// UserPatch describes a partial update to a User. Nil fields are left
// unchanged; set fields replace the stored value.
type UserPatch struct {
	Name             *string
	DateOfBirth      *Date
	IsPregnant       *bool
	PregnancyDueDate *Date
}
