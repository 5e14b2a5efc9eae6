package shared

import (
	"fmt"
	"strings"
)

// UserID is a value object identifying the account that owns a country.
// Identities are issued by the external auth layer and are opaque here.
type UserID struct {
	value string
}

// NewUserID creates a new UserID value object
func NewUserID(id string) (UserID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return UserID{}, fmt.Errorf("user_id cannot be empty")
	}
	return UserID{value: id}, nil
}

// MustNewUserID creates a UserID, panicking if invalid.
// Use this only for values already validated (e.g., read from the database)
func MustNewUserID(id string) UserID {
	userID, err := NewUserID(id)
	if err != nil {
		panic(err)
	}
	return userID
}

// Value returns the raw identifier
func (u UserID) Value() string {
	return u.value
}

func (u UserID) String() string {
	return u.value
}

// Equals checks if two UserIDs are equal
func (u UserID) Equals(other UserID) bool {
	return u.value == other.value
}

// IsZero checks if the UserID is uninitialized
func (u UserID) IsZero() bool {
	return u.value == ""
}
