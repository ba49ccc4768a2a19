package models

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidScope = errors.New("scope must name a user or cover all users")

// Scope is the authorization boundary applied to every analytics query: one
// user's purchases, or every purchase in the store.
type Scope struct {
	UserID   uuid.UUID `json:"user_id,omitempty"`
	AllUsers bool      `json:"all_users"`
}

func UserScope(userID uuid.UUID) Scope {
	return Scope{UserID: userID}
}

func AllUsersScope() Scope {
	return Scope{AllUsers: true}
}

func (s Scope) Validate() error {
	if !s.AllUsers && s.UserID == uuid.Nil {
		return ErrInvalidScope
	}
	return nil
}

func (s Scope) String() string {
	if s.AllUsers {
		return "all"
	}
	return "user:" + s.UserID.String()
}
