package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr string
	}{
		{name: "valid user", user: User{Username: "maria", Role: RoleUser}},
		{name: "valid admin", user: User{Username: "root", Role: RoleAdmin}},
		{name: "missing username", user: User{Role: RoleUser}, wantErr: "username is required"},
		{name: "unknown role", user: User{Username: "maria", Role: "customer"}, wantErr: "invalid role: customer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestUser_BeforeCreateDefaults(t *testing.T) {
	user := &User{Username: "maria"}

	assert.NoError(t, user.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, RoleUser, user.Role)
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.IsAdmin())
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&User{Username: "root", Role: RoleAdmin}).IsAdmin())
}
