package users

import (
	"errors"
	"testing"

	"jaanmak/internal/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchApply(t *testing.T) {
	current := User{ID: "u1", Name: "Ada", Email: "ada@example.com", Token: "tok-1", Role: RoleCustomer, City: "Ikeja"}

	t.Run("server fields win", func(t *testing.T) {
		admin := true
		got := Patch{Name: String("Ada L."), City: String(""), IsAdmin: &admin}.Apply(current)
		assert.Equal(t, "Ada L.", got.Name)
		assert.Equal(t, "", got.City)
		assert.Equal(t, RoleAdmin, got.Role)
		assert.Equal(t, "tok-1", got.Token)
		assert.Equal(t, "ada@example.com", got.Email)
	})

	t.Run("rotated token replaces old", func(t *testing.T) {
		got := Patch{Token: String("tok-2")}.Apply(current)
		assert.Equal(t, "tok-2", got.Token)
	})

	t.Run("empty token keeps old", func(t *testing.T) {
		got := Patch{Token: String("")}.Apply(current)
		assert.Equal(t, "tok-1", got.Token)
	})
}

func TestAdmin(t *testing.T) {
	yes := true
	assert.True(t, User{Role: RoleAdmin}.Admin())
	assert.True(t, User{Role: RoleCustomer, IsAdmin: &yes}.Admin())
	assert.False(t, User{Role: RoleCustomer}.Admin())
}

func TestForms(t *testing.T) {
	var ve *validate.Error

	err := Credentials{Email: "nope", Password: "secret1"}.Validate()
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Please enter a valid email address.", ve.Message)

	err = Credentials{Email: "a@b.co", Password: "123"}.Validate()
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Password must be at least 6 characters long.", ve.Message)

	err = Registration{Name: "   ", Email: "a@b.co", Password: "secret1"}.Validate()
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Full Name is required.", ve.Message)

	assert.NoError(t, PasswordReset{Email: "a@b.co", Pin: "1234", Password: "secret1"}.Validate())
	assert.Error(t, Verification{Email: "a@b.co"}.Validate())
}
