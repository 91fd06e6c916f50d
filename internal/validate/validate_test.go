package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type form struct {
	Phone string `validate:"ngphone" msg:"bad phone"`
	Name  string `validate:"required"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(form{Phone: "08031234567", Name: "Ada"}))

	err := Struct(form{Phone: "0803", Name: "Ada"})
	var ve *Error
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Phone", ve.Field)
	assert.Equal(t, "bad phone", ve.Message)

	err = Struct(&form{Phone: "0803123456"})
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Name", ve.Field)
	assert.Contains(t, ve.Message, "required")
}

func TestPhonePattern(t *testing.T) {
	for _, ok := range []string{"0803123456", "08031234567"} {
		assert.NoError(t, Struct(form{Phone: ok, Name: "x"}), ok)
	}
	for _, bad := range []string{"", "080312345", "080312345678", "0803-123-456", "+2348031234"} {
		assert.Error(t, Struct(form{Phone: bad, Name: "x"}), bad)
	}
}
