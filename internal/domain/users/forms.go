package users

import (
	"strings"

	"jaanmak/internal/validate"
)

type Credentials struct {
	Email    string `json:"email" validate:"required,email" msg:"Please enter a valid email address."`
	Password string `json:"password" validate:"min=6" msg:"Password must be at least 6 characters long."`
}

func (c Credentials) Validate() error { return validate.Struct(c) }

type Registration struct {
	Name     string `json:"name" validate:"required" msg:"Full Name is required."`
	Email    string `json:"email" validate:"required,email" msg:"Please enter a valid email address."`
	Password string `json:"password" validate:"min=6" msg:"Password must be at least 6 characters long."`
}

func (r Registration) Validate() error {
	return validate.Struct(r.Normalized())
}

// Normalized trims the display name and email.
func (r Registration) Normalized() Registration {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	return r
}

type Verification struct {
	Email string `json:"email" validate:"required,email" msg:"Please enter a valid email address."`
	Pin   string `json:"pin" validate:"required" msg:"Please enter the verification code sent to your email."`
}

func (v Verification) Validate() error { return validate.Struct(v) }

// ResetRequest asks for a password reset code.
type ResetRequest struct {
	Email string `json:"email" validate:"required,email" msg:"Please enter a valid email address."`
}

func (r ResetRequest) Validate() error { return validate.Struct(r) }

type PasswordReset struct {
	Email    string `json:"email" validate:"required,email" msg:"Please enter a valid email address."`
	Pin      string `json:"pin" validate:"required" msg:"Please enter the reset code sent to your email."`
	Password string `json:"password" validate:"min=6" msg:"Password must be at least 6 characters long."`
}

func (r PasswordReset) Validate() error { return validate.Struct(r) }
