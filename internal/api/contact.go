package api

import (
	"context"
	"net/http"
	"strings"

	"jaanmak/internal/validate"
)

// ContactMessage is the public contact form. The server relays it by email.
type ContactMessage struct {
	Name    string `json:"name" validate:"required" msg:"Please enter your name."`
	Email   string `json:"email" validate:"required,email" msg:"Please enter a valid email address."`
	Message string `json:"message" validate:"required" msg:"Please enter a message."`
}

// Normalized trims every field.
func (m ContactMessage) Normalized() ContactMessage {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Message = strings.TrimSpace(m.Message)
	return m
}

func (m ContactMessage) Validate() error {
	return validate.Struct(m.Normalized())
}

func (c *Client) SendContact(ctx context.Context, m ContactMessage) error {
	m = m.Normalized()
	if err := validate.Struct(m); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/email", "", m, nil)
}
