package users

import (
	"time"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// RoleFor derives the local role from the backend's isAdmin flag.
func RoleFor(isAdmin bool) Role {
	if isAdmin {
		return RoleAdmin
	}
	return RoleCustomer
}

// User is both the signed-in session and an entry in the admin user list.
// Listed users carry no token.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Token     string     `json:"token,omitempty"`
	Role      Role       `json:"role"`
	IsAdmin   *bool      `json:"isAdmin,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty"`
	City      string     `json:"city,omitempty"`
	State     string     `json:"state,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

func (u User) Admin() bool {
	return u.Role == RoleAdmin || (u.IsAdmin != nil && *u.IsAdmin)
}

func (u User) HasToken() bool { return u.Token != "" }

// ProfileUpdate is the partial set of fields a customer may change.
// Nil fields are not sent.
type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	City     *string `json:"city,omitempty"`
	State    *string `json:"state,omitempty"`
	Password *string `json:"password,omitempty"`
}

// Patch carries whichever user fields the server returned. Nil means the
// server said nothing about that field.
type Patch struct {
	ID      *string
	Name    *string
	Email   *string
	Token   *string
	IsAdmin *bool
	Phone   *string
	Address *string
	City    *string
	State   *string
}

// Apply merges the server's fields into u. The server wins for every field
// it returned; an empty token never replaces a present one.
func (p Patch) Apply(u User) User {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&u.ID, p.ID)
	set(&u.Name, p.Name)
	set(&u.Email, p.Email)
	set(&u.Phone, p.Phone)
	set(&u.Address, p.Address)
	set(&u.City, p.City)
	set(&u.State, p.State)
	if p.Token != nil && *p.Token != "" {
		u.Token = *p.Token
	}
	if p.IsAdmin != nil {
		admin := *p.IsAdmin
		u.IsAdmin = &admin
		u.Role = RoleFor(admin)
	}
	return u
}

func String(v string) *string { return &v }
