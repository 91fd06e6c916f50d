// Package persist keeps the durable slice of app state: the cart, the
// wishlist and the signed-in user. Catalog and order caches are never
// written; they are refetched every session.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"

	"jaanmak/internal/domain/carts"
	"jaanmak/internal/domain/catalog"
	"jaanmak/internal/domain/users"
)

// Key names the single stored record.
const Key = "jaanmak-storage"

const version = 0

type Snapshot struct {
	Cart     []carts.Item      `json:"cart"`
	Wishlist []catalog.Product `json:"wishlist"`
	User     *users.User       `json:"user"`
}

type envelope struct {
	State   Snapshot `json:"state"`
	Version int      `json:"version"`
}

// Storage reads and writes the record. Load on an empty store returns a
// zero Snapshot and no error.
type Storage interface {
	Load() (Snapshot, error)
	Save(Snapshot) error
}

func Encode(s Snapshot) ([]byte, error) {
	if s.Cart == nil {
		s.Cart = []carts.Item{}
	}
	if s.Wishlist == nil {
		s.Wishlist = []catalog.Product{}
	}
	return json.Marshal(envelope{State: s, Version: version})
}

// Decode parses a stored record. The cart is re-normalized so a hand
// edited or older record cannot smuggle in duplicate or empty lines.
func Decode(raw []byte) (Snapshot, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Snapshot{}, fmt.Errorf("persist: decode %s: %w", Key, err)
	}
	s := env.State
	s.Cart = carts.Restore(s.Cart).Items()
	if s.User != nil && s.User.ID == "" && s.User.Token == "" {
		s.User = nil
	}
	return s, nil
}

var ErrUnknownDriver = errors.New("persist: unknown storage driver")

// Open returns the backend named by driver: file, sqlite or memory.
func Open(driver, path string) (Storage, error) {
	switch driver {
	case "", "file":
		return NewFileStore(path), nil
	case "sqlite":
		st, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return st, nil
	case "memory":
		return &Memory{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
}
