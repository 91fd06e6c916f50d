package store

import (
	"context"

	"jaanmak/internal/domain/users"
)

// Login replaces the session and refreshes orders in the background. The
// refresh outlives ctx's cancellation; use Wait to join it.
func (s *Store) Login(ctx context.Context, u users.User) error {
	if u.Role == "" {
		u.Role = users.RoleFor(u.IsAdmin != nil && *u.IsAdmin)
	}

	s.mu.Lock()
	s.user = &u
	s.generation++
	s.orders = nil
	s.allUsers = nil
	err := s.persistLocked()
	s.mu.Unlock()

	bg := context.WithoutCancel(ctx)
	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		s.RefreshOrders(bg)
	}()
	return err
}

// Logout drops the session and every cache that depended on it.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.generation++
	s.orders = nil
	s.allUsers = nil
	return s.persistLocked()
}

func (s *Store) CurrentUser() (users.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return users.User{}, false
	}
	return *s.user, true
}

// UpdateProfile sends the changed fields and merges the server's answer
// into the session, token included.
func (s *Store) UpdateProfile(ctx context.Context, upd users.ProfileUpdate) (users.User, error) {
	cred, err := s.credential()
	if err != nil {
		return users.User{}, err
	}

	patch, err := s.backend.UpdateProfile(ctx, cred.token, upd)
	if err != nil {
		s.logger.Errorw("failed to update profile", "error", err)
		return users.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil || s.generation != cred.generation {
		return users.User{}, ErrNotAuthenticated
	}
	updated := patch.Apply(*s.user)
	s.user = &updated
	return updated, s.persistLocked()
}
