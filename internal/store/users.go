package store

import (
	"context"

	"jaanmak/internal/domain/users"
)

// RefreshUsers fills the admin user list. Failures are logged.
func (s *Store) RefreshUsers(ctx context.Context) {
	cred, err := s.adminCredential()
	if err != nil {
		s.logger.Warnw("skipping user refresh", "error", err)
		return
	}
	list, err := s.backend.Users(ctx, cred.token)
	if err != nil {
		s.logger.Errorw("failed to fetch users", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != cred.generation {
		return
	}
	s.allUsers = list
}

func (s *Store) AllUsers() []users.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]users.User(nil), s.allUsers...)
}

// DeleteUser removes an account and, once the server confirms, drops it
// from the list.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	cred, err := s.adminCredential()
	if err != nil {
		return err
	}
	if err := s.backend.DeleteUser(ctx, cred.token, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.allUsers[:0:0]
	for _, u := range s.allUsers {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.allUsers = kept
	return nil
}
