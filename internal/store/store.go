// Package store is the storefront's application state: cart, wishlist and
// session, which only exist here, plus mirrors of the server's catalog,
// orders and users.
//
// The store is owned by the composition root and handed to whatever needs
// it. Every method is safe for concurrent use. Locks are never held across
// a network call; a refresh that returns after logout is discarded.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"jaanmak/internal/auth"
	"jaanmak/internal/domain/carts"
	"jaanmak/internal/domain/catalog"
	"jaanmak/internal/domain/orders"
	"jaanmak/internal/domain/users"
	"jaanmak/internal/domain/wishlist"
	"jaanmak/internal/persist"
)

var (
	ErrNotAuthenticated = errors.New("store: please log in first")
	ErrSessionExpired   = errors.New("store: session expired, please log in again")
	ErrForbidden        = errors.New("store: access denied")
	ErrNotCancellable   = errors.New("store: order can no longer be cancelled")
)

type ProductService interface {
	Products(ctx context.Context) ([]catalog.Product, error)
	CreateProduct(ctx context.Context, token string, in catalog.Input) (catalog.Product, error)
	UpdateProduct(ctx context.Context, token string, p catalog.Product) (catalog.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error
}

type AccountService interface {
	UpdateProfile(ctx context.Context, token string, u users.ProfileUpdate) (users.Patch, error)
	Users(ctx context.Context, token string) ([]users.User, error)
	DeleteUser(ctx context.Context, token, id string) error
}

type OrderService interface {
	Orders(ctx context.Context, token string) ([]orders.Order, error)
	MyOrders(ctx context.Context, token string) ([]orders.Order, error)
	UpdateOrderStatus(ctx context.Context, token, id string, status orders.Status) (orders.StatusPatch, error)
	CancelOrder(ctx context.Context, token, id string) error
}

// Backend is the remote API as the store sees it.
type Backend interface {
	ProductService
	AccountService
	OrderService
}

type Store struct {
	backend Backend
	storage persist.Storage
	logger  *zap.SugaredLogger
	now     func() time.Time

	mu       sync.Mutex
	cart     *carts.Ledger
	wishlist *wishlist.Set
	user     *users.User
	products *catalog.Cache
	orders   []orders.Order
	allUsers []users.User

	// generation changes on every login and logout. Results of a request
	// started under an older generation are dropped.
	generation uint64

	bg sync.WaitGroup
}

// New restores the persisted cart, wishlist and session. An unreadable
// record is logged and the store starts empty.
func New(backend Backend, storage persist.Storage, logger *zap.SugaredLogger) *Store {
	if storage == nil {
		storage = &persist.Memory{}
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	snap, err := storage.Load()
	if err != nil {
		logger.Warnw("could not restore saved state, starting empty", "error", err)
		snap = persist.Snapshot{}
	}

	return &Store{
		backend:  backend,
		storage:  storage,
		logger:   logger,
		now:      time.Now,
		cart:     carts.Restore(snap.Cart),
		wishlist: wishlist.Restore(snap.Wishlist),
		user:     snap.User,
		products: catalog.NewCache(),
	}
}

// Wait blocks until background refreshes started by Login finish.
func (s *Store) Wait() {
	s.bg.Wait()
}

// persistLocked writes the durable slice. Callers hold s.mu.
func (s *Store) persistLocked() error {
	snap := persist.Snapshot{
		Cart:     s.cart.Items(),
		Wishlist: s.wishlist.Items(),
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	if err := s.storage.Save(snap); err != nil {
		s.logger.Errorw("failed to persist state", "error", err)
		return err
	}
	return nil
}

type credential struct {
	token      string
	admin      bool
	generation uint64
}

// credentialLocked checks the session. Callers hold s.mu.
func (s *Store) credentialLocked() (credential, error) {
	if s.user == nil || !s.user.HasToken() {
		return credential{}, ErrNotAuthenticated
	}
	if auth.Expired(s.user.Token, s.now()) {
		return credential{}, ErrSessionExpired
	}
	return credential{token: s.user.Token, admin: s.user.Admin(), generation: s.generation}, nil
}

func (s *Store) credential() (credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credentialLocked()
}

func (s *Store) adminCredential() (credential, error) {
	c, err := s.credential()
	if err != nil {
		return c, err
	}
	if !c.admin {
		return credential{}, ErrForbidden
	}
	return c, nil
}
