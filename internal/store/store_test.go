package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaanmak/internal/domain/catalog"
	"jaanmak/internal/domain/orders"
	"jaanmak/internal/domain/users"
	"jaanmak/internal/persist"
)

type fakeBackend struct {
	mu sync.Mutex

	products    []catalog.Product
	productsErr error

	allOrders []orders.Order
	myOrders  []orders.Order
	// gate, when set, blocks order fetches until closed. started is
	// signalled as each fetch begins.
	gate    chan struct{}
	started chan struct{}

	statusErr  error
	statusResp orders.StatusPatch
	writeErr   error

	profile users.Patch
	users   []users.User

	calls []string
}

func (f *fakeBackend) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeBackend) called() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeBackend) Products(context.Context) ([]catalog.Product, error) {
	f.record("products")
	return f.products, f.productsErr
}

func (f *fakeBackend) CreateProduct(_ context.Context, _ string, in catalog.Input) (catalog.Product, error) {
	f.record("create-product")
	if f.writeErr != nil {
		return catalog.Product{}, f.writeErr
	}
	return catalog.Product{ID: "srv-" + in.Name, Name: in.Name, Price: in.Price}, nil
}

func (f *fakeBackend) UpdateProduct(_ context.Context, _ string, p catalog.Product) (catalog.Product, error) {
	f.record("update-product")
	if f.writeErr != nil {
		return catalog.Product{}, f.writeErr
	}
	p.Name += " (server)"
	return p, nil
}

func (f *fakeBackend) DeleteProduct(context.Context, string, string) error {
	f.record("delete-product")
	return f.writeErr
}

func (f *fakeBackend) UpdateProfile(context.Context, string, users.ProfileUpdate) (users.Patch, error) {
	f.record("profile")
	return f.profile, f.writeErr
}

func (f *fakeBackend) Users(context.Context, string) ([]users.User, error) {
	f.record("users")
	return f.users, nil
}

func (f *fakeBackend) DeleteUser(context.Context, string, string) error {
	f.record("delete-user")
	return f.writeErr
}

func (f *fakeBackend) wait() {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
}

func (f *fakeBackend) Orders(context.Context, string) ([]orders.Order, error) {
	f.record("all-orders")
	f.wait()
	return f.allOrders, nil
}

func (f *fakeBackend) MyOrders(context.Context, string) ([]orders.Order, error) {
	f.record("my-orders")
	f.wait()
	return f.myOrders, nil
}

func (f *fakeBackend) UpdateOrderStatus(context.Context, string, string, orders.Status) (orders.StatusPatch, error) {
	f.record("status")
	return f.statusResp, f.statusErr
}

func (f *fakeBackend) CancelOrder(context.Context, string, string) error {
	f.record("cancel")
	return f.writeErr
}

var (
	toner = catalog.Product{ID: "t", Name: "Toner", Price: 4500}
	serum = catalog.Product{ID: "s", Name: "Serum", Price: 9000}

	customer = users.User{ID: "u1", Name: "Ada", Email: "ada@example.com", Token: "cust", Role: users.RoleCustomer}
	admin    = users.User{ID: "a1", Name: "Root", Email: "root@example.com", Token: "adm", Role: users.RoleAdmin}
)

func newTestStore(t *testing.T, be *fakeBackend) (*Store, *persist.Memory) {
	t.Helper()
	mem := &persist.Memory{}
	return New(be, mem, nil), mem
}

func TestCartPersistsEveryMutation(t *testing.T) {
	s, mem := newTestStore(t, &fakeBackend{})

	require.NoError(t, s.AddToCart(toner, 2))
	require.NoError(t, s.AddToCart(toner, 3))
	require.NoError(t, s.AddToCart(serum, 1))
	require.NoError(t, s.DecreaseQuantity("s"))
	assert.Equal(t, 4, mem.Saves())

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Quantity)
	assert.Equal(t, int64(22500), s.CartSubtotal())
	assert.Error(t, s.AddToCart(toner, 0))

	restored := New(&fakeBackend{}, mem, nil)
	assert.Equal(t, cart, restored.Cart())
}

func TestWishlist(t *testing.T) {
	s, mem := newTestStore(t, &fakeBackend{})

	require.NoError(t, s.AddToWishlist(toner))
	require.NoError(t, s.AddToWishlist(toner))
	assert.Len(t, s.Wishlist(), 1)
	assert.Equal(t, 1, mem.Saves(), "idempotent add writes once")

	saved, err := s.ToggleWishlist(toner)
	require.NoError(t, err)
	assert.False(t, saved)
	assert.False(t, s.InWishlist("t"))
	require.NoError(t, s.RemoveFromWishlist("t"))
}

func TestRefreshProductsFallback(t *testing.T) {
	be := &fakeBackend{productsErr: errors.New("offline")}
	s, _ := newTestStore(t, be)

	s.RefreshProducts(context.Background())
	assert.NotEmpty(t, s.Products())
	assert.True(t, s.UsingDefaultCatalog())

	be.productsErr = nil
	be.products = []catalog.Product{toner}
	s.RefreshProducts(context.Background())
	assert.Equal(t, []catalog.Product{toner}, s.Products())

	be.productsErr = errors.New("offline again")
	s.RefreshProducts(context.Background())
	assert.Equal(t, []catalog.Product{toner}, s.Products(), "failed fetch keeps last known list")

	be.productsErr = nil
	be.products = nil
	s.RefreshProducts(context.Background())
	assert.True(t, s.UsingDefaultCatalog())
}

func TestLoginRefreshesOrdersByRole(t *testing.T) {
	be := &fakeBackend{
		myOrders:  []orders.Order{{ID: "mine", Status: orders.StatusProcessing}},
		allOrders: []orders.Order{{ID: "a"}, {ID: "b"}},
	}
	s, _ := newTestStore(t, be)

	require.NoError(t, s.Login(context.Background(), customer))
	s.Wait()
	assert.Len(t, s.Orders(), 1)

	require.NoError(t, s.Login(context.Background(), admin))
	s.Wait()
	assert.Len(t, s.Orders(), 2)
	assert.Equal(t, []string{"my-orders", "all-orders"}, be.called())
}

func TestLogoutDuringRefreshLeavesNoOrders(t *testing.T) {
	be := &fakeBackend{
		myOrders: []orders.Order{{ID: "mine"}},
		gate:     make(chan struct{}),
		started:  make(chan struct{}, 1),
	}
	s, mem := newTestStore(t, be)

	require.NoError(t, s.Login(context.Background(), customer))
	<-be.started

	require.NoError(t, s.Logout())
	assert.Empty(t, s.Orders())

	close(be.gate)
	s.Wait()
	assert.Empty(t, s.Orders(), "stale refresh must not repopulate orders")

	_, ok := s.CurrentUser()
	assert.False(t, ok)
	snap, err := mem.Load()
	require.NoError(t, err)
	assert.Nil(t, snap.User)
}

func TestRefreshOrdersWithoutSession(t *testing.T) {
	be := &fakeBackend{}
	s, _ := newTestStore(t, be)
	s.RefreshOrders(context.Background())
	assert.Empty(t, s.Orders())
	assert.Empty(t, be.called())
}

func TestUpdateProfileMergesServerFields(t *testing.T) {
	be := &fakeBackend{profile: users.Patch{City: users.String("Ikeja"), Token: users.String("rotated")}}
	s, mem := newTestStore(t, be)

	_, err := s.UpdateProfile(context.Background(), users.ProfileUpdate{City: users.String("Ikeja")})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	require.NoError(t, s.Login(context.Background(), customer))
	s.Wait()
	u, err := s.UpdateProfile(context.Background(), users.ProfileUpdate{City: users.String("Ikeja")})
	require.NoError(t, err)
	assert.Equal(t, "Ikeja", u.City)
	assert.Equal(t, "rotated", u.Token)
	assert.Equal(t, "Ada", u.Name)

	snap, err := mem.Load()
	require.NoError(t, err)
	assert.Equal(t, "rotated", snap.User.Token)
}

func TestExpiredSession(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	be := &fakeBackend{}
	s, _ := newTestStore(t, be)
	u := customer
	u.Token = tok
	require.NoError(t, s.Login(context.Background(), u))
	s.Wait()

	err = s.CancelOrder(context.Background(), "o1")
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Empty(t, be.called())
}

func TestProductWritesWaitForServer(t *testing.T) {
	be := &fakeBackend{products: []catalog.Product{toner}}
	s, _ := newTestStore(t, be)
	s.RefreshProducts(context.Background())

	_, err := s.CreateProduct(context.Background(), catalog.Input{Name: "Mask"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	require.NoError(t, s.Login(context.Background(), customer))
	s.Wait()
	err = s.DeleteProduct(context.Background(), "t")
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, s.Login(context.Background(), admin))
	s.Wait()

	p, err := s.CreateProduct(context.Background(), catalog.Input{Name: "Mask", Price: 7000})
	require.NoError(t, err)
	got, ok := s.Product(p.ID)
	require.True(t, ok)
	assert.Equal(t, "srv-Mask", got.ID)

	updated, err := s.UpdateProduct(context.Background(), toner)
	require.NoError(t, err)
	got, _ = s.Product("t")
	assert.Equal(t, updated.Name, got.Name)

	be.writeErr = errors.New("boom")
	assert.Error(t, s.DeleteProduct(context.Background(), "t"))
	_, ok = s.Product("t")
	assert.True(t, ok, "failed delete leaves the cache alone")

	be.writeErr = nil
	require.NoError(t, s.DeleteProduct(context.Background(), "t"))
	_, ok = s.Product("t")
	assert.False(t, ok)
}

func TestUpdateOrderStatusPatchesOnly(t *testing.T) {
	delivered := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	be := &fakeBackend{
		allOrders: []orders.Order{{ID: "o1", Status: orders.StatusShipped, IsPaid: true, TotalPrice: 18000}},
		statusResp: orders.StatusPatch{
			Status:      orders.StatusDelivered,
			IsDelivered: catalog.Bool(true),
			DeliveredAt: &delivered,
		},
	}
	s, _ := newTestStore(t, be)
	require.NoError(t, s.Login(context.Background(), admin))
	s.Wait()

	assert.ErrorIs(t, s.UpdateOrderStatus(context.Background(), "o1", "Lost"), orders.ErrUnknownStatus)

	require.NoError(t, s.UpdateOrderStatus(context.Background(), "o1", orders.StatusDelivered))
	o, _ := s.Order("o1")
	assert.Equal(t, orders.StatusDelivered, o.Status)
	assert.True(t, o.IsDelivered)
	assert.True(t, o.IsPaid)
	assert.Equal(t, int64(18000), o.TotalPrice)

	be.statusErr = errors.New("boom")
	assert.Error(t, s.UpdateOrderStatus(context.Background(), "o1", orders.StatusCancelled))
	o, _ = s.Order("o1")
	assert.Equal(t, orders.StatusDelivered, o.Status)
}

func TestCancelOrder(t *testing.T) {
	be := &fakeBackend{myOrders: []orders.Order{
		{ID: "p", Status: orders.StatusProcessing},
		{ID: "s", Status: orders.StatusShipped},
	}}
	s, _ := newTestStore(t, be)
	require.NoError(t, s.Login(context.Background(), customer))
	s.Wait()

	assert.ErrorIs(t, s.CancelOrder(context.Background(), "s"), ErrNotCancellable)
	require.NoError(t, s.CancelOrder(context.Background(), "p"))
	o, _ := s.Order("p")
	assert.Equal(t, orders.StatusCancelled, o.Status)
	assert.Equal(t, []string{"my-orders", "cancel"}, be.called())
}

func TestAdminUsers(t *testing.T) {
	be := &fakeBackend{users: []users.User{{ID: "u1"}, {ID: "u2"}}}
	s, _ := newTestStore(t, be)
	require.NoError(t, s.Login(context.Background(), admin))
	s.Wait()

	s.RefreshUsers(context.Background())
	require.Len(t, s.AllUsers(), 2)

	require.NoError(t, s.DeleteUser(context.Background(), "u1"))
	assert.Equal(t, []users.User{{ID: "u2"}}, s.AllUsers())

	require.NoError(t, s.Logout())
	assert.Empty(t, s.AllUsers())
}

func TestBootstrap(t *testing.T) {
	be := &fakeBackend{products: []catalog.Product{serum}, productsErr: nil}
	s, _ := newTestStore(t, be)
	require.NoError(t, s.Bootstrap(context.Background()))
	assert.Equal(t, []catalog.Product{serum}, s.Products())

	be.productsErr = errors.New("offline")
	assert.Error(t, s.Bootstrap(context.Background()))
	assert.NotEmpty(t, s.Products())
}
