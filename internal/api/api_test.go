package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaanmak/internal/domain/catalog"
	"jaanmak/internal/domain/orders"
	"jaanmak/internal/domain/users"
	"jaanmak/internal/validate"
)

func newTestClient(t *testing.T, r chi.Router) *Client {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second, nil)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestProductsNormalizesIDs(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/products", func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, []map[string]any{
			{"_id": "abc", "name": "Toner", "price": 4500, "countInStock": 3},
			{"id": "def", "name": "Serum", "price": 9999.6},
			{"name": "no id"},
			{"_id": "ghi"},
		})
	})

	got, err := newTestClient(t, r).Products(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2, "entities without id or name are dropped")
	assert.Equal(t, "abc", got[0].ID)
	assert.Equal(t, 3, got[0].Stock())
	assert.Equal(t, "def", got[1].ID)
	assert.Equal(t, int64(10000), got[1].Price)
}

func TestErrorMessages(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/users/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid email or password"})
	})
	r.Get("/products", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})
	c := newTestClient(t, r)

	_, err := c.Login(context.Background(), users.Credentials{Email: "ada@example.com", Password: "secret1"})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.Products(context.Background())
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "An error occurred", apiErr.Message)
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestLoginValidatesLocally(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/users/login", func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	_, err := newTestClient(t, r).Login(context.Background(), users.Credentials{Email: "ada@example.com", Password: "123"})
	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Password", verr.Field)
}

func TestLoginDerivesRole(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/users/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@example.com", body["email"])
		writeJSON(w, http.StatusOK, map[string]any{
			"_id": "u1", "name": "Ada", "email": "ada@example.com", "isAdmin": true, "token": "tok",
		})
	})

	u, err := newTestClient(t, r).Login(context.Background(), users.Credentials{Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, users.RoleAdmin, u.Role)
	assert.Equal(t, "tok", u.Token)
}

func TestUpdateProfileReturnsEchoedFields(t *testing.T) {
	r := chi.NewRouter()
	r.Put("/users/profile", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{"_id": "u1", "city": "Ikeja"})
	})

	p, err := newTestClient(t, r).UpdateProfile(context.Background(), "tok", users.ProfileUpdate{City: users.String("Ikeja")})
	require.NoError(t, err)
	require.NotNil(t, p.City)
	assert.Equal(t, "Ikeja", *p.City)
	assert.Nil(t, p.Name)
	assert.Nil(t, p.Token)
}

func TestOrdersNormalization(t *testing.T) {
	created := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	r := chi.NewRouter()
	r.Get("/orders/myorders", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{
				"_id":  "o1",
				"user": map[string]string{"name": "Ada", "email": "ada@example.com"},
				"orderItems": []map[string]any{
					{"name": "Toner", "quantity": 2, "price": 4500, "product": "p1"},
					{"name": "Serum", "quantity": 1, "price": 9000, "product": map[string]string{"_id": "p2"}},
				},
				"totalPrice": 18000,
				"isPaid":     true,
				"status":     "Ready for Pickup",
				"createdAt":  created,
			},
			{"_id": "o2", "user": "u-ref-only"},
			{"user": map[string]string{"name": "ghost"}},
		})
	})

	got, err := newTestClient(t, r).MyOrders(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, got, 2)

	o := got[0]
	assert.Equal(t, "Ada", o.Customer)
	assert.Equal(t, "ada@example.com", o.Email)
	assert.Equal(t, orders.StatusReadyForPickup, o.Status)
	assert.Equal(t, "p2", o.Items[1].Product)
	assert.True(t, o.IsPaid)
	assert.True(t, created.Equal(o.CreatedAt))

	assert.Equal(t, "Unknown", got[1].Customer)
	assert.Equal(t, orders.StatusProcessing, got[1].Status)
}

func TestOrderWriteEndpoints(t *testing.T) {
	var paidRef, newStatus string
	r := chi.NewRouter()
	r.Post("/orders", func(w http.ResponseWriter, r *http.Request) {
		var d orders.Draft
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&d))
		writeJSON(w, http.StatusCreated, map[string]any{"_id": "o9", "totalPrice": d.TotalPrice, "isPaid": false})
	})
	r.Put("/orders/{id}/pay", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		paidRef = body["reference"]
		writeJSON(w, http.StatusOK, map[string]any{"_id": chi.URLParam(r, "id"), "isPaid": true})
	})
	r.Put("/orders/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		newStatus = body["status"]
		writeJSON(w, http.StatusOK, map[string]any{"_id": "o9", "status": "Delivered", "isDelivered": true})
	})
	c := newTestClient(t, r)
	ctx := context.Background()

	o, err := c.CreateOrder(ctx, "tok", orders.Draft{TotalPrice: 18000})
	require.NoError(t, err)
	assert.Equal(t, "o9", o.ID)
	assert.False(t, o.IsPaid)

	o, err = c.VerifyPayment(ctx, "tok", "o9", "1767225600000")
	require.NoError(t, err)
	assert.True(t, o.IsPaid)
	assert.Equal(t, "1767225600000", paidRef)

	patch, err := c.UpdateOrderStatus(ctx, "tok", "o9", orders.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, "Delivered", newStatus)
	assert.Equal(t, orders.StatusDelivered, patch.Status)
	require.NotNil(t, patch.IsDelivered)
	assert.True(t, *patch.IsDelivered)
	assert.Nil(t, patch.IsPaid)
}

func TestProductWritesSendBearer(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/products", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer admin", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusCreated, map[string]any{"_id": "p7", "name": "Mask", "price": 7000})
	})
	r.Delete("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Product not found"})
	})
	c := newTestClient(t, r)

	p, err := c.CreateProduct(context.Background(), "admin", catalog.Input{Name: "Mask", Price: 7000})
	require.NoError(t, err)
	assert.Equal(t, "p7", p.ID)

	err = c.DeleteProduct(context.Background(), "admin", "p404")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Product not found")
}

func TestSendContact(t *testing.T) {
	var got ContactMessage
	r := chi.NewRouter()
	r.Post("/email", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusOK, map[string]string{"message": "sent"})
	})
	c := newTestClient(t, r)

	require.NoError(t, c.SendContact(context.Background(), ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hello"}))
	assert.Equal(t, "Hello", got.Message)

	require.NoError(t, c.SendContact(context.Background(), ContactMessage{Name: "  Ada ", Email: " ada@example.com ", Message: "\n Hello there \n"}))
	assert.Equal(t, ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hello there"}, got)

	err := c.SendContact(context.Background(), ContactMessage{Name: "Ada", Email: "nope", Message: "Hello"})
	var verr *validate.Error
	assert.ErrorAs(t, err, &verr)

	err = c.SendContact(context.Background(), ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "   "})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Message", verr.Field)
}
