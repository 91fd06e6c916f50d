package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"jaanmak/internal/domain/catalog"
	"jaanmak/internal/domain/orders"
	"jaanmak/internal/domain/users"
)

// ErrMalformed marks a response entity missing a required field.
var ErrMalformed = errors.New("api: malformed entity")

func missing(entity, field string) error {
	return fmt.Errorf("%w: %s has no %s", ErrMalformed, entity, field)
}

// pickID prefers the document id and falls back to id.
func pickID(docID, id string) string {
	if docID != "" {
		return docID
	}
	return id
}

// naira rounds a JSON number to whole naira.
func naira(v float64) int64 {
	return int64(math.Round(v))
}

type wireProduct struct {
	DocID        string  `json:"_id"`
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	Benefits     string  `json:"benefits"`
	Ingredients  string  `json:"ingredients"`
	HowToUse     string  `json:"howToUse"`
	InStock      *bool   `json:"inStock"`
	CountInStock *int    `json:"countInStock"`
}

func (w wireProduct) product() (catalog.Product, error) {
	id := pickID(w.DocID, w.ID)
	if id == "" {
		return catalog.Product{}, missing("product", "id")
	}
	if w.Name == "" {
		return catalog.Product{}, missing("product "+id, "name")
	}
	return catalog.Product{
		ID:           id,
		Name:         w.Name,
		Description:  w.Description,
		Category:     w.Category,
		Price:        naira(w.Price),
		Image:        w.Image,
		Benefits:     w.Benefits,
		Ingredients:  w.Ingredients,
		HowToUse:     w.HowToUse,
		InStock:      w.InStock,
		CountInStock: w.CountInStock,
	}, nil
}

// wireUser keeps pointer fields so a profile response can be merged
// field by field.
type wireUser struct {
	DocID     *string    `json:"_id"`
	ID        *string    `json:"id"`
	Name      *string    `json:"name"`
	Email     *string    `json:"email"`
	Token     *string    `json:"token"`
	Role      *string    `json:"role"`
	IsAdmin   *bool      `json:"isAdmin"`
	Phone     *string    `json:"phone"`
	Address   *string    `json:"address"`
	City      *string    `json:"city"`
	State     *string    `json:"state"`
	CreatedAt *time.Time `json:"createdAt"`
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func (w wireUser) id() *string {
	if w.DocID != nil && *w.DocID != "" {
		return w.DocID
	}
	return w.ID
}

func (w wireUser) user() (users.User, error) {
	id := deref(w.id())
	if id == "" {
		return users.User{}, missing("user", "id")
	}
	if deref(w.Email) == "" {
		return users.User{}, missing("user "+id, "email")
	}

	role := users.RoleCustomer
	switch {
	case w.IsAdmin != nil:
		role = users.RoleFor(*w.IsAdmin)
	case deref(w.Role) == string(users.RoleAdmin):
		role = users.RoleAdmin
	}

	return users.User{
		ID:        id,
		Name:      deref(w.Name),
		Email:     deref(w.Email),
		Token:     deref(w.Token),
		Role:      role,
		IsAdmin:   w.IsAdmin,
		Phone:     deref(w.Phone),
		Address:   deref(w.Address),
		City:      deref(w.City),
		State:     deref(w.State),
		CreatedAt: w.CreatedAt,
	}, nil
}

func (w wireUser) patch() users.Patch {
	return users.Patch{
		ID:      w.id(),
		Name:    w.Name,
		Email:   w.Email,
		Token:   w.Token,
		IsAdmin: w.IsAdmin,
		Phone:   w.Phone,
		Address: w.Address,
		City:    w.City,
		State:   w.State,
	}
}

type wireLineItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Image    string          `json:"image"`
	Price    float64         `json:"price"`
	Product  json.RawMessage `json:"product"`
}

// productRef accepts either a bare id or a populated product document.
func productRef(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return id
	}
	var doc struct {
		DocID string `json:"_id"`
		ID    string `json:"id"`
	}
	if err := json.Unmarshal(raw, &doc); err == nil {
		return pickID(doc.DocID, doc.ID)
	}
	return ""
}

type wireOrderUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type wireOrder struct {
	DocID           string                 `json:"_id"`
	ID              string                 `json:"id"`
	User            json.RawMessage        `json:"user"`
	Email           string                 `json:"email"`
	Items           []wireLineItem         `json:"orderItems"`
	ShippingAddress orders.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	ItemsPrice      float64                `json:"itemsPrice"`
	TaxPrice        float64                `json:"taxPrice"`
	ShippingPrice   float64                `json:"shippingPrice"`
	TotalPrice      float64                `json:"totalPrice"`
	IsPaid          *bool                  `json:"isPaid"`
	PaidAt          *time.Time             `json:"paidAt"`
	IsDelivered     *bool                  `json:"isDelivered"`
	DeliveredAt     *time.Time             `json:"deliveredAt"`
	Status          string                 `json:"status"`
	CreatedAt       *time.Time             `json:"createdAt"`
}

// customer reads the populated user document. An unpopulated reference
// or a missing user reads as Unknown.
func (w wireOrder) customer() (name, email string) {
	name, email = "Unknown", "Unknown"
	var u wireOrderUser
	if len(w.User) > 0 && json.Unmarshal(w.User, &u) == nil {
		if u.Name != "" {
			name = u.Name
		}
		if u.Email != "" {
			email = u.Email
		}
	}
	if email == "Unknown" && w.Email != "" {
		email = w.Email
	}
	return name, email
}

func (w wireOrder) status() orders.Status {
	if w.Status == "" {
		return orders.StatusProcessing
	}
	if st, err := orders.ParseStatus(w.Status); err == nil {
		return st
	}
	return orders.Status(w.Status)
}

func (w wireOrder) order() (orders.Order, error) {
	id := pickID(w.DocID, w.ID)
	if id == "" {
		return orders.Order{}, missing("order", "id")
	}

	name, email := w.customer()
	o := orders.Order{
		ID:              id,
		Customer:        name,
		Email:           email,
		Items:           make([]orders.LineItem, 0, len(w.Items)),
		ShippingAddress: w.ShippingAddress,
		PaymentMethod:   w.PaymentMethod,
		ItemsPrice:      naira(w.ItemsPrice),
		TaxPrice:        naira(w.TaxPrice),
		ShippingPrice:   naira(w.ShippingPrice),
		TotalPrice:      naira(w.TotalPrice),
		IsPaid:          w.IsPaid != nil && *w.IsPaid,
		PaidAt:          w.PaidAt,
		IsDelivered:     w.IsDelivered != nil && *w.IsDelivered,
		DeliveredAt:     w.DeliveredAt,
		Status:          w.status(),
	}
	if w.CreatedAt != nil {
		o.CreatedAt = *w.CreatedAt
	}
	for _, it := range w.Items {
		o.Items = append(o.Items, orders.LineItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Image:    it.Image,
			Price:    naira(it.Price),
			Product:  productRef(it.Product),
		})
	}
	return o, nil
}

// patch carries only the fields the server reported.
func (w wireOrder) patch() orders.StatusPatch {
	p := orders.StatusPatch{IsPaid: w.IsPaid, IsDelivered: w.IsDelivered, DeliveredAt: w.DeliveredAt}
	if w.Status != "" {
		p.Status = w.status()
	}
	return p
}

// decodeList normalizes each element of a JSON array, logging and
// dropping the ones that do not fit.
func decodeList[W any, T any](raw []json.RawMessage, kind string, logger *zap.SugaredLogger, norm func(W) (T, error)) []T {
	out := make([]T, 0, len(raw))
	for i, item := range raw {
		var w W
		if err := json.Unmarshal(item, &w); err != nil {
			logger.Warnw("dropping undecodable entity", "kind", kind, "index", i, "error", err)
			continue
		}
		v, err := norm(w)
		if err != nil {
			logger.Warnw("dropping malformed entity", "kind", kind, "index", i, "error", err)
			continue
		}
		out = append(out, v)
	}
	return out
}
