package orders

import (
	"time"
)

type LineItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image"`
	Price    int64  `json:"price"`
	Product  string `json:"product"` // originating product id
}

type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Method     string `json:"method,omitempty"` // doorstep | pickup
}

// Order is the local mirror of a server order. Orders are never deleted,
// only moved between statuses.
type Order struct {
	ID              string          `json:"id"`
	Customer        string          `json:"customer"`
	Email           string          `json:"email"`
	Items           []LineItem      `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	ItemsPrice      int64           `json:"itemsPrice"`
	TaxPrice        int64           `json:"taxPrice"`
	ShippingPrice   int64           `json:"shippingPrice"`
	TotalPrice      int64           `json:"totalPrice"`
	IsPaid          bool            `json:"isPaid"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	IsDelivered     bool            `json:"isDelivered"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
	Status          Status          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// StatusPatch holds the fields a status transition may change.
type StatusPatch struct {
	Status      Status
	IsPaid      *bool
	IsDelivered *bool
	DeliveredAt *time.Time
}

// Apply patches o in place of a full refetch.
func (p StatusPatch) Apply(o Order) Order {
	if p.Status != "" {
		o.Status = p.Status
	}
	if p.IsPaid != nil {
		o.IsPaid = *p.IsPaid
	}
	if p.IsDelivered != nil {
		o.IsDelivered = *p.IsDelivered
	}
	if p.DeliveredAt != nil {
		t := *p.DeliveredAt
		o.DeliveredAt = &t
	}
	return o
}

func Find(list []Order, id string) (Order, bool) {
	for _, o := range list {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// CountActive counts orders that are neither delivered nor cancelled.
func CountActive(list []Order) int {
	n := 0
	for _, o := range list {
		if o.Status.Active() {
			n++
		}
	}
	return n
}
