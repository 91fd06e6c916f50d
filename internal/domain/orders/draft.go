package orders

import "jaanmak/internal/domain/carts"

// Draft is the order payload submitted at checkout.
type Draft struct {
	Items           []LineItem      `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	ItemsPrice      int64           `json:"itemsPrice"`
	TaxPrice        int64           `json:"taxPrice"`
	ShippingPrice   int64           `json:"shippingPrice"`
	TotalPrice      int64           `json:"totalPrice"`
}

// NewDraft snapshots cart lines into an order payload. TotalPrice is
// always itemsPrice + shippingPrice + taxPrice; tax is not charged.
func NewDraft(items []carts.Item, ship ShippingAddress, paymentMethod string, shippingPrice int64) Draft {
	d := Draft{
		Items:           make([]LineItem, 0, len(items)),
		ShippingAddress: ship,
		PaymentMethod:   paymentMethod,
		ShippingPrice:   shippingPrice,
	}
	for _, it := range items {
		d.Items = append(d.Items, LineItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Image:    it.Image,
			Price:    it.Price,
			Product:  it.ID,
		})
	}
	d.ItemsPrice = carts.Subtotal(items)
	d.TotalPrice = d.ItemsPrice + d.ShippingPrice + d.TaxPrice
	return d
}
