package checkout

import (
	"strings"

	"jaanmak/internal/domain/orders"
	"jaanmak/internal/domain/users"
	"jaanmak/internal/validate"
)

// ShippingForm is what the customer fills in at checkout. Field order is
// the order errors are reported in.
type ShippingForm struct {
	Phone        string `validate:"ngphone" msg:"Please enter a valid phone number (10-11 digits)."`
	Address      string `validate:"min=5" msg:"Please enter a valid delivery address."`
	City         string `validate:"required" msg:"Please enter your city."`
	State        string `validate:"required" msg:"Please select your state."`
	Instructions string
}

// FormFromUser prefills the form from the saved profile.
func FormFromUser(u users.User) ShippingForm {
	return ShippingForm{
		Phone:   u.Phone,
		Address: u.Address,
		City:    u.City,
		State:   u.State,
	}
}

func (f ShippingForm) normalized() ShippingForm {
	f.Phone = strings.TrimSpace(f.Phone)
	f.Address = strings.TrimSpace(f.Address)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.Instructions = strings.TrimSpace(f.Instructions)
	return f
}

// Validate checks the form for the chosen method. Pickup orders must name
// one of the region's pickup centers as the address.
func (f ShippingForm) Validate(m Method) error {
	f = f.normalized()
	if err := validate.Struct(f); err != nil {
		return err
	}
	region, err := LookupRegion(f.State)
	if err != nil {
		return validate.Invalid("State", "Please select your state.")
	}
	if m == MethodPickup && len(pickupCenters[region]) > 0 && !isPickupCenter(region, f.Address) {
		return validate.Invalid("Address", "Please select the pickup center closest to you.")
	}
	return nil
}

// ShippingAddress builds the shipping address recorded on the order. Delivery
// instructions ride along with the street address.
func (f ShippingForm) ShippingAddress(m Method) orders.ShippingAddress {
	f = f.normalized()
	addr := f.Address
	if f.Instructions != "" {
		addr += " " + f.Instructions
	}
	region, _ := LookupRegion(f.State)
	return orders.ShippingAddress{
		Address: addr,
		City:    f.City,
		State:   region,
		Country: "Nigeria",
		Phone:   f.Phone,
		Method:  string(m),
	}
}
