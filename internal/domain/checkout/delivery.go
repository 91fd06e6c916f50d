package checkout

// Resolve applies the delivery rules after the region changes: a region
// without doorstep forces pickup, a region without pickup forces doorstep,
// and where both are offered the current choice stands unless it is not a
// legal value, in which case doorstep is used. An empty region leaves the
// choice alone.
func Resolve(region string, current Method) Method {
	if region == "" {
		return current
	}
	switch {
	case !CanDoorstep(region):
		return MethodPickup
	case !CanPickup(region):
		return MethodDoorstep
	case !Allowed(region, current):
		return MethodDoorstep
	default:
		return current
	}
}

// Delivery is the checkout's region and method selection. Every change
// goes through Resolve, so the method is always legal for the region.
type Delivery struct {
	region string
	method Method
}

func NewDelivery() *Delivery {
	return &Delivery{method: MethodDoorstep}
}

// SetRegion selects the destination. An empty name clears it.
func (d *Delivery) SetRegion(name string) error {
	if name == "" {
		d.region = ""
		return nil
	}
	region, err := LookupRegion(name)
	if err != nil {
		return err
	}
	d.region = region
	d.method = Resolve(region, d.method)
	return nil
}

// Choose switches the method, refusing one the region does not offer.
func (d *Delivery) Choose(m Method) error {
	if m != MethodDoorstep && m != MethodPickup {
		return ErrUnknownMethod
	}
	if d.region != "" && !Allowed(d.region, m) {
		return ErrMethodUnavailable
	}
	d.method = m
	return nil
}

func (d *Delivery) Region() string { return d.region }

func (d *Delivery) Method() Method { return d.method }

func (d *Delivery) Fee() int64 { return Fee(d.region, d.method) }

// Quote prices a cart subtotal against the current selection. It is
// computed on every call.
func (d *Delivery) Quote(subtotal int64) Quote {
	fee := d.Fee()
	return Quote{Subtotal: subtotal, Fee: fee, GrandTotal: subtotal + fee}
}

type Quote struct {
	Subtotal   int64 `json:"subtotal"`
	Fee        int64 `json:"fee"`
	GrandTotal int64 `json:"grandTotal"`
}
