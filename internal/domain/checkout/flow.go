package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"jaanmak/internal/auth"
	"jaanmak/internal/domain/carts"
	"jaanmak/internal/domain/orders"
	"jaanmak/internal/domain/users"
	"jaanmak/internal/payments"
)

var (
	ErrLoginRequired    = errors.New("checkout: please log in to place an order")
	ErrEmptyCart        = errors.New("checkout: cart is empty")
	ErrNoGateway        = errors.New("checkout: payment is not configured")
	ErrPaymentCancelled = errors.New("checkout: payment cancelled")
)

// RecordError means the customer was charged but the order could not be
// recorded or marked paid. The cart is left untouched.
type RecordError struct {
	Reference string
	OrderID   string // empty when creation itself failed
	Err       error
}

func (e *RecordError) Error() string {
	if e.OrderID == "" {
		return fmt.Sprintf("checkout: payment %s received but order was not created: %v", e.Reference, e.Err)
	}
	return fmt.Sprintf("checkout: payment %s received but order %s was not marked paid: %v", e.Reference, e.OrderID, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Session is the slice of app state checkout reads and clears.
type Session interface {
	CurrentUser() (users.User, bool)
	Cart() []carts.Item
	ClearCart() error
}

// OrderService records orders server side.
type OrderService interface {
	CreateOrder(ctx context.Context, token string, d orders.Draft) (orders.Order, error)
	VerifyPayment(ctx context.Context, token, orderID, reference string) (orders.Order, error)
}

type Request struct {
	Form   ShippingForm
	Method Method // zero means doorstep, subject to the region rules
}

type Receipt struct {
	Order     orders.Order
	Reference string
	Quote     Quote
}

type Flow struct {
	session       Session
	orders        OrderService
	gateway       payments.Gateway
	paymentMethod string
	now           func() time.Time
	logger        *zap.SugaredLogger
}

func NewFlow(session Session, svc OrderService, gateway payments.Gateway, paymentMethod string, logger *zap.SugaredLogger) *Flow {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Flow{
		session:       session,
		orders:        svc,
		gateway:       gateway,
		paymentMethod: paymentMethod,
		now:           time.Now,
		logger:        logger,
	}
}

// Quote prices the current cart for a region and method without charging.
func (f *Flow) Quote(region string, m Method) (Quote, Method, error) {
	d, err := selection(region, m)
	if err != nil {
		return Quote{}, "", err
	}
	return d.Quote(carts.Subtotal(f.session.Cart())), d.Method(), nil
}

// Submit validates the form, charges the grand total and records the
// order. The cart is cleared only after the order exists and is marked
// paid; any earlier failure leaves it as it was.
func (f *Flow) Submit(ctx context.Context, req Request) (Receipt, error) {
	d, err := selection(req.Form.State, req.Method)
	if err != nil {
		return Receipt{}, err
	}
	method := d.Method()
	if err := req.Form.Validate(method); err != nil {
		return Receipt{}, err
	}

	user, ok := f.session.CurrentUser()
	if !ok || !user.HasToken() || auth.Expired(user.Token, f.now()) {
		return Receipt{}, ErrLoginRequired
	}

	items := f.session.Cart()
	if len(items) == 0 {
		return Receipt{}, ErrEmptyCart
	}
	if f.gateway == nil {
		return Receipt{}, ErrNoGateway
	}

	quote := d.Quote(carts.Subtotal(items))
	charge := payments.ChargeRequest{
		Reference:   payments.NewReference(f.now()),
		Email:       user.Email,
		AmountMinor: payments.MinorUnits(quote.GrandTotal),
	}

	res, err := f.gateway.Charge(ctx, charge)
	if errors.Is(err, payments.ErrClosed) {
		f.logger.Infow("payment window closed", "reference", charge.Reference)
		return Receipt{}, ErrPaymentCancelled
	}
	var mismatch *payments.AmountMismatchError
	if errors.As(err, &mismatch) {
		f.logger.Errorw("charged the wrong amount, order not recorded", "reference", mismatch.Reference,
			"charged", mismatch.Charged, "expected", mismatch.Expected)
		return Receipt{}, &RecordError{Reference: mismatch.Reference, Err: err}
	}
	if err != nil {
		return Receipt{}, fmt.Errorf("checkout: charge: %w", err)
	}
	reference := res.Reference
	if reference == "" {
		reference = charge.Reference
	}

	draft := orders.NewDraft(items, req.Form.ShippingAddress(method), f.paymentMethod, quote.Fee)
	created, err := f.orders.CreateOrder(ctx, user.Token, draft)
	if err != nil {
		f.logger.Errorw("charged but order not recorded", "reference", reference, "error", err)
		return Receipt{}, &RecordError{Reference: reference, Err: err}
	}

	paid, err := f.orders.VerifyPayment(ctx, user.Token, created.ID, reference)
	if err != nil {
		f.logger.Errorw("charged but order not marked paid", "reference", reference, "order", created.ID, "error", err)
		return Receipt{}, &RecordError{Reference: reference, OrderID: created.ID, Err: err}
	}
	if paid.ID == "" {
		paid = created
	}

	if err := f.session.ClearCart(); err != nil {
		f.logger.Warnw("order placed but cart could not be cleared", "order", paid.ID, "error", err)
	}
	f.logger.Infow("order placed", "order", paid.ID, "reference", reference, "total", quote.GrandTotal)

	return Receipt{Order: paid, Reference: reference, Quote: quote}, nil
}

func selection(region string, m Method) (*Delivery, error) {
	d := NewDelivery()
	if err := d.SetRegion(region); err != nil {
		return nil, err
	}
	if m == "" {
		return d, nil
	}
	if err := d.Choose(m); err != nil {
		return nil, err
	}
	return d, nil
}
