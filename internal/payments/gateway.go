package payments

import (
	"context"
	"errors"
	"fmt"
)

// ErrClosed means the customer dismissed or abandoned the payment window.
// Nothing was charged as far as the client knows.
var ErrClosed = errors.New("payments: payment window closed")

// AmountMismatchError means the gateway settled a payment for a different
// amount than was requested. The customer has been charged.
type AmountMismatchError struct {
	Reference string
	Charged   int64
	Expected  int64
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("payments: %s charged %d, expected %d", e.Reference, e.Charged, e.Expected)
}

// Gateway defines a common interface for all payment providers. Charge
// blocks until the customer either pays, which yields the gateway's
// transaction reference, or closes the window, which yields ErrClosed.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
}

// GatewayFunc adapts a function to Gateway.
type GatewayFunc func(ctx context.Context, req ChargeRequest) (ChargeResult, error)

func (f GatewayFunc) Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	return f(ctx, req)
}
