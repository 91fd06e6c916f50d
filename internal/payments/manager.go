package payments

import (
	"context"
	"fmt"
)

type PaymentManager struct {
	gateways map[string]Gateway
}

func NewPaymentManager() *PaymentManager {
	return &PaymentManager{gateways: make(map[string]Gateway)}
}

func (m *PaymentManager) RegisterGateway(name string, gateway Gateway) {
	m.gateways[name] = gateway
}

// Gateway returns the gateway registered under name.
func (m *PaymentManager) Gateway(name string) (Gateway, error) {
	gateway, ok := m.gateways[name]
	if !ok {
		return nil, fmt.Errorf("gateway not registered: %s", name)
	}
	return gateway, nil
}

func (m *PaymentManager) Charge(ctx context.Context, method string, req ChargeRequest) (ChargeResult, error) {
	gateway, err := m.Gateway(method)
	if err != nil {
		return ChargeResult{}, err
	}
	return gateway.Charge(ctx, req)
}
