package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const paystackBaseURL = "https://api.paystack.co"

// OpenFunc hands the hosted payment page to the customer.
type OpenFunc func(ctx context.Context, authorizationURL string) error

// PaystackAdapter charges through Paystack's hosted checkout: it
// initializes a transaction, opens the authorization URL, then polls
// verification until the transaction settles or the window times out.
type PaystackAdapter struct {
	SecretKey    string
	BaseURL      string
	PollInterval time.Duration
	Timeout      time.Duration // how long the customer has to finish paying

	open       OpenFunc
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

func NewPaystackAdapter(secret, baseURL string, open OpenFunc, logger *zap.SugaredLogger) *PaystackAdapter {
	if baseURL == "" {
		baseURL = paystackBaseURL
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &PaystackAdapter{
		SecretKey:    secret,
		BaseURL:      strings.TrimSuffix(baseURL, "/"),
		PollInterval: 3 * time.Second,
		Timeout:      10 * time.Minute,
		open:         open,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		logger:       logger,
	}
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (p *PaystackAdapter) Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	if p.SecretKey == "" {
		return ChargeResult{}, errors.New("paystack: secret key is missing")
	}
	if req.Reference == "" || req.Email == "" || req.AmountMinor <= 0 {
		return ChargeResult{}, fmt.Errorf("paystack: incomplete charge request")
	}

	authURL, err := p.initialize(ctx, req)
	if err != nil {
		return ChargeResult{}, err
	}

	if p.open != nil {
		if err := p.open(ctx, authURL); err != nil {
			return ChargeResult{}, fmt.Errorf("paystack open checkout: %w", err)
		}
	}

	return p.await(ctx, req)
}

func (p *PaystackAdapter) initialize(ctx context.Context, req ChargeRequest) (string, error) {
	payload := map[string]any{
		"email":     req.Email,
		"amount":    req.AmountMinor,
		"reference": req.Reference,
		"currency":  "NGN",
	}

	var data struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	}
	if err := p.call(ctx, http.MethodPost, "/transaction/initialize", payload, &data); err != nil {
		return "", fmt.Errorf("paystack initialize: %w", err)
	}
	if data.AuthorizationURL == "" {
		return "", errors.New("paystack initialize: no authorization url returned")
	}
	return data.AuthorizationURL, nil
}

// await polls verification. Paystack reports a transaction the customer
// has not completed yet as "abandoned", so only success, failed and
// reversed are terminal; running out of time counts as a closed window.
func (p *PaystackAdapter) await(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	ticker := time.NewTicker(p.PollInterval)
	defer ticker.Stop()

	for {
		state, amount, err := p.verify(ctx, req.Reference)
		if err != nil {
			p.logger.Warnw("paystack verify failed, retrying", "reference", req.Reference, "error", err)
		}

		switch strings.ToLower(state) {
		case "success":
			if amount != req.AmountMinor {
				return ChargeResult{}, &AmountMismatchError{Reference: req.Reference, Charged: amount, Expected: req.AmountMinor}
			}
			return ChargeResult{Reference: req.Reference}, nil
		case "failed", "reversed":
			p.logger.Infow("paystack transaction did not complete", "reference", req.Reference, "state", state)
			return ChargeResult{}, ErrClosed
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return ChargeResult{}, ErrClosed
			}
			return ChargeResult{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (p *PaystackAdapter) verify(ctx context.Context, reference string) (string, int64, error) {
	var data struct {
		Status    string `json:"status"` // success, failed, abandoned, ongoing, pending, reversed
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
	}
	if err := p.call(ctx, http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil, &data); err != nil {
		return "", 0, err
	}
	return data.Status, data.Amount, nil
}

func (p *PaystackAdapter) call(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, p.BaseURL+path, body)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.SecretKey)
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	var env paystackEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode: http=%d err=%w body=%s", resp.StatusCode, err, string(raw))
	}
	if resp.StatusCode >= 300 || !env.Status {
		return fmt.Errorf("http=%d message=%s", resp.StatusCode, env.Message)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}
