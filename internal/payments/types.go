package payments

import (
	"strconv"
	"time"
)

// ChargeRequest is everything that crosses the gateway boundary. Cart
// contents never do; only the aggregate amount.
type ChargeRequest struct {
	Reference   string // unique per attempt
	Email       string
	AmountMinor int64 // kobo
}

type ChargeResult struct {
	Reference string
}

// MinorUnits converts whole naira to kobo.
func MinorUnits(naira int64) int64 {
	return naira * 100
}

// NewReference derives a per-attempt reference from the current time.
func NewReference(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}
