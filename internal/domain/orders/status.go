package orders

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownStatus = errors.New("orders: unknown status")

type Status string

const (
	StatusProcessing     Status = "Processing"
	StatusShipped        Status = "Shipped"
	StatusReadyForPickup Status = "Ready for Pickup"
	StatusDelivered      Status = "Delivered"
	StatusCancelled      Status = "Cancelled"
)

var statuses = []Status{
	StatusProcessing,
	StatusShipped,
	StatusReadyForPickup,
	StatusDelivered,
	StatusCancelled,
}

func Statuses() []Status {
	return append([]Status(nil), statuses...)
}

// ParseStatus matches s against the known statuses, ignoring case and
// surrounding space.
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	for _, st := range statuses {
		if strings.EqualFold(string(st), s) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func (s Status) Valid() bool {
	for _, st := range statuses {
		if s == st {
			return true
		}
	}
	return false
}

// Step is the position on the tracking timeline. Cancelled orders are off
// the timeline.
func (s Status) Step() int {
	switch s {
	case StatusProcessing:
		return 1
	case StatusShipped, StatusReadyForPickup:
		return 2
	case StatusDelivered:
		return 3
	case StatusCancelled:
		return -1
	default:
		return 0
	}
}

func (s Status) Active() bool {
	return s != StatusDelivered && s != StatusCancelled
}

// Cancellable reports whether the owning customer may still cancel.
func (s Status) Cancellable() bool {
	return s == StatusProcessing
}
