package carts

import "jaanmak/internal/domain/catalog"

// Ledger is the ordered, local-only cart. It holds at most one line per
// product id and never a line with a non-positive quantity. Ledger is not
// safe for concurrent use.
type Ledger struct {
	items []Item
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Restore rebuilds a ledger from persisted lines, merging repeated ids and
// dropping lines whose quantity is not positive.
func Restore(items []Item) *Ledger {
	l := NewLedger()
	for _, it := range items {
		if it.ID == "" || it.Quantity <= 0 {
			continue
		}
		_ = l.Add(it.Product, it.Quantity)
	}
	return l
}

// Add appends the product or, if already present, grows its quantity.
// Stock limits are not enforced here.
func (l *Ledger) Add(p catalog.Product, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if i := l.index(p.ID); i >= 0 {
		l.items[i].Quantity += qty
		return nil
	}
	l.items = append(l.items, Item{Product: p, Quantity: qty})
	return nil
}

// Remove deletes the line for id. Absent ids are ignored.
func (l *Ledger) Remove(id string) {
	if i := l.index(id); i >= 0 {
		l.items = append(l.items[:i:i], l.items[i+1:]...)
	}
}

// Decrease takes one unit off the line for id, removing the line when it
// would reach zero.
func (l *Ledger) Decrease(id string) {
	i := l.index(id)
	if i < 0 {
		return
	}
	if l.items[i].Quantity > 1 {
		l.items[i].Quantity--
		return
	}
	l.Remove(id)
}

func (l *Ledger) Clear() {
	l.items = nil
}

// Items returns a copy of the lines in insertion order.
func (l *Ledger) Items() []Item {
	return append([]Item(nil), l.items...)
}

func (l *Ledger) Len() int { return len(l.items) }

func (l *Ledger) Empty() bool { return len(l.items) == 0 }

// Quantity returns the quantity held for id, or zero.
func (l *Ledger) Quantity(id string) int {
	if i := l.index(id); i >= 0 {
		return l.items[i].Quantity
	}
	return 0
}

// Units is the total number of units across all lines.
func (l *Ledger) Units() int {
	n := 0
	for _, it := range l.items {
		n += it.Quantity
	}
	return n
}

// Subtotal is sum(price * quantity).
func (l *Ledger) Subtotal() int64 {
	return Subtotal(l.items)
}

func Subtotal(items []Item) int64 {
	var total int64
	for _, it := range items {
		total += it.LineTotal()
	}
	return total
}

func (l *Ledger) index(id string) int {
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}
