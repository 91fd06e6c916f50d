package admindashboard

import (
	"sort"

	"jaanmak/internal/domain/catalog"
	"jaanmak/internal/domain/orders"
	"jaanmak/internal/domain/users"
)

const (
	LowStockThreshold = 5
	RecentLimit       = 5
	ChartPoints       = 7
	chartFloor        = 10000
)

// Compute derives the back-office overview from the cached catalog,
// orders and users. Orders are taken in the order the server listed them.
func Compute(products []catalog.Product, list []orders.Order, accounts []users.User) Overview {
	o := Overview{
		TotalOrders:   len(list),
		ActiveOrders:  orders.CountActive(list),
		ByStatus:      make(map[orders.Status]int),
		TotalProducts: len(products),
		TotalUsers:    len(accounts),
		ChartMax:      chartFloor,
	}

	for _, ord := range list {
		o.ByStatus[ord.Status]++
		if ord.IsPaid {
			o.PaidOrders++
			o.TotalRevenue += ord.TotalPrice
		}
	}

	// An absent stock count reads as zero, so untracked products show up too.
	for _, p := range products {
		if p.Stock() < LowStockThreshold {
			o.LowStock = append(o.LowStock, p)
		}
	}

	recent := append([]orders.Order(nil), list...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}
	o.RecentOrders = recent

	tail := list
	if len(tail) > ChartPoints {
		tail = tail[len(tail)-ChartPoints:]
	}
	for _, ord := range tail {
		o.Revenue = append(o.Revenue, RevenuePoint{
			Label:  ord.CreatedAt.Weekday().String()[:3],
			Amount: ord.TotalPrice,
		})
		if ord.TotalPrice > o.ChartMax {
			o.ChartMax = ord.TotalPrice
		}
	}

	for _, u := range accounts {
		if u.Admin() {
			o.TotalAdmins++
		} else {
			o.TotalCustomers++
		}
	}
	return o
}
