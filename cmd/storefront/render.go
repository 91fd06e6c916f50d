package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"jaanmak/internal/domain/admindashboard"
	"jaanmak/internal/domain/carts"
	"jaanmak/internal/domain/catalog"
	"jaanmak/internal/domain/checkout"
	"jaanmak/internal/domain/orders"
	"jaanmak/internal/domain/users"
)

// formatNaira renders whole naira with thousands separators, e.g. ₦18,000.
func formatNaira(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	digits := strconv.FormatInt(v, 10)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "₦" + b.String()
}

func (app *application) table() *tabwriter.Writer {
	return tabwriter.NewWriter(app.out, 0, 4, 2, ' ', 0)
}

func stockLabel(p catalog.Product) string {
	if !p.Available() {
		return "out of stock"
	}
	if p.CountInStock != nil {
		return fmt.Sprintf("%d left", *p.CountInStock)
	}
	return "in stock"
}

func (app *application) printProducts(list []catalog.Product) {
	w := app.table()
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK\t")
	for _, p := range list {
		saved := ""
		if app.store.InWishlist(p.ID) {
			saved = " ♥"
		}
		fmt.Fprintf(w, "%s\t%s%s\t%s\t%s\t%s\t\n", p.ID, p.Name, saved, p.Category, formatNaira(p.Price), stockLabel(p))
	}
	w.Flush()
}

func (app *application) printProductDetail(p catalog.Product) {
	fmt.Fprintf(app.out, "%s  %s\n", p.Name, formatNaira(p.Price))
	fmt.Fprintf(app.out, "%s | %s\n", p.Category, stockLabel(p))
	if p.Description != "" {
		fmt.Fprintf(app.out, "\n%s\n", p.Description)
	}
	for _, section := range []struct{ title, body string }{
		{"Benefits", p.Benefits},
		{"Ingredients", p.Ingredients},
		{"How to use", p.HowToUse},
	} {
		if section.body != "" {
			fmt.Fprintf(app.out, "\n%s:\n%s\n", section.title, section.body)
		}
	}
}

func (app *application) printCart(items []carts.Item, subtotal int64) {
	if len(items) == 0 {
		fmt.Fprintln(app.out, "Your cart is empty.")
		return
	}
	w := app.table()
	fmt.Fprintln(w, "ID\tNAME\tQTY\tPRICE\tTOTAL\t")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t\n",
			it.ID, it.Name, it.Quantity, formatNaira(it.Price), formatNaira(it.Price*int64(it.Quantity)))
	}
	w.Flush()
	fmt.Fprintf(app.out, "Subtotal: %s\n", formatNaira(subtotal))
}

func (app *application) printQuote(q checkout.Quote, m checkout.Method) {
	w := app.table()
	fmt.Fprintf(w, "Subtotal\t%s\t\n", formatNaira(q.Subtotal))
	fmt.Fprintf(w, "Delivery (%s)\t%s\t\n", m, formatNaira(q.Fee))
	fmt.Fprintf(w, "Total\t%s\t\n", formatNaira(q.GrandTotal))
	w.Flush()
}

func (app *application) printUser(u users.User) {
	w := app.table()
	fmt.Fprintf(w, "Name\t%s\t\n", u.Name)
	fmt.Fprintf(w, "Email\t%s\t\n", u.Email)
	fmt.Fprintf(w, "Role\t%s\t\n", u.Role)
	for _, f := range []struct{ label, value string }{
		{"Phone", u.Phone},
		{"Address", u.Address},
		{"City", u.City},
		{"State", u.State},
	} {
		if f.value != "" {
			fmt.Fprintf(w, "%s\t%s\t\n", f.label, f.value)
		}
	}
	w.Flush()
}

const timelineSteps = 3

// progress draws the tracking timeline, e.g. [##-].
func progress(s orders.Status) string {
	step := s.Step()
	if step < 0 {
		return "[cancelled]"
	}
	return "[" + strings.Repeat("#", step) + strings.Repeat("-", timelineSteps-step) + "]"
}

func (app *application) printOrders(list []orders.Order) {
	if len(list) == 0 {
		fmt.Fprintln(app.out, "No orders yet.")
		return
	}
	w := app.table()
	fmt.Fprintln(w, "ID\tDATE\tCUSTOMER\tTOTAL\tPAID\tSTATUS\t\t")
	for _, o := range list {
		paid := "no"
		if o.IsPaid {
			paid = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			o.ID, o.CreatedAt.Format("2006-01-02"), o.Customer, formatNaira(o.TotalPrice), paid, o.Status, progress(o.Status))
	}
	w.Flush()
}

func (app *application) printUsers(list []users.User) {
	w := app.table()
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\t")
	for _, u := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", u.ID, u.Name, u.Email, u.Role)
	}
	w.Flush()
}

func (app *application) printOverview(o admindashboard.Overview) {
	w := app.table()
	fmt.Fprintf(w, "Revenue\t%s\t\n", formatNaira(o.TotalRevenue))
	fmt.Fprintf(w, "Orders\t%d (%d paid, %d active)\t\n", o.TotalOrders, o.PaidOrders, o.ActiveOrders)
	fmt.Fprintf(w, "Products\t%d (%d low on stock)\t\n", o.TotalProducts, len(o.LowStock))
	fmt.Fprintf(w, "Users\t%d (%d customers, %d admins)\t\n", o.TotalUsers, o.TotalCustomers, o.TotalAdmins)
	w.Flush()

	if len(o.ByStatus) > 0 {
		statuses := make([]string, 0, len(o.ByStatus))
		for s := range o.ByStatus {
			statuses = append(statuses, string(s))
		}
		sort.Strings(statuses)
		fmt.Fprintln(app.out, "\nBy status:")
		for _, s := range statuses {
			fmt.Fprintf(app.out, "  %-12s %d\n", s, o.ByStatus[orders.Status(s)])
		}
	}

	if len(o.Revenue) > 0 {
		fmt.Fprintln(app.out, "\nLatest orders:")
		for _, pt := range o.Revenue {
			bar := 0
			if o.ChartMax > 0 {
				bar = int(pt.Amount * 30 / o.ChartMax)
			}
			fmt.Fprintf(app.out, "  %-4s %-30s %s\n", pt.Label, strings.Repeat("█", bar), formatNaira(pt.Amount))
		}
	}

	if len(o.LowStock) > 0 {
		fmt.Fprintln(app.out, "\nLow stock:")
		for _, p := range o.LowStock {
			fmt.Fprintf(app.out, "  %s (%d left)\n", p.Name, p.Stock())
		}
	}

	if len(o.RecentOrders) > 0 {
		fmt.Fprintln(app.out, "\nRecent orders:")
		app.printOrders(o.RecentOrders)
	}
}
