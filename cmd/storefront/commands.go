package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"jaanmak/internal/api"
	"jaanmak/internal/domain/admindashboard"
	"jaanmak/internal/domain/catalog"
	"jaanmak/internal/domain/checkout"
	"jaanmak/internal/domain/orders"
	"jaanmak/internal/domain/users"
	"jaanmak/internal/media"
	"jaanmak/internal/params"
	"jaanmak/internal/poller"
	"jaanmak/internal/store"
)

var (
	errUsage      = errors.New("usage")
	errOutOfStock = errors.New("this product is out of stock")
)

type command struct {
	usage string
	run   func(app *application, ctx context.Context, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"catalog":         {"catalog [page]", (*application).cmdCatalog},
		"product":         {"product <id>", (*application).cmdProduct},
		"cart":            {"cart", (*application).cmdCart},
		"cart-add":        {"cart-add <id> [qty]", (*application).cmdCartAdd},
		"cart-remove":     {"cart-remove <id>", (*application).cmdCartRemove},
		"cart-decrease":   {"cart-decrease <id>", (*application).cmdCartDecrease},
		"wishlist":        {"wishlist", (*application).cmdWishlist},
		"wishlist-add":    {"wishlist-add <id>", (*application).cmdWishlistAdd},
		"wishlist-remove": {"wishlist-remove <id>", (*application).cmdWishlistRemove},
		"wishlist-toggle": {"wishlist-toggle <id>", (*application).cmdWishlistToggle},
		"register":        {"register <name> <email> <password>", (*application).cmdRegister},
		"login":           {"login <email> <password>", (*application).cmdLogin},
		"verify-email":    {"verify-email <email> <pin>", (*application).cmdVerifyEmail},
		"forgot-password": {"forgot-password <email>", (*application).cmdForgotPassword},
		"reset-password":  {"reset-password <email> <pin> <password>", (*application).cmdResetPassword},
		"logout":          {"logout", (*application).cmdLogout},
		"profile":         {"profile [-name n] [-phone p] [-address a] [-city c] [-state s] [-password p]", (*application).cmdProfile},
		"orders":          {"orders", (*application).cmdOrders},
		"watch-orders":    {"watch-orders", (*application).cmdWatchOrders},
		"cancel-order":    {"cancel-order <id>", (*application).cmdCancelOrder},
		"regions":         {"regions", (*application).cmdRegions},
		"centers":         {"centers <state>", (*application).cmdCenters},
		"quote":           {"quote <state> [doorstep|pickup]", (*application).cmdQuote},
		"checkout":        {"checkout [-note text] <state> <doorstep|pickup> <phone> <city> <address...>", (*application).cmdCheckout},
		"contact":         {"contact <name> <email> <message...>", (*application).cmdContact},
		"dashboard":       {"dashboard", (*application).cmdDashboard},
		"set-status":      {"set-status <order-id> <status>", (*application).cmdSetStatus},
		"product-create":  {"product-create -name n -price p [-category c] [-description d] [-image url] [-benefits b] [-ingredients i] [-how-to-use h] [-stock n]", (*application).cmdProductCreate},
		"product-update":  {"product-update <id> [-name n] [-price p] [-category c] [-description d] [-image url] [-benefits b] [-ingredients i] [-how-to-use h] [-stock n]", (*application).cmdProductUpdate},
		"product-delete":  {"product-delete <id>", (*application).cmdProductDelete},
		"product-image":   {"product-image <id> <file>", (*application).cmdProductImage},
		"users":           {"users", (*application).cmdUsers},
		"user-delete":     {"user-delete <id>", (*application).cmdUserDelete},
	}
}

func (app *application) run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" {
		app.printUsage()
		return nil
	}
	cmd, ok := commands[args[0]]
	if !ok {
		app.printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
	err := cmd.run(app, ctx, args[1:])
	if errors.Is(err, errUsage) {
		return fmt.Errorf("usage: storefront %s", cmd.usage)
	}
	return err
}

func (app *application) printUsage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(app.out, "usage: storefront <command> [args]")
	for _, name := range names {
		fmt.Fprintf(app.out, "  %s\n", commands[name].usage)
	}
}

func (app *application) findProduct(ctx context.Context, id string) (catalog.Product, error) {
	app.store.RefreshProducts(ctx)
	p, ok := app.store.Product(id)
	if !ok {
		return catalog.Product{}, fmt.Errorf("no product with id %q", id)
	}
	return p, nil
}

// Catalog

func (app *application) cmdCatalog(ctx context.Context, args []string) error {
	page := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return errUsage
		}
		page = n
	}
	app.store.RefreshProducts(ctx)
	list, pg := app.store.ProductPage(page, params.DefaultLimit)
	if app.store.UsingDefaultCatalog() {
		fmt.Fprintln(app.out, "(showing the bundled catalog)")
	}
	app.printProducts(list)
	fmt.Fprintf(app.out, "page %d of %d (%d products)\n", pg.Page, pg.TotalPages, pg.Total)
	return nil
}

func (app *application) cmdProduct(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	p, err := app.findProduct(ctx, args[0])
	if err != nil {
		return err
	}
	app.printProductDetail(p)
	if related := app.store.Related(p, 3); len(related) > 0 {
		fmt.Fprintln(app.out, "\nYou may also like:")
		app.printProducts(related)
	}
	return nil
}

// Cart and wishlist

func (app *application) cmdCart(context.Context, []string) error {
	app.printCart(app.store.Cart(), app.store.CartSubtotal())
	return nil
}

func (app *application) cmdCartAdd(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	qty := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return errUsage
		}
		qty = n
	}
	p, err := app.findProduct(ctx, args[0])
	if err != nil {
		return err
	}
	if !p.Available() {
		return errOutOfStock
	}
	if err := app.store.AddToCart(p, qty); err != nil {
		return err
	}
	fmt.Fprintf(app.out, "Added %d x %s to cart (%d items)\n", qty, p.Name, app.store.CartUnits())
	return nil
}

func (app *application) cmdCartRemove(_ context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if err := app.store.RemoveFromCart(args[0]); err != nil {
		return err
	}
	app.printCart(app.store.Cart(), app.store.CartSubtotal())
	return nil
}

func (app *application) cmdCartDecrease(_ context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if err := app.store.DecreaseQuantity(args[0]); err != nil {
		return err
	}
	app.printCart(app.store.Cart(), app.store.CartSubtotal())
	return nil
}

func (app *application) cmdWishlist(context.Context, []string) error {
	list := app.store.Wishlist()
	if len(list) == 0 {
		fmt.Fprintln(app.out, "Your wishlist is empty.")
		return nil
	}
	app.printProducts(list)
	return nil
}

func (app *application) cmdWishlistAdd(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	p, err := app.findProduct(ctx, args[0])
	if err != nil {
		return err
	}
	if err := app.store.AddToWishlist(p); err != nil {
		return err
	}
	fmt.Fprintf(app.out, "Saved %s to your wishlist\n", p.Name)
	return nil
}

func (app *application) cmdWishlistRemove(_ context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if err := app.store.RemoveFromWishlist(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(app.out, "%d saved items\n", len(app.store.Wishlist()))
	return nil
}

func (app *application) cmdWishlistToggle(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	p, ok := app.store.Product(args[0])
	if !ok {
		var err error
		if p, err = app.findProduct(ctx, args[0]); err != nil {
			return err
		}
	}
	saved, err := app.store.ToggleWishlist(p)
	if err != nil {
		return err
	}
	if saved {
		fmt.Fprintf(app.out, "Saved %s to your wishlist\n", p.Name)
	} else {
		fmt.Fprintf(app.out, "Removed %s from your wishlist\n", p.Name)
	}
	return nil
}

// Account

func (app *application) cmdRegister(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errUsage
	}
	u, err := app.client.Register(ctx, users.Registration{Name: args[0], Email: args[1], Password: args[2]})
	if err != nil {
		return err
	}
	if !u.HasToken() {
		fmt.Fprintf(app.out, "Account created. Check %s for your verification code, then run verify-email.\n", u.Email)
		return nil
	}
	return app.signIn(ctx, u)
}

func (app *application) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	u, err := app.client.Login(ctx, users.Credentials{Email: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	return app.signIn(ctx, u)
}

func (app *application) cmdVerifyEmail(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	u, err := app.client.VerifyEmail(ctx, users.Verification{Email: args[0], Pin: args[1]})
	if err != nil {
		return err
	}
	return app.signIn(ctx, u)
}

func (app *application) signIn(ctx context.Context, u users.User) error {
	if err := app.store.Login(ctx, u); err != nil {
		return err
	}
	fmt.Fprintf(app.out, "Welcome, %s (%s)\n", u.Name, u.Role)
	return nil
}

func (app *application) cmdForgotPassword(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	msg, err := app.client.ForgotPassword(ctx, users.ResetRequest{Email: args[0]})
	if err != nil {
		return err
	}
	fmt.Fprintln(app.out, orDefault(msg, "A reset code has been sent to your email."))
	return nil
}

func (app *application) cmdResetPassword(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errUsage
	}
	msg, err := app.client.ResetPassword(ctx, users.PasswordReset{Email: args[0], Pin: args[1], Password: args[2]})
	if err != nil {
		return err
	}
	fmt.Fprintln(app.out, orDefault(msg, "Password reset. You can now log in."))
	return nil
}

func (app *application) cmdLogout(context.Context, []string) error {
	if err := app.store.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(app.out, "Logged out.")
	return nil
}

func (app *application) cmdProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	fs.SetOutput(app.out)
	name := fs.String("name", "", "full name")
	phone := fs.String("phone", "", "phone number")
	address := fs.String("address", "", "street address")
	city := fs.String("city", "", "city")
	state := fs.String("state", "", "state")
	password := fs.String("password", "", "new password")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	var upd users.ProfileUpdate
	changed := 0
	fs.Visit(func(f *flag.Flag) {
		changed++
		switch f.Name {
		case "name":
			upd.Name = name
		case "phone":
			upd.Phone = phone
		case "address":
			upd.Address = address
		case "city":
			upd.City = city
		case "state":
			upd.State = state
		case "password":
			upd.Password = password
		}
	})

	if changed == 0 {
		u, ok := app.store.CurrentUser()
		if !ok {
			return store.ErrNotAuthenticated
		}
		app.printUser(u)
		return nil
	}

	u, err := app.store.UpdateProfile(ctx, upd)
	if err != nil {
		return err
	}
	fmt.Fprintln(app.out, "Profile updated.")
	app.printUser(u)
	return nil
}

// Orders

func (app *application) cmdOrders(ctx context.Context, _ []string) error {
	if _, ok := app.store.CurrentUser(); !ok {
		return store.ErrNotAuthenticated
	}
	app.store.RefreshOrders(ctx)
	app.printOrders(app.store.Orders())
	return nil
}

// cmdWatchOrders polls until interrupted.
func (app *application) cmdWatchOrders(ctx context.Context, _ []string) error {
	u, ok := app.store.CurrentUser()
	if !ok {
		return store.ErrNotAuthenticated
	}
	view := "my-orders"
	if u.Admin() {
		view = "admin-orders"
	}

	p := poller.New(app.config.pollInterval, func(ctx context.Context) {
		app.store.RefreshOrders(ctx)
		list := app.store.Orders()
		fmt.Fprintf(app.out, "%d orders, %d active\n", len(list), orders.CountActive(list))
		app.printOrders(list)
	}, app.logger)

	app.pollers.Bind(ctx, view, p)
	fmt.Fprintf(app.out, "Watching orders every %s. Press Ctrl+C to stop.\n", app.config.pollInterval)
	<-ctx.Done()
	app.pollers.Release(view)
	return nil
}

func (app *application) cmdCancelOrder(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	app.store.RefreshOrders(ctx)
	if err := app.store.CancelOrder(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(app.out, "Order %s cancelled.\n", args[0])
	return nil
}

// Checkout

func (app *application) cmdRegions(context.Context, []string) error {
	for _, r := range checkout.Regions() {
		methods := []string{}
		if checkout.CanDoorstep(r) {
			methods = append(methods, fmt.Sprintf("doorstep %s", formatNaira(checkout.Fee(r, checkout.MethodDoorstep))))
		}
		if checkout.CanPickup(r) {
			methods = append(methods, fmt.Sprintf("pickup %s", formatNaira(checkout.Fee(r, checkout.MethodPickup))))
		}
		fmt.Fprintf(app.out, "%-14s %s\n", r, strings.Join(methods, ", "))
	}
	return nil
}

func (app *application) cmdCenters(_ context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	region, err := checkout.LookupRegion(strings.Join(args, " "))
	if err != nil {
		return err
	}
	centers := checkout.PickupCenters(region)
	if len(centers) == 0 {
		fmt.Fprintf(app.out, "No pickup centers in %s.\n", region)
		return nil
	}
	for _, c := range centers {
		fmt.Fprintln(app.out, c)
	}
	return nil
}

func parseMethodArg(s string) (checkout.Method, error) {
	if s == "" {
		return "", nil
	}
	return checkout.ParseMethod(s)
}

func (app *application) cmdQuote(_ context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	var m checkout.Method
	if len(args) == 2 {
		var err error
		if m, err = parseMethodArg(args[1]); err != nil {
			return err
		}
	}
	q, method, err := app.checkout.Quote(args[0], m)
	if err != nil {
		return err
	}
	app.printQuote(q, method)
	return nil
}

func (app *application) cmdCheckout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	fs.SetOutput(app.out)
	note := fs.String("note", "", "delivery instructions")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	rest := fs.Args()
	if len(rest) < 5 {
		return errUsage
	}
	m, err := parseMethodArg(rest[1])
	if err != nil {
		return err
	}

	req := checkout.Request{
		Form: checkout.ShippingForm{
			State:        rest[0],
			Phone:        rest[2],
			City:         rest[3],
			Address:      strings.Join(rest[4:], " "),
			Instructions: *note,
		},
		Method: m,
	}

	receipt, err := app.checkout.Submit(ctx, req)
	switch {
	case errors.Is(err, checkout.ErrPaymentCancelled):
		fmt.Fprintln(app.out, "Payment cancelled. Your cart has been kept.")
		return nil
	case errors.Is(err, checkout.ErrLoginRequired):
		return fmt.Errorf("%w: run `storefront login <email> <password>` first", err)
	case err != nil:
		var rerr *checkout.RecordError
		if errors.As(err, &rerr) {
			fmt.Fprintf(app.out, "Your payment went through (reference %s) but we could not record the order. Please contact support with this reference.\n", rerr.Reference)
		}
		return err
	}

	fmt.Fprintf(app.out, "Order confirmed! Order %s, reference %s\n", receipt.Order.ID, receipt.Reference)
	region, _ := checkout.LookupRegion(rest[0])
	app.printQuote(receipt.Quote, checkout.Resolve(region, m))
	return nil
}

func (app *application) cmdContact(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errUsage
	}
	msg := api.ContactMessage{Name: args[0], Email: args[1], Message: strings.Join(args[2:], " ")}
	if err := app.client.SendContact(ctx, msg); err != nil {
		return err
	}
	fmt.Fprintln(app.out, "Thanks for reaching out. We'll get back to you shortly.")
	return nil
}

// Admin

func (app *application) requireAdmin() error {
	u, ok := app.store.CurrentUser()
	if !ok {
		return store.ErrNotAuthenticated
	}
	if !u.Admin() {
		return store.ErrForbidden
	}
	return nil
}

func (app *application) cmdDashboard(ctx context.Context, _ []string) error {
	if err := app.requireAdmin(); err != nil {
		return err
	}
	if err := app.store.Bootstrap(ctx); err != nil {
		fmt.Fprintf(app.out, "(could not refresh: %v; figures may be stale)\n", err)
	}
	app.store.RefreshUsers(ctx)
	o := admindashboard.Compute(app.store.Products(), app.store.Orders(), app.store.AllUsers())
	app.printOverview(o)
	return nil
}

func (app *application) cmdSetStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errUsage
	}
	status, err := orders.ParseStatus(strings.Join(args[1:], " "))
	if err != nil {
		names := make([]string, 0, len(orders.Statuses()))
		for _, st := range orders.Statuses() {
			names = append(names, string(st))
		}
		return fmt.Errorf("%w (one of: %s)", err, strings.Join(names, ", "))
	}
	app.store.RefreshOrders(ctx)
	if err := app.store.UpdateOrderStatus(ctx, args[0], status); err != nil {
		return err
	}
	fmt.Fprintf(app.out, "Order %s is now %s.\n", args[0], status)
	return nil
}

func (app *application) cmdProductCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("product-create", flag.ContinueOnError)
	fs.SetOutput(app.out)
	var in catalog.Input
	fs.StringVar(&in.Name, "name", "", "product name")
	fs.Int64Var(&in.Price, "price", 0, "price in naira")
	fs.StringVar(&in.Category, "category", "", "category")
	fs.StringVar(&in.Description, "description", "", "description")
	fs.StringVar(&in.Image, "image", "", "image URL")
	fs.StringVar(&in.Benefits, "benefits", "", "benefits")
	fs.StringVar(&in.Ingredients, "ingredients", "", "ingredients")
	fs.StringVar(&in.HowToUse, "how-to-use", "", "usage directions")
	stock := fs.Int("stock", -1, "units in stock")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *stock >= 0 {
		in.CountInStock = catalog.Int(*stock)
		in.InStock = catalog.Bool(*stock > 0)
	}

	app.store.RefreshProducts(ctx)
	p, err := app.store.CreateProduct(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(app.out, "Created product %s.\n", p.ID)
	return nil
}

// cmdProductUpdate changes only the fields whose flags were given.
func (app *application) cmdProductUpdate(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errUsage
	}
	p, err := app.findProduct(ctx, args[0])
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("product-update", flag.ContinueOnError)
	fs.SetOutput(app.out)
	fs.StringVar(&p.Name, "name", p.Name, "product name")
	fs.Int64Var(&p.Price, "price", p.Price, "price in naira")
	fs.StringVar(&p.Category, "category", p.Category, "category")
	fs.StringVar(&p.Description, "description", p.Description, "description")
	fs.StringVar(&p.Image, "image", p.Image, "image URL")
	fs.StringVar(&p.Benefits, "benefits", p.Benefits, "benefits")
	fs.StringVar(&p.Ingredients, "ingredients", p.Ingredients, "ingredients")
	fs.StringVar(&p.HowToUse, "how-to-use", p.HowToUse, "usage directions")
	stock := fs.Int("stock", p.Stock(), "units in stock")
	if err := fs.Parse(args[1:]); err != nil || fs.NArg() > 0 {
		return errUsage
	}

	changed := 0
	fs.Visit(func(f *flag.Flag) {
		changed++
		if f.Name == "stock" {
			p.CountInStock = catalog.Int(*stock)
			p.InStock = catalog.Bool(*stock > 0)
		}
	})
	if changed == 0 {
		return errUsage
	}

	updated, err := app.store.UpdateProduct(ctx, p)
	if err != nil {
		return err
	}
	fmt.Fprintf(app.out, "Updated product %s.\n", updated.ID)
	app.printProductDetail(updated)
	return nil
}

func (app *application) cmdProductDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	app.store.RefreshProducts(ctx)
	if err := app.store.DeleteProduct(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(app.out, "Deleted product %s.\n", args[0])
	return nil
}

// cmdProductImage uploads the file and points the product at it. The old
// image is removed only after the product update succeeds.
func (app *application) cmdProductImage(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	if app.media == nil {
		return media.ErrNotConfigured
	}
	if err := app.requireAdmin(); err != nil {
		return err
	}
	p, err := app.findProduct(ctx, args[0])
	if err != nil {
		return err
	}

	f, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	imageURL, err := app.media.Upload(ctx, f, p.ID)
	if err != nil {
		return err
	}

	oldImage := p.Image
	p.Image = imageURL
	if _, err := app.store.UpdateProduct(ctx, p); err != nil {
		if derr := app.media.Delete(ctx, imageURL); derr != nil {
			app.logger.Warnw("failed to remove orphaned upload", "url", imageURL, "error", derr)
		}
		return err
	}

	if oldImage != "" {
		if err := app.media.Delete(ctx, oldImage); err != nil {
			app.logger.Infow("previous image not removed", "url", oldImage, "error", err)
		}
	}
	fmt.Fprintf(app.out, "Updated image for %s: %s\n", p.Name, imageURL)
	return nil
}

func (app *application) cmdUsers(ctx context.Context, _ []string) error {
	if err := app.requireAdmin(); err != nil {
		return err
	}
	app.store.RefreshUsers(ctx)
	app.printUsers(app.store.AllUsers())
	return nil
}

func (app *application) cmdUserDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if err := app.store.DeleteUser(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(app.out, "Deleted user %s.\n", args[0])
	return nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
