package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"mystore/internal/cart"
	"mystore/internal/chat"
	"mystore/internal/checkout"
	"mystore/internal/client"
	"mystore/internal/config"
	"mystore/internal/dashboard"
	"mystore/internal/model"
	"mystore/internal/session"
	"mystore/internal/storage"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const usage = `mystore store client

Usage:
  store catalog                         list published products
  store product <id>                    show one product
  store chat <message>                  ask the shopping assistant
  store signup <name> <email> <pass>    register a shopper account
  store login <email> <password>        sign in as a shopper
  store logout                          sign out
  store verify-email <email> [code]     send or check a verification code
  store forgot-password <subcommand>    recover an account (send|verify|reset)
  store cart show|clear                 inspect or empty the cart
  store cart add|remove <product-id>    change cart contents
  store cart qty <product-id> <n>       set a line's quantity
  store checkout [flags]                place the order (see -h)
  store orders                          list the signed-in shopper's orders
  store contact [flags]                 send a message to the store (see -h)
  store seller signup [flags]           apply to become a seller (see -h)
  store seller login <email> <pass>     sign in to the seller console
  store seller logout                   sign out of the seller console
  store seller status <email>           check an application's status
  store seller products|activity        list the console's current data
  store seller add|update [flags]       create or edit a product (see -h)
  store seller delete <product-id>      remove a product
  store seller publish <product-id>     make a product publicly visible
  store seller unpublish <product-id>   pull a product back to draft
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles the local state and the backend client shared by every
// command.
type app struct {
	api     *client.Client
	session *session.Session
	cart    *cart.Cart
	logger  zerolog.Logger
}

func run(args []string) error {
	_ = godotenv.Load()

	cfg, err := config.LoadStorefront()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(config.LoggerConfig{
		Level:  getEnv("LOG_LEVEL", "warn"),
		Format: "console",
	})

	store := storage.NewFileStore(cfg.StatePath, logger)
	sess := session.New(store)
	a := &app{
		api:     client.New(cfg, logger),
		session: sess,
		cart:    cart.New(store, logger),
		logger:  logger,
	}

	if len(args) == 0 {
		fmt.Print(usage)
		return nil
	}

	ctx := context.Background()

	switch args[0] {
	case "catalog":
		return a.catalog(ctx)
	case "product":
		return a.product(ctx, args[1:])
	case "chat":
		return a.chat(ctx, args[1:])
	case "signup":
		return a.signup(ctx, args[1:])
	case "login":
		return a.login(ctx, args[1:])
	case "logout":
		a.session.ClearShopper()
		fmt.Println("Signed out.")
		return nil
	case "verify-email":
		return a.verifyEmail(ctx, args[1:])
	case "forgot-password":
		return a.forgotPassword(ctx, args[1:])
	case "cart":
		return a.cartCmd(ctx, args[1:])
	case "checkout":
		return a.checkout(ctx, args[1:])
	case "orders":
		return a.orders(ctx)
	case "contact":
		return a.contact(ctx, args[1:])
	case "seller":
		return a.seller(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q (run \"store help\")", args[0])
	}
}

func (a *app) catalog(ctx context.Context) error {
	products, err := a.api.Products(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Println("No products available right now.")
		return nil
	}
	for _, p := range products {
		fmt.Printf("%4d  %-40s $%.2f  [%s]\n", p.ID, p.Title, p.Price, p.Category)
	}
	return nil
}

func (a *app) product(ctx context.Context, args []string) error {
	id, err := parseID(args, "product")
	if err != nil {
		return err
	}
	p, err := a.api.Product(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n$%.2f  [%s]  rating %.1f (%d)\n\n%s\n", p.Title, p.Price, p.Category, p.Rating.Rate, p.Rating.Count, p.Description)
	return nil
}

func (a *app) chat(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("chat requires a message")
	}
	widget := chat.NewWidget(a.api, a.logger)
	reply := widget.Send(ctx, strings.Join(args, " "))
	fmt.Println(reply.Content)
	for _, p := range reply.Products {
		fmt.Printf("  %4d  %-40s $%.2f\n", p.ID, p.Title, p.Price)
	}
	return nil
}

func (a *app) signup(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: store signup <name> <email> <password>")
	}
	req := model.SignupRequest{Name: args[0], Email: args[1], Password: args[2]}
	if err := a.api.Signup(ctx, req); err != nil {
		return err
	}
	fmt.Println("Account created. You can sign in now.")
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: store login <email> <password>")
	}
	name, err := a.api.Login(ctx, model.Credentials{Email: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	a.session.SetShopper(args[0], name)
	fmt.Printf("Welcome back, %s!\n", name)
	return nil
}

func (a *app) verifyEmail(ctx context.Context, args []string) error {
	switch len(args) {
	case 1:
		if err := a.api.SendOTP(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("Verification code sent. Check your inbox.")
		return nil
	case 2:
		if err := a.api.VerifyOTP(ctx, args[0], args[1]); err != nil {
			return err
		}
		fmt.Println("Email verified.")
		return nil
	default:
		return fmt.Errorf("usage: store verify-email <email> [code]")
	}
}

func (a *app) forgotPassword(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: store forgot-password send|verify|reset")
	}
	switch args[0] {
	case "send":
		if len(args) != 3 {
			return fmt.Errorf("usage: store forgot-password send <customer|seller> <email>")
		}
		if err := a.api.ForgotPasswordSendOTP(ctx, args[2], args[1]); err != nil {
			return err
		}
		fmt.Println("Reset code sent. Check your inbox.")
		return nil
	case "verify":
		if len(args) != 3 {
			return fmt.Errorf("usage: store forgot-password verify <email> <code>")
		}
		if err := a.api.ForgotPasswordVerifyOTP(ctx, args[1], args[2]); err != nil {
			return err
		}
		fmt.Println("Code accepted. Run \"store forgot-password reset\" to choose a new password.")
		return nil
	case "reset":
		if len(args) != 5 {
			return fmt.Errorf("usage: store forgot-password reset <customer|seller> <email> <code> <new-password>")
		}
		req := model.ResetPasswordRequest{
			UserType:    args[1],
			Email:       args[2],
			OTP:         args[3],
			NewPassword: args[4],
		}
		if err := a.api.ResetPassword(ctx, req); err != nil {
			return err
		}
		fmt.Println("Password updated. You can sign in with it now.")
		return nil
	default:
		return fmt.Errorf("unknown forgot-password command %q", args[0])
	}
}

func (a *app) cartCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: store cart show|clear|add|remove|qty")
	}
	switch args[0] {
	case "show":
		items := a.cart.Items()
		if len(items) == 0 {
			fmt.Println("Your cart is empty.")
			return nil
		}
		for _, l := range items {
			fmt.Printf("%4d  %-40s $%.2f x%d = $%.2f\n", l.ID, l.Title, l.Price, l.Quantity, l.Subtotal())
		}
		fmt.Printf("Total: $%.2f\n", a.cart.TotalPrice())
		return nil
	case "clear":
		a.cart.Clear()
		fmt.Println("Cart cleared.")
		return nil
	case "add":
		id, err := parseID(args[1:], "product")
		if err != nil {
			return err
		}
		p, err := a.api.Product(ctx, id)
		if err != nil {
			return err
		}
		a.cart.Add(*p)
		fmt.Printf("Added %q to your cart.\n", p.Title)
		return nil
	case "remove":
		id, err := parseID(args[1:], "product")
		if err != nil {
			return err
		}
		a.cart.Remove(id)
		fmt.Println("Removed.")
		return nil
	case "qty":
		if len(args) != 3 {
			return fmt.Errorf("usage: store cart qty <product-id> <n>")
		}
		id, err := parseID(args[1:2], "product")
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[2])
		}
		a.cart.SetQuantity(id, n)
		return nil
	default:
		return fmt.Errorf("unknown cart command %q", args[0])
	}
}

func (a *app) checkout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	var addr checkout.AddressForm
	var pay checkout.PaymentForm
	fs.StringVar(&addr.FullName, "name", "", "recipient full name")
	fs.StringVar(&addr.CountryCode, "country-code", "+1", "phone country code")
	fs.StringVar(&addr.Phone, "phone", "", "10 digit phone number")
	fs.StringVar(&addr.Pincode, "pincode", "", "6 digit pincode")
	fs.StringVar(&addr.Address, "address", "", "street address")
	fs.StringVar(&addr.City, "city", "", "city")
	fs.StringVar(&addr.State, "state", "", "state")
	fs.StringVar(&pay.Method, "method", checkout.PaymentCashOnDelivery, "payment method")
	fs.StringVar(&pay.Card.CardNumber, "card-number", "", "card number")
	fs.StringVar(&pay.Card.CardName, "card-name", "", "name on card")
	fs.StringVar(&pay.Card.Expiry, "card-expiry", "", "card expiry")
	fs.StringVar(&pay.Card.CVV, "card-cvv", "", "card cvv")
	fs.StringVar(&pay.UPIID, "upi", "", "UPI id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	snap, err := checkout.Capture(a.cart, addr, pay)
	if err != nil {
		return err
	}

	pipeline := checkout.NewPipeline(a.api, a.cart, a.session, a.logger)
	result, err := pipeline.Submit(ctx, snap)
	if err != nil {
		return err
	}
	fmt.Println(result.Message)
	return nil
}

func (a *app) orders(ctx context.Context) error {
	email, ok := a.session.ShopperEmail()
	if !ok {
		return fmt.Errorf("sign in first to see your orders")
	}
	orders, err := a.api.OrdersByEmail(ctx, email)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return nil
	}
	for _, o := range orders {
		fmt.Printf("Order #%d  $%.2f  %s, %s %s\n", o.ID, o.TotalPrice, o.City, o.State, o.Pincode)
		for _, item := range o.Items {
			fmt.Printf("    %-40s $%.2f x%d\n", item.Title, item.Price, item.Quantity)
		}
	}
	return nil
}

func (a *app) contact(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("contact", flag.ContinueOnError)
	var req model.ContactRequest
	fs.StringVar(&req.Name, "name", "", "your name")
	fs.StringVar(&req.Email, "email", "", "your email")
	fs.StringVar(&req.Subject, "subject", "", "subject (optional)")
	fs.StringVar(&req.Message, "message", "", "message body")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.api.ContactUs(ctx, req); err != nil {
		return err
	}
	fmt.Println("Thanks for reaching out! We'll get back to you soon.")
	return nil
}

func (a *app) seller(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: store seller <login|logout|status|products|activity|add|update|delete|publish|unpublish>")
	}

	switch args[0] {
	case "signup":
		form := dashboard.NewApplicationForm(a.api, a.session, a.logger)
		fs := flag.NewFlagSet("seller signup", flag.ContinueOnError)
		// Unset flags fall back to the autosaved draft, so an application
		// can be filled in across several invocations.
		draft := form.Load()
		fs.StringVar(&draft.Name, "name", draft.Name, "your name")
		fs.StringVar(&draft.Email, "email", draft.Email, "your email")
		fs.StringVar(&draft.StoreName, "store", draft.StoreName, "store name")
		fs.StringVar(&draft.StoreDescription, "description", draft.StoreDescription, "store description")
		fs.StringVar(&draft.Password, "password", draft.Password, "account password")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if draft.Name == "" || draft.Email == "" || draft.StoreName == "" || draft.Password == "" {
			form.Save(draft)
			return fmt.Errorf("name, email, store and password are required (partial form saved)")
		}
		if err := form.Submit(ctx, draft); err != nil {
			return err
		}
		fmt.Println("Application received! We'll review it and get back to you soon.")
		return nil
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("usage: store seller login <email> <password>")
		}
		status, err := a.api.SellerLogin(ctx, model.Credentials{Email: args[1], Password: args[2]})
		if err != nil {
			return err
		}
		a.session.SetSeller(status.Email, status.Name, status.Status)
		fmt.Printf("Welcome back, %s!\n", status.Name)
		return nil
	case "logout":
		a.session.ClearSeller()
		fmt.Println("Signed out of the seller console.")
		return nil
	case "status":
		if len(args) != 2 {
			return fmt.Errorf("usage: store seller status <email>")
		}
		status, err := a.api.CheckSellerStatus(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Application status: %s\n", status.Status)
		return nil
	}

	// Everything below operates on the approved seller's console.
	console := dashboard.New(a.api, a.session, a.logger)
	if err := console.Open(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "products":
		for _, p := range console.Products() {
			fmt.Printf("%4d  %-40s $%.2f  [%s]  %s\n", p.ID, p.Title, p.Price, p.Category, p.Status)
		}
		return nil
	case "activity":
		for _, rec := range console.Activity() {
			fmt.Printf("%s  %-11s %s\n", rec.Timestamp.Format("2006-01-02 15:04"), rec.Action, rec.ProductTitle)
		}
		return nil
	case "add", "update":
		fs := flag.NewFlagSet("seller "+args[0], flag.ContinueOnError)
		var input model.ProductInput
		fs.StringVar(&input.Title, "title", "", "product title")
		fs.Float64Var(&input.Price, "price", 0, "product price")
		fs.StringVar(&input.Description, "description", "", "product description")
		fs.StringVar(&input.Category, "category", "", "product category")
		fs.StringVar(&input.Image, "image", "", "product image URL")
		if seller, ok := a.session.Seller(); ok {
			input.SellerID = seller.Email
			input.SellerName = seller.Name
		}
		rest := args[1:]
		if args[0] == "update" {
			if len(rest) == 0 {
				return fmt.Errorf("usage: store seller update <product-id> [flags]")
			}
			id, err := parseID(rest[:1], "product")
			if err != nil {
				return err
			}
			if err := fs.Parse(rest[1:]); err != nil {
				return err
			}
			if err := console.Update(ctx, id, input); err != nil {
				return err
			}
			fmt.Println("Product updated.")
			return nil
		}
		if err := fs.Parse(rest); err != nil {
			return err
		}
		id, err := console.Create(ctx, input)
		if err != nil {
			return err
		}
		fmt.Printf("Product #%d created as a draft. Publish it when it's ready.\n", id)
		return nil
	case "delete":
		id, err := parseID(args[1:], "product")
		if err != nil {
			return err
		}
		if err := console.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Println("Product deleted.")
		return nil
	case "publish":
		id, err := parseID(args[1:], "product")
		if err != nil {
			return err
		}
		if err := console.Publish(ctx, id); err != nil {
			return err
		}
		fmt.Println("Product published. It is now visible in the catalog.")
		return nil
	case "unpublish":
		id, err := parseID(args[1:], "product")
		if err != nil {
			return err
		}
		if err := console.Unpublish(ctx, id); err != nil {
			return err
		}
		fmt.Println("Product unpublished. It is back in draft.")
		return nil
	default:
		return fmt.Errorf("unknown seller command %q", args[0])
	}
}

func parseID(args []string, noun string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("a %s id is required", noun)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s id %q", noun, args[0])
	}
	return id, nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
