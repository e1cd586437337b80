package router

import (
	"net/http"
	"strings"

	"dito-store/internal/handler"
	"dito-store/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers bundles the HTTP handlers the router dispatches to.
type Handlers struct {
	Products   *handler.ProductHandler
	Carts      *handler.CartHandler
	Orders     *handler.OrderHandler
	Affiliates *handler.AffiliateHandler
	Admin      *handler.AdminHandler
	Uploads    *handler.UploadHandler
	Customers  *handler.CustomerHandler
}

// New creates a new HTTP router with all routes and middleware configured.
// Routes under /api/admin/ require the X-API-Key header.
func New(h Handlers, apiKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Storefront catalogue
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			h.Products.GetByID(w, r)
			return
		}
		h.Products.GetAll(w, r)
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Session carts: /api/carts, /api/carts/{id}, /api/carts/{id}/items[/{productID}]
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		parts := splitPath(r.URL.Path, "/api/carts")

		switch {
		case len(parts) == 0 && r.Method == http.MethodPost:
			h.Carts.Create(w, r)
		case len(parts) == 1 && r.Method == http.MethodGet:
			h.Carts.Get(w, r, parts[0])
		case len(parts) == 1 && r.Method == http.MethodDelete:
			h.Carts.Delete(w, r, parts[0])
		case len(parts) == 2 && parts[1] == "items" && r.Method == http.MethodPost:
			h.Carts.AddItem(w, r, parts[0])
		case len(parts) == 3 && parts[1] == "items" && r.Method == http.MethodPut:
			h.Carts.UpdateItem(w, r, parts[0], parts[2])
		case len(parts) == 3 && parts[1] == "items" && r.Method == http.MethodDelete:
			h.Carts.RemoveItem(w, r, parts[0], parts[2])
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/carts", cartRouteHandler)
	mux.HandleFunc("/api/carts/", cartRouteHandler)

	// Checkout and order lookup
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		parts := splitPath(r.URL.Path, "/api/orders")

		switch {
		case len(parts) == 0 && r.Method == http.MethodPost:
			h.Orders.Checkout(w, r)
		case len(parts) == 1 && r.Method == http.MethodGet:
			h.Orders.GetByID(w, r, parts[0])
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	mux.HandleFunc("/api/quotes/shipping", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.Orders.Quote(w, r)
	})

	// Affiliate programme
	mux.HandleFunc("/api/referrals/", func(w http.ResponseWriter, r *http.Request) {
		parts := splitPath(r.URL.Path, "/api/referrals")
		if len(parts) == 2 && parts[1] == "click" && r.Method == http.MethodPost {
			h.Affiliates.Click(w, r, parts[0])
			return
		}
		http.Error(w, "not found", http.StatusNotFound)
	})

	affiliateRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		parts := splitPath(r.URL.Path, "/api/affiliates")

		switch {
		case len(parts) == 0 && r.Method == http.MethodPost:
			h.Affiliates.Register(w, r)
		case len(parts) == 2 && parts[1] == "dashboard" && r.Method == http.MethodGet:
			h.Affiliates.Dashboard(w, r, parts[0])
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/affiliates", affiliateRouteHandler)
	mux.HandleFunc("/api/affiliates/", affiliateRouteHandler)

	mux.HandleFunc("/api/payouts", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.Affiliates.RequestPayout(w, r)
	})

	mux.HandleFunc("/api/uploads/proof", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.Uploads.Proof(w, r)
	})

	mux.HandleFunc("/api/customers", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.Customers.Register(w, r)
	})

	// Back office
	mux.HandleFunc("/api/admin/", func(w http.ResponseWriter, r *http.Request) {
		adminRoute(h, w, r)
	})

	// Apply middleware in order: Recovery -> Logging -> CORS -> AdminAPIKeyAuth
	var routes http.Handler = mux
	routes = middleware.AdminAPIKeyAuth(apiKey, logger)(routes)
	routes = middleware.CORS(routes)
	routes = middleware.Logging(logger)(routes)
	routes = middleware.Recovery(logger)(routes)

	return routes
}

// adminRoute dispatches /api/admin/{resource}[/...] requests.
func adminRoute(h Handlers, w http.ResponseWriter, r *http.Request) {
	parts := splitPath(r.URL.Path, "/api/admin")
	if len(parts) == 0 {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	resource, rest := parts[0], parts[1:]
	switch resource {
	case "orders":
		switch {
		case len(rest) == 0 && r.Method == http.MethodGet:
			h.Orders.GetAll(w, r)
		case len(rest) == 2 && rest[1] == "status" && r.Method == http.MethodPut:
			h.Orders.UpdateStatus(w, r, rest[0])
		case len(rest) == 2 && rest[1] == "fulfillment" && r.Method == http.MethodPut:
			h.Orders.SetFulfillment(w, r, rest[0])
		case len(rest) == 1 && r.Method == http.MethodDelete:
			h.Orders.Delete(w, r, rest[0])
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}

	case "products":
		switch {
		case len(rest) == 0 && (r.Method == http.MethodPost || r.Method == http.MethodPut):
			h.Products.Save(w, r)
		case len(rest) == 1 && rest[0] == "low-stock" && r.Method == http.MethodGet:
			h.Products.LowStock(w, r)
		case len(rest) == 1 && r.Method == http.MethodDelete:
			h.Products.Delete(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}

	case "affiliates":
		switch {
		case len(rest) == 0 && r.Method == http.MethodGet:
			h.Affiliates.GetAll(w, r)
		case len(rest) == 1 && r.Method == http.MethodPut:
			h.Affiliates.Update(w, r, rest[0])
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}

	case "payouts":
		switch {
		case len(rest) == 0 && r.Method == http.MethodGet:
			h.Admin.GetPayouts(w, r)
		case len(rest) == 1 && r.Method == http.MethodPut:
			h.Admin.ResolvePayout(w, r, rest[0])
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}

	case "settings":
		if len(rest) == 1 && (r.Method == http.MethodGet || r.Method == http.MethodPut) {
			h.Admin.Settings(w, r, rest[0])
			return
		}
		http.Error(w, "not found", http.StatusNotFound)

	case "customers":
		switch {
		case len(rest) == 0 && r.Method == http.MethodGet:
			h.Admin.GetCustomers(w, r)
		case len(rest) == 0 && r.Method == http.MethodDelete:
			h.Admin.DeleteCustomer(w, r, "")
		case len(rest) == 1 && r.Method == http.MethodDelete:
			h.Admin.DeleteCustomer(w, r, rest[0])
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}

	default:
		http.Error(w, "not found", http.StatusNotFound)
	}
}

// splitPath strips a route prefix and returns the remaining non-empty
// segments.
func splitPath(path, prefix string) []string {
	trimmed := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
