package router

import (
	"net/http"
	"strings"

	"storefront/internal/handler"
	"storefront/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/products/stats" {
			productHandler.Stats(w, r)
			return
		}
		// Check if this is a request for a specific product ID
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			productHandler.GetByID(w, r)
			return
		}
		productHandler.GetAll(w, r)
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Cart handler function: route on method and path
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")

		switch {
		case path == "/api/cart" && r.Method == http.MethodGet:
			cartHandler.Get(w, r)
		case path == "/api/cart" && r.Method == http.MethodDelete:
			cartHandler.Clear(w, r)
		case path == "/api/cart/checkout" && r.Method == http.MethodPost:
			orderHandler.Checkout(w, r)
		case path == "/api/cart/items" && r.Method == http.MethodPost:
			cartHandler.AddItem(w, r)
		case path == "/api/cart/items" && r.Method == http.MethodPut:
			cartHandler.UpdateItem(w, r)
		case strings.HasPrefix(path, "/api/cart/items/") && r.Method == http.MethodDelete:
			cartHandler.DeleteItem(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	mux.HandleFunc("/api/cart", cartRouteHandler)
	mux.HandleFunc("/api/cart/", cartRouteHandler)

	// Order handler function
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/" {
			orderHandler.List(w, r)
			return
		}

		// Check if this is a request for a specific order ID
		if strings.HasPrefix(r.URL.Path, "/api/orders/") {
			orderHandler.GetByID(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}

	// Register order routes (both with and without trailing slash)
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS -> UserAuth
	var h http.Handler = mux
	h = middleware.UserAuth(logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
