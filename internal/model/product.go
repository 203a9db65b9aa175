package model

// Product represents a catalogue product with live stock and sales counters.
type Product struct {
	ID          string  `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Description string  `json:"description" db:"description"`
	Image       string  `json:"image" db:"image"`
	Price       float64 `json:"price" db:"price"`
	Stock       int     `json:"stock" db:"stock"`
	SalesCount  int     `json:"salesCount" db:"sales_count"`
}

// ProductSales is a per-product sales tally for the stats endpoint.
type ProductSales struct {
	Title string `json:"name"`
	Sales int    `json:"sales"`
}

// SalesStats aggregates catalogue-wide sales figures.
type SalesStats struct {
	TotalProducts  int            `json:"totalProducts"`
	TotalSales     int            `json:"totalSales"`
	SalesByProduct []ProductSales `json:"salesByProduct"`
}
