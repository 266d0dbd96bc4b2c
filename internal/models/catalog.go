package models

// Category is static reference data grouping products.
type Category struct {
	ID          int64  `json:"category_id"`
	Name        string `json:"category_name"`
	Description string `json:"description"`
}

// Product is the single response shape for every listing and search
// endpoint. CategoryName is only known when the row came from the search
// index.
type Product struct {
	ID              int64   `json:"id"`
	CategoryID      int64   `json:"category_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	MRPPrice        float64 `json:"mrpPrice"`
	DiscountedPrice float64 `json:"discountedPrice"`
	Quantity        int     `json:"quantity"`
	ImageURL        string  `json:"imageUrl"`
	CategoryName    string  `json:"categoryName,omitempty"`
}
