package model

// ShoppingList is one receipt-like list of priced products. Monetary
// amounts are integer cents; taken_at is a calendar date "YYYY-MM-DD".
type ShoppingList struct {
	ID               int64  `json:"id"`
	ShopName         string `json:"shop_name"`
	TakenAt          string `json:"taken_at"`
	Currency         string `json:"currency"`
	TotalPriceInCent int64  `json:"total_price_in_cent"`
	CreatedAt        string `json:"created_at,omitempty"`
	UpdatedAt        string `json:"updated_at,omitempty"`
}

// Product is one priced line item within a shopping list. AppID is
// generated client-side before the first POST and never reassigned; the
// server id stays authoritative.
type Product struct {
	ID          int64  `json:"id"`
	AppID       string `json:"app_id"`
	ListID      int64  `json:"list_id,omitempty"`
	Company     string `json:"company"`
	ProductName string `json:"product_name"`
	PriceInCent int64  `json:"price_in_cent"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}
