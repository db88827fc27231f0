package model

// OrderItem is a snapshot of one purchased line. Title and price are copied
// from the product at purchase time so later edits to the live product do
// not retroactively alter historical orders.
type OrderItem struct {
	Title    string  `json:"title" db:"title"`
	Price    float64 `json:"price" db:"price"`
	Quantity int     `json:"quantity" db:"quantity"`
}

// AddressInfo is a validated delivery address captured during checkout.
type AddressInfo struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Pincode  string `json:"pincode"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
}

// OrderRequest is the payload for persisting an order and for requesting
// its confirmation email. Both endpoints accept the same shape.
type OrderRequest struct {
	Email      string      `json:"email"`
	FullName   string      `json:"fullName"`
	Items      []OrderItem `json:"items"`
	TotalPrice float64     `json:"totalPrice"`
	Address    AddressInfo `json:"address"`
}

// Order is a durably saved order as returned by the order history endpoint.
type Order struct {
	ID         int64       `json:"orderId" db:"id"`
	FullName   string      `json:"fullName" db:"full_name"`
	TotalPrice float64     `json:"totalPrice" db:"total_price"`
	Address    string      `json:"address" db:"address"`
	City       string      `json:"city" db:"city"`
	State      string      `json:"state" db:"state"`
	Pincode    string      `json:"pincode" db:"pincode"`
	Items      []OrderItem `json:"items"`
}
