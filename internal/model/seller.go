package model

import "time"

// Seller account statuses as stored in the sellers table. A seller may only
// manage products while approved.
const (
	SellerPending  = "pending"
	SellerApproved = "approved"
	SellerRejected = "rejected"
)

// Seller represents a seller account.
type Seller struct {
	FullName         string    `json:"name" db:"full_name"`
	Email            string    `json:"email" db:"email"`
	StoreName        string    `json:"storeName" db:"store_name"`
	StoreDescription string    `json:"store_description" db:"store_description"`
	Password         string    `json:"-" db:"password"`
	Status           string    `json:"status" db:"status"`
	CreatedAt        time.Time `json:"createdAt,omitempty" db:"created_at"`
}

// SellerStatus is the response of the seller status check used to gate the
// dashboard.
type SellerStatus struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Status     string `json:"status"`
	IsApproved bool   `json:"isApproved"`
}

// SellerSignupRequest is the seller application payload.
type SellerSignupRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	StoreName        string `json:"storeName"`
	StoreDescription string `json:"store_description"`
	Password         string `json:"password"`
}
