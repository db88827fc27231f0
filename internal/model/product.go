package model

import "time"

// Product lifecycle statuses. A product starts life as a draft and is only
// visible to shoppers once its seller publishes it.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Rating is the aggregate review score shown on product cards.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product represents a storefront product.
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Price       float64   `json:"price" db:"price"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	Image       string    `json:"image" db:"image"`
	SellerID    string    `json:"sellerId,omitempty" db:"seller_email"`
	SellerName  string    `json:"sellerName,omitempty" db:"seller_name"`
	Status      string    `json:"status,omitempty" db:"status"`
	CreatedAt   time.Time `json:"createdAt,omitempty" db:"created_at"`
	Rating      Rating    `json:"rating"`
}

// ProductInput is the payload for creating or updating a seller product.
type ProductInput struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	SellerID    string  `json:"sellerId,omitempty"`
	SellerName  string  `json:"sellerName,omitempty"`
}

// ActivityRecord is one append-only entry in a seller's activity log,
// written whenever a product is created, updated, deleted, published or
// unpublished.
type ActivityRecord struct {
	ID           int64     `json:"id" db:"id"`
	ProductID    int64     `json:"product_id" db:"product_id"`
	Action       string    `json:"action" db:"action"`
	ProductTitle string    `json:"product_title" db:"product_title"`
	Timestamp    time.Time `json:"timestamp" db:"created_at"`
}

// Activity log action tags.
const (
	ActionCreated     = "created"
	ActionUpdated     = "updated"
	ActionDeleted     = "deleted"
	ActionPublished   = "published"
	ActionUnpublished = "unpublished"
)
