package models

import "time"

// Condition describes the wear state of a second-hand item.
type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionLikeNew Condition = "like-new"
	ConditionGood    Condition = "good"
	ConditionFair    Condition = "fair"
	ConditionPoor    Condition = "poor"
)

// Seller is a snapshot of the publishing user taken at creation time.
// It is intentionally not a live reference to any account.
type Seller struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Listing is a product advertisement in the catalog. Listings are
// immutable once created and live only for the lifetime of the process.
type Listing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    Category  `json:"category"`
	Images      []string  `json:"images"`
	Location    string    `json:"location"`
	Seller      Seller    `json:"seller"`
	CreatedAt   time.Time `json:"createdAt"`
	Condition   Condition `json:"condition"`
}

// ListingInput is the caller-supplied part of a listing; the catalog
// assigns ID and CreatedAt. The validate tags describe the contract the
// presentation layer must enforce before submitting.
type ListingInput struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Category    Category  `json:"category" validate:"required,oneof=electronics furniture clothing vehicles sports books home toys other"`
	Images      []string  `json:"images"`
	Location    string    `json:"location" validate:"required"`
	Seller      Seller    `json:"seller"`
	Condition   Condition `json:"condition" validate:"required,oneof=new like-new good fair poor"`
}
