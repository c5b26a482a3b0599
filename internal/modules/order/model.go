package order

import "time"

// Address is a fully normalized postal address. Required fields are
// never absent (missing input becomes ""); optional fields are null
// when not supplied.
type Address struct {
	Line1     string  `json:"line1"`
	Line2     string  `json:"line2"`
	City      string  `json:"city"`
	Province  string  `json:"province"`
	Country   string  `json:"country"`
	Postal    string  `json:"postal"`
	Phone     *string `json:"phone"`
	Company   *string `json:"company"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// AddressInput is the caller-supplied, possibly partial address.
type AddressInput struct {
	Line1     string  `json:"line1,omitempty"`
	Line2     string  `json:"line2,omitempty"`
	City      string  `json:"city,omitempty"`
	Province  string  `json:"province,omitempty"`
	Country   string  `json:"country,omitempty"`
	Postal    string  `json:"postal,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Company   *string `json:"company,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// LineItemInput is one product-variant quantity entry of the order
// body.
type LineItemInput struct {
	Quantity         int    `json:"quantity"`
	ProductVariantID string `json:"productVariantId"`
}

// LineItem is a stored order line.
//
// ID is derived deterministically from the product variant id, so two
// line items for the same variant in one order carry equal ids. They
// remain two distinct entries; nothing is overwritten.
type LineItem struct {
	ID               string `json:"id"`
	Quantity         int    `json:"quantity"`
	ProductVariantID string `json:"productVariantId"`
}

// OrderInput is the createOrder body.
type OrderInput struct {
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	LineItems    []LineItemInput `json:"lineItems"`
	// TotalPrice and ShippingPrice are in minor currency units.
	TotalPrice      int64         `json:"totalPrice"`
	ShippingPrice   int64         `json:"shippingPrice"`
	BillingAddress  *AddressInput `json:"billingAddress,omitempty"`
	ShippingAddress *AddressInput `json:"shippingAddress,omitempty"`
}

// Order is a created order. Orders are never mutated or deleted once
// placed in the registry.
type Order struct {
	ID              string     `json:"id"`
	Number          int64      `json:"number"`
	CustomerID      string     `json:"customerId"`
	CustomerName    string     `json:"customerName"`
	LineItems       []LineItem `json:"lineItems"`
	TotalPrice      int64      `json:"totalPrice"`
	ShippingPrice   int64      `json:"shippingPrice"`
	BillingAddress  Address    `json:"billingAddress"`
	ShippingAddress Address    `json:"shippingAddress"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	DeletedAt       *time.Time `json:"deletedAt"`
}
