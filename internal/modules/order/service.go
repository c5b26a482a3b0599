package order

import (
	"context"
	"time"
)

// IDGenerator assigns order ids.
type IDGenerator interface {
	NewID() string
}

// NumberSequence issues the human-readable order numbers.
type NumberSequence interface {
	Next() int64
}

// Service defines the order operations.
type Service interface {
	// CreateOrder normalizes the input, derives line item ids, stamps
	// timestamps and stores exactly one order in the registry.
	CreateOrder(ctx context.Context, in OrderInput) (*Order, error)

	// GetOrder returns the stored order unchanged, or ErrNotFound.
	GetOrder(ctx context.Context, id string) (*Order, error)
}

type service struct {
	registry Registry
	ids      IDGenerator
	numbers  NumberSequence
	now      func() time.Time
}

// NewService creates an order service with injected id and number
// strategies.
func NewService(registry Registry, ids IDGenerator, numbers NumberSequence) Service {
	return &service{
		registry: registry,
		ids:      ids,
		numbers:  numbers,
		now:      time.Now,
	}
}

func (s *service) CreateOrder(ctx context.Context, in OrderInput) (*Order, error) {
	lineItems := make([]LineItem, len(in.LineItems))
	for i, item := range in.LineItems {
		lineItems[i] = LineItem{
			ID:               "line-item-" + item.ProductVariantID,
			Quantity:         item.Quantity,
			ProductVariantID: item.ProductVariantID,
		}
	}

	now := s.now().UTC()
	order := Order{
		ID:              s.ids.NewID(),
		Number:          s.numbers.Next(),
		CustomerID:      in.CustomerID,
		CustomerName:    in.CustomerName,
		LineItems:       lineItems,
		TotalPrice:      in.TotalPrice,
		ShippingPrice:   in.ShippingPrice,
		BillingAddress:  normalizeAddress(in.BillingAddress),
		ShippingAddress: normalizeAddress(in.ShippingAddress),
		CreatedAt:       now,
		UpdatedAt:       now,
		DeletedAt:       nil,
	}

	s.registry.Put(order)
	return &order, nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	order, err := s.registry.Get(id)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// normalizeAddress applies the address defaulting rule: required
// fields become empty strings, optional fields stay null when absent.
// A missing address normalizes the same way as an empty one.
func normalizeAddress(in *AddressInput) Address {
	if in == nil {
		return Address{}
	}
	return Address{
		Line1:     in.Line1,
		Line2:     in.Line2,
		City:      in.City,
		Province:  in.Province,
		Country:   in.Country,
		Postal:    in.Postal,
		Phone:     in.Phone,
		Company:   in.Company,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
}
