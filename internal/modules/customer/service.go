package customer

import (
	"context"
	"time"
)

// IDGenerator assigns ids to customers created without one.
type IDGenerator interface {
	NewID() string
}

// Service defines the customer business logic.
type Service interface {
	// CreateCustomer stamps timestamps and assigns an id when the
	// request carries none. No validation is applied to name, email
	// or location.
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error)
}

type service struct {
	ids IDGenerator
	now func() time.Time
}

// NewService creates a customer service with the given id strategy.
func NewService(ids IDGenerator) Service {
	return &service{ids: ids, now: time.Now}
}

func (s *service) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	id := req.ID
	if id == "" {
		id = s.ids.NewID()
	}
	now := s.now().UTC()
	return &Customer{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		Location:  req.Location,
		CreatedAt: now,
		UpdatedAt: now,
		DeletedAt: nil,
	}, nil
}
