package customer

import "time"

// Customer is a storefront customer. There is no update or delete
// path; customers are only ever created here.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// Location is the customer's single-line address.
	Location  string     `json:"location"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

// CreateCustomerRequest is the createCustomer body. ID is optional;
// when absent the service's id generator assigns one.
type CreateCustomerRequest struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
}
