package catalog

import "time"

// Product is a catalog item. Products are created and updated outside
// this service; the facade only reads them from the document store.
type Product struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Slug    string  `json:"slug"`
	Tagline *string `json:"tagline"`
	// Description is a longer description of the product.
	Description *string `json:"description"`
	// Price is in minor currency units (cents).
	Price int64 `json:"price"`
	// Discount, also in cents, is subtracted from Price to get the
	// discounted price.
	Discount      int64            `json:"discount"`
	ImageURL      string           `json:"imageUrl"`
	Images        []ProductImage   `json:"images"`
	CollectionIDs []string         `json:"collectionIds,omitempty"`
	Variants      []ProductVariant `json:"variants"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
	DeletedAt     *time.Time       `json:"deletedAt"`
}

type ProductImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type ProductVariant struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Options map[string]string `json:"options"`
	Stock   int               `json:"stock"`
}

// Collection is a named grouping of products.
type Collection struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Slug        *string    `json:"slug"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt"`
}

// ProductList is the listProducts result. Next is always null until
// cursor pagination is supported; see Capabilities.
type ProductList struct {
	Items []Product `json:"items"`
	Next  *string   `json:"next"`
}

// CollectionList is the listCollections result.
type CollectionList struct {
	Items []Collection `json:"items"`
	Next  *string      `json:"next"`
}

// CollectionDetail is a collection with its member products. Products
// is always empty until expansion is supported; see Capabilities.
type CollectionDetail struct {
	Collection
	Products []Product `json:"products"`
}

// Capabilities advertises which declared-but-unimplemented parts of
// the catalog surface actually work, so callers do not mistake a null
// cursor for "no more pages".
type Capabilities struct {
	Pagination          bool `json:"pagination"`
	CollectionExpansion bool `json:"collectionExpansion"`
}
