package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/strifelabs/storefront/internal/platform/cache"
	"github.com/strifelabs/storefront/internal/store"
)

// Catalog lookup errors. The error text doubles as the envelope code.
var (
	ErrNotFound   = errors.New("not-found")
	ErrUnexpected = errors.New("unexpected-error")
)

const (
	productsCollection = "Products"
	productCacheTTL    = 5 * time.Minute
)

// ListProductsQuery carries the optional listProducts filters.
type ListProductsQuery struct {
	// CollectionID filters to products belonging to the collection.
	CollectionID string
	// IDs filters to the given document ids. A single id behaves as a
	// one-element set.
	IDs []string
	// Sort is "name" or "price"; anything else is ignored. It only
	// takes effect when Order is also set.
	Sort string
	// Order is "asc" for ascending; any other non-empty value sorts
	// descending.
	Order string
}

// Service defines the catalog read operations.
type Service interface {
	ListProducts(ctx context.Context, query ListProductsQuery) (*ProductList, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListCollections(ctx context.Context) (*CollectionList, error)
	GetCollection(ctx context.Context, id string) (*CollectionDetail, error)
	Capabilities() Capabilities
}

type service struct {
	store       store.Store
	cache       cache.Cache
	log         *logrus.Logger
	collections []Collection
	byID        map[string]Collection
}

// NewService creates a catalog service over the given document store.
func NewService(docStore store.Store, productCache cache.Cache, log *logrus.Logger) Service {
	seeded := seededCollections()
	byID := make(map[string]Collection, len(seeded))
	for _, c := range seeded {
		byID[c.ID] = c
	}
	return &service{
		store:       docStore,
		cache:       productCache,
		log:         log,
		collections: seeded,
		byID:        byID,
	}
}

func (s *service) ListProducts(ctx context.Context, query ListProductsQuery) (*ProductList, error) {
	session := s.store.OpenSession()
	q := session.Query(productsCollection)

	if query.CollectionID != "" {
		q = q.WhereContains("collectionIds", query.CollectionID)
	}
	if len(query.IDs) > 0 {
		q = q.WhereIDIn(query.IDs...)
	}
	if query.Sort != "" && query.Order != "" {
		switch query.Sort {
		case "price", "name":
			if query.Order == "asc" {
				q = q.OrderBy(query.Sort)
			} else {
				q = q.OrderByDescending(query.Sort)
			}
		}
		// Unknown sort keys leave the sequence unordered.
	}

	var items []Product
	if err := q.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if items == nil {
		items = []Product{}
	}
	return &ProductList{Items: items, Next: nil}, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	key := s.cache.GenerateKey("product", id)
	if cached, err := s.cache.Get(ctx, key); err == nil && cached != "" {
		var p Product
		if err := json.Unmarshal([]byte(cached), &p); err == nil {
			return &p, nil
		}
	}

	session := s.store.OpenSession()
	var p Product
	if err := session.Load(ctx, id, &p); err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrUnexpected, err)
	}

	// Best effort: a cache failure must never fail the read.
	if data, err := json.Marshal(p); err == nil {
		if err := s.cache.Set(ctx, key, string(data), productCacheTTL); err != nil {
			s.log.WithError(err).WithField("product_id", id).Debug("product cache write failed")
		}
	}
	return &p, nil
}

func (s *service) ListCollections(ctx context.Context) (*CollectionList, error) {
	items := make([]Collection, len(s.collections))
	copy(items, s.collections)
	return &CollectionList{Items: items, Next: nil}, nil
}

func (s *service) GetCollection(ctx context.Context, id string) (*CollectionDetail, error) {
	c, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &CollectionDetail{Collection: c, Products: []Product{}}, nil
}

func (s *service) Capabilities() Capabilities {
	return Capabilities{Pagination: false, CollectionExpansion: false}
}
