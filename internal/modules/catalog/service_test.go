package catalog_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strifelabs/storefront/internal/modules/catalog"
	"github.com/strifelabs/storefront/internal/platform/cache"
	"github.com/strifelabs/storefront/internal/store"
)

func strptr(s string) *string { return &s }

func fixtureProducts() []catalog.Product {
	return []catalog.Product{
		{
			ID:            "astro-icon-zip-up-hoodie",
			Name:          "Astro Icon Zip Up Hoodie",
			Slug:          "astro-icon-zip-up-hoodie",
			Tagline:       strptr("No need to compress this .zip."),
			Price:         4500,
			ImageURL:      "/assets/astro-zip-up-hoodie.png",
			CollectionIDs: []string{"apparel", "bestSellers"},
		},
		{
			ID:            "sticker-pack",
			Name:          "Sticker Pack",
			Slug:          "sticker-pack",
			Tagline:       strptr("Jam packed with the most popular stickers."),
			Price:         500,
			ImageURL:      "/assets/astro-sticker-pack.png",
			CollectionIDs: []string{"stickers", "bestSellers"},
		},
		{
			ID:            "houston-sticker",
			Name:          "Houston Sticker",
			Slug:          "houston-sticker",
			Tagline:       strptr("You can fit a Hous-ton of these on any laptop lid."),
			Price:         250,
			Discount:      100,
			ImageURL:      "/assets/astro-houston-sticker.png",
			CollectionIDs: []string{"stickers", "bestSellers"},
		},
		{
			ID:            "astro-logo-beanie",
			Name:          "Astro Logo Beanie",
			Slug:          "astro-logo-beanie",
			Tagline:       strptr("There's never Bean a better hat for the winter season."),
			Price:         1800,
			ImageURL:      "/assets/astro-beanie.png",
			CollectionIDs: []string{"apparel", "bestSellers"},
		},
	}
}

func newService(t *testing.T) catalog.Service {
	t.Helper()
	docStore := store.NewMemoryStore()
	for _, p := range fixtureProducts() {
		require.NoError(t, store.Seed(docStore, "Products", p.ID, p))
	}
	log := logrus.New()
	return catalog.NewService(docStore, cache.NewMemoryCache("storefront-test"), log)
}

func TestListProductsAll(t *testing.T) {
	svc := newService(t)

	list, err := svc.ListProducts(context.Background(), catalog.ListProductsQuery{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 4)
	assert.Nil(t, list.Next, "pagination cursor must stay null")
}

func TestListProductsByCollection(t *testing.T) {
	svc := newService(t)

	list, err := svc.ListProducts(context.Background(), catalog.ListProductsQuery{CollectionID: "apparel"})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	for _, p := range list.Items {
		assert.Contains(t, p.CollectionIDs, "apparel")
	}
}

func TestListProductsByIDs(t *testing.T) {
	svc := newService(t)

	list, err := svc.ListProducts(context.Background(), catalog.ListProductsQuery{
		IDs: []string{"sticker-pack", "houston-sticker"},
	})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	for _, p := range list.Items {
		assert.Contains(t, []string{"sticker-pack", "houston-sticker"}, p.ID)
	}
}

func TestListProductsBySingleID(t *testing.T) {
	svc := newService(t)

	list, err := svc.ListProducts(context.Background(), catalog.ListProductsQuery{
		IDs: []string{"sticker-pack"},
	})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "sticker-pack", list.Items[0].ID)
}

func TestListProductsSortedByPrice(t *testing.T) {
	svc := newService(t)

	asc, err := svc.ListProducts(context.Background(), catalog.ListProductsQuery{Sort: "price", Order: "asc"})
	require.NoError(t, err)
	for i := 1; i < len(asc.Items); i++ {
		assert.LessOrEqual(t, asc.Items[i-1].Price, asc.Items[i].Price)
	}

	desc, err := svc.ListProducts(context.Background(), catalog.ListProductsQuery{Sort: "price", Order: "desc"})
	require.NoError(t, err)
	for i := 1; i < len(desc.Items); i++ {
		assert.GreaterOrEqual(t, desc.Items[i-1].Price, desc.Items[i].Price)
	}
}

func TestListProductsSortedByName(t *testing.T) {
	svc := newService(t)

	asc, err := svc.ListProducts(context.Background(), catalog.ListProductsQuery{Sort: "name", Order: "asc"})
	require.NoError(t, err)
	for i := 1; i < len(asc.Items); i++ {
		assert.LessOrEqual(t, asc.Items[i-1].Name, asc.Items[i].Name)
	}
}

func TestListProductsUnknownSortKeyIgnored(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	unfiltered, err := svc.ListProducts(ctx, catalog.ListProductsQuery{})
	require.NoError(t, err)
	sorted, err := svc.ListProducts(ctx, catalog.ListProductsQuery{Sort: "updatedAt", Order: "asc"})
	require.NoError(t, err)

	require.Len(t, sorted.Items, len(unfiltered.Items))
	for i := range unfiltered.Items {
		assert.Equal(t, unfiltered.Items[i].ID, sorted.Items[i].ID,
			"an unsupported sort key must leave the order unchanged")
	}
}

func TestListProductsSortWithoutOrderIgnored(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	unfiltered, err := svc.ListProducts(ctx, catalog.ListProductsQuery{})
	require.NoError(t, err)
	sorted, err := svc.ListProducts(ctx, catalog.ListProductsQuery{Sort: "price"})
	require.NoError(t, err)

	for i := range unfiltered.Items {
		assert.Equal(t, unfiltered.Items[i].ID, sorted.Items[i].ID)
	}
}

func TestGetProduct(t *testing.T) {
	svc := newService(t)

	p, err := svc.GetProduct(context.Background(), "houston-sticker")
	require.NoError(t, err)
	assert.Equal(t, "Houston Sticker", p.Name)
	assert.EqualValues(t, 250, p.Price)
	assert.EqualValues(t, 100, p.Discount)
}

func TestGetProductCached(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	first, err := svc.GetProduct(ctx, "sticker-pack")
	require.NoError(t, err)
	second, err := svc.GetProduct(ctx, "sticker-pack")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Price, second.Price)
}

func TestGetProductMissing(t *testing.T) {
	svc := newService(t)

	_, err := svc.GetProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestListCollections(t *testing.T) {
	svc := newService(t)

	list, err := svc.ListCollections(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "apparel", list.Items[0].ID)
	assert.Equal(t, "stickers", list.Items[1].ID)
	assert.Equal(t, "bestSellers", list.Items[2].ID)
	assert.Nil(t, list.Next)
}

func TestGetCollection(t *testing.T) {
	svc := newService(t)

	c, err := svc.GetCollection(context.Background(), "apparel")
	require.NoError(t, err)
	assert.Equal(t, "Apparel", c.Name)
	assert.NotNil(t, c.Products)
	assert.Empty(t, c.Products, "expansion is unsupported, products must be empty")
}

func TestGetCollectionMissing(t *testing.T) {
	svc := newService(t)

	_, err := svc.GetCollection(context.Background(), "nope")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestCapabilities(t *testing.T) {
	svc := newService(t)

	caps := svc.Capabilities()
	assert.False(t, caps.Pagination)
	assert.False(t, caps.CollectionExpansion)
}
