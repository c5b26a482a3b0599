package catalog

import "time"

// Collections are served from a fixed in-memory table rather than the
// document store: the set is small, changes ship with the code, and
// member expansion is not supported yet.
func seededCollections() []Collection {
	now := time.Now().UTC()
	slug := func(s string) *string { return &s }
	return []Collection{
		{
			ID:          "apparel",
			Name:        "Apparel",
			Description: "Wear your love for Astro on your sleeve.",
			Slug:        slug("apparel"),
			ImageURL:    "/assets/shirts.png",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "stickers",
			Name:        "Stickers",
			Description: "Load up those laptop lids with Astro pride.",
			Slug:        slug("stickers"),
			ImageURL:    "/assets/astro-sticker-pack.png",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "bestSellers",
			Name:        "Best Sellers",
			Description: "You'll love these.",
			Slug:        slug("best-sellers"),
			ImageURL:    "/assets/astro-houston-sticker.png",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
