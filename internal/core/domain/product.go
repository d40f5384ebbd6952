package domain

import "time"

// ProductImage is an uploaded catalogue image reference.
type ProductImage struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// Variant is a purchasable variation of a product (size, colour, …).
type Variant struct {
	Type            string  `json:"type"`
	Value           string  `json:"value"`
	AdditionalPrice float64 `json:"additionalPrice"`
}

// Ratings aggregates customer review scores.
type Ratings struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Review is a single customer review.
type Review struct {
	Customer  string    `json:"customer"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// Product is a catalogue entry.
type Product struct {
	ID              string         `json:"_id"`
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	Price           float64        `json:"price"`
	Stock           int            `json:"stock"`
	Published       bool           `json:"published"`
	Discount        float64        `json:"discount,omitempty"`
	DiscountedPrice float64        `json:"discountedPrice,omitempty"`
	Description     string         `json:"description"`
	SKU             string         `json:"sku"`
	Images          []ProductImage `json:"images,omitempty"`
	Tags            []string       `json:"tags,omitempty"`
	Variants        []Variant      `json:"variants,omitempty"`
	Ratings         Ratings        `json:"ratings"`
	Reviews         []Review       `json:"reviews,omitempty"`
	PublishedDate   *time.Time     `json:"publishedDate,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// ProductInput carries the writable fields for product create/update calls.
type ProductInput struct {
	Name        string         `json:"name,omitempty"`
	Category    string         `json:"category,omitempty"`
	Price       float64        `json:"price,omitempty"`
	Stock       int            `json:"stock,omitempty"`
	Published   *bool          `json:"published,omitempty"`
	Discount    float64        `json:"discount,omitempty"`
	Description string         `json:"description,omitempty"`
	SKU         string         `json:"sku,omitempty"`
	Images      []ProductImage `json:"images,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Variants    []Variant      `json:"variants,omitempty"`
}
