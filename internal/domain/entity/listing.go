package entity

import "time"

// Listing is a sale offer published by a seller, with one image.
type Listing struct {
	ID          int64     `json:"id"`
	SellerID    int64     `json:"seller_id"`
	Title       string    `json:"title"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}
