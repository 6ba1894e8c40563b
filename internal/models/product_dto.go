package models

// ProductDTO is the outbound representation of a Product.
type ProductDTO struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    float64     `json:"price"`
	Category string      `json:"category"`
	Reviews  []ReviewDTO `json:"reviews"`
}

// ReviewDTO is the outbound representation of a Review.
type ReviewDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Rating      int    `json:"rating"`
}
