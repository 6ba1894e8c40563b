package models

// Product represents a product stored in the catalog collection.
// ID holds the hex form of the document's ObjectID and is assigned by the store.
type Product struct {
	ID       string   `json:"id,omitempty" bson:"-" validate:"omitempty,mongodb"`
	Name     string   `json:"name" bson:"name" validate:"min=3"`
	Price    float64  `json:"price" bson:"price" validate:"gte=0"`
	Category string   `json:"category" bson:"category" validate:"min=3"`
	Reviews  []Review `json:"reviews" bson:"reviews"`
}

// Review is a customer review embedded in a Product.
type Review struct {
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Rating      int    `json:"rating" bson:"rating"`
}
