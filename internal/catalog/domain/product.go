package domain

// Product is a catalog entry. ID is a 24-character ObjectID hex string.
type Product struct {
	ID          string  `bson:"_id,omitempty" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Category    string  `bson:"category" json:"category"`
	Summary     string  `bson:"summary" json:"summary"`
	Description string  `bson:"description" json:"description"`
	ImageFile   string  `bson:"image_file" json:"image_file"`
	Price       float64 `bson:"price" json:"price"`
}
