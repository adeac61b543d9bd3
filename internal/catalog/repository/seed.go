package repository

import (
	"context"
	"fmt"

	"github.com/fjod/go_shop/internal/catalog/domain"
	"go.mongodb.org/mongo-driver/bson"
)

// EnsureSeedData fills an empty catalog with the default product set.
// A catalog that already holds documents is left untouched.
func (m *MongoRepository) EnsureSeedData(ctx context.Context) error {
	count, err := m.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed := make([]interface{}, len(seedProducts))
	for i := range seedProducts {
		seed[i] = seedProducts[i]
	}

	if _, err := m.collection.InsertMany(ctx, seed); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	return nil
}

var seedProducts = []domain.Product{
	{
		ID:          "602d2149e773f2a3990b47f5",
		Name:        "IPhone X",
		Category:    "Smart Phone",
		Summary:     "This phone is the company's biggest change to its flagship smartphone in years.",
		Description: "Almost bezel-less display, glass body and wireless charging.",
		ImageFile:   "product-1.png",
		Price:       950.00,
	},
	{
		ID:          "602d2149e773f2a3990b47f6",
		Name:        "Samsung 10",
		Category:    "Smart Phone",
		Summary:     "Punch-hole display and triple rear camera.",
		Description: "Ultrasonic in-display fingerprint reader and reverse wireless charging.",
		ImageFile:   "product-2.png",
		Price:       840.00,
	},
	{
		ID:          "602d2149e773f2a3990b47f7",
		Name:        "Huawei Plus",
		Category:    "White Appliances",
		Summary:     "Curved OLED display with a wide notch.",
		Description: "Large battery and fast in-house processor.",
		ImageFile:   "product-3.png",
		Price:       650.00,
	},
	{
		ID:          "602d2149e773f2a3990b47f8",
		Name:        "Xiaomi Mi 9",
		Category:    "White Appliances",
		Summary:     "Triple camera setup at a mid-range price.",
		Description: "Flagship processor, AMOLED display and 20W wireless charging.",
		ImageFile:   "product-4.png",
		Price:       470.00,
	},
	{
		ID:          "602d2149e773f2a3990b47f9",
		Name:        "HTC U11+ Plus",
		Category:    "Smart Phone",
		Summary:     "Squeezable frame with translucent back.",
		Description: "Six-inch display in a body not much bigger than its predecessor.",
		ImageFile:   "product-5.png",
		Price:       380.00,
	},
	{
		ID:          "602d2149e773f2a3990b47fa",
		Name:        "LG G7 ThinQ",
		Category:    "Home Kitchen",
		Summary:     "Super bright display and AI-powered camera.",
		Description: "Boombox speaker that uses the phone body as a resonance chamber.",
		ImageFile:   "product-6.png",
		Price:       240.00,
	},
}
