package repositories

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// productDocument is the stored shape of a product: the model plus its ObjectID.
type productDocument struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	models.Product `bson:",inline"`
}

func (d productDocument) toModel() models.Product {
	p := d.Product
	p.ID = d.ID.Hex()
	return p
}

// MongoProductRepository is a MongoDB implementation of ProductRepository.
type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates a repository over the given collection.
func NewMongoProductRepository(collection *mongo.Collection) *MongoProductRepository {
	return &MongoProductRepository{
		collection: collection,
	}
}

// Find returns up to limit products after skipping skip, in natural order.
func (r *MongoProductRepository) Find(ctx context.Context, skip, limit int64) ([]models.Product, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.toModel())
	}
	return products, nil
}

// FindByID retrieves a single product by its ID.
func (r *MongoProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var doc productDocument
	err := r.collection.FindOne(ctx, idFilter(id)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}

	product := doc.toModel()
	return &product, nil
}

// Insert stores product under a new ObjectID and returns its hex form.
// Any ID already set on product is ignored.
func (r *MongoProductRepository) Insert(ctx context.Context, product *models.Product) (string, error) {
	doc := productDocument{ID: bson.NewObjectID(), Product: *product}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to insert product: %w", err)
	}
	return doc.ID.Hex(), nil
}

// Update overwrites name, category, price and reviews of the product with product.ID.
func (r *MongoProductRepository) Update(ctx context.Context, product *models.Product) (*WriteResult, error) {
	update := bson.M{
		"$set": bson.M{
			"name":     product.Name,
			"category": product.Category,
			"price":    product.Price,
			"reviews":  product.Reviews,
		},
	}

	res, err := r.collection.UpdateOne(ctx, idFilter(product.ID), update)
	if err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", product.ID, err)
	}
	return &WriteResult{Acknowledged: res.Acknowledged, MatchedCount: res.MatchedCount}, nil
}

// Delete removes the product with the given ID.
func (r *MongoProductRepository) Delete(ctx context.Context, id string) (*WriteResult, error) {
	res, err := r.collection.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return nil, fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return &WriteResult{Acknowledged: res.Acknowledged, MatchedCount: res.DeletedCount}, nil
}

// Ping checks that the backing deployment is reachable.
func (r *MongoProductRepository) Ping(ctx context.Context) error {
	return r.collection.Database().Client().Ping(ctx, nil)
}

// idFilter matches on the ObjectID form of id. Strings that are not valid
// hex ObjectIDs are compared as-is and so never match a stored product.
func idFilter(id string) bson.M {
	if oid, err := bson.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": id}
}
