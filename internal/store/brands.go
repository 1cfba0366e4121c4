package store

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nexkart-backend/internal/apperr"
	"nexkart-backend/internal/models"
)

type BrandStore struct {
	db *mongo.Database
}

func (s *BrandStore) List(ctx context.Context) ([]models.Brand, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.db.Collection("brands").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	brands := make([]models.Brand, 0)
	if err := cursor.All(ctx, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (s *BrandStore) Get(ctx context.Context, id primitive.ObjectID) (models.Brand, error) {
	var brand models.Brand
	err := s.db.Collection("brands").FindOne(ctx, bson.M{"_id": id}).Decode(&brand)
	if err == mongo.ErrNoDocuments {
		return models.Brand{}, apperr.NotFound("Brand not found.")
	}
	if err != nil {
		return models.Brand{}, err
	}
	return brand, nil
}

func (s *BrandStore) Create(ctx context.Context, name string) (models.Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Brand{}, apperr.Validation("Name is required.")
	}

	now := time.Now()
	brand := models.Brand{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := s.db.Collection("brands").InsertOne(ctx, brand)
	if err != nil {
		return models.Brand{}, err
	}
	brand.ID = result.InsertedID.(primitive.ObjectID)
	return brand, nil
}

func (s *BrandStore) Update(ctx context.Context, id primitive.ObjectID, name string) (models.Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Brand{}, apperr.Validation("Name is required.")
	}

	var updated models.Brand
	err := s.db.Collection("brands").
		FindOneAndUpdate(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{"name": name, "updatedAt": time.Now()}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).
		Decode(&updated)

	if err == mongo.ErrNoDocuments {
		return models.Brand{}, apperr.NotFound("Brand not found.")
	}
	if err != nil {
		return models.Brand{}, err
	}
	return updated, nil
}

// Delete is unguarded: products keep their brand reference as a dangling id,
// matching the source system's observed behavior.
func (s *BrandStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.db.Collection("brands").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("Brand not found.")
	}
	return nil
}
