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

type PosterStore struct {
	db *mongo.Database
}

func (s *PosterStore) List(ctx context.Context) ([]models.Poster, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.db.Collection("posters").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posters := make([]models.Poster, 0)
	if err := cursor.All(ctx, &posters); err != nil {
		return nil, err
	}
	return posters, nil
}

func (s *PosterStore) Get(ctx context.Context, id primitive.ObjectID) (models.Poster, error) {
	var poster models.Poster
	err := s.db.Collection("posters").FindOne(ctx, bson.M{"_id": id}).Decode(&poster)
	if err == mongo.ErrNoDocuments {
		return models.Poster{}, apperr.NotFound("Poster not found.")
	}
	if err != nil {
		return models.Poster{}, err
	}
	return poster, nil
}

// Create requires an already-resolved image URL: the upload collaborator runs
// before the record is persisted.
func (s *PosterStore) Create(ctx context.Context, name, imageURL string, productID *primitive.ObjectID) (models.Poster, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Poster{}, apperr.Validation("Name is required.")
	}
	if strings.TrimSpace(imageURL) == "" {
		return models.Poster{}, apperr.Validation("Image is required.")
	}

	now := time.Now()
	poster := models.Poster{
		Name:      name,
		ProductID: productID,
		ImageURL:  imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := s.db.Collection("posters").InsertOne(ctx, poster)
	if err != nil {
		return models.Poster{}, err
	}
	poster.ID = result.InsertedID.(primitive.ObjectID)
	return poster, nil
}

func (s *PosterStore) Update(ctx context.Context, id primitive.ObjectID, name, imageURL string, productID *primitive.ObjectID) (models.Poster, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Poster{}, apperr.Validation("Name is required.")
	}

	update := bson.M{
		"posterName": name,
		"updatedAt":  time.Now(),
	}
	if imageURL != "" {
		update["imageUrl"] = imageURL
	}
	if productID != nil {
		update["productId"] = *productID
	}

	var updated models.Poster
	err := s.db.Collection("posters").
		FindOneAndUpdate(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": update},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).
		Decode(&updated)

	if err == mongo.ErrNoDocuments {
		return models.Poster{}, apperr.NotFound("Poster not found.")
	}
	if err != nil {
		return models.Poster{}, err
	}
	return updated, nil
}

func (s *PosterStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.db.Collection("posters").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("Poster not found.")
	}
	return nil
}
