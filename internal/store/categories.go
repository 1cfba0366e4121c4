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

type CategoryStore struct {
	db *mongo.Database
}

func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.db.Collection("categories").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := make([]models.Category, 0)
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryStore) Get(ctx context.Context, id primitive.ObjectID) (models.Category, error) {
	var category models.Category
	err := s.db.Collection("categories").FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return models.Category{}, apperr.NotFound("Category not found.")
	}
	if err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (s *CategoryStore) Create(ctx context.Context, name, imageURL string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, apperr.Validation("Name is required.")
	}
	if imageURL == "" {
		imageURL = models.NoImageURL
	}

	now := time.Now()
	category := models.Category{
		Name:      name,
		Image:     imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := s.db.Collection("categories").InsertOne(ctx, category)
	if err != nil {
		return models.Category{}, err
	}
	category.ID = result.InsertedID.(primitive.ObjectID)
	return category, nil
}

// Update renames the category and, when imageURL is non-empty, replaces its
// image reference.
func (s *CategoryStore) Update(ctx context.Context, id primitive.ObjectID, name, imageURL string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, apperr.Validation("Name is required.")
	}

	update := bson.M{
		"name":      name,
		"updatedAt": time.Now(),
	}
	if imageURL != "" {
		update["image"] = imageURL
	}

	var updated models.Category
	err := s.db.Collection("categories").
		FindOneAndUpdate(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": update},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).
		Decode(&updated)

	if err == mongo.ErrNoDocuments {
		return models.Category{}, apperr.NotFound("Category not found.")
	}
	if err != nil {
		return models.Category{}, err
	}
	return updated, nil
}

// Delete removes the category unless a subcategory or product still references
// it. The guard checks and the delete run in one transaction.
func (s *CategoryStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return withTransaction(ctx, s.db, func(sessCtx mongo.SessionContext) error {
		subCount, err := s.db.Collection("subcategories").
			CountDocuments(sessCtx, bson.M{"categoryId": id})
		if err != nil {
			return err
		}
		if subCount > 0 {
			return apperr.Conflict("Cannot delete category. Subcategories are referencing it.")
		}

		prodCount, err := s.db.Collection("products").
			CountDocuments(sessCtx, bson.M{"proCategoryId": id})
		if err != nil {
			return err
		}
		if prodCount > 0 {
			return apperr.Conflict("Cannot delete category. Products are referencing it.")
		}

		result, err := s.db.Collection("categories").DeleteOne(sessCtx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if result.DeletedCount == 0 {
			return apperr.NotFound("Category not found.")
		}
		return nil
	})
}
