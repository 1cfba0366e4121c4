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

type SubCategoryStore struct {
	db *mongo.Database
}

func (s *SubCategoryStore) List(ctx context.Context, categoryID *primitive.ObjectID) ([]models.SubCategory, error) {
	filter := bson.M{}
	if categoryID != nil {
		filter["categoryId"] = *categoryID
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.db.Collection("subcategories").Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subCategories := make([]models.SubCategory, 0)
	if err := cursor.All(ctx, &subCategories); err != nil {
		return nil, err
	}
	return subCategories, nil
}

func (s *SubCategoryStore) Get(ctx context.Context, id primitive.ObjectID) (models.SubCategory, error) {
	var subCategory models.SubCategory
	err := s.db.Collection("subcategories").FindOne(ctx, bson.M{"_id": id}).Decode(&subCategory)
	if err == mongo.ErrNoDocuments {
		return models.SubCategory{}, apperr.NotFound("Sub-category not found.")
	}
	if err != nil {
		return models.SubCategory{}, err
	}
	return subCategory, nil
}

// Create inserts a subcategory after verifying the parent category exists.
func (s *SubCategoryStore) Create(ctx context.Context, name string, categoryID primitive.ObjectID) (models.SubCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.SubCategory{}, apperr.Validation("Name is required.")
	}

	count, err := s.db.Collection("categories").CountDocuments(ctx, bson.M{"_id": categoryID})
	if err != nil {
		return models.SubCategory{}, err
	}
	if count == 0 {
		return models.SubCategory{}, apperr.Validation("category not found: %s", categoryID.Hex())
	}

	now := time.Now()
	subCategory := models.SubCategory{
		Name:       name,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	result, err := s.db.Collection("subcategories").InsertOne(ctx, subCategory)
	if err != nil {
		return models.SubCategory{}, err
	}
	subCategory.ID = result.InsertedID.(primitive.ObjectID)
	return subCategory, nil
}

func (s *SubCategoryStore) Update(ctx context.Context, id primitive.ObjectID, name string, categoryID primitive.ObjectID) (models.SubCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.SubCategory{}, apperr.Validation("Name is required.")
	}

	count, err := s.db.Collection("categories").CountDocuments(ctx, bson.M{"_id": categoryID})
	if err != nil {
		return models.SubCategory{}, err
	}
	if count == 0 {
		return models.SubCategory{}, apperr.Validation("category not found: %s", categoryID.Hex())
	}

	var updated models.SubCategory
	err = s.db.Collection("subcategories").
		FindOneAndUpdate(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{
				"name":       name,
				"categoryId": categoryID,
				"updatedAt":  time.Now(),
			}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).
		Decode(&updated)

	if err == mongo.ErrNoDocuments {
		return models.SubCategory{}, apperr.NotFound("Sub-category not found.")
	}
	if err != nil {
		return models.SubCategory{}, err
	}
	return updated, nil
}

// Delete applies the same referential guard as category deletion: a
// subcategory cannot go away while a product references it.
func (s *SubCategoryStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return withTransaction(ctx, s.db, func(sessCtx mongo.SessionContext) error {
		prodCount, err := s.db.Collection("products").
			CountDocuments(sessCtx, bson.M{"proSubCategoryId": id})
		if err != nil {
			return err
		}
		if prodCount > 0 {
			return apperr.Conflict("Cannot delete sub-category. Products are referencing it.")
		}

		result, err := s.db.Collection("subcategories").DeleteOne(sessCtx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if result.DeletedCount == 0 {
			return apperr.NotFound("Sub-category not found.")
		}
		return nil
	})
}
