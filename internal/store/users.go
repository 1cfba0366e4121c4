package store

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"nexkart-backend/internal/apperr"
	"nexkart-backend/internal/models"
)

type UserStore struct {
	db *mongo.Database
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.db.Collection("users").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserStore) Get(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var user models.User
	err := s.db.Collection("users").FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, apperr.NotFound("User not found.")
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Register stores only a bcrypt hash of the credential. The unique mobile
// index backs up the duplicate check.
func (s *UserStore) Register(ctx context.Context, mobile, password string) (models.User, error) {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" || strings.TrimSpace(password) == "" {
		return models.User{}, apperr.Validation("Mobile and password are required.")
	}

	count, err := s.db.Collection("users").CountDocuments(ctx, bson.M{"mobile": mobile})
	if err != nil {
		return models.User{}, err
	}
	if count > 0 {
		return models.User{}, apperr.Conflict("Mobile already registered.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	now := time.Now()
	user := models.User{
		Mobile:       mobile,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result, err := s.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, apperr.Conflict("Mobile already registered.")
		}
		return models.User{}, err
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (s *UserStore) Authenticate(ctx context.Context, mobile, password string) (models.User, error) {
	var user models.User
	err := s.db.Collection("users").FindOne(ctx, bson.M{"mobile": strings.TrimSpace(mobile)}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, apperr.Unauthorized("Invalid mobile or password.")
	}
	if err != nil {
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, apperr.Unauthorized("Invalid mobile or password.")
	}
	return user, nil
}

func (s *UserStore) UpdatePassword(ctx context.Context, id primitive.ObjectID, password string) (models.User, error) {
	if strings.TrimSpace(password) == "" {
		return models.User{}, apperr.Validation("Password is required.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	var updated models.User
	err = s.db.Collection("users").
		FindOneAndUpdate(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{
				"passwordHash": string(hash),
				"updatedAt":    time.Now(),
			}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).
		Decode(&updated)

	if err == mongo.ErrNoDocuments {
		return models.User{}, apperr.NotFound("User not found.")
	}
	if err != nil {
		return models.User{}, err
	}
	return updated, nil
}

func (s *UserStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.db.Collection("users").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("User not found.")
	}
	return nil
}
