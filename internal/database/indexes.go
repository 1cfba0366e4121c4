package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureProductIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("products").Indexes()

	productCodeIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "productCode", Value: 1}},
		Options: options.Index().
			SetName("productCode_unique").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"productCode": bson.M{
					"$exists": true,
				},
			}),
	}

	log.Println("EnsureProductIndexes: creating productCode_unique index")
	_, err := indexes.CreateOne(ctx, productCodeIndex)
	if err != nil {
		log.Println("EnsureProductIndexes: productCode index error:", err)
		return err
	}

	categoryIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "proCategoryId", Value: 1}},
		Options: options.Index().SetName("proCategoryId_index"),
	}
	_, err = indexes.CreateOne(ctx, categoryIndex)
	if err != nil {
		log.Println("EnsureProductIndexes: proCategoryId index error:", err)
		return err
	}
	return nil
}

func EnsureUserIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("users").Indexes()

	mobileIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "mobile", Value: 1}},
		Options: options.Index().
			SetName("mobile_unique").
			SetUnique(true),
	}

	log.Println("EnsureUserIndexes: creating mobile_unique index")
	_, err := indexes.CreateOne(ctx, mobileIndex)
	if err != nil {
		log.Println("EnsureUserIndexes: mobile index error:", err)
		return err
	}
	return nil
}

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("orders").Indexes()

	userIDIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "userID", Value: 1}},
		Options: options.Index().SetName("userID_index"),
	}

	log.Println("EnsureOrderIndexes: creating userID_index index")
	_, err := indexes.CreateOne(ctx, userIDIndex)
	if err != nil {
		log.Println("EnsureOrderIndexes: userID index error:", err)
		return err
	}
	return nil
}
