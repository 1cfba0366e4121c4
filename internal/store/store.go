package store

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// Stores bundles one repository per collection. Everything is constructed once
// at startup and handed to the request layer by reference.
type Stores struct {
	Categories    *CategoryStore
	SubCategories *SubCategoryStore
	Brands        *BrandStore
	Products      *ProductStore
	Posters       *PosterStore
	Orders        *OrderStore
	Users         *UserStore
}

func New(db *mongo.Database) *Stores {
	return &Stores{
		Categories:    &CategoryStore{db: db},
		SubCategories: &SubCategoryStore{db: db},
		Brands:        &BrandStore{db: db},
		Products:      &ProductStore{db: db},
		Posters:       &PosterStore{db: db},
		Orders:        &OrderStore{db: db},
		Users:         &UserStore{db: db},
	}
}

// withTransaction runs fn inside a single mongo transaction so that
// check-then-mutate sequences cannot race with concurrent writers. Requires a
// replica-set deployment.
func withTransaction(ctx context.Context, db *mongo.Database, fn func(mongo.SessionContext) error) error {
	session, err := db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	return err
}
