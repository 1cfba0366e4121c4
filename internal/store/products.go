package store

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nexkart-backend/internal/apperr"
	"nexkart-backend/internal/models"
)

type ProductStore struct {
	db *mongo.Database
}

// ProductInput carries the fields of a new product. Variants may be an empty
// slice but never nil: the caller must have received the field explicitly.
type ProductInput struct {
	Name          string
	ProductCode   string
	Description   string
	Quantity      int
	Price         float64
	OfferPrice    *float64
	CategoryID    primitive.ObjectID
	SubCategoryID primitive.ObjectID
	BrandID       *primitive.ObjectID
	Variants      []models.VariantGroup
	Images        []models.ProductImage
}

// ProductUpdate is a partial update: nil fields keep their stored value.
// Images holds only the slots to replace.
type ProductUpdate struct {
	Name          *string
	ProductCode   *string
	Description   *string
	Quantity      *int
	Price         *float64
	OfferPrice    *float64
	CategoryID    *primitive.ObjectID
	SubCategoryID *primitive.ObjectID
	BrandID       *primitive.ObjectID
	Variants      []models.VariantGroup
	VariantsSet   bool
	Images        []models.ProductImage
}

// ListFilter narrows and pages the catalog listing. Page and Limit of zero
// return the entire catalog; callers opt into pagination.
type ListFilter struct {
	CategoryID *primitive.ObjectID
	Page       int64
	Limit      int64
}

type ListResult struct {
	Products   []models.ProductView
	Paged      bool
	Total      int64
	Page       int64
	Limit      int64
	TotalPages int64
}

// validatePricing keeps money comparisons off floats: quantities and prices
// are checked with decimal arithmetic.
func validatePricing(quantity int, price float64, offerPrice *float64) error {
	if quantity < 0 {
		return apperr.Validation("quantity must be zero or greater")
	}
	p := decimal.NewFromFloat(price)
	if p.IsNegative() {
		return apperr.Validation("price must be zero or greater")
	}
	if offerPrice != nil {
		o := decimal.NewFromFloat(*offerPrice)
		if o.IsNegative() {
			return apperr.Validation("offerPrice must be zero or greater")
		}
		if o.GreaterThan(p) {
			return apperr.Validation("offerPrice must not exceed price")
		}
	}
	return nil
}

func (s *ProductStore) checkReferences(ctx context.Context, categoryID, subCategoryID *primitive.ObjectID, brandID *primitive.ObjectID) error {
	if categoryID != nil {
		count, err := s.db.Collection("categories").CountDocuments(ctx, bson.M{"_id": *categoryID})
		if err != nil {
			return err
		}
		if count == 0 {
			return apperr.Validation("category not found: %s", categoryID.Hex())
		}
	}
	if subCategoryID != nil {
		count, err := s.db.Collection("subcategories").CountDocuments(ctx, bson.M{"_id": *subCategoryID})
		if err != nil {
			return err
		}
		if count == 0 {
			return apperr.Validation("sub-category not found: %s", subCategoryID.Hex())
		}
	}
	if brandID != nil {
		count, err := s.db.Collection("brands").CountDocuments(ctx, bson.M{"_id": *brandID})
		if err != nil {
			return err
		}
		if count == 0 {
			return apperr.Validation("brand not found: %s", brandID.Hex())
		}
	}
	return nil
}

func (s *ProductStore) Create(ctx context.Context, input ProductInput) (models.Product, error) {
	name := strings.TrimSpace(input.Name)
	code := strings.TrimSpace(input.ProductCode)
	if name == "" || code == "" {
		return models.Product{}, apperr.Validation("Missing required fields.")
	}
	if input.Variants == nil {
		return models.Product{}, apperr.Validation("Missing required fields.")
	}
	if err := validatePricing(input.Quantity, input.Price, input.OfferPrice); err != nil {
		return models.Product{}, err
	}
	if err := s.checkReferences(ctx, &input.CategoryID, &input.SubCategoryID, input.BrandID); err != nil {
		return models.Product{}, err
	}

	images := models.MergeImageSlots(nil, input.Images)

	now := time.Now()
	product := models.Product{
		Name:          name,
		ProductCode:   code,
		Description:   strings.TrimSpace(input.Description),
		Quantity:      input.Quantity,
		Price:         input.Price,
		OfferPrice:    input.OfferPrice,
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
		BrandID:       input.BrandID,
		Variants:      input.Variants,
		Images:        images,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	result, err := s.db.Collection("products").InsertOne(ctx, product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Product{}, apperr.Conflict("productCode already exists: %s", code)
		}
		return models.Product{}, err
	}
	product.ID = result.InsertedID.(primitive.ObjectID)
	return product, nil
}

func (s *ProductStore) Get(ctx context.Context, id primitive.ObjectID) (models.ProductView, error) {
	var product models.Product
	err := s.db.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return models.ProductView{}, apperr.NotFound("Product not found.")
	}
	if err != nil {
		return models.ProductView{}, err
	}

	views, err := s.resolveRefs(ctx, []models.Product{product})
	if err != nil {
		return models.ProductView{}, err
	}
	return views[0], nil
}

func (s *ProductStore) List(ctx context.Context, filter ListFilter) (ListResult, error) {
	query := bson.M{}
	if filter.CategoryID != nil {
		query["proCategoryId"] = *filter.CategoryID
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	result := ListResult{}
	if filter.Page > 0 && filter.Limit > 0 {
		total, err := s.db.Collection("products").CountDocuments(ctx, query)
		if err != nil {
			return ListResult{}, err
		}
		result.Paged = true
		result.Total = total
		result.Page = filter.Page
		result.Limit = filter.Limit
		if total > 0 {
			result.TotalPages = int64(math.Ceil(float64(total) / float64(filter.Limit)))
		}
		opts = opts.SetSkip((filter.Page - 1) * filter.Limit).SetLimit(filter.Limit)
	}

	cursor, err := s.db.Collection("products").Find(ctx, query, opts)
	if err != nil {
		return ListResult{}, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return ListResult{}, err
	}

	views, err := s.resolveRefs(ctx, products)
	if err != nil {
		return ListResult{}, err
	}
	result.Products = views
	if !result.Paged {
		result.Total = int64(len(views))
	}
	return result, nil
}

// Update merges the provided fields over the stored product. Image slots
// present in upd.Images replace only those slots.
func (s *ProductStore) Update(ctx context.Context, id primitive.ObjectID, upd ProductUpdate) (models.ProductView, error) {
	var existing models.Product
	err := s.db.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return models.ProductView{}, apperr.NotFound("Product not found.")
	}
	if err != nil {
		return models.ProductView{}, err
	}

	// Cross-field price check against the values that will be stored.
	quantity := existing.Quantity
	if upd.Quantity != nil {
		quantity = *upd.Quantity
	}
	price := existing.Price
	if upd.Price != nil {
		price = *upd.Price
	}
	offerPrice := existing.OfferPrice
	if upd.OfferPrice != nil {
		offerPrice = upd.OfferPrice
	}
	if err := validatePricing(quantity, price, offerPrice); err != nil {
		return models.ProductView{}, err
	}
	if err := s.checkReferences(ctx, upd.CategoryID, upd.SubCategoryID, upd.BrandID); err != nil {
		return models.ProductView{}, err
	}

	updateSet := bson.M{"updatedAt": time.Now()}
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return models.ProductView{}, apperr.Validation("name is required")
		}
		updateSet["name"] = name
	}
	if upd.ProductCode != nil {
		code := strings.TrimSpace(*upd.ProductCode)
		if code == "" {
			return models.ProductView{}, apperr.Validation("productCode is required")
		}
		updateSet["productCode"] = code
	}
	if upd.Description != nil {
		updateSet["description"] = strings.TrimSpace(*upd.Description)
	}
	if upd.Quantity != nil {
		updateSet["quantity"] = *upd.Quantity
	}
	if upd.Price != nil {
		updateSet["price"] = *upd.Price
	}
	if upd.OfferPrice != nil {
		updateSet["offerPrice"] = *upd.OfferPrice
	}
	if upd.CategoryID != nil {
		updateSet["proCategoryId"] = *upd.CategoryID
	}
	if upd.SubCategoryID != nil {
		updateSet["proSubCategoryId"] = *upd.SubCategoryID
	}
	if upd.BrandID != nil {
		updateSet["proBrandId"] = *upd.BrandID
	}
	if upd.VariantsSet {
		updateSet["proVariants"] = upd.Variants
	}
	if len(upd.Images) > 0 {
		updateSet["images"] = models.MergeImageSlots(existing.Images, upd.Images)
	}

	var updated models.Product
	err = s.db.Collection("products").
		FindOneAndUpdate(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": updateSet},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).
		Decode(&updated)

	if err == mongo.ErrNoDocuments {
		return models.ProductView{}, apperr.NotFound("Product not found.")
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ProductView{}, apperr.Conflict("productCode already exists")
		}
		return models.ProductView{}, err
	}

	views, err := s.resolveRefs(ctx, []models.Product{updated})
	if err != nil {
		return models.ProductView{}, err
	}
	return views[0], nil
}

// Delete removes the product outright. Orders snapshot product data rather
// than reference it live, so no guard applies here.
func (s *ProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.db.Collection("products").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("Product not found.")
	}
	return nil
}

// resolveRefs expands category, subcategory and brand ids into {id, name}
// projections with one batched lookup per collection.
func (s *ProductStore) resolveRefs(ctx context.Context, products []models.Product) ([]models.ProductView, error) {
	categoryIDs := make([]primitive.ObjectID, 0, len(products))
	subCategoryIDs := make([]primitive.ObjectID, 0, len(products))
	brandIDs := make([]primitive.ObjectID, 0, len(products))
	seen := map[primitive.ObjectID]struct{}{}

	collect := func(dst *[]primitive.ObjectID, id primitive.ObjectID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		*dst = append(*dst, id)
	}

	for _, product := range products {
		collect(&categoryIDs, product.CategoryID)
		collect(&subCategoryIDs, product.SubCategoryID)
		if product.BrandID != nil {
			collect(&brandIDs, *product.BrandID)
		}
	}

	categoryNames, err := s.namesByID(ctx, "categories", categoryIDs)
	if err != nil {
		return nil, err
	}
	subCategoryNames, err := s.namesByID(ctx, "subcategories", subCategoryIDs)
	if err != nil {
		return nil, err
	}
	brandNames, err := s.namesByID(ctx, "brands", brandIDs)
	if err != nil {
		return nil, err
	}

	ref := func(names map[primitive.ObjectID]string, id primitive.ObjectID) *models.EntityRef {
		name, ok := names[id]
		if !ok {
			return nil
		}
		return &models.EntityRef{ID: id, Name: name}
	}

	views := make([]models.ProductView, 0, len(products))
	for _, product := range products {
		view := models.ProductView{
			Product:     product,
			Category:    ref(categoryNames, product.CategoryID),
			SubCategory: ref(subCategoryNames, product.SubCategoryID),
		}
		if product.BrandID != nil {
			view.Brand = ref(brandNames, *product.BrandID)
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *ProductStore) namesByID(ctx context.Context, collection string, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	names := make(map[primitive.ObjectID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	cursor, err := s.db.Collection(collection).Find(
		ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"name": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.EntityRef
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, doc := range docs {
		names[doc.ID] = doc.Name
	}
	return names, nil
}
