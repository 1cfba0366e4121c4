package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nexkart-backend/internal/apperr"
	"nexkart-backend/internal/models"
)

type OrderStore struct {
	db *mongo.Database
}

type OrderItemInput struct {
	ProductID primitive.ObjectID
	Quantity  int
	Variant   string
}

type OrderInput struct {
	UserID          primitive.ObjectID
	Items           []OrderItemInput
	ShippingAddress models.ShippingAddress
	PaymentMethod   string
	CouponID        *primitive.ObjectID
	Discount        float64
}

// computeTotals sums snapshot line prices with decimal arithmetic so repeated
// float additions cannot drift the stored money values.
func computeTotals(items []models.OrderItem, discount float64) models.OrderTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}
	d := decimal.NewFromFloat(discount)
	total := subtotal.Sub(d)

	return models.OrderTotals{
		Subtotal: subtotal.InexactFloat64(),
		Discount: d.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}

// snapshotPrice picks the selling price copied into the line item: the offer
// price when one is set, the list price otherwise.
func snapshotPrice(product models.Product) float64 {
	if product.OfferPrice != nil && *product.OfferPrice > 0 {
		return *product.OfferPrice
	}
	return product.Price
}

// Create writes the order once at checkout. Product name, code and price are
// copied into the line items, and stock is checked and decremented, all inside
// one transaction.
func (s *OrderStore) Create(ctx context.Context, input OrderInput) (models.Order, error) {
	if len(input.Items) == 0 {
		return models.Order{}, apperr.Validation("order must contain at least one item")
	}
	if input.PaymentMethod != models.PaymentCOD && input.PaymentMethod != models.PaymentPrepaid {
		return models.Order{}, apperr.Validation("paymentMethod must be cod or prepaid")
	}
	if input.Discount < 0 {
		return models.Order{}, apperr.Validation("discount must be zero or greater")
	}

	var order models.Order
	err := withTransaction(ctx, s.db, func(sessCtx mongo.SessionContext) error {
		var user models.User
		err := s.db.Collection("users").FindOne(sessCtx, bson.M{"_id": input.UserID}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			return apperr.NotFound("User not found.")
		}
		if err != nil {
			return err
		}

		items := make([]models.OrderItem, 0, len(input.Items))
		for _, item := range input.Items {
			if item.Quantity < 1 {
				return apperr.Validation("quantity must be at least 1")
			}

			var product models.Product
			err := s.db.Collection("products").FindOne(sessCtx, bson.M{"_id": item.ProductID}).Decode(&product)
			if err == mongo.ErrNoDocuments {
				return apperr.Validation("product not found: %s", item.ProductID.Hex())
			}
			if err != nil {
				return err
			}

			if product.Quantity < item.Quantity {
				return apperr.Conflict(
					"insufficient stock for %s: %d available, %d requested",
					product.Name, product.Quantity, item.Quantity,
				)
			}

			result, err := s.db.Collection("products").UpdateOne(
				sessCtx,
				bson.M{"_id": item.ProductID, "quantity": bson.M{"$gte": item.Quantity}},
				bson.M{"$inc": bson.M{"quantity": -item.Quantity}},
			)
			if err != nil {
				return err
			}
			if result.MatchedCount == 0 {
				return apperr.Conflict("insufficient stock for %s", product.Name)
			}

			items = append(items, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				ProductCode: product.ProductCode,
				Quantity:    item.Quantity,
				Price:       snapshotPrice(product),
				Variant:     item.Variant,
			})
		}

		totals := computeTotals(items, input.Discount)
		order = models.Order{
			UserID:          input.UserID,
			UserName:        user.Mobile,
			OrderDate:       time.Now(),
			Status:          models.StatusPending,
			Items:           items,
			TotalPrice:      totals.Total,
			ShippingAddress: input.ShippingAddress,
			PaymentMethod:   input.PaymentMethod,
			CouponID:        input.CouponID,
			Totals:          totals,
		}

		result, err := s.db.Collection("orders").InsertOne(sessCtx, order)
		if err != nil {
			return err
		}
		order.ID = result.InsertedID.(primitive.ObjectID)
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *OrderStore) Get(ctx context.Context, id primitive.ObjectID) (models.Order, error) {
	var order models.Order
	err := s.db.Collection("orders").FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return models.Order{}, apperr.NotFound("Order not found.")
	}
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *OrderStore) List(ctx context.Context, userID *primitive.ObjectID) ([]models.Order, error) {
	filter := bson.M{}
	if userID != nil {
		filter["userID"] = *userID
	}

	opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}})

	cursor, err := s.db.Collection("orders").Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus applies one admin-driven transition. Steps outside the status
// machine are rejected; trackingURL replaces the stored value when non-empty.
func (s *OrderStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, next models.OrderStatus, trackingURL string) (models.Order, error) {
	if !next.Valid() {
		return models.Order{}, apperr.Validation("unknown order status: %s", next)
	}

	var updated models.Order
	err := withTransaction(ctx, s.db, func(sessCtx mongo.SessionContext) error {
		var order models.Order
		err := s.db.Collection("orders").FindOne(sessCtx, bson.M{"_id": id}).Decode(&order)
		if err == mongo.ErrNoDocuments {
			return apperr.NotFound("Order not found.")
		}
		if err != nil {
			return err
		}

		if !order.Status.CanTransitionTo(next) {
			return apperr.Validation("cannot change order status from %s to %s", order.Status, next)
		}

		update := bson.M{"orderStatus": next}
		if trackingURL != "" {
			update["trackingUrl"] = trackingURL
		}

		return s.db.Collection("orders").
			FindOneAndUpdate(
				sessCtx,
				bson.M{"_id": id},
				bson.M{"$set": update},
				options.FindOneAndUpdate().SetReturnDocument(options.After),
			).
			Decode(&updated)
	})
	if err != nil {
		return models.Order{}, err
	}
	return updated, nil
}

func (s *OrderStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.db.Collection("orders").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("Order not found.")
	}
	return nil
}
