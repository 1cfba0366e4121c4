package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nexkart-backend/internal/apperr"
	"nexkart-backend/internal/models"
	"nexkart-backend/internal/store"
)

type orderItemRequest struct {
	ProductID string `json:"productID" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	Variant   string `json:"variant"`
}

type createOrderRequest struct {
	Items           []orderItemRequest     `json:"items" binding:"required,min=1,dive"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod" binding:"required"`
	CouponCode      string                 `json:"couponCode"`
	Discount        float64                `json:"discount"`
}

type updateOrderStatusRequest struct {
	Status      string `json:"orderStatus" binding:"required"`
	TrackingURL string `json:"trackingUrl"`
}

func userIDFromClaims(c *gin.Context) (primitive.ObjectID, error) {
	value, exists := c.Get("claims")
	if !exists {
		return primitive.NilObjectID, apperr.Unauthorized("unauthorized")
	}
	claims, ok := value.(jwt.MapClaims)
	if !ok {
		return primitive.NilObjectID, apperr.Unauthorized("unauthorized")
	}
	sub, _ := claims["sub"].(string)
	id, err := primitive.ObjectIDFromHex(sub)
	if err != nil {
		return primitive.NilObjectID, apperr.Unauthorized("unauthorized")
	}
	return id, nil
}

/*
POST /orders
- the checkout collaborator: snapshots products into line items in one
  transaction
*/
func CreateOrder(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		userID, err := userIDFromClaims(c)
		if err != nil {
			respondError(c, route, err)
			return
		}

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, route, apperr.Validation("invalid request body"))
			return
		}

		items := make([]store.OrderItemInput, 0, len(req.Items))
		for _, item := range req.Items {
			productID, err := primitive.ObjectIDFromHex(item.ProductID)
			if err != nil {
				respondError(c, route, apperr.Validation("invalid productID: %s", item.ProductID))
				return
			}
			items = append(items, store.OrderItemInput{
				ProductID: productID,
				Quantity:  item.Quantity,
				Variant:   item.Variant,
			})
		}

		input := store.OrderInput{
			UserID:          userID,
			Items:           items,
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
			Discount:        req.Discount,
		}
		if req.CouponCode != "" {
			couponID, err := primitive.ObjectIDFromHex(req.CouponCode)
			if err != nil {
				respondError(c, route, apperr.Validation("invalid couponCode"))
				return
			}
			input.CouponID = &couponID
		}

		order, err := orders.Create(c.Request.Context(), input)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Order created successfully.", order)
	}
}

/*
GET /orders
- the caller's own orders
*/
func GetMyOrders(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders"
		defer handlePanic(c, route)

		userID, err := userIDFromClaims(c)
		if err != nil {
			respondError(c, route, err)
			return
		}

		list, err := orders.List(c.Request.Context(), &userID)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Orders retrieved successfully.", list)
	}
}

/*
GET /admin/api/orders
*/
func GetAllOrders(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/orders"
		defer handlePanic(c, route)

		list, err := orders.List(c.Request.Context(), nil)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Orders retrieved successfully.", list)
	}
}

func GetOrder(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/orders/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route)
		if !ok {
			return
		}

		order, err := orders.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Order retrieved successfully.", order)
	}
}

/*
PUT /admin/api/orders/:id
- the only post-creation mutation: one status-machine step
*/
func UpdateOrderStatus(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/orders/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route)
		if !ok {
			return
		}

		var req updateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, route, apperr.Validation("orderStatus is required"))
			return
		}

		order, err := orders.UpdateStatus(c.Request.Context(), id, models.OrderStatus(req.Status), req.TrackingURL)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Order updated successfully.", order)
	}
}

func DeleteOrder(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/api/orders/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route)
		if !ok {
			return
		}

		if err := orders.Delete(c.Request.Context(), id); err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Order deleted successfully.", nil)
	}
}
