package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	StatusPending         OrderStatus = "pending"
	StatusProcessing      OrderStatus = "processing"
	StatusShipped         OrderStatus = "shipped"
	StatusDelivered       OrderStatus = "delivered"
	StatusCancelled       OrderStatus = "cancelled"
	StatusReturnRequested OrderStatus = "return requested"
	StatusReturnAccepted  OrderStatus = "return accepted"
	StatusReturnCancelled OrderStatus = "return cancelled"
)

// statusTransitions is the admin-driven order lifecycle. A cancelled return
// leaves the order in delivered semantics, so a fresh return request stays
// possible.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:         {StatusProcessing, StatusCancelled},
	StatusProcessing:      {StatusShipped, StatusCancelled},
	StatusShipped:         {StatusDelivered},
	StatusDelivered:       {StatusReturnRequested},
	StatusReturnRequested: {StatusReturnAccepted, StatusReturnCancelled},
	StatusReturnCancelled: {StatusReturnRequested},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered,
		StatusCancelled, StatusReturnRequested, StatusReturnAccepted, StatusReturnCancelled:
		return true
	}
	return false
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

const (
	PaymentCOD     = "cod"
	PaymentPrepaid = "prepaid"
)

// OrderItem snapshots the product name, code and price at order time. Later
// product mutations never change a persisted line item.
type OrderItem struct {
	ProductID   primitive.ObjectID `bson:"productID" json:"productID"`
	ProductName string             `bson:"productName" json:"productName"`
	ProductCode string             `bson:"productCode,omitempty" json:"productCode,omitempty"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Price       float64            `bson:"price" json:"price"`
	Variant     string             `bson:"variant,omitempty" json:"variant,omitempty"`
}

type ShippingAddress struct {
	Flat       string `bson:"flat,omitempty" json:"flat,omitempty"`
	Building   string `bson:"building,omitempty" json:"building,omitempty"`
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
	Street     string `bson:"street,omitempty" json:"street,omitempty"`
	City       string `bson:"city,omitempty" json:"city,omitempty"`
	State      string `bson:"state,omitempty" json:"state,omitempty"`
	PostalCode string `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
}

type OrderTotals struct {
	Subtotal float64 `bson:"subtotal" json:"subtotal"`
	Discount float64 `bson:"discount" json:"discount"`
	Total    float64 `bson:"total" json:"total"`
}

type Order struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID  `bson:"userID" json:"userID"`
	UserName        string              `bson:"userName,omitempty" json:"userName,omitempty"`
	OrderDate       time.Time           `bson:"orderDate" json:"orderDate"`
	Status          OrderStatus         `bson:"orderStatus" json:"orderStatus"`
	Items           []OrderItem         `bson:"items" json:"items"`
	TotalPrice      float64             `bson:"totalPrice" json:"totalPrice"`
	ShippingAddress ShippingAddress     `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod   string              `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	CouponID        *primitive.ObjectID `bson:"couponCode,omitempty" json:"couponCode,omitempty"`
	Totals          OrderTotals         `bson:"orderTotal" json:"orderTotal"`
	TrackingURL     string              `bson:"trackingUrl,omitempty" json:"trackingUrl,omitempty"`
}
