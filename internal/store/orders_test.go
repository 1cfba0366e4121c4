package store

import (
	"testing"

	"nexkart-backend/internal/models"
)

func TestComputeTotals(t *testing.T) {
	items := []models.OrderItem{
		{Price: 19.99, Quantity: 3},
		{Price: 5.49, Quantity: 2},
	}

	totals := computeTotals(items, 10)
	if totals.Subtotal != 70.95 {
		t.Fatalf("expected subtotal 70.95, got %v", totals.Subtotal)
	}
	if totals.Discount != 10 {
		t.Fatalf("expected discount 10, got %v", totals.Discount)
	}
	if totals.Total != 60.95 {
		t.Fatalf("expected total 60.95, got %v", totals.Total)
	}
}

func TestComputeTotalsAvoidsFloatDrift(t *testing.T) {
	// 0.1 * 10 accumulates to 0.9999999999999999 with plain float64 addition
	items := []models.OrderItem{{Price: 0.1, Quantity: 10}}

	totals := computeTotals(items, 0)
	if totals.Subtotal != 1 {
		t.Fatalf("expected subtotal 1, got %v", totals.Subtotal)
	}
	if totals.Total != 1 {
		t.Fatalf("expected total 1, got %v", totals.Total)
	}
}

func TestSnapshotPrice(t *testing.T) {
	offer := 79.0
	product := models.Product{Price: 99.0, OfferPrice: &offer}
	if got := snapshotPrice(product); got != 79.0 {
		t.Fatalf("expected offer price 79, got %v", got)
	}

	zero := 0.0
	product = models.Product{Price: 99.0, OfferPrice: &zero}
	if got := snapshotPrice(product); got != 99.0 {
		t.Fatalf("expected list price when offer is zero, got %v", got)
	}

	product = models.Product{Price: 99.0}
	if got := snapshotPrice(product); got != 99.0 {
		t.Fatalf("expected list price when no offer set, got %v", got)
	}
}
