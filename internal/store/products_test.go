package store

import (
	"testing"

	"nexkart-backend/internal/apperr"
)

func TestValidatePricing(t *testing.T) {
	offer := 80.0
	if err := validatePricing(5, 100, &offer); err != nil {
		t.Fatalf("expected valid pricing to pass, got %v", err)
	}
	if err := validatePricing(0, 0, nil); err != nil {
		t.Fatalf("expected zero quantity and price to pass, got %v", err)
	}

	same := 100.0
	if err := validatePricing(5, 100, &same); err != nil {
		t.Fatalf("expected offer equal to price to pass, got %v", err)
	}
}

func TestValidatePricingRejectsBadValues(t *testing.T) {
	negOffer := -1.0
	highOffer := 120.0

	cases := []struct {
		name     string
		quantity int
		price    float64
		offer    *float64
	}{
		{"negative quantity", -1, 100, nil},
		{"negative price", 5, -10, nil},
		{"negative offer", 5, 100, &negOffer},
		{"offer above price", 5, 100, &highOffer},
	}
	for _, tc := range cases {
		err := validatePricing(tc.quantity, tc.price, tc.offer)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if apperr.KindOf(err) != apperr.KindValidation {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}
