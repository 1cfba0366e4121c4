package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VariantGroup is one option axis on a product, e.g. "Size" -> ["S", "M", "L"].
// It is embedded in the owning product and has no lifecycle of its own.
type VariantGroup struct {
	Type   string   `bson:"type" json:"type" validate:"required"`
	Values []string `bson:"values" json:"values" validate:"required,min=1"`
}

// ProductImage occupies one of the five image slots. Slots are independently
// replaceable; replacing slot 3 leaves slots 1, 2, 4 and 5 untouched.
type ProductImage struct {
	Slot int    `bson:"image" json:"image"`
	URL  string `bson:"url" json:"url"`
}

// MaxImageSlots is the number of image positions a product carries.
const MaxImageSlots = 5

type Product struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name          string              `bson:"name" json:"name"`
	ProductCode   string              `bson:"productCode" json:"productCode"`
	Description   string              `bson:"description,omitempty" json:"description,omitempty"`
	Quantity      int                 `bson:"quantity" json:"quantity"`
	Price         float64             `bson:"price" json:"price"`
	OfferPrice    *float64            `bson:"offerPrice,omitempty" json:"offerPrice,omitempty"`
	CategoryID    primitive.ObjectID  `bson:"proCategoryId" json:"proCategoryId"`
	SubCategoryID primitive.ObjectID  `bson:"proSubCategoryId" json:"proSubCategoryId"`
	BrandID       *primitive.ObjectID `bson:"proBrandId,omitempty" json:"proBrandId,omitempty"`
	Variants      []VariantGroup      `bson:"proVariants" json:"proVariants"`
	Images        []ProductImage      `bson:"images" json:"images"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// EntityRef is the {id, name} projection attached when a reference is resolved.
type EntityRef struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// ProductView is a product with its category, subcategory and brand references
// expanded to lightweight projections.
type ProductView struct {
	Product
	Category    *EntityRef `json:"category,omitempty"`
	SubCategory *EntityRef `json:"subCategory,omitempty"`
	Brand       *EntityRef `json:"brand,omitempty"`
}

// ParseVariantGroups decodes the raw proVariants form payload. The payload must
// be a JSON array of {type, values}; an empty array is a valid product with no
// option axes.
func ParseVariantGroups(raw string) ([]VariantGroup, error) {
	var groups []VariantGroup
	if err := json.Unmarshal([]byte(raw), &groups); err != nil {
		return nil, fmt.Errorf("invalid JSON for proVariants")
	}
	for i, group := range groups {
		if strings.TrimSpace(group.Type) == "" {
			return nil, fmt.Errorf("proVariants[%d]: type is required", i)
		}
		if len(group.Values) == 0 {
			return nil, fmt.Errorf("proVariants[%d]: values must not be empty", i)
		}
	}
	if groups == nil {
		groups = []VariantGroup{}
	}
	return groups, nil
}

// MergeImageSlots overlays incoming images onto existing ones by slot number.
// Slots absent from incoming keep their current value; the result is sorted by
// slot.
func MergeImageSlots(existing, incoming []ProductImage) []ProductImage {
	bySlot := make(map[int]ProductImage, len(existing)+len(incoming))
	for _, img := range existing {
		bySlot[img.Slot] = img
	}
	for _, img := range incoming {
		bySlot[img.Slot] = img
	}

	merged := make([]ProductImage, 0, len(bySlot))
	for _, img := range bySlot {
		merged = append(merged, img)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Slot < merged[j].Slot })
	return merged
}
