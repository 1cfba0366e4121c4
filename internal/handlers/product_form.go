package handlers

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nexkart-backend/internal/apperr"
	"nexkart-backend/internal/models"
	"nexkart-backend/internal/uploader"
)

var validate = validator.New()

// productForm carries one parsed multipart product payload. The Set flags
// distinguish "field absent" from a zero value so updates stay partial.
type productForm struct {
	Name             string
	NameSet          bool
	ProductCode      string
	ProductCodeSet   bool
	Description      string
	DescriptionSet   bool
	Quantity         int
	QuantitySet      bool
	Price            float64
	PriceSet         bool
	OfferPrice       float64
	OfferPriceSet    bool
	CategoryID       string
	CategoryIDSet    bool
	SubCategoryID    string
	SubCategoryIDSet bool
	BrandID          string
	BrandIDSet       bool
	Variants         []models.VariantGroup
	VariantsSet      bool
}

func parseProductForm(c *gin.Context) (productForm, error) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		return productForm{}, apperr.Validation("invalid multipart form")
	}

	form := productForm{}

	if value, ok := c.GetPostForm("name"); ok {
		form.Name = strings.TrimSpace(value)
		form.NameSet = true
	}
	if value, ok := c.GetPostForm("productCode"); ok {
		form.ProductCode = strings.TrimSpace(value)
		form.ProductCodeSet = true
	}
	if value, ok := c.GetPostForm("description"); ok {
		form.Description = strings.TrimSpace(value)
		form.DescriptionSet = true
	}

	if value, ok := c.GetPostForm("quantity"); ok {
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return productForm{}, apperr.Validation("invalid quantity")
		}
		form.Quantity = parsed
		form.QuantitySet = true
	}
	if value, ok := c.GetPostForm("price"); ok {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return productForm{}, apperr.Validation("invalid price")
		}
		form.Price = parsed
		form.PriceSet = true
	}
	if value, ok := c.GetPostForm("offerPrice"); ok {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return productForm{}, apperr.Validation("invalid offerPrice")
		}
		form.OfferPrice = parsed
		form.OfferPriceSet = true
	}

	if value, ok := c.GetPostForm("proCategoryId"); ok {
		form.CategoryID = strings.TrimSpace(value)
		form.CategoryIDSet = true
	}
	if value, ok := c.GetPostForm("proSubCategoryId"); ok {
		form.SubCategoryID = strings.TrimSpace(value)
		form.SubCategoryIDSet = true
	}
	if value, ok := c.GetPostForm("proBrandId"); ok {
		form.BrandID = strings.TrimSpace(value)
		form.BrandIDSet = true
	}

	if value, ok := c.GetPostForm("proVariants"); ok {
		groups, err := models.ParseVariantGroups(value)
		if err != nil {
			return productForm{}, apperr.Validation("%s", err.Error())
		}
		form.Variants = groups
		form.VariantsSet = true
	}

	return form, nil
}

// productCreatePayload re-states the create requirements as validate tags;
// multipart fields never pass through gin's JSON binding.
type productCreatePayload struct {
	Name          string                `validate:"required"`
	ProductCode   string                `validate:"required"`
	Quantity      int                   `validate:"gte=0"`
	Price         float64               `validate:"gte=0"`
	CategoryID    string                `validate:"required"`
	SubCategoryID string                `validate:"required"`
	Variants      []models.VariantGroup `validate:"dive"`
}

func (f productForm) validateForCreate() error {
	if !f.NameSet || !f.ProductCodeSet || !f.QuantitySet || !f.PriceSet ||
		!f.CategoryIDSet || !f.SubCategoryIDSet || !f.VariantsSet {
		return apperr.Validation("Missing required fields.")
	}

	payload := productCreatePayload{
		Name:          f.Name,
		ProductCode:   f.ProductCode,
		Quantity:      f.Quantity,
		Price:         f.Price,
		CategoryID:    f.CategoryID,
		SubCategoryID: f.SubCategoryID,
		Variants:      f.Variants,
	}
	if err := validate.Struct(payload); err != nil {
		return apperr.Validation("Missing required fields.")
	}
	return nil
}

func parseOptionalObjectID(raw, field string) (*primitive.ObjectID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return nil, apperr.Validation("invalid %s", field)
	}
	return &id, nil
}

// collectProductImages uploads whichever of image1..image5 arrived. A failed
// slot is logged and skipped; the write goes ahead with the slots that made it.
func collectProductImages(c *gin.Context, uploads uploader.Uploader, route string) []models.ProductImage {
	images := make([]models.ProductImage, 0, models.MaxImageSlots)
	for slot := 1; slot <= models.MaxImageSlots; slot++ {
		file, err := c.FormFile(fmt.Sprintf("image%d", slot))
		if err != nil {
			continue
		}

		url, err := uploadImage(c.Request.Context(), uploads, "products", file)
		if err != nil {
			log.Printf("[%s] image slot %d upload failed: %v", route, slot, err)
			continue
		}
		images = append(images, models.ProductImage{Slot: slot, URL: url})
	}
	return images
}
