package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nexkart-backend/internal/apperr"
	"nexkart-backend/internal/store"
	"nexkart-backend/internal/uploader"
)

/*
GET /products
- ?categoryId= narrows the listing
- ?page=&limit= pages it; without both, the whole catalog comes back
*/
func GetProducts(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"))
		if err != nil {
			respondError(c, route, err)
			return
		}

		filter := store.ListFilter{Page: page, Limit: limit}
		if raw := strings.TrimSpace(c.Query("categoryId")); raw != "" {
			id, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				respondError(c, route, apperr.Validation("invalid categoryId"))
				return
			}
			filter.CategoryID = &id
		}

		result, err := products.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, route, err)
			return
		}

		if result.Paged {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "Products retrieved successfully.",
				"data":    result.Products,
				"pagination": gin.H{
					"totalItems":  result.Total,
					"currentPage": result.Page,
					"totalPages":  result.TotalPages,
					"pageSize":    result.Limit,
				},
			})
			return
		}
		respondData(c, "Products retrieved successfully.", result.Products)
	}
}

/*
GET /products/:id
*/
func GetProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route)
		if !ok {
			return
		}

		product, err := products.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Product retrieved successfully.", product)
	}
}

/*
POST /products
- multipart form: scalar fields, proVariants JSON, image1..image5 files
*/
func CreateProduct(products *store.ProductStore, uploads uploader.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /products"
		defer handlePanic(c, route)

		if !strings.HasPrefix(c.GetHeader("Content-Type"), "multipart/form-data") {
			respondError(c, route, apperr.Validation("multipart/form-data required"))
			return
		}

		form, err := parseProductForm(c)
		if err != nil {
			respondError(c, route, err)
			return
		}
		if err := form.validateForCreate(); err != nil {
			respondError(c, route, err)
			return
		}

		categoryID, err := primitive.ObjectIDFromHex(form.CategoryID)
		if err != nil {
			respondError(c, route, apperr.Validation("invalid proCategoryId"))
			return
		}
		subCategoryID, err := primitive.ObjectIDFromHex(form.SubCategoryID)
		if err != nil {
			respondError(c, route, apperr.Validation("invalid proSubCategoryId"))
			return
		}
		brandID, err := parseOptionalObjectID(form.BrandID, "proBrandId")
		if err != nil {
			respondError(c, route, err)
			return
		}

		input := store.ProductInput{
			Name:          form.Name,
			ProductCode:   form.ProductCode,
			Description:   form.Description,
			Quantity:      form.Quantity,
			Price:         form.Price,
			CategoryID:    categoryID,
			SubCategoryID: subCategoryID,
			BrandID:       brandID,
			Variants:      form.Variants,
			Images:        collectProductImages(c, uploads, route),
		}
		if form.OfferPriceSet {
			offer := form.OfferPrice
			input.OfferPrice = &offer
		}

		product, err := products.Create(c.Request.Context(), input)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Product created successfully.", product)
	}
}

/*
PUT /products/:id
- partial update: absent fields keep their stored value, uploaded files
  replace only their own slots
*/
func UpdateProduct(products *store.ProductStore, uploads uploader.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /products/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route)
		if !ok {
			return
		}

		if !strings.HasPrefix(c.GetHeader("Content-Type"), "multipart/form-data") {
			respondError(c, route, apperr.Validation("multipart/form-data required"))
			return
		}

		form, err := parseProductForm(c)
		if err != nil {
			respondError(c, route, err)
			return
		}

		upd := store.ProductUpdate{
			Images: collectProductImages(c, uploads, route),
		}
		if form.NameSet {
			upd.Name = &form.Name
		}
		if form.ProductCodeSet {
			upd.ProductCode = &form.ProductCode
		}
		if form.DescriptionSet {
			upd.Description = &form.Description
		}
		if form.QuantitySet {
			upd.Quantity = &form.Quantity
		}
		if form.PriceSet {
			upd.Price = &form.Price
		}
		if form.OfferPriceSet {
			upd.OfferPrice = &form.OfferPrice
		}
		if form.CategoryIDSet {
			categoryID, err := primitive.ObjectIDFromHex(form.CategoryID)
			if err != nil {
				respondError(c, route, apperr.Validation("invalid proCategoryId"))
				return
			}
			upd.CategoryID = &categoryID
		}
		if form.SubCategoryIDSet {
			subCategoryID, err := primitive.ObjectIDFromHex(form.SubCategoryID)
			if err != nil {
				respondError(c, route, apperr.Validation("invalid proSubCategoryId"))
				return
			}
			upd.SubCategoryID = &subCategoryID
		}
		if form.BrandIDSet {
			brandID, err := parseOptionalObjectID(form.BrandID, "proBrandId")
			if err != nil {
				respondError(c, route, err)
				return
			}
			upd.BrandID = brandID
		}
		if form.VariantsSet {
			upd.Variants = form.Variants
			upd.VariantsSet = true
		}

		product, err := products.Update(c.Request.Context(), id, upd)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Product updated successfully.", product)
	}
}

/*
DELETE /products/:id
*/
func DeleteProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /products/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route)
		if !ok {
			return
		}

		if err := products.Delete(c.Request.Context(), id); err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Product deleted successfully.", nil)
	}
}
