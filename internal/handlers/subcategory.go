package handlers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nexkart-backend/internal/apperr"
	"nexkart-backend/internal/store"
)

type subCategoryRequest struct {
	Name       string `json:"name" binding:"required"`
	CategoryID string `json:"categoryId" binding:"required"`
}

func GetSubCategories(subCategories *store.SubCategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /subCategories"
		defer handlePanic(c, route)

		var categoryID *primitive.ObjectID
		if raw := c.Query("categoryId"); raw != "" {
			id, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				respondError(c, route, apperr.Validation("invalid categoryId"))
				return
			}
			categoryID = &id
		}

		list, err := subCategories.List(c.Request.Context(), categoryID)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Sub-categories retrieved successfully.", list)
	}
}

func GetSubCategory(subCategories *store.SubCategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /subCategories/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route)
		if !ok {
			return
		}

		subCategory, err := subCategories.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Sub-category retrieved successfully.", subCategory)
	}
}

func CreateSubCategory(subCategories *store.SubCategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /subCategories"
		defer handlePanic(c, route)

		var req subCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, route, apperr.Validation("Name and categoryId are required."))
			return
		}

		categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
		if err != nil {
			respondError(c, route, apperr.Validation("invalid categoryId"))
			return
		}

		subCategory, err := subCategories.Create(c.Request.Context(), req.Name, categoryID)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Sub-category created successfully.", subCategory)
	}
}

func UpdateSubCategory(subCategories *store.SubCategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /subCategories/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route)
		if !ok {
			return
		}

		var req subCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, route, apperr.Validation("Name and categoryId are required."))
			return
		}

		categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
		if err != nil {
			respondError(c, route, apperr.Validation("invalid categoryId"))
			return
		}

		subCategory, err := subCategories.Update(c.Request.Context(), id, req.Name, categoryID)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Sub-category updated successfully.", subCategory)
	}
}

func DeleteSubCategory(subCategories *store.SubCategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /subCategories/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route)
		if !ok {
			return
		}

		if err := subCategories.Delete(c.Request.Context(), id); err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Sub-category deleted successfully.", nil)
	}
}
