package handlers

import (
	"github.com/gin-gonic/gin"

	"nexkart-backend/internal/apperr"
	"nexkart-backend/internal/store"
)

type brandRequest struct {
	Name string `json:"name" binding:"required"`
}

func GetBrands(brands *store.BrandStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /brands"
		defer handlePanic(c, route)

		list, err := brands.List(c.Request.Context())
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Brands retrieved successfully.", list)
	}
}

func GetBrand(brands *store.BrandStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /brands/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route)
		if !ok {
			return
		}

		brand, err := brands.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Brand retrieved successfully.", brand)
	}
}

func CreateBrand(brands *store.BrandStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /brands"
		defer handlePanic(c, route)

		var req brandRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, route, apperr.Validation("Name is required."))
			return
		}

		brand, err := brands.Create(c.Request.Context(), req.Name)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Brand created successfully.", brand)
	}
}

func UpdateBrand(brands *store.BrandStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /brands/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route)
		if !ok {
			return
		}

		var req brandRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, route, apperr.Validation("Name is required."))
			return
		}

		brand, err := brands.Update(c.Request.Context(), id, req.Name)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Brand updated successfully.", brand)
	}
}

func DeleteBrand(brands *store.BrandStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /brands/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route)
		if !ok {
			return
		}

		if err := brands.Delete(c.Request.Context(), id); err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Brand deleted successfully.", nil)
	}
}
