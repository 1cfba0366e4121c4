package handlers

import (
	"github.com/gin-gonic/gin"

	"nexkart-backend/internal/store"
	"nexkart-backend/internal/uploader"
)

/*
GET /categories
*/
func GetCategories(categories *store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /categories"
		defer handlePanic(c, route)

		list, err := categories.List(c.Request.Context())
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Categories retrieved successfully.", list)
	}
}

/*
GET /categories/:id
*/
func GetCategory(categories *store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /categories/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route)
		if !ok {
			return
		}

		category, err := categories.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Category retrieved successfully.", category)
	}
}

/*
POST /categories
- multipart form: name + optional "img" file uploaded before the insert
*/
func CreateCategory(categories *store.CategoryStore, uploads uploader.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /categories"
		defer handlePanic(c, route)

		imageURL := ""
		if file, err := c.FormFile("img"); err == nil {
			url, err := uploadImage(c.Request.Context(), uploads, "categories", file)
			if err != nil {
				respondError(c, route, err)
				return
			}
			imageURL = url
		}

		category, err := categories.Create(c.Request.Context(), c.PostForm("name"), imageURL)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Category created successfully.", category)
	}
}

/*
PUT /categories/:id
- new "img" file replaces the image; otherwise the "image" form value is kept
*/
func UpdateCategory(categories *store.CategoryStore, uploads uploader.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /categories/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route)
		if !ok {
			return
		}

		imageURL := c.PostForm("image")
		if file, err := c.FormFile("img"); err == nil {
			url, err := uploadImage(c.Request.Context(), uploads, "categories", file)
			if err != nil {
				respondError(c, route, err)
				return
			}
			imageURL = url
		}

		category, err := categories.Update(c.Request.Context(), id, c.PostForm("name"), imageURL)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Category updated successfully.", category)
	}
}

/*
DELETE /categories/:id
- rejected while subcategories or products reference the category
*/
func DeleteCategory(categories *store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /categories/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route)
		if !ok {
			return
		}

		if err := categories.Delete(c.Request.Context(), id); err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Category deleted successfully.", nil)
	}
}
