package handlers

import (
	"github.com/gin-gonic/gin"

	"nexkart-backend/internal/store"
	"nexkart-backend/internal/uploader"
)

func GetPosters(posters *store.PosterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /posters"
		defer handlePanic(c, route)

		list, err := posters.List(c.Request.Context())
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Posters retrieved successfully.", list)
	}
}

func GetPoster(posters *store.PosterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /posters/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route)
		if !ok {
			return
		}

		poster, err := posters.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Poster retrieved successfully.", poster)
	}
}

/*
POST /posters
- multipart form: posterName, optional productId, "img" file
*/
func CreatePoster(posters *store.PosterStore, uploads uploader.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /posters"
		defer handlePanic(c, route)

		productID, err := parseOptionalObjectID(c.PostForm("productId"), "productId")
		if err != nil {
			respondError(c, route, err)
			return
		}

		imageURL := ""
		if file, err := c.FormFile("img"); err == nil {
			url, err := uploadImage(c.Request.Context(), uploads, "posters", file)
			if err != nil {
				respondError(c, route, err)
				return
			}
			imageURL = url
		}

		poster, err := posters.Create(c.Request.Context(), c.PostForm("posterName"), imageURL, productID)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Poster created successfully.", poster)
	}
}

func UpdatePoster(posters *store.PosterStore, uploads uploader.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /posters/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route)
		if !ok {
			return
		}

		productID, err := parseOptionalObjectID(c.PostForm("productId"), "productId")
		if err != nil {
			respondError(c, route, err)
			return
		}

		imageURL := c.PostForm("image")
		if file, err := c.FormFile("img"); err == nil {
			url, err := uploadImage(c.Request.Context(), uploads, "posters", file)
			if err != nil {
				respondError(c, route, err)
				return
			}
			imageURL = url
		}

		poster, err := posters.Update(c.Request.Context(), id, c.PostForm("posterName"), imageURL, productID)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Poster updated successfully.", poster)
	}
}

func DeletePoster(posters *store.PosterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /posters/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route)
		if !ok {
			return
		}

		if err := posters.Delete(c.Request.Context(), id); err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Poster deleted successfully.", nil)
	}
}
