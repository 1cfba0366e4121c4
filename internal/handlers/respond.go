package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nexkart-backend/internal/apperr"
)

// respondData renders the {success, message, data} envelope every endpoint
// speaks.
func respondData(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// statusForError maps the error taxonomy onto HTTP statuses. Conflict maps to
// 400, matching the source system's guard responses.
func statusForError(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindConflict:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, route string, err error) {
	status := statusForError(err)
	log.Printf("[%s] returning error %d: %v", route, status, err)
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"message": err.Error(),
	})
}

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "internal server error",
		})
	}
}

func parseIDParam(c *gin.Context, route string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, route, apperr.Validation("invalid id"))
		return primitive.NilObjectID, false
	}
	return id, true
}

// parsePaginationParams returns (0, 0) when the caller did not opt into
// pagination; listing everything is deliberate behavior, not a fallback.
func parsePaginationParams(pageStr, limitStr string) (int64, int64, error) {
	if pageStr == "" || limitStr == "" {
		return 0, 0, nil
	}

	page, err := strconv.ParseInt(pageStr, 10, 64)
	if err != nil || page < 1 {
		return 0, 0, apperr.Validation("invalid page parameter")
	}
	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit < 1 {
		return 0, 0, apperr.Validation("invalid limit parameter")
	}
	return page, limit, nil
}
