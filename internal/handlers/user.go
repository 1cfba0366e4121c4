package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"nexkart-backend/internal/apperr"
	"nexkart-backend/internal/store"
)

type credentialsRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateUserRequest struct {
	Password string `json:"password" binding:"required"`
}

/*
POST /users/register
*/
func Register(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /users/register"
		defer handlePanic(c, route)

		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, route, apperr.Validation("Mobile and password are required."))
			return
		}

		if _, err := users.Register(c.Request.Context(), req.Mobile, req.Password); err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "User registered successfully.", nil)
	}
}

/*
POST /users/login
- credentials are verified against the stored bcrypt hash, never compared raw
*/
func Login(users *store.UserStore, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /users/login"
		defer handlePanic(c, route)

		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, route, apperr.Validation("Mobile and password are required."))
			return
		}

		user, err := users.Authenticate(c.Request.Context(), req.Mobile, req.Password)
		if err != nil {
			respondError(c, route, err)
			return
		}

		claims := jwt.MapClaims{
			"sub":    user.ID.Hex(),
			"role":   user.Role,
			"mobile": user.Mobile,
			"exp":    time.Now().Add(accessTTL).Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(jwtSecret))
		if err != nil {
			respondError(c, route, err)
			return
		}

		respondData(c, "Login successful.", gin.H{
			"token": signed,
			"user":  user,
		})
	}
}

func GetUsers(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/users"
		defer handlePanic(c, route)

		list, err := users.List(c.Request.Context())
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "Users retrieved successfully.", list)
	}
}

func UpdateUser(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/users/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route)
		if !ok {
			return
		}

		var req updateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, route, apperr.Validation("Password is required."))
			return
		}

		user, err := users.UpdatePassword(c.Request.Context(), id, req.Password)
		if err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "User updated successfully.", user)
	}
}

func DeleteUser(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/api/users/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route)
		if !ok {
			return
		}

		if err := users.Delete(c.Request.Context(), id); err != nil {
			respondError(c, route, err)
			return
		}
		respondData(c, "User deleted successfully.", nil)
	}
}
