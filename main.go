package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"nexkart-backend/internal/config"
	"nexkart-backend/internal/database"
	"nexkart-backend/internal/handlers"
	"nexkart-backend/internal/middleware"
	"nexkart-backend/internal/store"
	"nexkart-backend/internal/uploader"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("user index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}

	stores := store.New(db)

	uploads, err := uploader.New(config.AppEnv)
	if err != nil {
		log.Fatal(err)
	}

	r := gin.Default()

	r.GET("/health", handlers.Health(db))

	r.POST("/users/register", handlers.Register(stores.Users))
	r.POST("/users/login", handlers.Login(stores.Users, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))

	r.GET("/categories", handlers.GetCategories(stores.Categories))
	r.GET("/categories/:id", handlers.GetCategory(stores.Categories))
	r.GET("/subCategories", handlers.GetSubCategories(stores.SubCategories))
	r.GET("/subCategories/:id", handlers.GetSubCategory(stores.SubCategories))
	r.GET("/brands", handlers.GetBrands(stores.Brands))
	r.GET("/brands/:id", handlers.GetBrand(stores.Brands))
	r.GET("/products", handlers.GetProducts(stores.Products))
	r.GET("/products/:id", handlers.GetProduct(stores.Products))
	r.GET("/posters", handlers.GetPosters(stores.Posters))
	r.GET("/posters/:id", handlers.GetPoster(stores.Posters))

	r.POST("/orders", middleware.UserAuth(config.AppEnv.JWTSecret), handlers.CreateOrder(stores.Orders))
	r.GET("/orders", middleware.UserAuth(config.AppEnv.JWTSecret), handlers.GetMyOrders(stores.Orders))

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.POST("/categories", handlers.CreateCategory(stores.Categories, uploads))
		admin.PUT("/categories/:id", handlers.UpdateCategory(stores.Categories, uploads))
		admin.DELETE("/categories/:id", handlers.DeleteCategory(stores.Categories))

		admin.POST("/subCategories", handlers.CreateSubCategory(stores.SubCategories))
		admin.PUT("/subCategories/:id", handlers.UpdateSubCategory(stores.SubCategories))
		admin.DELETE("/subCategories/:id", handlers.DeleteSubCategory(stores.SubCategories))

		admin.POST("/brands", handlers.CreateBrand(stores.Brands))
		admin.PUT("/brands/:id", handlers.UpdateBrand(stores.Brands))
		admin.DELETE("/brands/:id", handlers.DeleteBrand(stores.Brands))

		admin.POST("/products", handlers.CreateProduct(stores.Products, uploads))
		admin.PUT("/products/:id", handlers.UpdateProduct(stores.Products, uploads))
		admin.DELETE("/products/:id", handlers.DeleteProduct(stores.Products))

		admin.POST("/posters", handlers.CreatePoster(stores.Posters, uploads))
		admin.PUT("/posters/:id", handlers.UpdatePoster(stores.Posters, uploads))
		admin.DELETE("/posters/:id", handlers.DeletePoster(stores.Posters))

		admin.GET("/orders", handlers.GetAllOrders(stores.Orders))
		admin.GET("/orders/:id", handlers.GetOrder(stores.Orders))
		admin.PUT("/orders/:id", handlers.UpdateOrderStatus(stores.Orders))
		admin.DELETE("/orders/:id", handlers.DeleteOrder(stores.Orders))

		admin.GET("/users", handlers.GetUsers(stores.Users))
		admin.PUT("/users/:id", handlers.UpdateUser(stores.Users))
		admin.DELETE("/users/:id", handlers.DeleteUser(stores.Users))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
