package routes

import (
	"Recipe-Share-Backend/internal/api/handlers"
	"Recipe-Share-Backend/internal/middleware"
	"Recipe-Share-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	ReviewHandler     handlers.ReviewHandler
	CategoryHandler   handlers.CategoryHandler
	CollectionHandler handlers.CollectionHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Users()
	c.Recipes()
	c.Reviews()
	c.Categories()
	c.Collections()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
	}
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1/users")
	{
		users.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		users.Patch("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
		users.Get("/:id", c.UserHandler.GetUser)
		users.Post("/:id/follow", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.FollowUser)
		users.Delete("/:id/follow", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UnfollowUser)
		users.Get("/:id/followers", c.UserHandler.GetFollowers)
		users.Get("/:id/following", c.UserHandler.GetFollowing)
		users.Get("/:id/recipes", c.RecipeHandler.GetRecipesByAuthor)
		users.Get("/:id/reviews", c.ReviewHandler.GetReviewsByUser)
		users.Get("/:id/collections", c.CollectionHandler.GetUserCollections)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	// Browse routes are public
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/search", c.RecipeHandler.SearchRecipes)
		recipes.Get("/top-rated", c.RecipeHandler.GetTopRatedRecipes)
		recipes.Get("/latest", c.RecipeHandler.GetLatestRecipes)
		recipes.Get("/most-viewed", c.RecipeHandler.GetMostViewedRecipes)
		recipes.Get("/difficulty/:level", c.RecipeHandler.GetRecipesByDifficulty)
		recipes.Get("/favorites", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.GetFavoriteRecipes)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Get("/:id/reviews", c.ReviewHandler.GetReviewsByRecipe)
	}

	// Writes require a caller
	{
		recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
		recipes.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.DeleteRecipe)
		recipes.Post("/:id/reviews", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.CreateReview)
		recipes.Post("/:id/favorite", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.AddFavorite)
		recipes.Delete("/:id/favorite", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.RemoveFavorite)
	}
}

func (c *Config) Reviews() {
	reviews := c.App.Group("/api/v1/reviews", c.Middleware.AuthMiddleware(c.JWTService))
	{
		reviews.Put("/:id", c.ReviewHandler.UpdateReview)
		reviews.Delete("/:id", c.ReviewHandler.DeleteReview)
	}
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/v1/categories")
	{
		categories.Get("", c.CategoryHandler.GetCategories)
		categories.Get("/:id", c.CategoryHandler.GetCategory)
		categories.Get("/:id/recipes", c.RecipeHandler.GetRecipesByCategory)
		categories.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.CategoryHandler.CreateCategory)
		categories.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.CategoryHandler.UpdateCategory)
		categories.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.CategoryHandler.DeleteCategory)
	}
}

func (c *Config) Collections() {
	collections := c.App.Group("/api/v1/collections")
	{
		collections.Get("", c.Middleware.AuthMiddleware(c.JWTService), c.CollectionHandler.GetMyCollections)
		collections.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.CollectionHandler.CreateCollection)
		collections.Get("/:id", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.CollectionHandler.GetCollection)
		collections.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.CollectionHandler.UpdateCollection)
		collections.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.CollectionHandler.DeleteCollection)
		collections.Post("/:id/recipes/:recipeId", c.Middleware.AuthMiddleware(c.JWTService), c.CollectionHandler.AddRecipe)
		collections.Delete("/:id/recipes/:recipeId", c.Middleware.AuthMiddleware(c.JWTService), c.CollectionHandler.RemoveRecipe)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
