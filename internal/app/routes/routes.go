package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kaito/ideahub/internal/app/controllers"
	"github.com/kaito/ideahub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	ideaController *controllers.IdeaController,
	discoveryController *controllers.DiscoveryController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public routes ---
	api.POST("/register", authController.Register)
	api.POST("/login", authController.Login)

	api.GET("/categories", discoveryController.GetCategories)
	api.GET("/tags", discoveryController.GetPopularTags)

	ideas := api.Group("/ideas")
	{
		ideas.GET("", ideaController.ListIdeas)
		ideas.GET("/search", ideaController.SearchIdeas)
		ideas.GET("/:id", ideaController.GetIdea)
	}

	api.GET("/users/:id", userController.GetUserProfile)
	api.GET("/users/:id/ideas", userController.GetUserIdeas)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		users := authenticated.Group("/users")
		{
			users.GET("/me", userController.GetMyProfile)
			users.PUT("/me", userController.UpdateMyProfile)
			users.GET("/me/liked-ideas", userController.GetLikedIdeas)
			users.GET("/me/saved-ideas", userController.GetSavedIdeas)
			users.POST("/:id/follow", userController.FollowUser)
			users.DELETE("/:id/follow", userController.UnfollowUser)
		}

		ideasProtected := authenticated.Group("/ideas")
		{
			ideasProtected.POST("", ideaController.CreateIdea)
			ideasProtected.PUT("/:id", ideaController.UpdateIdea)
			ideasProtected.DELETE("/:id", ideaController.DeleteIdea)
			ideasProtected.POST("/:id/like", ideaController.LikeIdea)
			ideasProtected.DELETE("/:id/like", ideaController.UnlikeIdea)
			ideasProtected.POST("/:id/comment", ideaController.CommentIdea)
			ideasProtected.POST("/:id/evaluate", ideaController.EvaluateIdea)
			ideasProtected.POST("/:id/branch", ideaController.BranchIdea)
			ideasProtected.POST("/:id/save", ideaController.SaveIdea)
			ideasProtected.DELETE("/:id/save", ideaController.UnsaveIdea)
		}
	}
}
