// Package router assembles the gin engine: middleware, controllers and the
// route table.
package router

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-be/internal/controllers"
	"recipe-be/internal/middleware"
	"recipe-be/internal/service"
)

// Options carries everything the route table needs. Rate limiters are
// optional; MediaRoot is only set when images are served from local disk.
type Options struct {
	AuthService       service.AuthService
	UserService       service.UserService
	RecipeService     service.RecipeService
	TagService        service.LabelService
	IngredientService service.LabelService

	Templates   *template.Template
	APILimiter  *middleware.RateLimiter
	AuthLimiter *middleware.RateLimiter
	Middleware  []gin.HandlerFunc

	MediaURL           string
	MediaRoot          string
	MaxMultipartMemory int64
}

// New builds the engine. opts.Middleware runs in front of every route.
func New(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(opts.Middleware...)
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": "Method \"" + c.Request.Method + "\" not allowed.",
		})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
	})
	if opts.MaxMultipartMemory > 0 {
		r.MaxMultipartMemory = opts.MaxMultipartMemory
	}
	if opts.Templates != nil {
		r.SetHTMLTemplate(opts.Templates)
	}
	if opts.MediaRoot != "" {
		r.Static(opts.MediaURL, opts.MediaRoot)
	}

	authController := controllers.NewAuthController(opts.AuthService, opts.UserService)
	recipeController := controllers.NewRecipeController(opts.RecipeService)
	qrcodeController := controllers.NewQRCodeController(opts.RecipeService)
	tagController := controllers.NewLabelController(opts.TagService)
	ingredientController := controllers.NewLabelController(opts.IngredientService)
	adminController := controllers.NewAdminController(opts.UserService)

	requireAuth := middleware.AuthMiddleware(opts.AuthService)

	// Health check endpoint (no rate limiting)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api", limit(opts.APILimiter))
	{
		users := api.Group("/users")
		users.POST("/create", limit(opts.AuthLimiter), authController.CreateUser)
		users.POST("/token", limit(opts.AuthLimiter), authController.CreateToken)
		users.GET("/me", requireAuth, authController.Me)
		users.PATCH("/me", requireAuth, authController.UpdateMe)
		users.PUT("/me", requireAuth, authController.UpdateMe)

		protected := api.Group("", requireAuth)
		{
			protected.GET("/recipes", recipeController.List)
			protected.POST("/recipes", recipeController.Create)
			protected.GET("/recipes/:id", recipeController.Get)
			protected.PUT("/recipes/:id", recipeController.Update)
			protected.PATCH("/recipes/:id", recipeController.Update)
			protected.DELETE("/recipes/:id", recipeController.Delete)
			protected.POST("/recipes/:id/upload-image", recipeController.UploadImage)
			protected.GET("/recipes/:id/qrcode", qrcodeController.RecipeQRCode)

			protected.GET("/tags", tagController.List)
			protected.POST("/tags", tagController.Create)
			protected.GET("/ingredients", ingredientController.List)
			protected.POST("/ingredients", ingredientController.Create)
		}
	}

	admin := r.Group("/admin", requireAuth, middleware.RequireStaff())
	admin.GET("/users", adminController.Users)

	return r
}

func limit(rl *middleware.RateLimiter) gin.HandlerFunc {
	if rl == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return rl.LimitMiddleware()
}
