package controllers

import (
	"net/http"

	"recipe-be/internal/filters"
	"recipe-be/internal/middleware"
	"recipe-be/internal/models"
	"recipe-be/internal/service"
	"recipe-be/internal/validation"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	recipeService service.RecipeService
}

func NewRecipeController(recipeService service.RecipeService) *RecipeController {
	return &RecipeController{recipeService: recipeService}
}

// List handles GET /api/recipes?tags=1,2&ingredients=3
func (rc *RecipeController) List(c *gin.Context) {
	filter, err := filters.ParseRecipeFilter(c.Query("tags"), c.Query("ingredients"))
	if err != nil {
		respondError(c, err)
		return
	}

	recipes, err := rc.recipeService.List(c.Request.Context(), middleware.CurrentUserID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.RenderRecipes(recipes, models.ShapeSummary, rc.recipeService.ImageURL))
}

// Get handles GET /api/recipes/:id
func (rc *RecipeController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	recipe, err := rc.recipeService.Get(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.RenderRecipe(recipe, models.ShapeDetail, rc.recipeService.ImageURL))
}

// Create handles POST /api/recipes
func (rc *RecipeController) Create(c *gin.Context) {
	var req models.RecipeRequest
	if !bindJSON(c, &req) {
		return
	}

	recipe, err := rc.recipeService.Create(c.Request.Context(), middleware.CurrentUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.RenderRecipe(recipe, models.ShapeSummary, rc.recipeService.ImageURL))
}

// Update handles PUT and PATCH /api/recipes/:id
func (rc *RecipeController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.RecipeRequest
	if !bindJSON(c, &req) {
		return
	}

	partial := c.Request.Method == http.MethodPatch
	recipe, err := rc.recipeService.Update(c.Request.Context(), middleware.CurrentUserID(c), id, &req, partial)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.RenderRecipe(recipe, models.ShapeSummary, rc.recipeService.ImageURL))
}

// Delete handles DELETE /api/recipes/:id
func (rc *RecipeController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := rc.recipeService.Delete(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage handles POST /api/recipes/:id/upload-image with a multipart
// "image" field
func (rc *RecipeController) UploadImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		respondError(c, validation.Field("image", "No file was submitted."))
		return
	}

	f, err := fh.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	path, err := rc.recipeService.UploadImage(c.Request.Context(), middleware.CurrentUserID(c), id, fh.Filename, f)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ImageUploadResponse{ID: id, Image: rc.recipeService.ImageURL(path)})
}
