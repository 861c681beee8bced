package controllers

import (
	"net/http"
	"strconv"

	"recipe-be/internal/middleware"
	"recipe-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

const qrCodeSize = 256

type QRCodeController struct {
	recipeService service.RecipeService
}

func NewQRCodeController(recipeService service.RecipeService) *QRCodeController {
	return &QRCodeController{recipeService: recipeService}
}

// RecipeQRCode handles GET /api/recipes/:id/qrcode and renders the recipe's
// link as a PNG
func (qc *QRCodeController) RecipeQRCode(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	recipe, err := qc.recipeService.Get(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if recipe.Link == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe has no link"})
		return
	}

	// Medium error recovery
	qrCode, err := qrcode.New(recipe.Link, qrcode.Medium)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	pngData, err := qrCode.PNG(qrCodeSize)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code image"})
		return
	}

	c.Header("Content-Disposition", "inline; filename=recipe-"+strconv.FormatInt(id, 10)+".png")
	c.Data(http.StatusOK, "image/png", pngData)
}
