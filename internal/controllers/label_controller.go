package controllers

import (
	"net/http"
	"strconv"

	"recipe-be/internal/middleware"
	"recipe-be/internal/models"
	"recipe-be/internal/service"
	"recipe-be/internal/validation"

	"github.com/gin-gonic/gin"
)

// LabelController serves /api/tags or /api/ingredients, depending on the
// service it is built with.
type LabelController struct {
	labelService service.LabelService
}

func NewLabelController(labelService service.LabelService) *LabelController {
	return &LabelController{labelService: labelService}
}

// List handles GET, optionally narrowed with assigned_only=1
func (lc *LabelController) List(c *gin.Context) {
	assignedOnly := false
	if raw := c.Query("assigned_only"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, validation.Field("assigned_only", "Must be 0 or 1."))
			return
		}
		assignedOnly = v
	}

	labels, err := lc.labelService.List(c.Request.Context(), middleware.CurrentUserID(c), assignedOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewLabelResponses(labels))
}

// Create handles POST
func (lc *LabelController) Create(c *gin.Context) {
	var req models.LabelRequest
	if !bindJSON(c, &req) {
		return
	}

	label, err := lc.labelService.Create(c.Request.Context(), middleware.CurrentUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewLabelResponse(label))
}
