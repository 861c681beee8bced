package controllers

import (
	"net/http"

	"recipe-be/internal/middleware"
	"recipe-be/internal/models"
	"recipe-be/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService service.AuthService
	userService service.UserService
}

func NewAuthController(authService service.AuthService, userService service.UserService) *AuthController {
	return &AuthController{
		authService: authService,
		userService: userService,
	}
}

// CreateUser handles POST /api/users/create
func (ac *AuthController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := ac.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewUserResponse(user))
}

// CreateToken handles POST /api/users/token
func (ac *AuthController) CreateToken(c *gin.Context) {
	var req models.TokenRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}

// Me handles GET /api/users/me
func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.userService.GetProfile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewUserResponse(user))
}

// UpdateMe handles PATCH and PUT /api/users/me
func (ac *AuthController) UpdateMe(c *gin.Context) {
	var req models.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	partial := c.Request.Method == http.MethodPatch
	user, err := ac.userService.UpdateProfile(c.Request.Context(), middleware.CurrentUserID(c), &req, partial)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewUserResponse(user))
}
