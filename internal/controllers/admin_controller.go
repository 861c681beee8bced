package controllers

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"recipe-be/internal/service"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// LoadTemplates parses the admin console templates for gin's HTML renderer.
func LoadTemplates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}

type AdminController struct {
	userService service.UserService
}

func NewAdminController(userService service.UserService) *AdminController {
	return &AdminController{userService: userService}
}

// Users handles GET /admin/users?q=<search>
func (ac *AdminController) Users(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))

	users, err := ac.userService.ListUsers(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.HTML(http.StatusOK, "admin_users.html", gin.H{
		"Query": q,
		"Users": users,
	})
}
