package handlers

import (
	"errors"
	"log"
	"net/http"

	"gamedevforum/internal/middleware"
	"gamedevforum/internal/models"
	"gamedevforum/internal/store"
	"gamedevforum/internal/utils"

	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}
	obj["CurrentPath"] = c.Request.URL.Path
	c.HTML(code, name, obj)
}

// RenderError renders the error page
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}

// JSONStoreError translates a store error into the API error contract:
// NotFound → 404, InvalidInput/UsernameTaken → 400, anything else is a
// storage fault logged and surfaced as a 500.
func JSONStoreError(c *gin.Context, err error) {
	var notFound *store.NotFoundError
	var invalid *store.InvalidInputError
	var taken *store.UsernameTakenError
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
	case errors.As(err, &taken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
	default:
		log.Printf("storage failure on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

const defaultPageSize = int64(10)

// pagination reads page (zero-based), limit, and the optional single-entity
// id filter that overrides pagination.
func pagination(c *gin.Context) (limit, skip int64, filter string) {
	limit = utils.StringToInt64Default(c.Query("limit"), defaultPageSize)
	if limit == 0 {
		limit = defaultPageSize
	}
	page := utils.StringToInt64Default(c.Query("page"), 0)
	return limit, page * limit, c.Query("id")
}

// currentUserID returns the logged-in user's id, or the shared "Admin"
// placeholder for anonymous writes.
func currentUserID(c *gin.Context) string {
	if v, exists := c.Get(middleware.CheckUserKey); exists {
		if user, ok := v.(*models.User); ok {
			return user.UserID
		}
	}
	return "Admin"
}
