package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookapi/middleware"
)

// SetupRouter builds the gin engine with all routes attached.
func SetupRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the book store API")
	})
	r.GET("/health-check", h.HealthCheck)

	// Public routes (no authentication required)
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.GET("/all-books", h.GetAllBooks)
	r.GET("/search", h.SearchBooks)

	// Protected routes (authentication required)
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(h.JWTSecret))
	{
		auth.POST("/borrow/:id", h.BorrowBook)
		auth.POST("/return/:id", h.ReturnBook)
	}

	// Admin-only routes
	admin := r.Group("/")
	admin.Use(middleware.AuthMiddleware(h.JWTSecret), middleware.AdminRequired())
	{
		admin.POST("/books", h.CreateBook)
		admin.PUT("/update-book/:id", h.UpdateBook)
		admin.DELETE("/delete-book/:id", h.DeleteBook)

		// Admin user management
		admin.POST("/admin/users", h.CreateAdmin)
	}

	return r
}
