// Package router wires the HTTP routes to their handlers.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "agroform_backend/internal/feature/auth/transport/handler"
	commenthandler "agroform_backend/internal/feature/comments/transport/handler"
	formhandler "agroform_backend/internal/feature/forms/transport/handler"
	"agroform_backend/internal/platform/http/handler"
	jwtmw "agroform_backend/internal/platform/jwt"
)

// NewRouter builds the route table. Reads are public; everything that
// creates or mutates a form (or attaches a comment) requires a bearer
// token.
func NewRouter(auth *authhandler.AuthHandler, forms *formhandler.FormHandler,
	comments *commenthandler.CommentHandler) *gin.Engine {
	r := gin.Default()

	// Middleware must be attached before the routes are registered;
	// gin snapshots each route's handler chain at registration time.
	r.Use(cors.Default())

	// Liveness probe
	r.GET("/healthz", handler.Health)

	// Credential endpoints
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)
	r.POST("/refresh", auth.Refresh)
	r.POST("/logout", auth.Logout)

	// Public reads
	r.GET("/forms", forms.List)
	r.GET("/form/:id", forms.Get)
	r.GET("/form/:id/comments", comments.ListByForm)

	// Mutations require a valid access token
	protected := r.Group("/")
	protected.Use(jwtmw.AuthRequired())
	{
		protected.POST("/create-form", forms.Create)
		protected.PUT("/form/:id", forms.Update)
		protected.DELETE("/form/:id", forms.Delete)
		protected.POST("/form/:id/comments", comments.Create)
	}

	return r
}
