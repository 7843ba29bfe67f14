// internal/api/routes/contact_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"company-site-api/internal/api/handlers"
)

// RegisterContactRoutes registers the public contact form endpoint. The
// admin-side message management lives under /admin (see admin_routes.go).
func RegisterContactRoutes(
	rg *gin.RouterGroup,
	contactHandler handlers.ContactHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	rg.POST("/contact", contactHandler.SubmitContactMessage) // Public
}
