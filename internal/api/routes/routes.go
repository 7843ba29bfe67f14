// internal/api/routes/routes.go
package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"company-site-api/internal/api/handlers"
	"company-site-api/internal/api/middleware"
	"company-site-api/internal/app"
	"company-site-api/internal/services"
)

// RegisterRoutes sets up the API routes by calling resource-specific
// registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	api := router.Group("/api")

	// --- Services ---
	jobService := services.NewJobService(app.Store.Jobs)
	applicationService := services.NewApplicationService(app.Store.Applications, app.Store.Jobs)
	announcementService := services.NewAnnouncementService(app.Store.Announcements)
	contactService := services.NewContactService(app.Store.ContactMessages)
	userService := services.NewUserService(app.Store.Users, app.TokenStore,
		app.Config.JWT.Secret, app.Config.JWT.AccessTTL, app.Config.JWT.RefreshTTL)

	// --- Handlers ---
	jobHandler := handlers.NewJobHandler(jobService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(applicationService, app.Validator)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService, app.Validator)
	contactHandler := handlers.NewContactHandler(contactService, app.Validator)
	authHandler := handlers.NewAuthHandler(userService, app.Validator)
	adminHandler := handlers.NewAdminHandler(jobService, applicationService, announcementService, contactService)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)

	// --- Register Resource Routes ---
	RegisterJobRoutes(api, jobHandler, applicationHandler, authMiddleware)
	RegisterApplicationRoutes(api, applicationHandler, authMiddleware)
	RegisterAnnouncementRoutes(api, announcementHandler, authMiddleware)
	RegisterContactRoutes(api, contactHandler, authMiddleware)
	RegisterAuthRoutes(api, authHandler, authMiddleware)
	RegisterAdminRoutes(api, adminHandler, announcementHandler, contactHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
