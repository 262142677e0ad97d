package api

import (
	"net/http"                           // HTTP status codes
	"payment_portal/internal/config"     // Application configuration
	"payment_portal/internal/middleware" // Request ids and logging
	"payment_portal/internal/service"    // Account service
	"strings"                            // Path prefix checks

	"github.com/gin-contrib/cors" // CORS middleware
	"github.com/gin-gonic/gin"    // Gin web framework
)

// apiCORS applies CORS to /api routes only, echoing the caller's origin so credentials work
func apiCORS(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowCredentials = true
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = origins
	}
	handler := cors.New(cfg)
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			handler(c) // Aborts preflight requests itself
		}
	}
}

// recovered turns a handler panic into a generic JSON 500
func recovered(c *gin.Context, err any) {
	middleware.Log(c).WithField("panic", err).Error("Handler panicked")
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": internalErrorMessage})
}

// NewRouter wires every route onto a fresh gin engine
func NewRouter(svc *service.AccountService, cfg *config.Config) *gin.Engine {
	r := gin.New() // Gin router instance
	r.Use(middleware.RequestID(), gin.Logger(), gin.CustomRecovery(recovered), apiCORS(cfg.CORSOrigins))
	r.SetHTMLTemplate(pageTemplates)
	maxUpload := cfg.MaxUploadMB << 20 // Megabytes to bytes
	r.MaxMultipartMemory = maxUpload

	// Auth routes
	r.POST("/api/signup", SignupHandler(svc)) // Signup endpoint
	r.POST("/api/login", LoginHandler(svc))   // Login endpoint

	// Account routes
	r.GET("/api/account/:userId", AccountSummaryHandler(svc))  // Balances endpoint
	r.GET("/api/currentUser/:userId", CurrentUserHandler(svc)) // Username endpoint

	// QR code routes
	r.POST("/api/upload-qr", UploadQRHandler(svc, maxUpload)) // Upload endpoint
	r.GET("/api/user-qr/:userId", UserQRHandler(svc))         // Latest QR endpoint

	// Pages
	r.GET("/users", UsersPageHandler(svc)) // Users listing page

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	return r
}
