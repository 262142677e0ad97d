package api

import (
	"net/http"                           // HTTP status codes
	"payment_portal/internal/middleware" // Request scoped logging
	"payment_portal/internal/service"    // Account service

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// SignupRequest is the body of POST /api/signup
type SignupRequest struct {
	Username string `json:"username"` // Display name
	Email    string `json:"email"`    // Login email, unique
	Password string `json:"password"` // Plaintext, hashed before storage
}

// LoginRequest is the body of POST /api/login
type LoginRequest struct {
	Email    string `json:"email"`    // Login email
	Password string `json:"password"` // Plaintext password
}

// IdentityResponse is returned by signup and login
type IdentityResponse struct {
	Message  string `json:"message"`  // Human readable outcome
	UserID   uint   `json:"user_id"`  // User id
	Username string `json:"username"` // Username
}

// SignupHandler creates a user and its zero-balance account
func SignupHandler(svc *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		userID, err := svc.CreateUser(c.Request.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			respondError(c, err) // Validation, duplicate email or store failure
			return
		}
		// Log successful signup
		middleware.Log(c).WithFields(logrus.Fields{
			"user_id": userID,    // New user ID
			"email":   req.Email, // Signup email
		}).Info("User signed up")
		c.JSON(http.StatusCreated, IdentityResponse{Message: "Signup successful", UserID: userID, Username: req.Username})
	}
}

// LoginHandler verifies credentials and returns the user's identity; no token or session is issued
func LoginHandler(svc *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		identity, err := svc.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err) // 400 missing fields, 404 unknown email, 401 bad password
			return
		}
		c.JSON(http.StatusOK, IdentityResponse{Message: "Login successful", UserID: identity.UserID, Username: identity.Username})
	}
}
