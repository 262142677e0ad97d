package api

import (
	"embed"                              // Embedded page templates
	"html/template"                      // Page templates
	"net/http"                           // HTTP status codes
	"payment_portal/internal/middleware" // Request scoped logging
	"payment_portal/internal/service"    // Account service

	"github.com/gin-gonic/gin" // Gin web framework
)

//go:embed templates/*.html
var templateFS embed.FS

// pageTemplates holds users.html and error.html
var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// userRow is one rendered line of the users page
type userRow struct {
	UserID           uint
	Username         string
	Email            string
	TransactionCount int64
	TotalSpent       string
}

// UsersPageHandler renders every user with their transaction count and total spent
func UsersPageHandler(svc *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.ListUsersWithStats(c.Request.Context())
		if err != nil {
			middleware.Log(c).WithField("error", err.Error()).Error("Database error")
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{
				"Status": http.StatusInternalServerError,
				"Error":  "Database connection failed",
			})
			return
		}
		rows := make([]userRow, len(stats))
		for i, s := range stats {
			rows[i] = userRow{
				UserID:           s.UserID,
				Username:         s.Username,
				Email:            s.Email,
				TransactionCount: s.TransactionCount,
				TotalSpent:       "-", // No transactions
			}
			if s.TotalSpent.Valid {
				rows[i].TotalSpent = s.TotalSpent.Decimal.StringFixed(2)
			}
		}
		c.HTML(http.StatusOK, "users.html", gin.H{"Users": rows})
	}
}
