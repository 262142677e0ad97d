package api

import (
	"net/http"                        // HTTP status codes
	"payment_portal/internal/service" // Account service
	"strconv"                         // Path parameter parsing

	"github.com/gin-gonic/gin" // Gin web framework
)

// AccountSummaryResponse is the body of GET /api/account/:userId
type AccountSummaryResponse struct {
	MainBalance    float64 `json:"main_balance"`
	SavingsBalance float64 `json:"savings_balance"`
	CreditBalance  float64 `json:"credit_balance"`
	RewardPoints   int64   `json:"reward_points"`
}

// userIDParam parses the :userId path parameter; anything but a positive integer is treated as unknown
func userIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// AccountSummaryHandler returns the balances of a user
func AccountSummaryHandler(svc *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDParam(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		summary, err := svc.GetAccountSummary(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err) // Missing account is a 404
			return
		}
		c.JSON(http.StatusOK, AccountSummaryResponse{
			MainBalance:    summary.MainBalance.InexactFloat64(),
			SavingsBalance: summary.SavingsBalance.InexactFloat64(),
			CreditBalance:  summary.CreditBalance.InexactFloat64(),
			RewardPoints:   summary.RewardPoints,
		})
	}
}

// CurrentUserHandler returns the username of a user
func CurrentUserHandler(svc *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDParam(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		username, err := svc.GetUsername(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": username})
	}
}
