package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Colby-williams/hackathon-2025/customer"
	"github.com/Colby-williams/hackathon-2025/internal/middleware"
)

type walletResponse struct {
	UserID       string `json:"user_id"`
	BalanceCents int64  `json:"balance_cents"`
}

func (a *API) walletHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	userID, _ := middleware.GetUserID(c)
	user, err := a.cr.Get(userID)
	if err != nil {
		logger.ErrorContext(c, "failed to get wallet", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, walletResponse{UserID: user.ID, BalanceCents: user.BalanceCents})
}

type depositRequest struct {
	AmountCents   *int64   `json:"amount_cents"`
	AmountDollars *float64 `json:"amount_dollars"`
}

// depositHandler accepts either integer cents or a decimal dollar amount;
// dollars are rounded half-up to the nearest cent before hitting the
// ledger.
func (a *API) depositHandler(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req depositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	var cents int64
	switch {
	case req.AmountCents != nil:
		cents = *req.AmountCents
	case req.AmountDollars != nil:
		cents = customer.DollarsToCents(*req.AmountDollars)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_AMOUNT", "message": "amount_cents or amount_dollars is required"})
		return
	}

	balance, err := a.cr.Deposit(userID, cents)
	if err != nil {
		if errors.Is(err, customer.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_AMOUNT", "message": "deposit amount must be positive"})
			return
		}
		middleware.GetLogger(c).ErrorContext(c, "failed to deposit", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, walletResponse{UserID: userID, BalanceCents: balance})
}
