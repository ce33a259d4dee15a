package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Colby-williams/hackathon-2025/internal/middleware"
	"github.com/Colby-williams/hackathon-2025/rental"
	"github.com/Colby-williams/hackathon-2025/vehicle"
)

type startRentalRequest struct {
	BikeID string `json:"bike_id"`
}

func (a *API) startRentalHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)
	userID, _ := middleware.GetUserID(c)

	var req startRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.BikeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "bike_id is required"})
		return
	}

	snap, err := a.engine.Start(userID, req.BikeID)
	if err != nil {
		switch {
		case errors.Is(err, rental.ErrPaymentRequired):
			c.JSON(http.StatusPaymentRequired, gin.H{"code": "PAYMENT_REQUIRED", "message": "Balance is negative; deposit funds to ride"})
		case errors.Is(err, vehicle.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"code": "BIKE_NOT_FOUND", "message": "Bike not found"})
		case errors.Is(err, rental.ErrUserActive):
			c.JSON(http.StatusConflict, gin.H{"code": "RENTAL_ACTIVE", "message": "User already has an active rental"})
		case errors.Is(err, vehicle.ErrNotAvailable):
			c.JSON(http.StatusConflict, gin.H{"code": "BIKE_UNAVAILABLE", "message": "Bike not available"})
		default:
			logger.ErrorContext(c, "failed to start rental", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusCreated, snap)
}

func (a *API) getRentalHandler(c *gin.Context) {
	snap, err := a.engine.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": "RENTAL_NOT_FOUND", "message": "Rental not found"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

type endRentalResponse struct {
	rental.Snapshot
	BalanceCents int64 `json:"balance_cents"`
}

// endRentalHandler reads the optional end position with a parse-or-ignore
// policy: a missing or malformed body, or coordinates that aren't
// numbers, end the ride without moving the vehicle rather than failing
// the settlement.
func (a *API) endRentalHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)
	userID, _ := middleware.GetUserID(c)

	var body struct {
		Lat any `json:"lat"`
		Lng any `json:"lng"`
	}
	_ = c.ShouldBindJSON(&body)
	lat := coordOrNil(body.Lat)
	lng := coordOrNil(body.Lng)

	snap, balance, err := a.engine.End(c.Param("id"), userID, lat, lng)
	if err != nil {
		switch {
		case errors.Is(err, rental.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"code": "RENTAL_NOT_FOUND", "message": "Rental not found"})
		case errors.Is(err, rental.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"code": "FORBIDDEN", "message": "Rental belongs to another user"})
		default:
			logger.ErrorContext(c, "failed to end rental", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, endRentalResponse{Snapshot: snap, BalanceCents: balance})
}

type activeRentalResponse struct {
	Active bool             `json:"active"`
	Rental *rental.Snapshot `json:"rental,omitempty"`
}

func (a *API) activeRentalHandler(c *gin.Context) {
	snap, ok := a.engine.ActiveForUser(c.Param("id"))
	if !ok {
		c.JSON(http.StatusOK, activeRentalResponse{Active: false})
		return
	}
	c.JSON(http.StatusOK, activeRentalResponse{Active: true, Rental: &snap})
}

// coordOrNil accepts JSON numbers and numeric strings; anything else is
// treated as absent.
func coordOrNil(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return &f
		}
	}
	return nil
}
