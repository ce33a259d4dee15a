package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Colby-williams/hackathon-2025/pricing"
	"github.com/Colby-williams/hackathon-2025/vehicle"
)

type bikeResponse struct {
	ID              string       `json:"id"`
	VehicleType     vehicle.Type `json:"vehicle_type"`
	Lat             float64      `json:"lat"`
	Lng             float64      `json:"lng"`
	IsAvailable     bool         `json:"is_available"`
	BatteryPercent  int          `json:"battery_percent"`
	LastSeenAt      time.Time    `json:"last_seen_at"`
	RentedByUserID  *string      `json:"rented_by_user_id"`
	CurrentRentalID *string      `json:"current_rental_id"`
	PerMinuteCents  int64        `json:"per_minute_cents"`
	UnlockCents     int64        `json:"unlock_cents"`
}

// bikesHandler lists the fleet, annotating each vehicle with its live
// rental (owner + rental id) and the applicable rates, so the map can
// render everything in one round trip.
func (a *API) bikesHandler(c *gin.Context) {
	vehicles := a.vr.List()

	out := make([]bikeResponse, 0, len(vehicles))
	for _, v := range vehicles {
		rate := pricing.RateFor(v.Type)
		resp := bikeResponse{
			ID:             v.ID,
			VehicleType:    v.Type,
			Lat:            v.Lat,
			Lng:            v.Lng,
			IsAvailable:    v.Available,
			BatteryPercent: v.BatteryPercent,
			LastSeenAt:     v.LastSeenAt,
			PerMinuteCents: rate.PerMinuteCents,
			UnlockCents:    rate.UnlockCents,
		}
		if snap, ok := a.engine.ActiveForVehicle(v.ID); ok {
			resp.RentedByUserID = &snap.UserID
			resp.CurrentRentalID = &snap.ID
		}
		out = append(out, resp)
	}

	c.JSON(http.StatusOK, out)
}

func (a *API) rechargeHandler(c *gin.Context) {
	id := c.Param("id")
	if err := a.vr.Recharge(id); err != nil {
		if errors.Is(err, vehicle.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": "BIKE_NOT_FOUND", "message": "Bike not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
