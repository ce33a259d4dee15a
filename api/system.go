package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (a *API) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now().UTC().Format(time.RFC3339)})
}

// configJSHandler serves the maps key to the browser as a tiny script so
// the static map page can stay key-free.
func (a *API) configJSHandler(c *gin.Context) {
	js := fmt.Sprintf("window.CONFIG = { %q: %q };", "GOOGLE_MAPS_KEY", a.mapsKey)
	c.Data(http.StatusOK, "application/javascript; charset=utf-8", []byte(js))
}

// resetHandler restores seed state: sessions gone, rentals gone, fleet
// available at seed positions, balances back to seed values.
func (a *API) resetHandler(c *gin.Context) {
	a.sessions.Reset()
	a.engine.Reset()
	a.vr.Reset()
	a.cr.Reset()
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "State reset"})
}
