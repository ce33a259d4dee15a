package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Colby-williams/hackathon-2025/internal/middleware"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	BalanceCents int64  `json:"balance_cents"`
}

func (a *API) loginHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "INVALID_CREDENTIALS", "message": "Invalid username or password"})
		return
	}

	if !a.cr.Authenticate(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "INVALID_CREDENTIALS", "message": "Invalid username or password"})
		return
	}

	user, err := a.cr.Get(req.Username)
	if err != nil {
		logger.ErrorContext(c, "failed to load user after auth", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	token, err := a.sessions.Create(user.ID)
	if err != nil {
		logger.ErrorContext(c, "failed to create session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	// Session cookie: HTTP-only, no expiry beyond the process lifetime.
	c.SetCookie(middleware.CookieName, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, loginResponse{
		UserID:       user.ID,
		Name:         user.Name,
		BalanceCents: user.BalanceCents,
	})
}

func (a *API) logoutHandler(c *gin.Context) {
	if token, err := c.Cookie(middleware.CookieName); err == nil {
		a.sessions.Destroy(token)
	}
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type meResponse struct {
	Authenticated bool    `json:"authenticated"`
	UserID        *string `json:"user_id,omitempty"`
	Name          *string `json:"name,omitempty"`
	BalanceCents  *int64  `json:"balance_cents,omitempty"`
}

// meHandler never fails: an anonymous caller just gets authenticated=false.
func (a *API) meHandler(c *gin.Context) {
	token, err := c.Cookie(middleware.CookieName)
	if err != nil {
		c.JSON(http.StatusOK, meResponse{Authenticated: false})
		return
	}
	userID, ok := a.sessions.Resolve(token)
	if !ok {
		c.JSON(http.StatusOK, meResponse{Authenticated: false})
		return
	}
	user, err := a.cr.Get(userID)
	if err != nil {
		c.JSON(http.StatusOK, meResponse{Authenticated: false})
		return
	}

	c.JSON(http.StatusOK, meResponse{
		Authenticated: true,
		UserID:        &user.ID,
		Name:          &user.Name,
		BalanceCents:  &user.BalanceCents,
	})
}
