package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"trainingboard/internal/auth"
)

// Login checks the configured admin credentials and sets the session cookie.
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "email and password are required"})
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(h.cfg.AdminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPassword)) == 1
	if !emailOK || !passOK {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid credentials"})
		return
	}

	sess, err := auth.Issue(req.Email, h.cfg.JWTIssuer, h.cfg.JWTSigningKey, h.cfg.SessionTTL)
	if err != nil {
		fail(c, err)
		return
	}

	secure := h.cfg.Env == "production" || h.cfg.Env == "prod"
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.CookieName, sess.Token, int(h.cfg.SessionTTL.Seconds()), "/", "", secure, true)
	ok(c, http.StatusOK, nil)
}

// Logout clears the session cookie.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	ok(c, http.StatusOK, nil)
}
