package api

import (
	"log"
	"net/http"
	"strings"

	"blognews-service/auth"

	"github.com/gin-gonic/gin"
)

// Refresher lets the auth flow nudge the headlines worker after a
// successful login, mirroring the reader app refreshing its feed once a
// user signs in.
type Refresher interface {
	RequestRefresh(country, trigger string) error
}

type AuthHandler struct {
	verifier  auth.CredentialVerifier
	sessions  *auth.SessionManager
	refresher Refresher
}

func NewAuthHandler(verifier auth.CredentialVerifier, sessions *auth.SessionManager, refresher Refresher) *AuthHandler {
	return &AuthHandler{verifier: verifier, sessions: sessions, refresher: refresher}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.verifier.Verify(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		log.Printf("[WARN] Login rejected for %s: %v", req.Email, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token := h.sessions.Create(user)
	h.refreshAfterLogin()

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.verifier.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		log.Printf("[WARN] Registration rejected for %s: %v", req.Email, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token := h.sessions.Create(user)
	h.refreshAfterLogin()

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token != "" {
		h.sessions.Destroy(token)
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func (h *AuthHandler) refreshAfterLogin() {
	if h.refresher == nil {
		return
	}
	if err := h.refresher.RequestRefresh("", "login"); err != nil {
		log.Printf("[WARN] Failed to request news refresh after login: %v", err)
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// RequireAuth resolves the bearer token to a session user and aborts with
// 401 when there is none.
func RequireAuth(sessions *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		user, ok := sessions.Get(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}
		c.Set("user", user)
		c.Next()
	}
}
