package web

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"cafe-julio/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const sessionContextKey = "baristaSession"

// Session identifies the logged-in barista for one request. It is
// resolved once by BaristaAuth and threaded through the gin context;
// nothing reads ambient session state.
type Session struct {
	BaristaID int64  `json:"baristaId"`
	Email     string `json:"email"`
}

type sessionClaims struct {
	BaristaID int64  `json:"baristaId"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

func (s *Server) signSession(sess Session) (string, error) {
	claims := sessionClaims{
		BaristaID: sess.BaristaID,
		Email:     sess.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(s.cfg.Session.MaxAgeSec) * time.Second)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Session.Secret))
}

func (s *Server) parseSession(tokenStr string) (Session, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(s.cfg.Session.Secret), nil
	})
	if err != nil || !token.Valid {
		return Session{}, fmt.Errorf("invalid session token")
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || claims.BaristaID == 0 {
		return Session{}, fmt.Errorf("invalid session claims")
	}
	return Session{BaristaID: claims.BaristaID, Email: claims.Email}, nil
}

// sessionFromCookie resolves the request's session cookie, if any.
func (s *Server) sessionFromCookie(c *gin.Context) (Session, bool) {
	raw, err := c.Cookie(s.cfg.Session.CookieName)
	if err != nil || raw == "" {
		return Session{}, false
	}
	sess, err := s.parseSession(raw)
	if err != nil {
		return Session{}, false
	}
	return sess, true
}

// BaristaAuth gates admin-only routes: missing or invalid session yields
// 401 before any handler logic runs.
func (s *Server) BaristaAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := s.sessionFromCookie(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// SessionFrom returns the session resolved by BaristaAuth.
func SessionFrom(c *gin.Context) (Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return Session{}, false
	}
	sess, ok := v.(Session)
	return sess, ok
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/barista/login
func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	wait, _ := services.LoginThrottleWaitSeconds(c.Request.Context(), req.Email)
	if wait > 0 {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": fmt.Sprintf("Aguarde %d segundos antes de tentar novamente", wait)})
		return
	}

	barista, err := services.VerifyBaristaPassword(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Same response for unknown email and wrong password.
			if terr := services.RecordLoginFailed(c.Request.Context(), req.Email); terr != nil {
				s.log.Error("record login failure", "error", terr)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		s.log.Error("barista login", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "login unavailable"})
		return
	}
	if err := services.RecordLoginSuccess(c.Request.Context(), req.Email); err != nil {
		s.log.Error("record login success", "error", err)
	}

	token, err := s.signSession(Session{BaristaID: barista.ID, Email: barista.Email})
	if err != nil {
		s.log.Error("sign session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not establish session"})
		return
	}
	s.setSessionCookie(c, token, s.cfg.Session.MaxAgeSec)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"barista": gin.H{"id": barista.ID, "email": barista.Email, "name": barista.Name},
	})
}

// POST /api/barista/logout — idempotent; logging out twice is fine.
func (s *Server) handleLogout(c *gin.Context) {
	s.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /api/barista/me — the current session, or null.
func (s *Server) handleMe(c *gin.Context) {
	sess, ok := s.sessionFromCookie(c)
	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (s *Server) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cfg.Session.CookieName, value, maxAge, "/", "", false, true)
}
