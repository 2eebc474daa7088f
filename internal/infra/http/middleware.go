package http

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/technohippy/aiid/internal/domain"
)

var errUnsupportedAuthMode = errors.New("unsupported auth mode")

func (s *Server) requestMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-Id", requestID)

		start := time.Now()
		c.Next()

		s.log.Info("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

func (s *Server) guarded(action string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.enforceRateLimit(c, action) {
			return
		}
		if !s.authorize(c, action) {
			return
		}
		handler(c)
	}
}

func (s *Server) authorize(c *gin.Context, action string) bool {
	if s.cfg.AuthMode == "" || s.cfg.AuthMode == "none" {
		return true
	}
	roles := s.callerRoles(c)
	if len(roles) == 0 {
		writeError(c, http.StatusUnauthorized, "UNAUTHORIZED", "caller roles missing")
		return false
	}
	if s.authorizer == nil {
		writeError(c, http.StatusInternalServerError, "AUTHZ_UNAVAILABLE", "authorizer not configured")
		return false
	}
	decision, err := s.authorizer.Authorize(c.Request.Context(), domain.AuthzInput{Action: action, Roles: roles})
	if err != nil {
		writeError(c, http.StatusInternalServerError, "AUTHZ_ERROR", "authorization check failed")
		return false
	}
	if !decision.Allow {
		writeError(c, http.StatusForbidden, "FORBIDDEN", "action not permitted")
		return false
	}
	return true
}

// callerRoles derives roles from the admin API key or the roles header the
// upstream gateway sets after authenticating the user.
func (s *Server) callerRoles(c *gin.Context) []string {
	if s.cfg.AdminAPIKey != "" {
		key := c.GetHeader("X-Admin-Api-Key")
		if key != "" && subtle.ConstantTimeCompare([]byte(key), []byte(s.cfg.AdminAPIKey)) == 1 {
			return []string{domain.RoleAdmin}
		}
	}
	header := c.GetHeader("X-User-Roles")
	if header == "" {
		return nil
	}
	parts := strings.Split(header, ",")
	roles := make([]string, 0, len(parts))
	for _, part := range parts {
		role := strings.TrimSpace(part)
		if role != "" {
			roles = append(roles, role)
		}
	}
	return roles
}

func (s *Server) enforceRateLimit(c *gin.Context, action string) bool {
	if s.rateLimiter == nil || s.rateLimitRequests <= 0 {
		return true
	}
	key := "action:" + action
	decision, err := s.rateLimiter.Allow(c.Request.Context(), key, s.rateLimitRequests, s.rateLimitWindow)
	if err != nil {
		if s.rateLimitFailClosed {
			writeError(c, http.StatusTooManyRequests, "RATE_LIMIT_UNAVAILABLE", "rate limiter unavailable")
			return false
		}
		return true
	}
	writeRateLimitHeaders(c, decision)
	if !decision.Allowed {
		writeError(c, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
		return false
	}
	return true
}

func writeRateLimitHeaders(c *gin.Context, decision domain.RateLimitDecision) {
	if decision.Limit > 0 {
		c.Header("RateLimit-Limit", strconv.Itoa(decision.Limit))
	}
	if decision.Remaining >= 0 {
		c.Header("RateLimit-Remaining", strconv.Itoa(decision.Remaining))
	}
	if !decision.ResetAt.IsZero() {
		c.Header("RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))
		if !decision.Allowed {
			retryAfter := int64(time.Until(decision.ResetAt).Seconds())
			if retryAfter < 0 {
				retryAfter = 0
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
		}
	}
}
