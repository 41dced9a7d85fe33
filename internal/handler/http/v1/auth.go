package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/citizen_watch/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	officerBadgeKey = "officer_badge"
	officerUIDKey   = "officer_uid"
)

// OfficerAuthMiddleware - middleware для аутентификации офицера по Bearer токену
func OfficerAuthMiddleware(authService service.AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			log.Warn("Officer token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "officer token required"})
			return
		}

		claims, err := authService.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			log.WithError(err).Warn("Invalid officer token provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(officerBadgeKey, claims.Badge)
		c.Set(officerUIDKey, claims.Subject)
		c.Next()
	}
}

func officerBadge(c *gin.Context) string {
	return c.GetString(officerBadgeKey)
}

// @Summary Officer login
// @Description Sign in with badge number and password. Returns a bearer token for officer routes.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body OfficerLoginRequest true "Badge number and password"
// @Success 200 {object} OfficerLoginResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid badge number or credentials"
// @Failure 403 {object} map[string]string "Officer account is deactivated"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/officer/login [post]
func (h *Handler) officerLogin(c *gin.Context) {
	log := h.logger.WithField("method", "officerLogin")

	var input OfficerLoginRequest
	if !h.bind(c, log, &input) {
		return
	}

	session, err := h.authService.AuthenticateOfficer(c.Request.Context(), input.BadgeNumber, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBadge):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid badge number"})
		case errors.Is(err, service.ErrOfficerDeactivated):
			c.JSON(http.StatusForbidden, gin.H{"error": "Officer account is deactivated"})
		case errors.Is(err, service.ErrOfficerEmailNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Officer email not found"})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		default:
			log.WithError(err).Error("Failed to authenticate officer")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, SessionToLoginResponse(session))
}
