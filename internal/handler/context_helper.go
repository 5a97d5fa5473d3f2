package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/lms-portal-api/internal/middleware"
	"github.com/campushub/lms-portal-api/internal/models"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
)

// pathID parses a numeric path parameter, rejecting non-numeric values
// as validation failures.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, "invalid "+name)
	}
	return id, nil
}

// queryID parses an optional numeric query parameter, returning zero
// when absent.
func queryID(c *gin.Context, name string) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, "invalid "+name)
	}
	return id, nil
}

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}
