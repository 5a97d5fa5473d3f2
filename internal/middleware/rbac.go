package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/campushub/lms-portal-api/internal/models"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
	"github.com/campushub/lms-portal-api/pkg/response"
)

// RoleSelf is the RBAC pseudo-role granting access when the path's
// student_id or instructor_id matches the caller's linked identity.
const RoleSelf = "SELF"

// RBAC enforces role-based access control for routes.
func RBAC(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		claims := claimsValue.(*models.JWTClaims)

		allowSelf := false
		allowedRoles := make(map[models.UserRole]struct{})

		for _, a := range allowed {
			if a == RoleSelf {
				allowSelf = true
				continue
			}
			allowedRoles[models.UserRole(a)] = struct{}{}
		}

		if _, ok := allowedRoles[claims.Role]; ok {
			c.Next()
			return
		}

		if allowSelf && isSelf(c, claims) {
			c.Next()
			return
		}

		response.Error(c, appErrors.ErrForbidden)
		c.Abort()
	}
}

// isSelf matches the route's identity parameters against the caller's
// linked directory identities.
func isSelf(c *gin.Context, claims *models.JWTClaims) bool {
	if studentID := c.Param("student_id"); studentID != "" {
		return claims.StudentID != "" && claims.StudentID == studentID
	}
	if instructorID := c.Param("instructor_id"); instructorID != "" {
		return claims.InstructorID != "" && claims.InstructorID == instructorID
	}
	if targetID := c.Param("id"); targetID != "" {
		return targetID == claims.UserID
	}
	return false
}

// RequireRoles is a helper that accepts a list of roles.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make([]string, len(roles))
	for i, r := range roles {
		allowed[i] = string(r)
	}
	return RBAC(allowed...)
}
