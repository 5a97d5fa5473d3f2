package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/campushub/lms-portal-api/internal/models"
)

func rbacRouter(claims *models.JWTClaims, path string, allowed ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set(ContextUserKey, claims)
		}
		c.Next()
	})
	router.GET(path, RBAC(allowed...), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestRBACAllowsListedRole(t *testing.T) {
	claims := &models.JWTClaims{UserID: "u1", Role: models.RoleAdmin}
	router := rbacRouter(claims, "/courses", "ADMIN")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/courses", nil))

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("unexpected status: %d", recorder.Code)
	}
}

func TestRBACRejectsOtherRole(t *testing.T) {
	claims := &models.JWTClaims{UserID: "u1", Role: models.RoleStudent}
	router := rbacRouter(claims, "/courses", "ADMIN", "INSTRUCTOR")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/courses", nil))

	if recorder.Code != http.StatusForbidden {
		t.Fatalf("unexpected status: %d", recorder.Code)
	}
}

func TestRBACRejectsMissingClaims(t *testing.T) {
	router := rbacRouter(nil, "/courses", "ADMIN")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/courses", nil))

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", recorder.Code)
	}
}

func TestRBACSelfMatchesStudentParam(t *testing.T) {
	claims := &models.JWTClaims{UserID: "u1", Role: models.RoleStudent, StudentID: "A2300123X"}
	router := rbacRouter(claims, "/students/:student_id", "ADMIN", RoleSelf)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/students/A2300123X", nil))
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("unexpected status for own record: %d", recorder.Code)
	}

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/students/A2300456Y", nil))
	if recorder.Code != http.StatusForbidden {
		t.Fatalf("unexpected status for another student: %d", recorder.Code)
	}
}

func TestRBACSelfMatchesInstructorParam(t *testing.T) {
	claims := &models.JWTClaims{UserID: "u1", Role: models.RoleInstructor, InstructorID: "I100"}
	router := rbacRouter(claims, "/instructors/:instructor_id", RoleSelf)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/instructors/I100", nil))
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("unexpected status for own record: %d", recorder.Code)
	}
}

func TestRBACSelfWithoutLinkedIdentity(t *testing.T) {
	// a student token with no linked student record can never match SELF
	claims := &models.JWTClaims{UserID: "u1", Role: models.RoleStudent}
	router := rbacRouter(claims, "/students/:student_id", RoleSelf)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/students/A2300123X", nil))
	if recorder.Code != http.StatusForbidden {
		t.Fatalf("unexpected status: %d", recorder.Code)
	}
}
