package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"burgerhouse/internal/core/auth"
	resp "burgerhouse/internal/transport/http/response"
)

const (
	KeyUserID = "userId"
	KeyRoles  = "roles"
)

// AuthJWT gates a route group on a valid bearer token. The application
// never inspects the token itself; it forwards it to the JWTer and trusts
// the verdict. With requireRole set, the claim set must also contain that
// role.
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.Abort()
			resp.Unauthorized(c, "missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.Abort()
			resp.Unauthorized(c, "invalid token")
			return
		}
		if requireRole != "" && !hasRole(claims.Roles, requireRole) {
			c.Abort()
			resp.Forbidden(c, "forbidden")
			return
		}
		c.Set(KeyUserID, claims.UID)
		c.Set(KeyRoles, claims.Roles)
		c.Next()
	}
}

func hasRole(roles []string, want string) bool {
	for _, r := range roles {
		if r == want {
			return true
		}
	}
	return false
}
