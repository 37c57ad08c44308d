package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const (
	userIDKey = "user_id"
	roleKey   = "role"

	RoleAdmin = "admin"
)

// Claims are issued by the external auth service: sub is the user id (a uuid).
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth accepts HMAC-signed bearer tokens. An empty issuer skips the iss check.
func Auth(secret, issuer string) ginext.HandlerFunc {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(c *ginext.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || raw == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		var claims Claims
		_, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "token expired"
			}
			abortUnauthorized(c, msg)
			return
		}
		if claims.Subject == "" {
			abortUnauthorized(c, "token has no subject")
			return
		}
		// user ids are uuid columns downstream.
		if _, err := uuid.Parse(claims.Subject); err != nil {
			abortUnauthorized(c, "token subject is not a user id")
			return
		}

		c.Set(userIDKey, claims.Subject)
		c.Set(roleKey, claims.Role)
		c.Next()
	}
}

// RequireAdmin must run after Auth.
func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if c.GetString(roleKey) != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "admin role required", "code": "forbidden"})
			return
		}
		c.Next()
	}
}

func UserID(c *ginext.Context) string {
	return c.GetString(userIDKey)
}

func abortUnauthorized(c *ginext.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": msg, "code": "unauthorized"})
}
