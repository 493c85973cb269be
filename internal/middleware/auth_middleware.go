package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrincipalKind is the actor variant decided once at the auth boundary.
type PrincipalKind string

const (
	PrincipalAdmin      PrincipalKind = "admin"
	PrincipalStore      PrincipalKind = "store"
	PrincipalFreelancer PrincipalKind = "freelancer"
	PrincipalUser       PrincipalKind = "user"
	PrincipalEmployee   PrincipalKind = "employee"
	PrincipalPartner    PrincipalKind = "partner"
)

// Principal is the authenticated caller. Handlers read it via GetPrincipal
// instead of probing optional per-actor fields.
type Principal struct {
	Kind PrincipalKind
	ID   primitive.ObjectID
}

func (p Principal) IsBusiness() bool {
	return p.Kind == PrincipalStore || p.Kind == PrincipalFreelancer
}

const principalKey = "principal"

// JWTClaims represents the JWT token claims
type JWTClaims struct {
	UserID   string `json:"user_id"`
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

var validKinds = map[PrincipalKind]bool{
	PrincipalAdmin:      true,
	PrincipalStore:      true,
	PrincipalFreelancer: true,
	PrincipalUser:       true,
	PrincipalEmployee:   true,
	PrincipalPartner:    true,
}

// AuthRequired validates the bearer token and sets the Principal. Token
// issuance happens elsewhere; this middleware only verifies.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token required"})
			c.Abort()
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*JWTClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		id, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID in token"})
			c.Abort()
			return
		}

		kind := PrincipalKind(claims.UserType)
		if !validKinds[kind] {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown actor type"})
			c.Abort()
			return
		}

		c.Set(principalKey, Principal{Kind: kind, ID: id})
		c.Next()
	}
}

// GetPrincipal returns the authenticated Principal set by AuthRequired.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

func requireKind(kinds ...PrincipalKind) gin.HandlerFunc {
	allowed := make(map[PrincipalKind]bool, len(kinds))
	for _, k := range kinds {
		allowed[k] = true
	}
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		if !allowed[p.Kind] {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied for this actor type"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired ensures the caller is an administrator.
func AdminRequired() gin.HandlerFunc {
	return requireKind(PrincipalAdmin)
}

// BusinessRequired ensures the caller is a store or freelancer.
func BusinessRequired() gin.HandlerFunc {
	return requireKind(PrincipalStore, PrincipalFreelancer)
}

// UserRequired ensures the caller is an end user.
func UserRequired() gin.HandlerFunc {
	return requireKind(PrincipalUser)
}
