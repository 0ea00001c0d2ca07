package webserver

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/frostworks/snowbot/src/data"
	"github.com/frostworks/snowbot/src/types"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userKey = "user"

type Auth struct {
	store     data.Store
	jwtSecret []byte
}

func NewAuth(store data.Store, secret []byte) Auth {
	return Auth{store: store, jwtSecret: secret}
}

// Login resolves a dashboard user id and hands back the user plus a session
// token. Only owners and co-owners get in.
func (a Auth) Login(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": "invalid request"})
		return
	}

	user, err := a.store.GetUser(req.UserID)
	if err != nil {
		log.Printf("auth: lookup %s: %v", req.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": "login failed"})
		return
	}
	if user == nil || !isOwnerRole(user.Role) {
		c.JSON(http.StatusForbidden, gin.H{"err": "access denied, owner/co-owner only"})
		return
	}

	token, err := a.issueJWT(user.ID)
	if err != nil {
		log.Printf("auth: issue token for %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// RequireOwner gates dashboard endpoints. The caller identifies with either
// the X-User-ID header or a bearer session token; either way the id must
// resolve to an owner or co-owner.
func (a Auth) RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				userID = a.subjectFromJWT(h[7:])
			}
		}
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"err": "user id required"})
			return
		}

		user, err := a.store.GetUser(userID)
		if err != nil {
			log.Printf("auth: lookup %s: %v", userID, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"err": "auth check failed"})
			return
		}
		if user == nil || !isOwnerRole(user.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"err": "access denied, owner/co-owner only"})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

func (a Auth) issueJWT(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": userID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(a.jwtSecret)
}

func (a Auth) subjectFromJWT(raw string) string {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) { return a.jwtSecret, nil })
	if err != nil || !tok.Valid {
		return ""
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	uid, _ := claims["uid"].(string)
	return uid
}

func isOwnerRole(role string) bool {
	return role == types.RoleOwner || role == types.RoleCoOwner
}

func currentUser(c *gin.Context) *types.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*types.User); ok {
			return u
		}
	}
	return nil
}
