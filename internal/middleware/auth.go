package middleware

import (
	"net/http"

	"gamedevforum/internal/services"
	"gamedevforum/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

const sessionTokenKey = "session_token"

// LoadUser resolves the session token from the cookie against the server-side
// token store and puts the logged-in user on the request context. Requests
// without a live session just pass through.
func LoadUser(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		token, ok := session.Get(sessionTokenKey).(string)
		if !ok {
			c.Next()
			return
		}

		userID, live := services.GetSessionService().Resolve(token)
		if !live {
			c.Next()
			return
		}

		user, err := st.GetUser(c.Request.Context(), userID)
		if err == nil && user != nil {
			c.Set(CheckUserKey, user)
		}
		c.Next()
	}
}

// AuthRequired ensures a user is logged in
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetSessionToken stores the token in the cookie session after login.
func SetSessionToken(c *gin.Context, token string) error {
	session := sessions.Default(c)
	session.Set(sessionTokenKey, token)
	return session.Save()
}

// ClearSession revokes the server-side token and drops the cookie session.
func ClearSession(c *gin.Context) {
	session := sessions.Default(c)
	if token, ok := session.Get(sessionTokenKey).(string); ok {
		services.GetSessionService().Destroy(token)
	}
	session.Clear()
	session.Save()
}
