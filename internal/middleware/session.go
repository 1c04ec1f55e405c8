package middleware

import (
	"context"
	"net/http"

	"golang-food-storefront/internal/session"

	"github.com/gin-gonic/gin"
)

// Resolver turns a session cookie into the live session, or nil for
// anonymous. *session.Manager implements it.
type Resolver interface {
	Resolve(ctx context.Context, id string) *session.Session
}

type SessionMiddleware struct {
	resolver   Resolver
	cookieName string
}

func NewSessionMiddleware(resolver Resolver, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{resolver: resolver, cookieName: cookieName}
}

func (m *SessionMiddleware) CookieName() string {
	return m.cookieName
}

// Resolve loads the session for every request and records the view class in
// the context. It never rejects: public routes work for everyone.
func (m *SessionMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(m.cookieName)
		sess := m.resolver.Resolve(c.Request.Context(), id)
		if sess != nil {
			c.Set("session", sess)
		}
		c.Set("view", sess.View())
		c.Next()
	}
}

// UserRequired gates user-protected routes: anonymous callers get redirected
// to login instead of a rendered view.
func (m *SessionMiddleware) UserRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetView(c).CanAccess(session.UserProtected) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":    "Login required",
				"redirect": "/login",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired gates admin-protected routes.
func (m *SessionMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetView(c).CanAccess(session.AdminProtected) {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "Not authorized",
				"redirect": "/not-authorized",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSession helper to extract the resolved session from context.
func GetSession(c *gin.Context) *session.Session {
	if v, exists := c.Get("session"); exists {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return nil
}

// GetView helper to extract the view class from context.
func GetView(c *gin.Context) session.ViewClass {
	if v, exists := c.Get("view"); exists {
		if view, ok := v.(session.ViewClass); ok {
			return view
		}
	}
	return session.Anonymous
}
