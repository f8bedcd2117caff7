package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/models"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/view"
)

// SessionUserKey is the fixed session key holding the serialized User.
const SessionUserKey = "user"

// IsAuthenticated gates a route on the presence of a session user.
func IsAuthenticated(ctx *gin.Context) {
	session := sessions.Default(ctx)
	if _, ok := session.Get(SessionUserKey).(models.User); !ok {
		ctx.Redirect(http.StatusSeeOther, view.Login.Path())
		ctx.Abort()
		return
	}
	ctx.Next()
}

// SessionUser returns the authenticated user for a request that passed
// IsAuthenticated.
func SessionUser(ctx *gin.Context) models.User {
	user, _ := sessions.Default(ctx).Get(SessionUserKey).(models.User)
	return user
}
