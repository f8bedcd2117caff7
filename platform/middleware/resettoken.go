package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/view"
)

// ResetTokenGate forces the reset-password view whenever a reset token
// rides in the query string. The check runs before any other routing, so
// the deep link works with or without a session and cannot be navigated
// away from by normal in-app actions.
func ResetTokenGate(ctx *gin.Context) {
	token := ctx.Query("token")
	if token == "" || ctx.Request.URL.Path == view.ResetPassword.Path() {
		ctx.Next()
		return
	}

	ctx.Redirect(http.StatusSeeOther, view.ResetPassword.Path()+"?token="+url.QueryEscape(token))
	ctx.Abort()
}
