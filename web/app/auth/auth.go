package auth

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/middleware"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/view"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/zeniapi"
)

// Generic fallbacks for transport failures. Server-reported details are
// shown verbatim instead.
const (
	genericLoginError    = "Erro no login"
	genericRegisterError = "Erro no cadastro"
)

// LoginGetHandler renders the login form.
func LoginGetHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.HTML(http.StatusOK, "login.html", gin.H{})
	}
}

// LoginPostHandler submits credentials to the Zeni API and opens the
// session on success.
func LoginPostHandler(api *zeniapi.Client) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		email := ctx.PostForm("email")
		password := ctx.PostForm("password")

		user, err := api.Login(email, password)
		if err != nil {
			ctx.HTML(http.StatusOK, "login.html", gin.H{
				"Error": userMessage(err, genericLoginError),
				"Email": email,
			})
			return
		}

		session := sessions.Default(ctx)
		session.Set(middleware.SessionUserKey, *user)
		if err := session.Save(); err != nil {
			ctx.String(http.StatusInternalServerError, err.Error())
			return
		}

		ctx.Redirect(http.StatusSeeOther, view.Home.Path())
	}
}

// RegisterGetHandler renders the sign-up form.
func RegisterGetHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.HTML(http.StatusOK, "register.html", gin.H{})
	}
}

// RegisterPostHandler creates an account and opens the session, same
// shape as login.
func RegisterPostHandler(api *zeniapi.Client) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		name := ctx.PostForm("name")
		email := ctx.PostForm("email")
		password := ctx.PostForm("password")

		user, err := api.Register(name, email, password)
		if err != nil {
			ctx.HTML(http.StatusOK, "register.html", gin.H{
				"Error": userMessage(err, genericRegisterError),
				"Name":  name,
				"Email": email,
			})
			return
		}

		session := sessions.Default(ctx)
		session.Set(middleware.SessionUserKey, *user)
		if err := session.Save(); err != nil {
			ctx.String(http.StatusInternalServerError, err.Error())
			return
		}

		ctx.Redirect(http.StatusSeeOther, view.Home.Path())
	}
}

// userMessage picks the backend's detail for server-reported errors and
// the generic fallback for transport failures.
func userMessage(err error, fallback string) string {
	var apiErr *zeniapi.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
