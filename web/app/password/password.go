// Package password holds the two unauthenticated recovery flows: the
// forgot-password form and the reset-password deep link.
package password

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/zeniapi"
)

const (
	forgotFailedMessage  = "Erro ao processar solicitação. Tente novamente."
	tokenMissingMessage  = "Token não fornecido"
	tokenInvalidMessage  = "Token inválido ou expirado"
	resetFailedMessage   = "Erro ao alterar senha"
	resetSuccessMessage  = "Senha alterada com sucesso! Você pode fechar esta aba."
	passwordsMismatch    = "As senhas não coincidem"
	passwordTooShort     = "A senha deve ter pelo menos 6 caracteres"
	minimumPasswordChars = 6
)

// Reset-flow states as rendered by the template. The token check runs
// synchronously on GET, so the transient checking state never reaches
// the browser.
const (
	StateTokenInvalid = "token-invalid"
	StateTokenValid   = "token-valid"
	StateSuccess      = "success"
)

// ValidateNewPassword applies the client-side rules. It returns an
// empty string when the submission may go to the network.
func ValidateNewPassword(newPassword, confirmPassword string) string {
	if newPassword != confirmPassword {
		return passwordsMismatch
	}
	if len(newPassword) < minimumPasswordChars {
		return passwordTooShort
	}
	return ""
}

// ForgotGetHandler renders the recovery form.
func ForgotGetHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.HTML(http.StatusOK, "forgot-password.html", gin.H{})
	}
}

// ForgotPostHandler asks the backend for recovery instructions. Any
// failure collapses into one fixed retry message.
func ForgotPostHandler(api *zeniapi.Client) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		email := ctx.PostForm("email")

		result, err := api.ForgotPassword(email)
		if err != nil {
			ctx.HTML(http.StatusOK, "forgot-password.html", gin.H{
				"Message": forgotFailedMessage,
				"Email":   email,
			})
			return
		}

		ctx.HTML(http.StatusOK, "forgot-password.html", gin.H{
			"Message":   result.Message,
			"ResetLink": result.ResetLink,
			"Email":     email,
		})
	}
}

// ResetGetHandler validates the deep-link token and renders the proper
// flow state. A missing token short-circuits without any network call.
func ResetGetHandler(api *zeniapi.Client) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.Query("token")
		if token == "" {
			ctx.HTML(http.StatusOK, "reset-password.html", gin.H{
				"State": StateTokenInvalid,
				"Error": tokenMissingMessage,
			})
			return
		}

		if err := api.VerifyResetToken(token); err != nil {
			ctx.HTML(http.StatusOK, "reset-password.html", gin.H{
				"State": StateTokenInvalid,
				"Error": tokenInvalidMessage,
			})
			return
		}

		ctx.HTML(http.StatusOK, "reset-password.html", gin.H{
			"State": StateTokenValid,
			"Token": token,
		})
	}
}

// ResetPostHandler submits the new password. Local validation rejects
// the attempt before anything is sent; success is a terminal display.
func ResetPostHandler(api *zeniapi.Client) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.PostForm("token")
		newPassword := ctx.PostForm("new_password")
		confirmPassword := ctx.PostForm("confirm_password")

		if msg := ValidateNewPassword(newPassword, confirmPassword); msg != "" {
			ctx.HTML(http.StatusOK, "reset-password.html", gin.H{
				"State": StateTokenValid,
				"Token": token,
				"Error": msg,
			})
			return
		}

		if err := api.ResetPassword(token, newPassword, confirmPassword); err != nil {
			msg := resetFailedMessage
			var apiErr *zeniapi.APIError
			if errors.As(err, &apiErr) && apiErr.Detail != "" {
				msg = apiErr.Detail
			}
			ctx.HTML(http.StatusOK, "reset-password.html", gin.H{
				"State": StateTokenValid,
				"Token": token,
				"Error": msg,
			})
			return
		}

		ctx.HTML(http.StatusOK, "reset-password.html", gin.H{
			"State":   StateSuccess,
			"Message": resetSuccessMessage,
		})
	}
}
