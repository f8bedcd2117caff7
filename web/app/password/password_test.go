package password

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/zeniapi"
)

func TestValidateNewPassword(t *testing.T) {
	tests := []struct {
		name            string
		newPassword     string
		confirmPassword string
		expected        string
	}{
		{name: "valid", newPassword: "segredo1", confirmPassword: "segredo1", expected: ""},
		{name: "exactly six chars", newPassword: "123456", confirmPassword: "123456", expected: ""},
		{name: "mismatch", newPassword: "segredo1", confirmPassword: "segredo2", expected: "As senhas não coincidem"},
		{name: "too short", newPassword: "12345", confirmPassword: "12345", expected: "A senha deve ter pelo menos 6 caracteres"},
		{name: "mismatch reported before length", newPassword: "123", confirmPassword: "456", expected: "As senhas não coincidem"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateNewPassword(tt.newPassword, tt.confirmPassword)

			if got != tt.expected {
				t.Fatalf("ValidateNewPassword(%q, %q) = %q want %q", tt.newPassword, tt.confirmPassword, got, tt.expected)
			}
		})
	}
}

func resetTestRouter(api *zeniapi.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("reset-password.html").Parse(
		`{{.State}}|{{.Error}}`,
	)))
	r.GET("/reset-password", ResetGetHandler(api))
	r.POST("/reset-password", ResetPostHandler(api))
	return r
}

func TestResetGetWithoutTokenSkipsBackend(t *testing.T) {
	calls := 0
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer backend.Close()

	r := resetTestRouter(zeniapi.New(backend.URL))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reset-password", nil)
	r.ServeHTTP(w, req)

	if calls != 0 {
		t.Fatalf("backend received %d calls, want 0", calls)
	}
	if !strings.Contains(w.Body.String(), StateTokenInvalid) {
		t.Fatalf("body = %q, want token-invalid state", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Token não fornecido") {
		t.Fatalf("body = %q, want missing-token message", w.Body.String())
	}
}

func TestResetGetInvalidToken(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "Token inválido ou expirado"}`))
	}))
	defer backend.Close()

	r := resetTestRouter(zeniapi.New(backend.URL))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reset-password?token=stale", nil)
	r.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), StateTokenInvalid) {
		t.Fatalf("body = %q, want token-invalid state", w.Body.String())
	}
}

func TestResetPostLocalValidationSkipsBackend(t *testing.T) {
	calls := 0
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer backend.Close()

	r := resetTestRouter(zeniapi.New(backend.URL))

	form := strings.NewReader("token=abc&new_password=123&confirm_password=456")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reset-password", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if calls != 0 {
		t.Fatalf("backend received %d calls, want 0", calls)
	}
	if !strings.Contains(w.Body.String(), "As senhas não coincidem") {
		t.Fatalf("body = %q, want mismatch message", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), StateTokenValid) {
		t.Fatalf("body = %q, want token-valid state so the form stays up", w.Body.String())
	}
}
