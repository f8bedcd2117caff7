package auth

import (
	"encoding/gob"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/middleware"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/models"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/zeniapi"
	"github.com/pedrovoltarelli/Zeni-Workout-app/web/app/logout"
)

// sessionTestRouter wires the login, logout and a gated route over a
// real cookie session store, mirroring the production registration.
func sessionTestRouter(api *zeniapi.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	gob.Register(models.User{})

	r := gin.New()
	r.Use(sessions.Sessions("zeni-session", cookie.NewStore([]byte("test-secret"))))
	r.POST("/login", LoginPostHandler(api))
	r.GET("/logout", logout.Handler)
	r.GET("/", middleware.IsAuthenticated, func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "home:%s", middleware.SessionUser(ctx).Name)
	})
	return r
}

func carryCookies(req *http.Request, from *httptest.ResponseRecorder) {
	for _, c := range from.Result().Cookies() {
		req.AddCookie(c)
	}
}

func TestSessionLifecycle(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message": "Login realizado com sucesso", "user_id": 42, "name": "Ana"}`))
	}))
	defer backend.Close()

	r := sessionTestRouter(zeniapi.New(backend.URL))

	// Unauthenticated requests are redirected to the login screen.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/login" {
		t.Fatalf("gated route before login: %d -> %q", w.Code, w.Header().Get("Location"))
	}

	// Login writes the user into the session and navigates home.
	login := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=ana%40example.com&password=segredo1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(login, req)
	if login.Code != http.StatusSeeOther || login.Header().Get("Location") != "/" {
		t.Fatalf("login: %d -> %q", login.Code, login.Header().Get("Location"))
	}
	if len(login.Result().Cookies()) == 0 {
		t.Fatal("login set no session cookie")
	}

	// The session cookie opens the gated route.
	home := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	carryCookies(req, login)
	r.ServeHTTP(home, req)
	if home.Code != http.StatusOK {
		t.Fatalf("gated route after login: %d", home.Code)
	}
	if got := home.Body.String(); got != "home:Ana" {
		t.Fatalf("gated route body = %q want %q", got, "home:Ana")
	}

	// Logout clears the session and returns to login.
	out := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/logout", nil)
	carryCookies(req, login)
	r.ServeHTTP(out, req)
	if out.Code != http.StatusSeeOther || out.Header().Get("Location") != "/login" {
		t.Fatalf("logout: %d -> %q", out.Code, out.Header().Get("Location"))
	}

	// The cleared cookie no longer opens the gate.
	after := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	carryCookies(req, out)
	r.ServeHTTP(after, req)
	if after.Code != http.StatusSeeOther || after.Header().Get("Location") != "/login" {
		t.Fatalf("gated route after logout: %d -> %q", after.Code, after.Header().Get("Location"))
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		expected string
	}{
		{
			name:     "server detail verbatim",
			err:      &zeniapi.APIError{Status: 401, Detail: "Email ou senha incorretos"},
			fallback: "Erro no login",
			expected: "Email ou senha incorretos",
		},
		{
			name:     "server error without detail",
			err:      &zeniapi.APIError{Status: 500},
			fallback: "Erro no login",
			expected: "Erro no login",
		},
		{
			name:     "transport failure",
			err:      errors.New("dial tcp: connection refused"),
			fallback: "Erro no cadastro",
			expected: "Erro no cadastro",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := userMessage(tt.err, tt.fallback)

			if got != tt.expected {
				t.Fatalf("userMessage = %q want %q", got, tt.expected)
			}
		})
	}
}
